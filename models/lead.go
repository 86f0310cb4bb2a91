package models

import (
	"time"

	"github.com/google/uuid"
)

// Pipeline stages in board order. A lead only ever moves forward
// through these; it never goes back to an earlier stage.
const (
	LeadStatusNew         = "New Leads"
	LeadStatusQualified   = "Qualified"
	LeadStatusProposal    = "Proposal Sent"
	LeadStatusNegotiation = "Negotiation"
	LeadStatusClosed      = "Closed"
)

// PipelineStages is the fixed kanban column order.
var PipelineStages = []string{
	LeadStatusNew,
	LeadStatusQualified,
	LeadStatusProposal,
	LeadStatusNegotiation,
	LeadStatusClosed,
}

// Lead sources offered by the add-lead form.
var LeadSources = []string{"Website", "Referral", "LinkedIn", "Cold Call"}

type Lead struct {
	ID     uuid.UUID `json:"id"`
	Name   string    `json:"name"`
	Email  string    `json:"email"`
	Phone  string    `json:"phone"`
	Status string    `json:"status"`
	Source string    `json:"source"`
	// Value is a display string such as "AED 15,000", not a number.
	Value   string `json:"value"`
	Company string `json:"company,omitempty"`
	Notes   string `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// StageIndex returns the position of a status in the pipeline, or -1
// for a status that is not a pipeline stage.
func StageIndex(status string) int {
	for i, s := range PipelineStages {
		if s == status {
			return i
		}
	}
	return -1
}

// NextStatuses lists the stages a lead may still move to: every stage
// after its current one. Closed leads have nowhere left to go.
func NextStatuses(status string) []string {
	idx := StageIndex(status)
	if idx < 0 || idx+1 >= len(PipelineStages) {
		return nil
	}
	return PipelineStages[idx+1:]
}

// CanAdvance reports whether a move from one stage to another is a
// forward move. The board never offers backward or sideways moves.
func CanAdvance(from, to string) bool {
	fromIdx := StageIndex(from)
	return fromIdx >= 0 && StageIndex(to) > fromIdx
}
