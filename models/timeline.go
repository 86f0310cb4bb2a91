package models

import (
	"time"

	"github.com/google/uuid"
)

// Entity kinds a timeline event can point at.
const (
	EntityLead        = "lead"
	EntityClient      = "client"
	EntityInvoice     = "invoice"
	EntityAppointment = "appointment"
	EntityContract    = "contract"
)

// Timeline event types.
const (
	EventCreated       = "created"
	EventStatusChanged = "status_changed"
)

// TimelineEvent is an append-only log entry. Events are never mutated
// or deleted once written.
type TimelineEvent struct {
	ID          uuid.UUID `json:"id"`
	EntityType  string    `json:"entityType"`
	EntityID    uuid.UUID `json:"entityId"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	OldValue    string    `json:"oldValue,omitempty"`
	NewValue    string    `json:"newValue,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
