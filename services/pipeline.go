// Package services holds the read-side projections: the kanban board
// and the calendar. They are pure functions over store snapshots and
// never mutate anything.
package services

import (
	"solonest-backend/models"
	"solonest-backend/utils"
)

// LeadCard is one board card: the lead plus the stages it may still
// move to, which the column renders as its move buttons.
type LeadCard struct {
	models.Lead
	NextStatuses []string `json:"nextStatuses"`
}

// PipelineColumn is one kanban lane: the cards in it keep their
// insertion order, there is no secondary sort.
type PipelineColumn struct {
	Status string     `json:"status"`
	Count  int        `json:"count"`
	Value  float64    `json:"value"`
	Leads  []LeadCard `json:"leads"`
}

// PipelineBoard groups leads into the fixed five-stage column order.
// Leads whose status is not a pipeline stage fall into no column.
func PipelineBoard(leads []models.Lead) []PipelineColumn {
	columns := make([]PipelineColumn, 0, len(models.PipelineStages))
	for _, stage := range models.PipelineStages {
		column := PipelineColumn{Status: stage, Leads: []LeadCard{}}
		for _, lead := range leads {
			if lead.Status != stage {
				continue
			}
			column.Leads = append(column.Leads, LeadCard{
				Lead:         lead,
				NextStatuses: models.NextStatuses(lead.Status),
			})
			column.Value += utils.ParseAmount(lead.Value)
		}
		column.Count = len(column.Leads)
		columns = append(columns, column)
	}
	return columns
}
