package models

import (
	"time"

	"github.com/google/uuid"
)

type Contract struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	// Client holds a display name, not a foreign key.
	Client    string `json:"client"`
	Value     string `json:"value"`
	Status    string `json:"status"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`

	LeadID   *uuid.UUID `json:"leadId,omitempty"`
	ClientID *uuid.UUID `json:"clientId,omitempty"`
	Notes    string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
