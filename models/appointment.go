package models

import (
	"time"

	"github.com/google/uuid"
)

type Appointment struct {
	ID uuid.UUID `json:"id"`
	// Client holds a display name, not a foreign key.
	Client string `json:"client"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
	Type   string `json:"type"`

	LeadID   *uuid.UUID `json:"leadId,omitempty"`
	ClientID *uuid.UUID `json:"clientId,omitempty"`
	Notes    string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
