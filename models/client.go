package models

import (
	"time"

	"github.com/google/uuid"
)

// Client is created once and rarely touched afterwards.
type Client struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Phone   string    `json:"phone"`
	Company string    `json:"company"`
	Address string    `json:"address,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}
