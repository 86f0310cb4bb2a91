package models

import (
	"time"

	"github.com/google/uuid"
)

// Invoice statuses. Overdue is set by hand, it is never derived from
// the due date.
const (
	InvoiceStatusDraft   = "Draft"
	InvoiceStatusSent    = "Sent"
	InvoiceStatusPaid    = "Paid"
	InvoiceStatusOverdue = "Overdue"
)

var InvoiceStatuses = []string{
	InvoiceStatusDraft,
	InvoiceStatusSent,
	InvoiceStatusPaid,
	InvoiceStatusOverdue,
}

type Invoice struct {
	ID uuid.UUID `json:"id"`
	// ClientID is not checked against the client collection; a dangling
	// reference renders as "Unknown Client".
	ClientID      uuid.UUID `json:"clientId"`
	InvoiceNumber string    `json:"invoiceNumber"`
	// Amount is a display string frozen at creation from the summed
	// items, e.g. "AED 1,250".
	Amount  string        `json:"amount"`
	Status  string        `json:"status"`
	DueDate string        `json:"dueDate"`
	Items   []InvoiceItem `json:"items"`
	Notes   string        `json:"notes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// InvoiceItem ids are small ints local to one invoice.
type InvoiceItem struct {
	ID          int     `json:"id"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
	Rate        float64 `json:"rate"`
	Amount      float64 `json:"amount"`
}

// ItemAmount is the line total shown while the form is being edited:
// quantity times rate.
func ItemAmount(quantity int, rate float64) float64 {
	return float64(quantity) * rate
}

// NextItemID returns max(existing ids)+1, the id the form gives a
// freshly added line. An empty list starts at 1.
func NextItemID(items []InvoiceItem) int {
	max := 0
	for _, item := range items {
		if item.ID > max {
			max = item.ID
		}
	}
	return max + 1
}
