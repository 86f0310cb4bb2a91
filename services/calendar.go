package services

import (
	"fmt"
	"sort"

	"solonest-backend/models"
)

// Activity is one calendar entry. Contracts contribute two (start and
// end), leads contribute their creation and, when different, their last
// update.
type Activity struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Type        string `json:"type"`
	Status      string `json:"status,omitempty"`
}

// ActivityFilters toggles entity kinds on the calendar.
type ActivityFilters struct {
	Appointments bool
	Contracts    bool
	Invoices     bool
	Leads        bool
}

// AllActivities is the default filter set with everything visible.
func AllActivities() ActivityFilters {
	return ActivityFilters{Appointments: true, Contracts: true, Invoices: true, Leads: true}
}

// CalendarActivities projects the collections onto a flat activity
// list sorted by (date, time) ascending. Entries without a time sort
// before timed entries on the same date.
func CalendarActivities(
	appointments []models.Appointment,
	contracts []models.Contract,
	invoices []models.Invoice,
	leads []models.Lead,
	filters ActivityFilters,
) []Activity {
	var activities []Activity

	if filters.Appointments {
		for _, a := range appointments {
			activities = append(activities, Activity{
				ID:          fmt.Sprintf("appointment-%s", a.ID),
				Title:       fmt.Sprintf("%s: %s", a.Type, a.Client),
				Description: "Status: " + a.Status,
				Date:        a.Date,
				Time:        a.Time,
				Type:        models.EntityAppointment,
				Status:      a.Status,
			})
		}
	}

	if filters.Contracts {
		for _, c := range contracts {
			description := fmt.Sprintf("Value: %s | Status: %s", c.Value, c.Status)
			activities = append(activities, Activity{
				ID:          fmt.Sprintf("contract-start-%s", c.ID),
				Title:       "Contract Start: " + c.Title,
				Description: description,
				Date:        c.StartDate,
				Type:        models.EntityContract,
				Status:      c.Status,
			})
			activities = append(activities, Activity{
				ID:          fmt.Sprintf("contract-end-%s", c.ID),
				Title:       "Contract End: " + c.Title,
				Description: description,
				Date:        c.EndDate,
				Type:        models.EntityContract,
				Status:      c.Status,
			})
		}
	}

	if filters.Invoices {
		for _, inv := range invoices {
			activities = append(activities, Activity{
				ID:          fmt.Sprintf("invoice-%s", inv.ID),
				Title:       "Invoice Due: " + inv.InvoiceNumber,
				Description: fmt.Sprintf("Amount: %s | Status: %s", inv.Amount, inv.Status),
				Date:        inv.DueDate,
				Type:        models.EntityInvoice,
				Status:      inv.Status,
			})
		}
	}

	if filters.Leads {
		for _, lead := range leads {
			activities = append(activities, Activity{
				ID:          fmt.Sprintf("lead-created-%s", lead.ID),
				Title:       "New Lead: " + lead.Name,
				Description: fmt.Sprintf("Source: %s | Value: %s", lead.Source, lead.Value),
				Date:        lead.CreatedAt.Format("2006-01-02"),
				Type:        models.EntityLead,
				Status:      lead.Status,
			})
			if !lead.UpdatedAt.Equal(lead.CreatedAt) {
				activities = append(activities, Activity{
					ID:          fmt.Sprintf("lead-updated-%s", lead.ID),
					Title:       "Lead Updated: " + lead.Name,
					Description: fmt.Sprintf("Status: %s | Value: %s", lead.Status, lead.Value),
					Date:        lead.UpdatedAt.Format("2006-01-02"),
					Type:        models.EntityLead,
					Status:      lead.Status,
				})
			}
		}
	}

	sort.SliceStable(activities, func(i, j int) bool {
		a, b := activities[i], activities[j]
		if a.Date != b.Date {
			return a.Date < b.Date
		}
		if a.Time != "" && b.Time != "" {
			return a.Time < b.Time
		}
		// untimed entries lead the day
		return a.Time == "" && b.Time != ""
	})
	return activities
}
