package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"solonest-backend/models"
)

func TestCalendarUntimedEntrySortsFirstOnSameDate(t *testing.T) {
	appointments := []models.Appointment{{
		ID: uuid.New(), Client: "John Smith", Date: "2024-06-17", Time: "09:00",
		Status: "Confirmed", Type: "Consultation",
	}}
	invoices := []models.Invoice{{
		ID: uuid.New(), InvoiceNumber: "INV-2024-001", Amount: "AED 500",
		Status: models.InvoiceStatusSent, DueDate: "2024-06-17",
	}}

	activities := CalendarActivities(appointments, nil, invoices, nil, AllActivities())
	require.Len(t, activities, 2)
	require.Equal(t, models.EntityInvoice, activities[0].Type) // no time
	require.Equal(t, models.EntityAppointment, activities[1].Type)
}

func TestCalendarSortsByDateThenTime(t *testing.T) {
	appointments := []models.Appointment{
		{ID: uuid.New(), Client: "Late", Date: "2024-06-18", Time: "09:00", Type: "Consultation"},
		{ID: uuid.New(), Client: "Afternoon", Date: "2024-06-17", Time: "14:00", Type: "Follow-up"},
		{ID: uuid.New(), Client: "Morning", Date: "2024-06-17", Time: "10:00", Type: "Consultation"},
	}

	activities := CalendarActivities(appointments, nil, nil, nil, AllActivities())
	require.Equal(t, "Consultation: Morning", activities[0].Title)
	require.Equal(t, "Follow-up: Afternoon", activities[1].Title)
	require.Equal(t, "Consultation: Late", activities[2].Title)
}

func TestCalendarContractContributesStartAndEnd(t *testing.T) {
	contracts := []models.Contract{{
		ID: uuid.New(), Title: "Service Agreement - TechCorp", Client: "TechCorp Solutions",
		Value: "AED 25,000", Status: "Active", StartDate: "2024-01-15", EndDate: "2024-12-15",
	}}

	activities := CalendarActivities(nil, contracts, nil, nil, AllActivities())
	require.Len(t, activities, 2)
	require.Equal(t, "Contract Start: Service Agreement - TechCorp", activities[0].Title)
	require.Equal(t, "2024-01-15", activities[0].Date)
	require.Equal(t, "Contract End: Service Agreement - TechCorp", activities[1].Title)
	require.Equal(t, "2024-12-15", activities[1].Date)
}

func TestCalendarLeadCreatedAndUpdatedEntries(t *testing.T) {
	created := time.Date(2024, 6, 10, 9, 0, 0, 0, time.UTC)
	fresh := models.Lead{
		ID: uuid.New(), Name: "Alice Cooper", Source: "Website", Value: "AED 15,000",
		Status: models.LeadStatusNew, CreatedAt: created, UpdatedAt: created,
	}
	moved := models.Lead{
		ID: uuid.New(), Name: "Bob Wilson", Source: "Referral", Value: "AED 8,500",
		Status: models.LeadStatusQualified, CreatedAt: created, UpdatedAt: created.AddDate(0, 0, 2),
	}

	activities := CalendarActivities(nil, nil, nil, []models.Lead{fresh, moved}, AllActivities())
	require.Len(t, activities, 3)
	require.Equal(t, "New Lead: Alice Cooper", activities[0].Title)
	require.Equal(t, "New Lead: Bob Wilson", activities[1].Title)
	require.Equal(t, "Lead Updated: Bob Wilson", activities[2].Title)
	require.Equal(t, "2024-06-12", activities[2].Date)
}

func TestCalendarFiltersExcludeKinds(t *testing.T) {
	appointments := []models.Appointment{{ID: uuid.New(), Client: "John", Date: "2024-06-17", Time: "10:00", Type: "Consultation"}}
	invoices := []models.Invoice{{ID: uuid.New(), InvoiceNumber: "INV-1", DueDate: "2024-06-18", Status: "Sent", Amount: "AED 100"}}

	filters := AllActivities()
	filters.Invoices = false

	activities := CalendarActivities(appointments, nil, invoices, nil, filters)
	require.Len(t, activities, 1)
	require.Equal(t, models.EntityAppointment, activities[0].Type)
}
