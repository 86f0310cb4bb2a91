package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"solonest-backend/models"
)

func newLead(name, value, status string) models.Lead {
	created := time.Now().Add(-time.Hour)
	return models.Lead{
		ID:        uuid.New(),
		Name:      name,
		Email:     name + "@example.com",
		Phone:     "+971 50 000 0000",
		Status:    status,
		Source:    "Website",
		Value:     value,
		CreatedAt: created,
		UpdatedAt: created,
	}
}

func TestAddLeadRecordsCreatedEvent(t *testing.T) {
	s := New(nil)
	lead := newLead("Alice Cooper", "AED 15,000", models.LeadStatusNew)

	s.AddLead(lead)

	leads := s.Leads()
	require.Len(t, leads, 1)
	require.Equal(t, lead.ID, leads[0].ID)

	timeline := s.Timeline()
	require.Len(t, timeline, 1)
	require.Equal(t, models.EventCreated, timeline[0].Type)
	require.Equal(t, models.EntityLead, timeline[0].EntityType)
	require.Equal(t, lead.ID, timeline[0].EntityID)
}

func TestTimelineIsMostRecentFirst(t *testing.T) {
	s := New(nil)
	first := newLead("First", "AED 1,000", models.LeadStatusNew)
	second := newLead("Second", "AED 2,000", models.LeadStatusNew)

	s.AddLead(first)
	s.AddLead(second)

	timeline := s.Timeline()
	require.Len(t, timeline, 2)
	require.Equal(t, second.ID, timeline[0].EntityID)
	require.Equal(t, first.ID, timeline[1].EntityID)
}

func TestUpdateLeadStatusRecordsTransition(t *testing.T) {
	s := New(nil)
	lead := newLead("Bob Wilson", "AED 8,500", models.LeadStatusNew)
	s.AddLead(lead)

	updated, found := s.UpdateLeadStatus(lead.ID, models.LeadStatusQualified)
	require.True(t, found)
	require.Equal(t, models.LeadStatusQualified, updated.Status)
	require.True(t, updated.UpdatedAt.After(lead.UpdatedAt))

	timeline := s.Timeline()
	require.Len(t, timeline, 2)
	require.Equal(t, models.EventStatusChanged, timeline[0].Type)
	require.Equal(t, models.LeadStatusNew, timeline[0].OldValue)
	require.Equal(t, models.LeadStatusQualified, timeline[0].NewValue)
}

func TestUpdateLeadStatusSameStatusRecordsNothing(t *testing.T) {
	s := New(nil)
	lead := newLead("Bob Wilson", "AED 8,500", models.LeadStatusQualified)
	s.AddLead(lead)

	_, found := s.UpdateLeadStatus(lead.ID, models.LeadStatusQualified)
	require.True(t, found)
	require.Len(t, s.Timeline(), 1) // only the created event
}

func TestAdvanceLeadStatusRefusesBackwardMove(t *testing.T) {
	s := New(nil)
	lead := newLead("Bob Wilson", "AED 8,500", models.LeadStatusQualified)
	s.AddLead(lead)

	updated, found, advanced := s.AdvanceLeadStatus(lead.ID, models.LeadStatusNegotiation)
	require.True(t, found)
	require.True(t, advanced)
	require.Equal(t, models.LeadStatusNegotiation, updated.Status)
	require.Len(t, s.Timeline(), 2)

	// the check and the write share one critical section, so a refused
	// move touches neither the lead nor the timeline
	current, found, advanced := s.AdvanceLeadStatus(lead.ID, models.LeadStatusNew)
	require.True(t, found)
	require.False(t, advanced)
	require.Equal(t, models.LeadStatusNegotiation, current.Status)
	require.Equal(t, updated.UpdatedAt, current.UpdatedAt)
	require.Len(t, s.Timeline(), 2)

	_, found, _ = s.AdvanceLeadStatus(uuid.New(), models.LeadStatusClosed)
	require.False(t, found)
}

func TestUpdateLeadUnknownIDIsNoOp(t *testing.T) {
	s := New(nil)
	s.AddLead(newLead("Alice Cooper", "AED 15,000", models.LeadStatusNew))
	before := s.Leads()
	beforeTimeline := s.Timeline()

	name := "Someone Else"
	_, found := s.UpdateLead(uuid.New(), LeadPatch{Name: &name})
	require.False(t, found)

	require.Equal(t, before, s.Leads())
	require.Equal(t, beforeTimeline, s.Timeline())
}

func TestUpdateLeadPatchesOnlyGivenFields(t *testing.T) {
	s := New(nil)
	lead := newLead("Carol Brown", "AED 12,000", models.LeadStatusProposal)
	s.AddLead(lead)

	company := "Brown Consulting"
	updated, found := s.UpdateLead(lead.ID, LeadPatch{Company: &company})
	require.True(t, found)
	require.Equal(t, company, updated.Company)
	require.Equal(t, lead.Name, updated.Name)
	require.Equal(t, lead.Value, updated.Value)
	require.True(t, updated.UpdatedAt.After(lead.UpdatedAt))
}

func TestLeadTimelineFiltersAndOrders(t *testing.T) {
	s := New(nil)
	lead := newLead("Alice Cooper", "AED 15,000", models.LeadStatusNew)
	other := newLead("Bob Wilson", "AED 8,500", models.LeadStatusNew)
	s.AddLead(lead)
	s.AddLead(other)
	s.AddClient(models.Client{ID: uuid.New(), Name: "TechCorp", CreatedAt: time.Now()})

	s.UpdateLeadStatus(lead.ID, models.LeadStatusQualified)
	s.UpdateLeadStatus(lead.ID, models.LeadStatusProposal)

	events := s.LeadTimeline(lead.ID)
	require.Len(t, events, 3)
	for _, ev := range events {
		require.Equal(t, models.EntityLead, ev.EntityType)
		require.Equal(t, lead.ID, ev.EntityID)
	}
	// most recent transition first, creation last
	require.Equal(t, models.LeadStatusProposal, events[0].NewValue)
	require.Equal(t, models.LeadStatusQualified, events[1].NewValue)
	require.Equal(t, models.EventCreated, events[2].Type)
}

func TestTotalPipelineValueLossyParse(t *testing.T) {
	s := New(nil)
	s.AddLead(newLead("A", "AED 15,000", models.LeadStatusNew))
	s.AddLead(newLead("B", "AED 8,500", models.LeadStatusNew))
	s.AddLead(newLead("C", "not a number", models.LeadStatusNew))

	require.Equal(t, 23500.0, s.TotalPipelineValue())
}

func TestInvoiceTotals(t *testing.T) {
	s := New(nil)
	s.AddInvoice(models.Invoice{
		ID: uuid.New(), ClientID: uuid.New(), InvoiceNumber: "INV-1",
		Amount: "AED 1,000", Status: models.InvoiceStatusPaid, CreatedAt: time.Now(),
	})
	s.AddInvoice(models.Invoice{
		ID: uuid.New(), ClientID: uuid.New(), InvoiceNumber: "INV-2",
		Amount: "AED 250", Status: models.InvoiceStatusSent, CreatedAt: time.Now(),
	})

	invoiced, paid := s.InvoiceTotals()
	require.Equal(t, 1250.0, invoiced)
	require.Equal(t, 1000.0, paid)
}

func TestUpdateInvoiceStatusDoesNotTouchAmount(t *testing.T) {
	s := New(nil)
	invoice := models.Invoice{
		ID: uuid.New(), ClientID: uuid.New(), InvoiceNumber: "INV-3",
		Amount: "AED 600", Status: models.InvoiceStatusSent,
		Items:     []models.InvoiceItem{{ID: 1, Description: "Design", Quantity: 3, Rate: 200, Amount: 600}},
		CreatedAt: time.Now(),
	}
	s.AddInvoice(invoice)

	updated, found := s.UpdateInvoiceStatus(invoice.ID, models.InvoiceStatusOverdue)
	require.True(t, found)
	require.Equal(t, models.InvoiceStatusOverdue, updated.Status)
	require.Equal(t, "AED 600", updated.Amount)

	// no timeline entry beyond creation for invoice status flips
	require.Len(t, s.Timeline(), 1)
}

func TestUpdateInvoicePatchesStatusAndNotes(t *testing.T) {
	s := New(nil)
	invoice := models.Invoice{
		ID: uuid.New(), ClientID: uuid.New(), InvoiceNumber: "INV-4",
		Amount: "AED 1,250", Status: models.InvoiceStatusSent, CreatedAt: time.Now(),
	}
	s.AddInvoice(invoice)

	notes := "Paid by bank transfer"
	status := models.InvoiceStatusPaid
	updated, found := s.UpdateInvoice(invoice.ID, InvoicePatch{Status: &status, Notes: &notes})
	require.True(t, found)
	require.Equal(t, models.InvoiceStatusPaid, updated.Status)
	require.Equal(t, notes, updated.Notes)
	require.Equal(t, "AED 1,250", updated.Amount)
	require.Len(t, s.Timeline(), 1)

	_, found = s.UpdateInvoice(uuid.New(), InvoicePatch{Notes: &notes})
	require.False(t, found)
	require.Equal(t, notes, s.Invoices()[0].Notes)
}

func TestClientNameDanglingReference(t *testing.T) {
	s := New(nil)
	client := models.Client{ID: uuid.New(), Name: "TechCorp Solutions", CreatedAt: time.Now()}
	s.AddClient(client)

	require.Equal(t, "TechCorp Solutions", s.ClientName(client.ID))
	require.Equal(t, "Unknown Client", s.ClientName(uuid.New()))
}

func TestClientUpdateEmitsNoEvents(t *testing.T) {
	s := New(nil)
	client := models.Client{ID: uuid.New(), Name: "TechCorp", CreatedAt: time.Now()}
	s.AddClient(client)

	address := "Dubai Media City"
	updated, found := s.UpdateClient(client.ID, ClientPatch{Address: &address})
	require.True(t, found)
	require.Equal(t, address, updated.Address)
	require.Len(t, s.Timeline(), 1)
}

func TestSnapshotsAreCopies(t *testing.T) {
	s := New(nil)
	s.AddLead(newLead("Alice Cooper", "AED 15,000", models.LeadStatusNew))

	leads := s.Leads()
	leads[0].Name = "mutated"

	require.Equal(t, "Alice Cooper", s.Leads()[0].Name)
}

func TestSeedDemoData(t *testing.T) {
	s := New(nil)
	s.SeedDemoData("AED")

	require.Len(t, s.Leads(), 3)
	require.Len(t, s.Appointments(), 3)
	require.Len(t, s.Contracts(), 3)
	require.Len(t, s.Timeline(), 9)
	require.Equal(t, 35500.0, s.TotalPipelineValue())
}
