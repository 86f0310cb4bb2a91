// Package store holds the canonical in-memory collections and the
// timeline log. It is the only place domain records are mutated; the
// controllers validate input and the view helpers only read snapshots.
// Nothing here survives a restart, which mirrors how the system is
// meant to behave.
package store

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"solonest-backend/models"
	"solonest-backend/utils"
)

type Store struct {
	mu sync.RWMutex

	leads        []models.Lead
	clients      []models.Client
	invoices     []models.Invoice
	appointments []models.Appointment
	contracts    []models.Contract

	// timeline is most-recent-first: new events are prepended and
	// existing entries are never touched again.
	timeline []models.TimelineEvent

	logger *zap.Logger
}

func New(logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{logger: logger}
}

// recordEvent prepends a timeline entry. Callers hold the write lock.
func (s *Store) recordEvent(ev models.TimelineEvent) {
	ev.ID = uuid.New()
	ev.CreatedAt = time.Now()
	s.timeline = append([]models.TimelineEvent{ev}, s.timeline...)
	s.logger.Info("timeline event",
		zap.String("entityType", ev.EntityType),
		zap.String("eventType", ev.Type),
		zap.String("entityId", ev.EntityID.String()),
		zap.String("description", ev.Description),
	)
}

// AddLead appends a fully-formed lead. Validation happened in the form
// layer; the store does not second-guess it and does not check for
// duplicate ids.
func (s *Store) AddLead(lead models.Lead) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leads = append(s.leads, lead)
	s.recordEvent(models.TimelineEvent{
		EntityType:  models.EntityLead,
		EntityID:    lead.ID,
		Type:        models.EventCreated,
		Description: "Lead created: " + lead.Name,
	})
}

func (s *Store) AddClient(client models.Client) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clients = append(s.clients, client)
	s.recordEvent(models.TimelineEvent{
		EntityType:  models.EntityClient,
		EntityID:    client.ID,
		Type:        models.EventCreated,
		Description: "Client created: " + client.Name,
	})
}

func (s *Store) AddInvoice(invoice models.Invoice) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.invoices = append(s.invoices, invoice)
	s.recordEvent(models.TimelineEvent{
		EntityType:  models.EntityInvoice,
		EntityID:    invoice.ID,
		Type:        models.EventCreated,
		Description: "Invoice created: " + invoice.InvoiceNumber,
	})
}

func (s *Store) AddAppointment(appointment models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = append(s.appointments, appointment)
	s.recordEvent(models.TimelineEvent{
		EntityType:  models.EntityAppointment,
		EntityID:    appointment.ID,
		Type:        models.EventCreated,
		Description: "Appointment created: " + appointment.Client,
	})
}

func (s *Store) AddContract(contract models.Contract) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contracts = append(s.contracts, contract)
	s.recordEvent(models.TimelineEvent{
		EntityType:  models.EntityContract,
		EntityID:    contract.ID,
		Type:        models.EventCreated,
		Description: "Contract created: " + contract.Title,
	})
}

// LeadPatch enumerates the lead fields a general update may change.
// Status is deliberately absent: status moves go through
// UpdateLeadStatus so the transition log has a single funnel.
type LeadPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Source  *string `json:"source"`
	Value   *string `json:"value"`
	Company *string `json:"company"`
	Notes   *string `json:"notes"`
}

// UpdateLead applies a patch to the matching lead and stamps UpdatedAt.
// An unknown id leaves every collection untouched and reports false.
func (s *Store) UpdateLead(id uuid.UUID, patch LeadPatch) (models.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID != id {
			continue
		}
		lead := &s.leads[i]
		if patch.Name != nil {
			lead.Name = *patch.Name
		}
		if patch.Email != nil {
			lead.Email = *patch.Email
		}
		if patch.Phone != nil {
			lead.Phone = *patch.Phone
		}
		if patch.Source != nil {
			lead.Source = *patch.Source
		}
		if patch.Value != nil {
			lead.Value = *patch.Value
		}
		if patch.Company != nil {
			lead.Company = *patch.Company
		}
		if patch.Notes != nil {
			lead.Notes = *patch.Notes
		}
		lead.UpdatedAt = time.Now()
		return *lead, true
	}
	return models.Lead{}, false
}

// UpdateLeadStatus moves a lead to a new stage. A real change records a
// status_changed event carrying the old and new values; setting the
// same status again records nothing. Every hit stamps UpdatedAt.
func (s *Store) UpdateLeadStatus(id uuid.UUID, status string) (models.Lead, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID != id {
			continue
		}
		lead := &s.leads[i]
		old := lead.Status
		lead.Status = status
		lead.UpdatedAt = time.Now()
		if old != status {
			s.recordEvent(models.TimelineEvent{
				EntityType:  models.EntityLead,
				EntityID:    lead.ID,
				Type:        models.EventStatusChanged,
				Description: fmt.Sprintf("Status changed from %q to %q", old, status),
				OldValue:    old,
				NewValue:    status,
			})
		}
		return *lead, true
	}
	return models.Lead{}, false
}

// AdvanceLeadStatus applies a forward-only pipeline move in a single
// critical section, so concurrent requests cannot interleave a check
// against a stale snapshot with the write. It reports whether the lead
// exists and whether the move was a forward one; a refused move leaves
// the lead and the timeline untouched.
func (s *Store) AdvanceLeadStatus(id uuid.UUID, status string) (lead models.Lead, found, advanced bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.leads {
		if s.leads[i].ID != id {
			continue
		}
		l := &s.leads[i]
		if !models.CanAdvance(l.Status, status) {
			return *l, true, false
		}
		old := l.Status
		l.Status = status
		l.UpdatedAt = time.Now()
		s.recordEvent(models.TimelineEvent{
			EntityType:  models.EntityLead,
			EntityID:    l.ID,
			Type:        models.EventStatusChanged,
			Description: fmt.Sprintf("Status changed from %q to %q", old, status),
			OldValue:    old,
			NewValue:    status,
		})
		return *l, true, true
	}
	return models.Lead{}, false, false
}

type ClientPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Phone   *string `json:"phone"`
	Company *string `json:"company"`
	Address *string `json:"address"`
}

// UpdateClient applies a patch. Clients carry no updated timestamp and
// client updates emit no timeline events; only creation is logged.
func (s *Store) UpdateClient(id uuid.UUID, patch ClientPatch) (models.Client, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.clients {
		if s.clients[i].ID != id {
			continue
		}
		client := &s.clients[i]
		if patch.Name != nil {
			client.Name = *patch.Name
		}
		if patch.Email != nil {
			client.Email = *patch.Email
		}
		if patch.Phone != nil {
			client.Phone = *patch.Phone
		}
		if patch.Company != nil {
			client.Company = *patch.Company
		}
		if patch.Address != nil {
			client.Address = *patch.Address
		}
		return *client, true
	}
	return models.Client{}, false
}

// InvoicePatch covers the fields the calendar edit dialog exposes.
// Amount and Items are frozen at creation and deliberately absent.
type InvoicePatch struct {
	Status *string `json:"status" binding:"omitempty,oneof=Draft Sent Paid Overdue"`
	Notes  *string `json:"notes"`
}

// UpdateInvoice patches status and notes. Like client updates it emits
// no timeline events; only creation is logged.
func (s *Store) UpdateInvoice(id uuid.UUID, patch InvoicePatch) (models.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID != id {
			continue
		}
		invoice := &s.invoices[i]
		if patch.Status != nil {
			invoice.Status = *patch.Status
		}
		if patch.Notes != nil {
			invoice.Notes = *patch.Notes
		}
		return *invoice, true
	}
	return models.Invoice{}, false
}

// UpdateInvoiceStatus sets the status by hand. Overdue arrives through
// here or through the general patch; it is never derived from the due
// date, and Amount is never recomputed.
func (s *Store) UpdateInvoiceStatus(id uuid.UUID, status string) (models.Invoice, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.invoices {
		if s.invoices[i].ID != id {
			continue
		}
		s.invoices[i].Status = status
		return s.invoices[i], true
	}
	return models.Invoice{}, false
}

type AppointmentPatch struct {
	Client *string `json:"client"`
	Date   *string `json:"date"`
	Time   *string `json:"time"`
	Status *string `json:"status"`
	Type   *string `json:"type"`
	Notes  *string `json:"notes"`
}

func (s *Store) UpdateAppointment(id uuid.UUID, patch AppointmentPatch) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.appointments {
		if s.appointments[i].ID != id {
			continue
		}
		appointment := &s.appointments[i]
		if patch.Client != nil {
			appointment.Client = *patch.Client
		}
		if patch.Date != nil {
			appointment.Date = *patch.Date
		}
		if patch.Time != nil {
			appointment.Time = *patch.Time
		}
		if patch.Status != nil {
			appointment.Status = *patch.Status
		}
		if patch.Type != nil {
			appointment.Type = *patch.Type
		}
		if patch.Notes != nil {
			appointment.Notes = *patch.Notes
		}
		return *appointment, true
	}
	return models.Appointment{}, false
}

type ContractPatch struct {
	Title     *string `json:"title"`
	Client    *string `json:"client"`
	Value     *string `json:"value"`
	Status    *string `json:"status"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	Notes     *string `json:"notes"`
}

func (s *Store) UpdateContract(id uuid.UUID, patch ContractPatch) (models.Contract, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.contracts {
		if s.contracts[i].ID != id {
			continue
		}
		contract := &s.contracts[i]
		if patch.Title != nil {
			contract.Title = *patch.Title
		}
		if patch.Client != nil {
			contract.Client = *patch.Client
		}
		if patch.Value != nil {
			contract.Value = *patch.Value
		}
		if patch.Status != nil {
			contract.Status = *patch.Status
		}
		if patch.StartDate != nil {
			contract.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			contract.EndDate = *patch.EndDate
		}
		if patch.Notes != nil {
			contract.Notes = *patch.Notes
		}
		return *contract, true
	}
	return models.Contract{}, false
}

// Snapshot accessors return copies so callers can project and sort
// without reaching into the store's slices.

func (s *Store) Leads() []models.Lead {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	return out
}

func (s *Store) Clients() []models.Client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Client, len(s.clients))
	copy(out, s.clients)
	return out
}

func (s *Store) Invoices() []models.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

func (s *Store) Appointments() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, len(s.appointments))
	copy(out, s.appointments)
	return out
}

func (s *Store) Contracts() []models.Contract {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Contract, len(s.contracts))
	copy(out, s.contracts)
	return out
}

func (s *Store) Timeline() []models.TimelineEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.TimelineEvent, len(s.timeline))
	copy(out, s.timeline)
	return out
}

func (s *Store) GetLead(id uuid.UUID) (models.Lead, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, lead := range s.leads {
		if lead.ID == id {
			return lead, true
		}
	}
	return models.Lead{}, false
}

func (s *Store) GetClient(id uuid.UUID) (models.Client, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, client := range s.clients {
		if client.ID == id {
			return client, true
		}
	}
	return models.Client{}, false
}

func (s *Store) GetInvoice(id uuid.UUID) (models.Invoice, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, invoice := range s.invoices {
		if invoice.ID == id {
			return invoice, true
		}
	}
	return models.Invoice{}, false
}

// ClientName resolves a client id to its display name. Referential
// integrity is not enforced anywhere, so a dangling reference comes
// back as "Unknown Client" rather than an error.
func (s *Store) ClientName(id uuid.UUID) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, client := range s.clients {
		if client.ID == id {
			return client.Name
		}
	}
	return "Unknown Client"
}

// LeadTimeline returns the events for one lead, most recent first.
// A plain scan is fine at the collection sizes this system sees.
func (s *Store) LeadTimeline(id uuid.UUID) []models.TimelineEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []models.TimelineEvent
	for _, ev := range s.timeline {
		if ev.EntityType == models.EntityLead && ev.EntityID == id {
			out = append(out, ev)
		}
	}
	return out
}

// TotalPipelineValue sums every lead's value display string. Strings
// that do not parse count as zero.
func (s *Store) TotalPipelineValue() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := 0.0
	for _, lead := range s.leads {
		total += utils.ParseAmount(lead.Value)
	}
	return total
}

// InvoiceTotals returns the summed amount of all invoices and of the
// paid ones, using the same lossy parse as the pipeline value.
func (s *Store) InvoiceTotals() (invoiced, paid float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, invoice := range s.invoices {
		amount := utils.ParseAmount(invoice.Amount)
		invoiced += amount
		if invoice.Status == models.InvoiceStatusPaid {
			paid += amount
		}
	}
	return invoiced, paid
}
