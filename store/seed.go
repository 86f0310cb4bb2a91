package store

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"solonest-backend/models"
)

// SeedDemoData loads the demo records the app has always booted with:
// three leads, three appointments and three contracts. Values are
// rendered with the configured currency prefix.
func (s *Store) SeedDemoData(currency string) {
	now := time.Now()

	leads := []models.Lead{
		{
			ID:        uuid.New(),
			Name:      "Alice Cooper",
			Email:     "alice.cooper@email.com",
			Phone:     "+1 (555) 123-4567",
			Status:    models.LeadStatusQualified,
			Source:    "Website",
			Value:     currency + " 15,000",
			Company:   "Cooper Designs",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			Name:      "Bob Wilson",
			Email:     "bob.wilson@email.com",
			Phone:     "+1 (555) 987-6543",
			Status:    models.LeadStatusNew,
			Source:    "Referral",
			Value:     currency + " 8,500",
			Company:   "Wilson Trading",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New(),
			Name:      "Carol Brown",
			Email:     "carol.brown@email.com",
			Phone:     "+1 (555) 456-7890",
			Status:    models.LeadStatusProposal,
			Source:    "LinkedIn",
			Value:     currency + " 12,000",
			Company:   "Brown Consulting",
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	for _, lead := range leads {
		s.AddLead(lead)
	}

	appointments := []models.Appointment{
		{
			ID:        uuid.New(),
			Client:    "John Smith",
			Date:      now.AddDate(0, 0, 1).Format("2006-01-02"),
			Time:      "10:00",
			Status:    "Confirmed",
			Type:      "Consultation",
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			Client:    "Sarah Johnson",
			Date:      now.AddDate(0, 0, 1).Format("2006-01-02"),
			Time:      "14:00",
			Status:    "Pending",
			Type:      "Follow-up",
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			Client:    "Mike Davis",
			Date:      now.AddDate(0, 0, 2).Format("2006-01-02"),
			Time:      "11:30",
			Status:    "Confirmed",
			Type:      "Consultation",
			CreatedAt: now,
		},
	}
	for _, appointment := range appointments {
		s.AddAppointment(appointment)
	}

	contracts := []models.Contract{
		{
			ID:        uuid.New(),
			Title:     "Service Agreement - TechCorp",
			Client:    "TechCorp Solutions",
			Value:     currency + " 25,000",
			Status:    "Active",
			StartDate: now.AddDate(0, -5, 0).Format("2006-01-02"),
			EndDate:   now.AddDate(0, 6, 0).Format("2006-01-02"),
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			Title:     "Maintenance Contract - StartupXYZ",
			Client:    "StartupXYZ Inc",
			Value:     currency + " 18,500",
			Status:    "Pending",
			StartDate: now.Format("2006-01-02"),
			EndDate:   now.AddDate(1, 0, 0).Format("2006-01-02"),
			CreatedAt: now,
		},
		{
			ID:        uuid.New(),
			Title:     "Consulting Agreement - BigCorp",
			Client:    "BigCorp Enterprise",
			Value:     currency + " 45,000",
			Status:    "Draft",
			StartDate: now.AddDate(0, 1, 0).Format("2006-01-02"),
			EndDate:   now.AddDate(0, 7, 0).Format("2006-01-02"),
			CreatedAt: now,
		},
	}
	for _, contract := range contracts {
		s.AddContract(contract)
	}

	s.logger.Info("seeded demo data",
		zap.Int("leads", len(leads)),
		zap.Int("appointments", len(appointments)),
		zap.Int("contracts", len(contracts)),
	)
}
