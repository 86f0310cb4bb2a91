package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solonest-backend/models"
	"solonest-backend/store"
	"solonest-backend/utils"
)

type DashboardController struct {
	Store *store.Store
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type DashboardOverview struct {
	TotalLeads        int                    `json:"totalLeads"`
	TotalClients      int                    `json:"totalClients"`
	TotalInvoices     int                    `json:"totalInvoices"`
	TotalAppointments int                    `json:"totalAppointments"`
	TotalContracts    int                    `json:"totalContracts"`
	PipelineValue     float64                `json:"pipelineValue"`
	TotalInvoiced     float64                `json:"totalInvoiced"`
	TotalPaid         float64                `json:"totalPaid"`
	ContractValue     float64                `json:"contractValue"`
	LeadsByStatus     []StatusCount          `json:"leadsByStatus"`
	RecentActivity    []models.TimelineEvent `json:"recentActivity"`
}

// GetDashboardOverview aggregates the headline numbers: counts per
// collection, pipeline and invoice sums, contract value and the lead
// status distribution, plus the most recent timeline entries.
func (dc *DashboardController) GetDashboardOverview(c *gin.Context) {
	leads := dc.Store.Leads()
	invoiced, paid := dc.Store.InvoiceTotals()

	contractValue := 0.0
	contracts := dc.Store.Contracts()
	for _, contract := range contracts {
		contractValue += utils.ParseAmount(contract.Value)
	}

	leadsByStatus := make([]StatusCount, 0, len(models.PipelineStages))
	for _, stage := range models.PipelineStages {
		count := 0
		for _, lead := range leads {
			if lead.Status == stage {
				count++
			}
		}
		leadsByStatus = append(leadsByStatus, StatusCount{Status: stage, Count: count})
	}

	recent := dc.Store.Timeline()
	if len(recent) > 10 {
		recent = recent[:10]
	}

	c.JSON(http.StatusOK, DashboardOverview{
		TotalLeads:        len(leads),
		TotalClients:      len(dc.Store.Clients()),
		TotalInvoices:     len(dc.Store.Invoices()),
		TotalAppointments: len(dc.Store.Appointments()),
		TotalContracts:    len(contracts),
		PipelineValue:     dc.Store.TotalPipelineValue(),
		TotalInvoiced:     invoiced,
		TotalPaid:         paid,
		ContractValue:     contractValue,
		LeadsByStatus:     leadsByStatus,
		RecentActivity:    recent,
	})
}
