package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solonest-backend/models"
	"solonest-backend/services"
	"solonest-backend/store"
	"solonest-backend/utils"
)

// LeadController handles the lead pipeline.
type LeadController struct {
	Store *store.Store
}

// CreateLeadInput defines the expected JSON structure for creating a lead
type CreateLeadInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone" binding:"required"`
	Value   string `json:"value" binding:"required"`
	Status  string `json:"status" binding:"omitempty,oneof='New Leads' 'Qualified' 'Proposal Sent' 'Negotiation' 'Closed'"`
	Source  string `json:"source"`
	Company string `json:"company"`
	Notes   string `json:"notes"`
}

type UpdateLeadStatusInput struct {
	Status string `json:"status" binding:"required,oneof='New Leads' 'Qualified' 'Proposal Sent' 'Negotiation' 'Closed'"`
}

// CreateLead validates the form input, builds the complete record and
// hands it to the store.
func (lc *LeadController) CreateLead(c *gin.Context) {
	var input CreateLeadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Status == "" {
		input.Status = models.LeadStatusNew
	}
	if input.Source == "" {
		input.Source = "Website"
	}

	now := time.Now()
	lead := models.Lead{
		ID:        uuid.New(),
		Name:      input.Name,
		Email:     input.Email,
		Phone:     input.Phone,
		Status:    input.Status,
		Source:    input.Source,
		Value:     input.Value,
		Company:   input.Company,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}

	lc.Store.AddLead(lead)

	c.JSON(http.StatusCreated, lead)
}

// GetLeads retrieves all leads in insertion order
func (lc *LeadController) GetLeads(c *gin.Context) {
	c.JSON(http.StatusOK, lc.Store.Leads())
}

// GetLead retrieves a specific lead by ID
func (lc *LeadController) GetLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	lead, found := lc.Store.GetLead(id)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLead applies a field patch. Status is not part of the patch;
// it only moves through UpdateLeadStatus.
func (lc *LeadController) UpdateLead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var patch store.LeadPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lead, found := lc.Store.UpdateLead(id, patch)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// UpdateLeadStatus advances a lead through the pipeline. Moves are
// forward-only and applied atomically in the store, so a racing request
// cannot sneak a backward move past the check.
func (lc *LeadController) UpdateLeadStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	var input UpdateLeadStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	lead, found, advanced := lc.Store.AdvanceLeadStatus(id, input.Status)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Lead not found")
		return
	}
	if !advanced {
		utils.RespondWithError(c, http.StatusBadRequest, "Leads can only move forward in the pipeline")
		return
	}

	c.JSON(http.StatusOK, lead)
}

// GetLeadTimeline returns the lead's events, most recent first. An
// unknown lead simply has no events.
func (lc *LeadController) GetLeadTimeline(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid lead ID format")
		return
	}

	events := lc.Store.LeadTimeline(id)
	if events == nil {
		events = []models.TimelineEvent{}
	}

	c.JSON(http.StatusOK, gin.H{"timeline": events})
}

// GetPipeline returns the kanban board with per-column counts and
// values plus the total pipeline value.
func (lc *LeadController) GetPipeline(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"totalPipelineValue": lc.Store.TotalPipelineValue(),
		"columns":            services.PipelineBoard(lc.Store.Leads()),
	})
}
