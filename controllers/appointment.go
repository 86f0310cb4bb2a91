package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"solonest-backend/models"
	"solonest-backend/store"
	"solonest-backend/utils"
)

type AppointmentController struct {
	Store *store.Store
}

// CreateAppointmentInput defines the expected JSON structure for
// creating an appointment. Client is a display name; leadId/clientId
// are loose references nobody validates.
type CreateAppointmentInput struct {
	Client   string     `json:"client" binding:"required"`
	Date     string     `json:"date" binding:"required"`
	Time     string     `json:"time" binding:"required"`
	Type     string     `json:"type"`
	Status   string     `json:"status"`
	LeadID   *uuid.UUID `json:"leadId"`
	ClientID *uuid.UUID `json:"clientId"`
	Notes    string     `json:"notes"`
}

func (ac *AppointmentController) CreateAppointment(c *gin.Context) {
	var input CreateAppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Type == "" {
		input.Type = "Consultation"
	}
	if input.Status == "" {
		input.Status = "Pending"
	}

	appointment := models.Appointment{
		ID:        uuid.New(),
		Client:    input.Client,
		Date:      input.Date,
		Time:      input.Time,
		Status:    input.Status,
		Type:      input.Type,
		LeadID:    input.LeadID,
		ClientID:  input.ClientID,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	}

	ac.Store.AddAppointment(appointment)

	c.JSON(http.StatusCreated, appointment)
}

func (ac *AppointmentController) GetAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, ac.Store.Appointments())
}

func (ac *AppointmentController) UpdateAppointment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid appointment ID format")
		return
	}

	var patch store.AppointmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	appointment, found := ac.Store.UpdateAppointment(id, patch)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Appointment not found")
		return
	}

	c.JSON(http.StatusOK, appointment)
}
