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

type ContractController struct {
	Store *store.Store
}

// CreateContractInput defines the expected JSON structure for creating
// a contract.
type CreateContractInput struct {
	Title     string     `json:"title" binding:"required"`
	Client    string     `json:"client" binding:"required"`
	Value     string     `json:"value" binding:"required"`
	StartDate string     `json:"startDate" binding:"required"`
	EndDate   string     `json:"endDate" binding:"required"`
	Status    string     `json:"status"`
	LeadID    *uuid.UUID `json:"leadId"`
	ClientID  *uuid.UUID `json:"clientId"`
	Notes     string     `json:"notes"`
}

func (cc *ContractController) CreateContract(c *gin.Context) {
	var input CreateContractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Status == "" {
		input.Status = "Draft"
	}

	contract := models.Contract{
		ID:        uuid.New(),
		Title:     input.Title,
		Client:    input.Client,
		Value:     input.Value,
		Status:    input.Status,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		LeadID:    input.LeadID,
		ClientID:  input.ClientID,
		Notes:     input.Notes,
		CreatedAt: time.Now(),
	}

	cc.Store.AddContract(contract)

	c.JSON(http.StatusCreated, contract)
}

func (cc *ContractController) GetContracts(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Store.Contracts())
}

func (cc *ContractController) UpdateContract(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid contract ID format")
		return
	}

	var patch store.ContractPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	contract, found := cc.Store.UpdateContract(id, patch)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Contract not found")
		return
	}

	c.JSON(http.StatusOK, contract)
}
