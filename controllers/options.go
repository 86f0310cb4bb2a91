package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"solonest-backend/models"
)

// GetFormOptions returns the fixed choice lists the add/edit forms
// render as dropdowns: lead sources, pipeline stages and invoice
// statuses.
func GetFormOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"leadSources":     models.LeadSources,
		"pipelineStages":  models.PipelineStages,
		"invoiceStatuses": models.InvoiceStatuses,
	})
}
