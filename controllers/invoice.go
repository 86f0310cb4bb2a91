// controllers/invoice.go
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

type InvoiceController struct {
	Store    *store.Store
	Currency string
}

// InvoiceItemInput defines the structure for an invoice item. The
// amount is never taken from the client; it is recomputed here as
// quantity times rate, exactly what the form shows while editing.
type InvoiceItemInput struct {
	Description string  `json:"description" binding:"required"`
	Quantity    int     `json:"quantity" binding:"omitempty,min=1"`
	Rate        float64 `json:"rate" binding:"required,gt=0"`
}

// CreateInvoiceInput defines the expected JSON structure for creating an invoice
type CreateInvoiceInput struct {
	ClientID      uuid.UUID          `json:"clientId" binding:"required"`
	InvoiceNumber string             `json:"invoiceNumber"`
	DueDate       string             `json:"dueDate" binding:"required"`
	Status        string             `json:"status" binding:"omitempty,oneof=Draft Sent Paid Overdue"`
	Items         []InvoiceItemInput `json:"items" binding:"required,min=1,dive"`
	Notes         string             `json:"notes"`
}

type UpdateInvoiceStatusInput struct {
	Status string `json:"status" binding:"required,oneof=Draft Sent Paid Overdue"`
}

// invoiceView adds the resolved client name to a listing row. A
// dangling client reference renders as "Unknown Client".
type invoiceView struct {
	models.Invoice
	ClientName string `json:"clientName"`
}

// CreateInvoice builds the invoice from its items. Each item's amount
// is quantity x rate and the invoice amount is the formatted item sum,
// frozen from here on: there is no item-edit path after creation.
func (ic *InvoiceController) CreateInvoice(c *gin.Context) {
	var input CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var items []models.InvoiceItem
	total := 0.0
	for _, item := range input.Items {
		quantity := item.Quantity
		if quantity == 0 {
			quantity = 1
		}
		amount := models.ItemAmount(quantity, item.Rate)
		total += amount

		items = append(items, models.InvoiceItem{
			ID:          models.NextItemID(items),
			Description: item.Description,
			Quantity:    quantity,
			Rate:        item.Rate,
			Amount:      amount,
		})
	}

	status := input.Status
	if status == "" {
		status = models.InvoiceStatusDraft
	}

	invoiceNumber := input.InvoiceNumber
	if invoiceNumber == "" {
		invoiceNumber = "INV-" + time.Now().Format("2006") + "-" + utils.GenerateRandomString(4)
	}

	invoice := models.Invoice{
		ID:            uuid.New(),
		ClientID:      input.ClientID,
		InvoiceNumber: invoiceNumber,
		Amount:        utils.FormatMoney(ic.Currency, total),
		Status:        status,
		DueDate:       input.DueDate,
		Items:         items,
		Notes:         input.Notes,
		CreatedAt:     time.Now(),
	}

	ic.Store.AddInvoice(invoice)

	c.JSON(http.StatusCreated, invoice)
}

// GetInvoices retrieves all invoices with client names resolved.
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	invoices := ic.Store.Invoices()
	views := make([]invoiceView, 0, len(invoices))
	for _, invoice := range invoices {
		views = append(views, invoiceView{
			Invoice:    invoice,
			ClientName: ic.Store.ClientName(invoice.ClientID),
		})
	}

	invoiced, paid := ic.Store.InvoiceTotals()
	c.JSON(http.StatusOK, gin.H{
		"invoices":      views,
		"totalInvoiced": invoiced,
		"totalPaid":     paid,
	})
}

func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	invoice, found := ic.Store.GetInvoice(id)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, invoiceView{
		Invoice:    invoice,
		ClientName: ic.Store.ClientName(invoice.ClientID),
	})
}

// UpdateInvoice patches status and notes, the two fields the calendar
// edit dialog exposes. Amount and items stay frozen after creation.
func (ic *InvoiceController) UpdateInvoice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var patch store.InvoicePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice, found := ic.Store.UpdateInvoice(id, patch)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, invoice)
}

// UpdateInvoiceStatus sets the invoice status by hand. This is how an
// invoice becomes Overdue; nothing derives it from the due date.
func (ic *InvoiceController) UpdateInvoiceStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid invoice ID format")
		return
	}

	var input UpdateInvoiceStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	invoice, found := ic.Store.UpdateInvoiceStatus(id, input.Status)
	if !found {
		utils.RespondWithError(c, http.StatusNotFound, "Invoice not found")
		return
	}

	c.JSON(http.StatusOK, invoice)
}
