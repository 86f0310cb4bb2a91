package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"solonest-backend/services"
	"solonest-backend/store"
)

type CalendarController struct {
	Store *store.Store
}

// GetCalendar returns the flat activity list. Each entity kind can be
// toggled off with a query flag, e.g. ?leads=false; everything is
// visible by default.
func (cc *CalendarController) GetCalendar(c *gin.Context) {
	filters := services.ActivityFilters{
		Appointments: queryFlag(c, "appointments"),
		Contracts:    queryFlag(c, "contracts"),
		Invoices:     queryFlag(c, "invoices"),
		Leads:        queryFlag(c, "leads"),
	}

	activities := services.CalendarActivities(
		cc.Store.Appointments(),
		cc.Store.Contracts(),
		cc.Store.Invoices(),
		cc.Store.Leads(),
		filters,
	)
	if activities == nil {
		activities = []services.Activity{}
	}

	c.JSON(http.StatusOK, gin.H{"activities": activities})
}

func queryFlag(c *gin.Context, name string) bool {
	value, err := strconv.ParseBool(c.DefaultQuery(name, "true"))
	if err != nil {
		return true
	}
	return value
}
