package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"solonest-backend/config"
	"solonest-backend/controllers"
	"solonest-backend/store"
	"solonest-backend/utils"
)

func SetupRouter(cfg *config.Config, logger *zap.Logger, s *store.Store, sessions *utils.SessionStore) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger(logger))

	authController := &controllers.AuthController{Sessions: sessions}
	leadController := &controllers.LeadController{Store: s}
	clientController := &controllers.ClientController{Store: s}
	invoiceController := &controllers.InvoiceController{Store: s, Currency: cfg.Currency}
	appointmentController := &controllers.AppointmentController{Store: s}
	contractController := &controllers.ContractController{Store: s}
	dashboardController := &controllers.DashboardController{Store: s}
	calendarController := &controllers.CalendarController{Store: s}

	auth := r.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/logout", authController.Logout)

		auth.Use(authController.SessionRequired())
		auth.GET("/me", authController.Me)
	}

	api := r.Group("/api")
	api.Use(authController.SessionRequired())
	{
		// Lead routes
		leads := api.Group("/leads")
		{
			leads.POST("", leadController.CreateLead)
			leads.GET("", leadController.GetLeads)
			leads.GET("/:id", leadController.GetLead)
			leads.PUT("/:id", leadController.UpdateLead)
			leads.PUT("/:id/status", leadController.UpdateLeadStatus)
			leads.GET("/:id/timeline", leadController.GetLeadTimeline)
		}

		// Kanban board
		api.GET("/pipeline", leadController.GetPipeline)

		// Form dropdown choices
		api.GET("/options", controllers.GetFormOptions)

		// Client routes
		clients := api.Group("/clients")
		{
			clients.POST("", clientController.CreateClient)
			clients.GET("", clientController.GetClients)
			clients.GET("/:id", clientController.GetClient)
			clients.PUT("/:id", clientController.UpdateClient)
		}

		// Invoice routes
		invoices := api.Group("/invoices")
		{
			invoices.POST("", invoiceController.CreateInvoice)
			invoices.GET("", invoiceController.GetInvoices)
			invoices.GET("/:id", invoiceController.GetInvoice)
			invoices.PUT("/:id", invoiceController.UpdateInvoice)
			invoices.PUT("/:id/status", invoiceController.UpdateInvoiceStatus)
		}

		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", appointmentController.CreateAppointment)
			appointments.GET("", appointmentController.GetAppointments)
			appointments.PUT("/:id", appointmentController.UpdateAppointment)
		}

		// Contract routes
		contracts := api.Group("/contracts")
		{
			contracts.POST("", contractController.CreateContract)
			contracts.GET("", contractController.GetContracts)
			contracts.PUT("/:id", contractController.UpdateContract)
		}

		// Dashboard routes
		api.GET("/dashboard", dashboardController.GetDashboardOverview)

		// Calendar routes
		api.GET("/calendar", calendarController.GetCalendar)
	}

	return r
}
