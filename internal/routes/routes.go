package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonops/salon-scheduler/internal/audit"
	"github.com/salonops/salon-scheduler/internal/config"
	"github.com/salonops/salon-scheduler/internal/handlers"
	infraRepo "github.com/salonops/salon-scheduler/internal/infra/repository"
	"github.com/salonops/salon-scheduler/internal/middleware"
	ucAppointment "github.com/salonops/salon-scheduler/internal/usecase/appointment"
	ucStaffing "github.com/salonops/salon-scheduler/internal/usecase/staffing"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	staffingRepo := infraRepo.NewStaffingGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	updateAppointmentUC := ucAppointment.NewUpdateAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	transitionAppointmentUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	adjustPricingUC := ucAppointment.NewAdjustAppointmentPricing(
		appointmentRepo,
		auditDispatcher,
	)

	deleteAppointmentUC := ucAppointment.NewDeleteAppointment(
		appointmentRepo,
		auditDispatcher,
	)

	listAppointmentsByDateUC := ucAppointment.NewListAppointmentsByDate(
		appointmentRepo,
	)

	listAppointmentsByMonthUC := ucAppointment.NewListAppointmentsByMonth(
		appointmentRepo,
	)

	// ======================================================
	// USE CASES — STAFFING
	// ======================================================
	assignWorkstationsUC := ucStaffing.NewAssignWorkstations(
		staffingRepo,
		auditDispatcher,
	)

	createMembershipUC := ucStaffing.NewCreateMembership(
		staffingRepo,
		auditDispatcher,
	)

	updateMembershipUC := ucStaffing.NewUpdateMembership(
		staffingRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	establishmentHandler := handlers.NewEstablishmentHandler(db)

	serviceHandler := handlers.NewServiceHandler(db)
	customerHandler := handlers.NewCustomerHandler(db)
	workstationHandler := handlers.NewWorkstationHandler(db)

	staffHandler := handlers.NewStaffHandler(
		db,
		assignWorkstationsUC,
		createMembershipUC,
		updateMembershipUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		updateAppointmentUC,
		transitionAppointmentUC,
		adjustPricingUC,
		deleteAppointmentUC,
		listAppointmentsByDateUC,
		listAppointmentsByMonthUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// PRIVATE API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/establishment", establishmentHandler.GetMine)
			secured.PATCH("/me/establishment", establishmentHandler.UpdateMine)

			secured.GET("/me/services", serviceHandler.List)
			secured.POST("/me/services", serviceHandler.Create)
			secured.PATCH("/me/services/:id", serviceHandler.Update)

			secured.GET("/me/customers", customerHandler.List)
			secured.POST("/me/customers", customerHandler.Create)

			secured.GET("/me/workstations", workstationHandler.List)
			secured.POST("/me/workstations", workstationHandler.Create)
			secured.PATCH("/me/workstations/:id", workstationHandler.Update)
			secured.DELETE("/me/workstations/:id", workstationHandler.Delete)
			secured.GET("/me/workstations/:id/assignments", workstationHandler.ListAssignments)

			// ------------------------------
			// STAFF
			// ------------------------------
			secured.GET("/me/staff", staffHandler.List)
			secured.POST("/me/staff", staffHandler.Create)
			secured.PUT("/me/staff/:id", staffHandler.Update)
			secured.GET("/me/staff/:id/membership", staffHandler.GetMembership)
			secured.PATCH("/me/staff/:id/membership", staffHandler.UpdateMembership)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id", appointmentHandler.Update)
			secured.PATCH("/me/appointments/:id/status", appointmentHandler.UpdateStatus)
			secured.PATCH("/me/appointments/:id/pricing", appointmentHandler.AdjustPricing)
			secured.DELETE("/me/appointments/:id", appointmentHandler.Delete)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
