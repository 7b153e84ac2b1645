package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	apdomain "github.com/salonops/salon-scheduler/internal/domain/appointment"
	"github.com/salonops/salon-scheduler/internal/httperr"
	ucAppointment "github.com/salonops/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC     *ucAppointment.CreateAppointment
	updateUC     *ucAppointment.UpdateAppointment
	transitionUC *ucAppointment.TransitionAppointment
	pricingUC    *ucAppointment.AdjustAppointmentPricing
	deleteUC     *ucAppointment.DeleteAppointment
	listDayUC    *ucAppointment.ListAppointmentsByDate
	listMonthUC  *ucAppointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	transitionUC *ucAppointment.TransitionAppointment,
	pricingUC *ucAppointment.AdjustAppointmentPricing,
	deleteUC *ucAppointment.DeleteAppointment,
	listDayUC *ucAppointment.ListAppointmentsByDate,
	listMonthUC *ucAppointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC:     createUC,
		updateUC:     updateUC,
		transitionUC: transitionUC,
		pricingUC:    pricingUC,
		deleteUC:     deleteUC,
		listDayUC:    listDayUC,
		listMonthUC:  listMonthUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	CustomerID     uint      `json:"customer_id" binding:"required"`
	ProfessionalID uint      `json:"professional_id" binding:"required"`
	ServiceID      uint      `json:"service_id" binding:"required"`
	ScheduledAt    time.Time `json:"scheduled_at" binding:"required"`
	LocationType   string    `json:"location_type"`
	CustomerNotes  string    `json:"customer_notes"`
}

type UpdateAppointmentRequest struct {
	CustomerID        uint      `json:"customer_id" binding:"required"`
	ProfessionalID    uint      `json:"professional_id" binding:"required"`
	ServiceID         uint      `json:"service_id" binding:"required"`
	ScheduledAt       time.Time `json:"scheduled_at" binding:"required"`
	LocationType      string    `json:"location_type"`
	CustomerNotes     string    `json:"customer_notes"`
	ProfessionalNotes string    `json:"professional_notes"`
}

type TransitionAppointmentRequest struct {
	Status string `json:"status" binding:"required"`
}

type AdjustPricingRequest struct {
	Subtotal *float64 `json:"subtotal"`
	Discount *float64 `json:"discount"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := actorFromContext(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	locationType := req.LocationType
	if locationType == "" {
		locationType = "in_store"
	}

	ap, err := h.createUC.Execute(c.Request.Context(), actor, ucAppointment.CreateAppointmentInput{
		CustomerID:     req.CustomerID,
		ProfessionalID: req.ProfessionalID,
		ServiceID:      req.ServiceID,
		ScheduledAt:    req.ScheduledAt,
		LocationType:   locationType,
		CustomerNotes:  req.CustomerNotes,
	})
	if err != nil {
		writeAppointmentError(c, err, "failed_to_create_appointment", "Failed to create appointment.")
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// ======================================================
// UPDATE (full edit)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	actor := actorFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), actor, id, ucAppointment.UpdateAppointmentInput{
		CustomerID:        req.CustomerID,
		ProfessionalID:    req.ProfessionalID,
		ServiceID:         req.ServiceID,
		ScheduledAt:       req.ScheduledAt,
		LocationType:      req.LocationType,
		CustomerNotes:     req.CustomerNotes,
		ProfessionalNotes: req.ProfessionalNotes,
	})
	if err != nil {
		writeAppointmentError(c, err, "failed_to_update_appointment", "Failed to update appointment.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	actor := actorFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req TransitionAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.transitionUC.Execute(
		c.Request.Context(),
		actor,
		id,
		apdomain.Status(req.Status),
	)
	if err != nil {
		writeAppointmentError(c, err, "failed_to_update_status", "Failed to update status.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// PRICING
// ======================================================

func (h *AppointmentHandler) AdjustPricing(c *gin.Context) {
	actor := actorFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req AdjustPricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.pricingUC.Execute(c.Request.Context(), actor, id, ucAppointment.AdjustPricingInput{
		Subtotal: req.Subtotal,
		Discount: req.Discount,
	})
	if err != nil {
		writeAppointmentError(c, err, "failed_to_adjust_pricing", "Failed to adjust pricing.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	actor := actorFromContext(c)

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), actor, id); err != nil {
		writeAppointmentError(c, err, "failed_to_delete_appointment", "Failed to delete appointment.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Appointment deleted."})
}

// ======================================================
// LISTS
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	actor := actorFromContext(c)

	date, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Query parameter date must be YYYY-MM-DD.")
		return
	}

	professionalID, ok := parseOptionalUintQuery(c, "professional_id")
	if !ok {
		return
	}

	list, err := h.listDayUC.Execute(c.Request.Context(), actor, professionalID, date)
	if err != nil {
		writeAppointmentError(c, err, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	c.JSON(http.StatusOK, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	actor := actorFromContext(c)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Query parameter year is required.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Query parameter month must be 1-12.")
		return
	}

	professionalID, ok := parseOptionalUintQuery(c, "professional_id")
	if !ok {
		return
	}

	list, err := h.listMonthUC.Execute(
		c.Request.Context(),
		actor,
		professionalID,
		year,
		month,
	)
	if err != nil {
		writeAppointmentError(c, err, "failed_to_list_appointments", "Failed to list appointments.")
		return
	}

	c.JSON(http.StatusOK, list)
}

// ======================================================
// HELPERS
// ======================================================

func parseOptionalUintQuery(c *gin.Context, name string) (uint, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_"+name, "Query parameter "+name+" must be a number.")
		return 0, false
	}
	return uint(v), true
}

func writeAppointmentError(c *gin.Context, err error, fallbackCode, fallbackMsg string) {
	code := httperr.BusinessCode(err)
	switch {
	case code == "":
		httperr.Internal(c, fallbackCode, fallbackMsg)
	case strings.HasSuffix(code, "_not_found"):
		httperr.NotFound(c, code, "Resource not found.")
	case code == "invalid_transition" ||
		code == "appointment_not_editable" ||
		code == "discount_exceeds_subtotal":
		httperr.Unprocessable(c, code, "The requested change is not allowed.")
	default:
		httperr.BadRequest(c, code, "Invalid request.")
	}
}
