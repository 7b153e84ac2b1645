package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/salonops/salon-scheduler/internal/domain"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/middleware"
	"github.com/salonops/salon-scheduler/internal/models"
	ucStaffing "github.com/salonops/salon-scheduler/internal/usecase/staffing"
	"github.com/salonops/salon-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type StaffHandler struct {
	db             *gorm.DB
	assignUC       *ucStaffing.AssignWorkstations
	createMemberUC *ucStaffing.CreateMembership
	updateMemberUC *ucStaffing.UpdateMembership
}

func NewStaffHandler(
	db *gorm.DB,
	assignUC *ucStaffing.AssignWorkstations,
	createMemberUC *ucStaffing.CreateMembership,
	updateMemberUC *ucStaffing.UpdateMembership,
) *StaffHandler {
	return &StaffHandler{
		db:             db,
		assignUC:       assignUC,
		createMemberUC: createMemberUC,
		updateMemberUC: updateMemberUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateStaffRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`

	EmploymentType         string   `json:"employment_type" binding:"required"`
	CommissionModel        string   `json:"commission_model" binding:"required"`
	CommissionPercentage   *float64 `json:"commission_percentage"`
	BaseSalary             *float64 `json:"base_salary"`
	BoothRentalFee         *float64 `json:"booth_rental_fee"`
	AutoAcceptAppointments bool     `json:"auto_accept_appointments"`
	StartDate              string   `json:"start_date"`
}

type UpdateMembershipRequest struct {
	EmploymentType         string   `json:"employment_type"`
	CommissionModel        string   `json:"commission_model"`
	CommissionPercentage   *float64 `json:"commission_percentage"`
	BaseSalary             *float64 `json:"base_salary"`
	BoothRentalFee         *float64 `json:"booth_rental_fee"`
	AutoAcceptAppointments *bool    `json:"auto_accept_appointments"`
	Status                 string   `json:"status"`
}

type WorkstationAssignmentRequest struct {
	WorkstationID uint     `json:"workstation_id" binding:"required"`
	StartTime     string   `json:"start_time" binding:"required"`
	EndTime       string   `json:"end_time" binding:"required"`
	Days          []string `json:"days"`
	Notes         string   `json:"notes"`
}

type UpdateStaffRequest struct {
	WorkstationAssignments []WorkstationAssignmentRequest `json:"workstation_assignments"`
	IgnoreConflicts        bool                           `json:"ignore_conflicts"`
}

// ======================================================
// LIST
// ======================================================

func (h *StaffHandler) List(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var memberships []models.StaffMembership
	if err := h.db.
		Preload("User").
		Where("establishment_id = ?", establishmentID).
		Order("id ASC").
		Find(&memberships).Error; err != nil {

		httperr.Internal(c, "failed_to_list_staff", "Failed to list staff.")
		return
	}

	c.JSON(http.StatusOK, memberships)
}

// ======================================================
// CREATE (user + membership)
// ======================================================

func (h *StaffHandler) Create(c *gin.Context) {
	actor := actorFromContext(c)

	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "The e-mail domain does not look valid.")
		return
	}

	var count int64
	h.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "A user with this e-mail already exists.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Failed to hash password.")
		return
	}

	user := models.User{
		EstablishmentID: actor.EstablishmentID,
		Name:            req.Name,
		Email:           email,
		PasswordHash:    string(hashed),
		Phone:           req.Phone,
		Role:            "staff",
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "failed_to_create_user", "Failed to create staff user.")
		return
	}

	var startDate time.Time
	if req.StartDate != "" {
		startDate, err = time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_start_date", "Start date must be YYYY-MM-DD.")
			return
		}
	}

	m, err := h.createMemberUC.Execute(c.Request.Context(), actor, ucStaffing.CreateMembershipInput{
		UserID:                 user.ID,
		EmploymentType:         req.EmploymentType,
		CommissionModel:        req.CommissionModel,
		CommissionPercentage:   req.CommissionPercentage,
		BaseSalary:             req.BaseSalary,
		BoothRentalFee:         req.BoothRentalFee,
		AutoAcceptAppointments: req.AutoAcceptAppointments,
		StartDate:              startDate,
	})
	if err != nil {
		if code := httperr.BusinessCode(err); code != "" {
			httperr.Unprocessable(c, code, "Invalid compensation terms.")
			return
		}
		httperr.Internal(c, "failed_to_create_membership", "Failed to create membership.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":       user,
		"membership": m,
	})
}

// ======================================================
// MEMBERSHIP (compensation terms)
// ======================================================

func (h *StaffHandler) GetMembership(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	staffID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var m models.StaffMembership
	if err := h.db.
		Preload("User").
		Where("establishment_id = ? AND user_id = ?", establishmentID, staffID).
		First(&m).Error; err != nil {

		httperr.NotFound(c, "membership_not_found", "Membership not found.")
		return
	}

	c.JSON(http.StatusOK, m)
}

func (h *StaffHandler) UpdateMembership(c *gin.Context) {
	actor := actorFromContext(c)

	staffID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	m, err := h.updateMemberUC.Execute(c.Request.Context(), actor, staffID, ucStaffing.UpdateMembershipInput{
		EmploymentType:         req.EmploymentType,
		CommissionModel:        req.CommissionModel,
		CommissionPercentage:   req.CommissionPercentage,
		BaseSalary:             req.BaseSalary,
		BoothRentalFee:         req.BoothRentalFee,
		AutoAcceptAppointments: req.AutoAcceptAppointments,
		Status:                 req.Status,
	})
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "membership_not_found"):
			httperr.NotFound(c, "membership_not_found", "Membership not found.")
		case httperr.BusinessCode(err) != "":
			httperr.Unprocessable(c, httperr.BusinessCode(err), "Invalid membership change.")
		default:
			httperr.Internal(c, "failed_to_update_membership", "Failed to save membership.")
		}
		return
	}

	c.JSON(http.StatusOK, m)
}

// ======================================================
// WORKSTATION ASSIGNMENTS (wholesale replace)
// ======================================================

func (h *StaffHandler) Update(c *gin.Context) {
	actor := actorFromContext(c)

	staffID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	in := ucStaffing.AssignWorkstationsInput{
		StaffID:         staffID,
		IgnoreConflicts: req.IgnoreConflicts,
	}
	for _, a := range req.WorkstationAssignments {
		in.Assignments = append(in.Assignments, ucStaffing.ProposedAssignmentInput{
			WorkstationID: a.WorkstationID,
			StartTime:     a.StartTime,
			EndTime:       a.EndTime,
			Days:          a.Days,
			Notes:         a.Notes,
		})
	}

	result, err := h.assignUC.Execute(c.Request.Context(), actor, in)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "staff_not_found"):
			httperr.NotFound(c, "staff_not_found", "Staff member not found.")
		case httperr.IsBusiness(err, "workstation_not_found"):
			httperr.NotFound(c, "workstation_not_found", "Workstation not found.")
		case httperr.BusinessCode(err) != "":
			msg := "Invalid assignment."
			if detail := httperr.BusinessDetail(err); detail != "" {
				msg = "Invalid " + detail + "."
			}
			httperr.Unprocessable(c, httperr.BusinessCode(err), msg)
		default:
			httperr.Internal(c, "failed_to_assign_workstations", "Failed to save assignments.")
		}
		return
	}

	if len(result.Conflicts) > 0 && !req.IgnoreConflicts {
		warnings := make(map[string]string, len(result.Conflicts))
		for _, cf := range result.Conflicts {
			warnings[strconv.Itoa(cf.Index)] = cf.Message
		}

		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error_code": "workstation_conflicts",
			"message":    "One or more assignments overlap existing schedules.",
			"conflicts":  warnings,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"workstation_assignments": result.Installed,
	})
}

// ======================================================
// HELPERS
// ======================================================

func actorFromContext(c *gin.Context) domain.Actor {
	return domain.Actor{
		UserID:          c.MustGet(middleware.ContextUserID).(uint),
		EstablishmentID: c.MustGet(middleware.ContextEstablishmentID).(uint),
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Invalid id parameter.")
		return 0, false
	}
	return uint(id), true
}
