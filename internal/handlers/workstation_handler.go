package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/middleware"
	"github.com/salonops/salon-scheduler/internal/models"
)

type WorkstationHandler struct {
	db *gorm.DB
}

func NewWorkstationHandler(db *gorm.DB) *WorkstationHandler {
	return &WorkstationHandler{db: db}
}

// --------- Requests ---------

type CreateWorkstationRequest struct {
	Name        string `json:"name" binding:"required"`
	Number      int    `json:"number"`
	Description string `json:"description"`
}

type UpdateWorkstationRequest struct {
	Name           *string `json:"name,omitempty"`
	Number         *int    `json:"number,omitempty"`
	Description    *string `json:"description,omitempty"`
	Status         *string `json:"status,omitempty"`
	AssignedUserID *uint   `json:"assigned_user_id,omitempty"`
}

// --------- Handlers ---------

func (h *WorkstationHandler) List(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var stations []models.Workstation
	if err := h.db.
		Where("establishment_id = ?", establishmentID).
		Order("number ASC, id ASC").
		Find(&stations).Error; err != nil {

		httperr.Internal(c, "failed_to_list_workstations", "Failed to list workstations.")
		return
	}

	c.JSON(http.StatusOK, stations)
}

func (h *WorkstationHandler) Create(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var req CreateWorkstationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	ws := models.Workstation{
		EstablishmentID: establishmentID,
		Name:            req.Name,
		Number:          req.Number,
		Description:     req.Description,
		Status:          models.WorkstationAvailable,
	}

	if err := h.db.Create(&ws).Error; err != nil {
		httperr.Internal(c, "failed_to_create_workstation", "Failed to create workstation.")
		return
	}

	c.JSON(http.StatusCreated, ws)
}

func (h *WorkstationHandler) Update(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)
	id := c.Param("id")

	var ws models.Workstation
	if err := h.db.
		Where("id = ? AND establishment_id = ?", id, establishmentID).
		First(&ws).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "workstation_not_found", "Workstation not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_workstation", "Failed to load workstation.")
		return
	}

	var req UpdateWorkstationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		ws.Name = *req.Name
	}
	if req.Number != nil {
		ws.Number = *req.Number
	}
	if req.Description != nil {
		ws.Description = *req.Description
	}
	if req.Status != nil {
		if !models.ValidWorkstationStatus(*req.Status) {
			httperr.BadRequest(c, "invalid_status", "Unknown workstation status.")
			return
		}
		ws.Status = *req.Status
	}
	if req.AssignedUserID != nil {
		ws.AssignedUserID = req.AssignedUserID
	}

	if err := h.db.Save(&ws).Error; err != nil {
		httperr.Internal(c, "failed_to_update_workstation", "Failed to save workstation.")
		return
	}

	c.JSON(http.StatusOK, ws)
}

func (h *WorkstationHandler) Delete(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)
	id := c.Param("id")

	var ws models.Workstation
	if err := h.db.
		Where("id = ? AND establishment_id = ?", id, establishmentID).
		First(&ws).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "workstation_not_found", "Workstation not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_workstation", "Failed to load workstation.")
		return
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("workstation_id = ?", ws.ID).
			Delete(&models.WorkstationAssignment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ws).Error
	}); err != nil {
		httperr.Internal(c, "failed_to_delete_workstation", "Failed to delete workstation.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *WorkstationHandler) ListAssignments(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)
	id := c.Param("id")

	var ws models.Workstation
	if err := h.db.
		Where("id = ? AND establishment_id = ?", id, establishmentID).
		First(&ws).Error; err != nil {

		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "workstation_not_found", "Workstation not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_workstation", "Failed to load workstation.")
		return
	}

	var assignments []models.WorkstationAssignment
	if err := h.db.
		Preload("User").
		Where("workstation_id = ?", ws.ID).
		Order("start_time ASC").
		Find(&assignments).Error; err != nil {

		httperr.Internal(c, "failed_to_list_assignments", "Failed to list assignments.")
		return
	}

	c.JSON(http.StatusOK, assignments)
}
