package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/middleware"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/timezone"
)

type EstablishmentHandler struct {
	db *gorm.DB
}

func NewEstablishmentHandler(db *gorm.DB) *EstablishmentHandler {
	return &EstablishmentHandler{db: db}
}

type UpdateEstablishmentRequest struct {
	Name     *string `json:"name"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
	Timezone *string `json:"timezone"`
}

func (h *EstablishmentHandler) GetMine(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var est models.Establishment
	if err := h.db.First(&est, establishmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "establishment_not_found", "Establishment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_establishment", "Failed to load establishment.")
		return
	}

	c.JSON(http.StatusOK, est)
}

func (h *EstablishmentHandler) UpdateMine(c *gin.Context) {
	establishmentID := c.MustGet(middleware.ContextEstablishmentID).(uint)

	var est models.Establishment
	if err := h.db.First(&est, establishmentID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.NotFound(c, "establishment_not_found", "Establishment not found.")
			return
		}
		httperr.Internal(c, "failed_to_get_establishment", "Failed to load establishment.")
		return
	}

	var req UpdateEstablishmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.Name != nil {
		est.Name = *req.Name
	}
	if req.Phone != nil {
		est.Phone = *req.Phone
	}
	if req.Address != nil {
		est.Address = *req.Address
	}
	if req.Timezone != nil {
		if !timezone.IsValid(*req.Timezone) {
			httperr.BadRequest(c, "invalid_timezone", "Unknown timezone.")
			return
		}
		est.Timezone = *req.Timezone
	}

	if err := h.db.Save(&est).Error; err != nil {
		httperr.Internal(c, "failed_to_update_establishment", "Failed to save establishment.")
		return
	}

	c.JSON(http.StatusOK, est)
}
