package models

import "time"

const (
	WorkstationAvailable   = "available"
	WorkstationOccupied    = "occupied"
	WorkstationMaintenance = "maintenance"
	WorkstationDisabled    = "disabled"
)

type Workstation struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	EstablishmentID uint `gorm:"index" json:"establishment_id"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Number      int    `json:"number"`
	Description string `gorm:"size:255" json:"description"`
	Status      string `gorm:"size:20;default:'available'" json:"status"`

	// Legacy single-assignment field, kept for older clients. The
	// authoritative schedule lives in WorkstationAssignment.
	AssignedUserID *uint `json:"assigned_user_id"`

	Assignments []WorkstationAssignment `gorm:"constraint:OnDelete:CASCADE;" json:"assignments,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidWorkstationStatus(s string) bool {
	switch s {
	case WorkstationAvailable, WorkstationOccupied, WorkstationMaintenance, WorkstationDisabled:
		return true
	}
	return false
}
