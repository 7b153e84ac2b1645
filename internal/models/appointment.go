package models

import "time"

const (
	LocationInStore     = "in_store"
	LocationHomeService = "home_service"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BookingCode string `gorm:"size:8;uniqueIndex;not null" json:"booking_code"`

	EstablishmentID uint          `gorm:"index" json:"establishment_id"`
	Establishment   Establishment `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"establishment"`

	CustomerID uint     `json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	ProfessionalID uint `json:"professional_id"`
	Professional   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"professional"`

	ServiceID uint    `json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"service"`

	ScheduledAt    time.Time `json:"scheduled_at"`
	ScheduledEndAt time.Time `json:"scheduled_end_at"`

	// Snapshot of the service duration at creation time. Edits recompute
	// ScheduledEndAt from the current service but never rewrite history
	// already derived from this value.
	DurationMin int `json:"duration_min"`

	LocationType string `gorm:"size:20;default:'in_store'" json:"location_type"`

	ServicePrice float64 `json:"service_price"`
	Subtotal     float64 `json:"subtotal"`
	Discount     float64 `json:"discount"`
	Total        float64 `json:"total"`

	Status string `gorm:"size:30;default:'pending'" json:"status"`

	CustomerNotes     string `gorm:"size:255" json:"customer_notes"`
	ProfessionalNotes string `gorm:"size:255" json:"professional_notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidLocationType(lt string) bool {
	return lt == LocationInStore || lt == LocationHomeService
}
