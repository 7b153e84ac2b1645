package models

import "time"

const (
	EmploymentEmployee   = "employee"
	EmploymentFreelancer = "freelancer"
)

const (
	MembershipActive   = "active"
	MembershipInactive = "inactive"
)

// StaffMembership binds a staff user to an establishment and carries the
// compensation terms for that relationship. EmploymentType never changes
// after the membership is created.
type StaffMembership struct {
	ID              uint `gorm:"primaryKey" json:"id"`
	EstablishmentID uint `gorm:"index:idx_membership_user,unique" json:"establishment_id"`
	UserID          uint `gorm:"index:idx_membership_user,unique" json:"user_id"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	EmploymentType  string `gorm:"size:20;not null" json:"employment_type"`
	CommissionModel string `gorm:"size:30;not null" json:"commission_model"`

	// Only the fields active for CommissionModel carry meaning; the rest
	// stay null. See staffing.NormalizePayout.
	CommissionPercentage *float64 `json:"commission_percentage"`
	BaseSalary           *float64 `json:"base_salary"`
	BoothRentalFee       *float64 `json:"booth_rental_fee"`

	AutoAcceptAppointments bool      `gorm:"default:false" json:"auto_accept_appointments"`
	Status                 string    `gorm:"size:20;default:'active'" json:"status"`
	StartDate              time.Time `json:"start_date"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
