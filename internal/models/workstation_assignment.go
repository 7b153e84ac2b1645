package models

import (
	"strings"
	"time"
)

// WorkstationAssignment reserves a workstation for a staff member during a
// recurring time-of-day window. Times are "HH:MM" strings, end exclusive.
type WorkstationAssignment struct {
	ID            uint `gorm:"primaryKey" json:"id"`
	WorkstationID uint `gorm:"index" json:"workstation_id"`
	UserID        uint `gorm:"index" json:"user_id"`

	User User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	StartTime string `gorm:"size:5;not null" json:"start_time"`
	EndTime   string `gorm:"size:5;not null" json:"end_time"`

	// Comma-joined weekday numbers (0=Sunday..6=Saturday). Empty means
	// every day.
	Days string `gorm:"size:20" json:"-"`

	Notes string `gorm:"size:255" json:"notes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *WorkstationAssignment) DayList() []string {
	if a.Days == "" {
		return nil
	}
	return strings.Split(a.Days, ",")
}

func JoinDays(days []string) string {
	return strings.Join(days, ",")
}
