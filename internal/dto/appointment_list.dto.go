package dto

import "time"

type AppointmentListDTO struct {
	ID               uint      `json:"id"`
	BookingCode      string    `json:"booking_code"`
	ScheduledAt      time.Time `json:"scheduled_at"`
	ScheduledEndAt   time.Time `json:"scheduled_end_at"`
	Status           string    `json:"status"`
	LocationType     string    `json:"location_type"`
	Total            float64   `json:"total"`
	CustomerName     string    `json:"customer_name"`
	ServiceName      string    `json:"service_name"`
	ProfessionalName string    `json:"professional_name"`
}
