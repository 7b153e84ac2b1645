package appointment

import (
	"time"

	"github.com/salonops/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Transition moves an appointment to a new status after validating the
// change, stamping cancellation/completion times where they apply.
func Transition(ap *models.Appointment, to Status, now time.Time) error {
	if err := CanTransition(Status(ap.Status), to); err != nil {
		return err
	}

	ap.Status = string(to)

	switch to {
	case StatusCompleted:
		ap.CompletedAt = &now
	case StatusCancelledByCustomer, StatusCancelledByEstablishment:
		ap.CancelledAt = &now
	}

	return nil
}

// ScheduleEnd derives the end instant from the duration snapshot.
func ScheduleEnd(start time.Time, durationMin int) time.Time {
	return start.Add(time.Duration(durationMin) * time.Minute)
}

// ComputeTotal applies the creation-time pricing rule. It is called once at
// creation and again only through the dedicated pricing operation.
func ComputeTotal(subtotal, discount float64) float64 {
	return subtotal - discount
}
