package appointment

import (
	"context"

	"github.com/salonops/salon-scheduler/internal/audit"
	"github.com/salonops/salon-scheduler/internal/domain"
	apdomain "github.com/salonops/salon-scheduler/internal/domain/appointment"
	"github.com/salonops/salon-scheduler/internal/httperr"
)

// DeleteAppointment is a hard delete; there is no soft-delete trail beyond
// the audit log entry.
type DeleteAppointment struct {
	repo  apdomain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo apdomain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, actor.EstablishmentID, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: actor.EstablishmentID,
		UserID:          &actor.UserID,
		Action:          "appointment_deleted",
		Entity:          "appointment",
		EntityID:        &ap.ID,
		Metadata:        map[string]any{"booking_code": ap.BookingCode},
	})

	return nil
}
