package appointment

import (
	"context"

	"github.com/salonops/salon-scheduler/internal/audit"
	"github.com/salonops/salon-scheduler/internal/domain"
	apdomain "github.com/salonops/salon-scheduler/internal/domain/appointment"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/timezone"
)

type TransitionAppointment struct {
	repo  apdomain.Repository
	audit *audit.Dispatcher
}

func NewTransitionAppointment(
	repo apdomain.Repository,
	audit *audit.Dispatcher,
) *TransitionAppointment {
	return &TransitionAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *TransitionAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
	newStatus apdomain.Status,
) (*models.Appointment, error) {

	est, err := uc.repo.GetEstablishmentByID(ctx, actor.EstablishmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("establishment_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, actor.EstablishmentID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(est.Timezone)
	if err := apdomain.Transition(ap, newStatus, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: actor.EstablishmentID,
		UserID:          &actor.UserID,
		Action:          "appointment_status_changed",
		Entity:          "appointment",
		EntityID:        &ap.ID,
		Metadata:        map[string]any{"status": string(newStatus)},
	})

	return ap, nil
}
