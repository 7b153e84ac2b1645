package appointment

import (
	"context"
	"time"

	"github.com/salonops/salon-scheduler/internal/audit"
	"github.com/salonops/salon-scheduler/internal/domain"
	apdomain "github.com/salonops/salon-scheduler/internal/domain/appointment"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type UpdateAppointmentInput struct {
	CustomerID        uint
	ProfessionalID    uint
	ServiceID         uint
	ScheduledAt       time.Time
	LocationType      string
	CustomerNotes     string
	ProfessionalNotes string
}

// ======================================================
// USE CASE
// ======================================================

// UpdateAppointment is the full edit: reschedule, reassign professional or
// service. The end time is recomputed from the (possibly new) service's
// duration. Subtotal/discount/total are left untouched; pricing changes go
// through AdjustAppointmentPricing.
type UpdateAppointment struct {
	repo  apdomain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo apdomain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	est, err := uc.repo.GetEstablishmentByID(ctx, actor.EstablishmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("establishment_not_found")
	}

	ap, err := uc.repo.GetAppointment(ctx, actor.EstablishmentID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if apdomain.IsTerminal(apdomain.Status(ap.Status)) {
		return nil, httperr.ErrBusiness("appointment_not_editable")
	}

	if !models.ValidLocationType(in.LocationType) {
		return nil, httperr.ErrBusiness("invalid_location_type")
	}

	now := timezone.NowIn(est.Timezone)
	if !in.ScheduledAt.After(now) {
		return nil, httperr.ErrBusiness("scheduled_in_past")
	}

	if _, err := uc.repo.GetProfessional(ctx, actor.EstablishmentID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	if _, err := uc.repo.GetCustomer(ctx, actor.EstablishmentID, in.CustomerID); err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	if in.ServiceID != ap.ServiceID {
		service, err := uc.repo.GetService(ctx, actor.EstablishmentID, in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		ap.ServiceID = service.ID
		ap.DurationMin = service.DurationMin
	}

	ap.CustomerID = in.CustomerID
	ap.ProfessionalID = in.ProfessionalID
	ap.ScheduledAt = in.ScheduledAt
	ap.ScheduledEndAt = apdomain.ScheduleEnd(in.ScheduledAt, ap.DurationMin)
	ap.LocationType = in.LocationType
	ap.CustomerNotes = in.CustomerNotes
	ap.ProfessionalNotes = in.ProfessionalNotes

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: actor.EstablishmentID,
		UserID:          &actor.UserID,
		Action:          "appointment_updated",
		Entity:          "appointment",
		EntityID:        &ap.ID,
	})

	return ap, nil
}
