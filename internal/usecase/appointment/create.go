package appointment

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/salonops/salon-scheduler/internal/audit"
	"github.com/salonops/salon-scheduler/internal/bookingcode"
	"github.com/salonops/salon-scheduler/internal/domain"
	apdomain "github.com/salonops/salon-scheduler/internal/domain/appointment"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/timezone"
)

// Bounded regenerate-and-retry on booking-code collisions; the unique
// constraint is the actual guarantee.
const bookingCodeAttempts = 5

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	CustomerID     uint
	ProfessionalID uint
	ServiceID      uint
	ScheduledAt    time.Time
	LocationType   string
	CustomerNotes  string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  apdomain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo apdomain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	actor domain.Actor,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	est, err := uc.repo.GetEstablishmentByID(ctx, actor.EstablishmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("establishment_not_found")
	}

	if !models.ValidLocationType(in.LocationType) {
		return nil, httperr.ErrBusiness("invalid_location_type")
	}

	now := timezone.NowIn(est.Timezone)
	if !in.ScheduledAt.After(now) {
		return nil, httperr.ErrBusiness("scheduled_in_past")
	}

	service, err := uc.repo.GetService(ctx, actor.EstablishmentID, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	if _, err := uc.repo.GetProfessional(ctx, actor.EstablishmentID, in.ProfessionalID); err != nil {
		return nil, httperr.ErrBusiness("professional_not_found")
	}

	if _, err := uc.repo.GetCustomer(ctx, actor.EstablishmentID, in.CustomerID); err != nil {
		return nil, httperr.ErrBusiness("customer_not_found")
	}

	subtotal := service.Price
	discount := 0.0

	ap := &models.Appointment{
		EstablishmentID: actor.EstablishmentID,
		CustomerID:      in.CustomerID,
		ProfessionalID:  in.ProfessionalID,
		ServiceID:       in.ServiceID,
		ScheduledAt:     in.ScheduledAt,
		ScheduledEndAt:  apdomain.ScheduleEnd(in.ScheduledAt, service.DurationMin),
		DurationMin:     service.DurationMin,
		LocationType:    in.LocationType,
		ServicePrice:    service.Price,
		Subtotal:        subtotal,
		Discount:        discount,
		Total:           apdomain.ComputeTotal(subtotal, discount),
		Status:          string(apdomain.InitialStatus()),
		CustomerNotes:   in.CustomerNotes,
	}

	for attempt := 0; attempt < bookingCodeAttempts; attempt++ {
		ap.BookingCode = bookingcode.New()

		err = uc.repo.CreateAppointment(ctx, ap)
		if err == nil {
			break
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, err
		}
	}
	if err != nil {
		return nil, httperr.ErrBusiness("booking_code_exhausted")
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: actor.EstablishmentID,
		UserID:          &actor.UserID,
		Action:          "appointment_created",
		Entity:          "appointment",
		EntityID:        &ap.ID,
	})

	return ap, nil
}
