package appointment

import (
	"context"
	"time"

	"github.com/salonops/salon-scheduler/internal/domain"
	apdomain "github.com/salonops/salon-scheduler/internal/domain/appointment"
	"github.com/salonops/salon-scheduler/internal/dto"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo apdomain.Repository
}

func NewListAppointmentsByDate(
	repo apdomain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

// Execute lists the establishment's appointments for one calendar day in the
// establishment's timezone. professionalID zero means all professionals.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	actor domain.Actor,
	professionalID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	est, err := uc.repo.GetEstablishmentByID(ctx, actor.EstablishmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("establishment_not_found")
	}

	loc := timezone.Location(est.Timezone)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		actor.EstablishmentID,
		professionalID,
		start,
		end,
	)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:               ap.ID,
			BookingCode:      ap.BookingCode,
			ScheduledAt:      ap.ScheduledAt,
			ScheduledEndAt:   ap.ScheduledEndAt,
			Status:           ap.Status,
			LocationType:     ap.LocationType,
			Total:            ap.Total,
			CustomerName:     ap.Customer.Name,
			ServiceName:      ap.Service.Name,
			ProfessionalName: ap.Professional.Name,
		})
	}

	return out, nil
}
