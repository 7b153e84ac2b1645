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

type ListAppointmentsByMonth struct {
	repo apdomain.Repository
}

func NewListAppointmentsByMonth(
	repo apdomain.Repository,
) *ListAppointmentsByMonth {
	return &ListAppointmentsByMonth{
		repo: repo,
	}
}

func (uc *ListAppointmentsByMonth) Execute(
	ctx context.Context,
	actor domain.Actor,
	professionalID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	est, err := uc.repo.GetEstablishmentByID(ctx, actor.EstablishmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("establishment_not_found")
	}

	loc := timezone.Location(est.Timezone)

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, loc)
	end := start.AddDate(0, 1, 0)

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
