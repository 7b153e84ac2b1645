package appointment

import (
	"context"

	"github.com/salonops/salon-scheduler/internal/audit"
	"github.com/salonops/salon-scheduler/internal/domain"
	apdomain "github.com/salonops/salon-scheduler/internal/domain/appointment"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
)

type AdjustPricingInput struct {
	Subtotal *float64
	Discount *float64
}

// AdjustAppointmentPricing is the only operation that recomputes billable
// totals after creation. The full edit never touches them.
type AdjustAppointmentPricing struct {
	repo  apdomain.Repository
	audit *audit.Dispatcher
}

func NewAdjustAppointmentPricing(
	repo apdomain.Repository,
	audit *audit.Dispatcher,
) *AdjustAppointmentPricing {
	return &AdjustAppointmentPricing{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AdjustAppointmentPricing) Execute(
	ctx context.Context,
	actor domain.Actor,
	appointmentID uint,
	in AdjustPricingInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, actor.EstablishmentID, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if apdomain.IsTerminal(apdomain.Status(ap.Status)) {
		return nil, httperr.ErrBusiness("appointment_not_editable")
	}

	if in.Subtotal != nil {
		if *in.Subtotal < 0 {
			return nil, httperr.ErrBusiness("invalid_subtotal")
		}
		ap.Subtotal = *in.Subtotal
	}

	if in.Discount != nil {
		if *in.Discount < 0 {
			return nil, httperr.ErrBusiness("invalid_discount")
		}
		ap.Discount = *in.Discount
	}

	if ap.Discount > ap.Subtotal {
		return nil, httperr.ErrBusiness("discount_exceeds_subtotal")
	}

	ap.Total = apdomain.ComputeTotal(ap.Subtotal, ap.Discount)

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: actor.EstablishmentID,
		UserID:          &actor.UserID,
		Action:          "appointment_pricing_adjusted",
		Entity:          "appointment",
		EntityID:        &ap.ID,
		Metadata: map[string]any{
			"subtotal": ap.Subtotal,
			"discount": ap.Discount,
			"total":    ap.Total,
		},
	})

	return ap, nil
}
