package staffing

import (
	"context"
	"time"

	"github.com/salonops/salon-scheduler/internal/audit"
	"github.com/salonops/salon-scheduler/internal/domain"
	stdomain "github.com/salonops/salon-scheduler/internal/domain/staffing"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
)

// ======================================================
// INPUTS
// ======================================================

type CreateMembershipInput struct {
	UserID                 uint
	EmploymentType         string
	CommissionModel        string
	CommissionPercentage   *float64
	BaseSalary             *float64
	BoothRentalFee         *float64
	AutoAcceptAppointments bool
	StartDate              time.Time
}

type UpdateMembershipInput struct {
	// Empty means unchanged; any other value than the stored one fails.
	EmploymentType         string
	CommissionModel        string
	CommissionPercentage   *float64
	BaseSalary             *float64
	BoothRentalFee         *float64
	AutoAcceptAppointments *bool
	Status                 string
}

// ======================================================
// USE CASES
// ======================================================

type CreateMembership struct {
	repo  stdomain.Repository
	audit *audit.Dispatcher
}

func NewCreateMembership(
	repo stdomain.Repository,
	audit *audit.Dispatcher,
) *CreateMembership {
	return &CreateMembership{repo: repo, audit: audit}
}

func (uc *CreateMembership) Execute(
	ctx context.Context,
	actor domain.Actor,
	in CreateMembershipInput,
) (*models.StaffMembership, error) {

	if !stdomain.ValidEmploymentType(stdomain.EmploymentType(in.EmploymentType)) {
		return nil, httperr.ErrBusiness("invalid_employment_type")
	}

	payout, err := stdomain.NormalizePayout(
		stdomain.CommissionModel(in.CommissionModel),
		stdomain.PayoutParams{
			CommissionPercentage: in.CommissionPercentage,
			BaseSalary:           in.BaseSalary,
			BoothRentalFee:       in.BoothRentalFee,
		},
	)
	if err != nil {
		return nil, err
	}

	if _, err := uc.repo.GetMembership(ctx, actor.EstablishmentID, in.UserID); err == nil {
		return nil, httperr.ErrBusiness("membership_already_exists")
	}

	startDate := in.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	m := &models.StaffMembership{
		EstablishmentID:        actor.EstablishmentID,
		UserID:                 in.UserID,
		EmploymentType:         in.EmploymentType,
		CommissionModel:        string(payout.Model),
		CommissionPercentage:   payout.CommissionPercentage,
		BaseSalary:             payout.BaseSalary,
		BoothRentalFee:         payout.BoothRentalFee,
		AutoAcceptAppointments: in.AutoAcceptAppointments,
		Status:                 models.MembershipActive,
		StartDate:              startDate,
	}

	if err := uc.repo.CreateMembership(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: actor.EstablishmentID,
		UserID:          &actor.UserID,
		Action:          "membership_created",
		Entity:          "staff_membership",
		EntityID:        &m.ID,
	})

	return m, nil
}

type UpdateMembership struct {
	repo  stdomain.Repository
	audit *audit.Dispatcher
}

func NewUpdateMembership(
	repo stdomain.Repository,
	audit *audit.Dispatcher,
) *UpdateMembership {
	return &UpdateMembership{repo: repo, audit: audit}
}

func (uc *UpdateMembership) Execute(
	ctx context.Context,
	actor domain.Actor,
	staffID uint,
	in UpdateMembershipInput,
) (*models.StaffMembership, error) {

	m, err := uc.repo.GetMembership(ctx, actor.EstablishmentID, staffID)
	if err != nil {
		return nil, httperr.ErrBusiness("membership_not_found")
	}

	if err := stdomain.AssertEmploymentUnchanged(
		stdomain.EmploymentType(m.EmploymentType),
		stdomain.EmploymentType(in.EmploymentType),
	); err != nil {
		return nil, err
	}

	model := m.CommissionModel
	if in.CommissionModel != "" {
		model = in.CommissionModel
	}

	// Re-normalize against the (possibly new) model so stale parameter
	// values never persist across a model change.
	params := stdomain.PayoutParams{
		CommissionPercentage: in.CommissionPercentage,
		BaseSalary:           in.BaseSalary,
		BoothRentalFee:       in.BoothRentalFee,
	}
	if params.CommissionPercentage == nil {
		params.CommissionPercentage = m.CommissionPercentage
	}
	if params.BaseSalary == nil {
		params.BaseSalary = m.BaseSalary
	}
	if params.BoothRentalFee == nil {
		params.BoothRentalFee = m.BoothRentalFee
	}

	payout, err := stdomain.NormalizePayout(stdomain.CommissionModel(model), params)
	if err != nil {
		return nil, err
	}

	m.CommissionModel = string(payout.Model)
	m.CommissionPercentage = payout.CommissionPercentage
	m.BaseSalary = payout.BaseSalary
	m.BoothRentalFee = payout.BoothRentalFee

	if in.AutoAcceptAppointments != nil {
		m.AutoAcceptAppointments = *in.AutoAcceptAppointments
	}

	if in.Status != "" {
		if in.Status != models.MembershipActive && in.Status != models.MembershipInactive {
			return nil, httperr.ErrBusiness("invalid_membership_status")
		}
		m.Status = in.Status
	}

	if err := uc.repo.UpdateMembership(ctx, m); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		EstablishmentID: actor.EstablishmentID,
		UserID:          &actor.UserID,
		Action:          "membership_updated",
		Entity:          "staff_membership",
		EntityID:        &m.ID,
	})

	return m, nil
}
