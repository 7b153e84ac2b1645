package staffing

import (
	"context"
	"fmt"

	"github.com/salonops/salon-scheduler/internal/audit"
	"github.com/salonops/salon-scheduler/internal/domain"
	stdomain "github.com/salonops/salon-scheduler/internal/domain/staffing"
	"github.com/salonops/salon-scheduler/internal/httperr"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/schedule"
	"github.com/salonops/salon-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type ProposedAssignmentInput struct {
	WorkstationID uint
	StartTime     string
	EndTime       string
	Days          []string
	Notes         string
}

type AssignWorkstationsInput struct {
	StaffID         uint
	Assignments     []ProposedAssignmentInput
	IgnoreConflicts bool
}

// ======================================================
// USE CASE
// ======================================================

// AssignWorkstations replaces a staff member's entire workstation assignment
// set. Conflicts across the batch are collected and returned as soft
// warnings unless the caller overrides them; an empty proposed set simply
// clears all prior assignments.
type AssignWorkstations struct {
	repo  stdomain.Repository
	audit *audit.Dispatcher
}

func NewAssignWorkstations(
	repo stdomain.Repository,
	audit *audit.Dispatcher,
) *AssignWorkstations {
	return &AssignWorkstations{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AssignWorkstations) Execute(
	ctx context.Context,
	actor domain.Actor,
	in AssignWorkstationsInput,
) (*stdomain.SyncResult, error) {

	staff, err := uc.repo.GetEstablishmentStaff(ctx, actor.EstablishmentID, in.StaffID)
	if err != nil {
		return nil, httperr.ErrBusiness("staff_not_found")
	}

	proposed := make([]stdomain.ProposedAssignment, 0, len(in.Assignments))
	for i, a := range in.Assignments {
		ws, err := uc.repo.GetWorkstation(ctx, actor.EstablishmentID, a.WorkstationID)
		if err != nil {
			return nil, httperr.ErrBusiness("workstation_not_found")
		}
		if ws.Status == models.WorkstationDisabled {
			return nil, httperr.ErrBusiness("workstation_disabled")
		}

		iv, err := schedule.ParseInterval(a.StartTime, a.EndTime)
		if err != nil {
			return nil, httperr.ErrBusinessDetail(
				httperr.BusinessCode(err),
				fmt.Sprintf("assignment %d", i),
			)
		}

		if !validators.ValidWeekdays(a.Days) {
			return nil, httperr.ErrBusinessDetail(
				"invalid_days",
				fmt.Sprintf("assignment %d", i),
			)
		}

		proposed = append(proposed, stdomain.ProposedAssignment{
			WorkstationID: a.WorkstationID,
			StartTime:     a.StartTime,
			EndTime:       a.EndTime,
			Interval:      iv,
			Days:          a.Days,
			Notes:         a.Notes,
		})
	}

	result, err := uc.repo.ReplaceStaffAssignments(
		ctx,
		actor.EstablishmentID,
		staff.ID,
		proposed,
		in.IgnoreConflicts,
	)
	if err != nil {
		return nil, err
	}

	if len(result.Conflicts) == 0 || in.IgnoreConflicts {
		uc.audit.Dispatch(audit.Event{
			EstablishmentID: actor.EstablishmentID,
			UserID:          &actor.UserID,
			Action:          "workstation_assignments_replaced",
			Entity:          "user",
			EntityID:        &staff.ID,
			Metadata: map[string]any{
				"count":            len(result.Installed),
				"ignore_conflicts": in.IgnoreConflicts,
			},
		})
	}

	return result, nil
}
