package staffing

import (
	"context"

	"github.com/salonops/salon-scheduler/internal/models"
)

type Repository interface {
	// -------- Staff / membership --------
	GetEstablishmentStaff(
		ctx context.Context,
		establishmentID uint,
		userID uint,
	) (*models.User, error)

	ListEstablishmentStaff(
		ctx context.Context,
		establishmentID uint,
	) ([]models.User, error)

	GetMembership(
		ctx context.Context,
		establishmentID uint,
		userID uint,
	) (*models.StaffMembership, error)

	CreateMembership(
		ctx context.Context,
		m *models.StaffMembership,
	) error

	UpdateMembership(
		ctx context.Context,
		m *models.StaffMembership,
	) error

	// -------- Workstations --------
	GetWorkstation(
		ctx context.Context,
		establishmentID uint,
		workstationID uint,
	) (*models.Workstation, error)

	ListWorkstationAssignments(
		ctx context.Context,
		workstationID uint,
	) ([]models.WorkstationAssignment, error)

	// ReplaceStaffAssignments runs the conflict check and the wholesale
	// replacement of the staff member's assignment set inside one
	// transaction. When conflicts are found and ignoreConflicts is false,
	// nothing is persisted and the conflicts come back in the result.
	ReplaceStaffAssignments(
		ctx context.Context,
		establishmentID uint,
		userID uint,
		proposed []ProposedAssignment,
		ignoreConflicts bool,
	) (*SyncResult, error)
}
