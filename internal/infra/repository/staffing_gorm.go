package repository

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	stdomain "github.com/salonops/salon-scheduler/internal/domain/staffing"
	"github.com/salonops/salon-scheduler/internal/models"
	"github.com/salonops/salon-scheduler/internal/schedule"
)

type StaffingGormRepository struct {
	db *gorm.DB
}

func NewStaffingGormRepository(db *gorm.DB) *StaffingGormRepository {
	return &StaffingGormRepository{db: db}
}

// --------------------------------------------------
// Staff / membership
// --------------------------------------------------

func (r *StaffingGormRepository) GetEstablishmentStaff(
	ctx context.Context,
	establishmentID uint,
	userID uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).
		Joins(
			"LEFT JOIN staff_memberships sm ON sm.user_id = users.id AND sm.establishment_id = ?",
			establishmentID,
		).
		Where(
			"users.id = ? AND (users.establishment_id = ? OR sm.id IS NOT NULL)",
			userID, establishmentID,
		).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *StaffingGormRepository) ListEstablishmentStaff(
	ctx context.Context,
	establishmentID uint,
) ([]models.User, error) {

	var users []models.User
	if err := r.db.WithContext(ctx).
		Distinct("users.*").
		Joins(
			"LEFT JOIN staff_memberships sm ON sm.user_id = users.id AND sm.establishment_id = ?",
			establishmentID,
		).
		Where("users.establishment_id = ? OR sm.id IS NOT NULL", establishmentID).
		Order("users.id ASC").
		Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *StaffingGormRepository) GetMembership(
	ctx context.Context,
	establishmentID uint,
	userID uint,
) (*models.StaffMembership, error) {

	var m models.StaffMembership
	if err := r.db.WithContext(ctx).
		Where("establishment_id = ? AND user_id = ?", establishmentID, userID).
		First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *StaffingGormRepository) CreateMembership(
	ctx context.Context,
	m *models.StaffMembership,
) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *StaffingGormRepository) UpdateMembership(
	ctx context.Context,
	m *models.StaffMembership,
) error {
	return r.db.WithContext(ctx).Save(m).Error
}

// --------------------------------------------------
// Workstations
// --------------------------------------------------

func (r *StaffingGormRepository) GetWorkstation(
	ctx context.Context,
	establishmentID uint,
	workstationID uint,
) (*models.Workstation, error) {

	var ws models.Workstation
	if err := r.db.WithContext(ctx).
		Where("id = ? AND establishment_id = ?", workstationID, establishmentID).
		First(&ws).Error; err != nil {
		return nil, err
	}
	return &ws, nil
}

func (r *StaffingGormRepository) ListWorkstationAssignments(
	ctx context.Context,
	workstationID uint,
) ([]models.WorkstationAssignment, error) {

	var assignments []models.WorkstationAssignment
	if err := r.db.WithContext(ctx).
		Preload("User").
		Where("workstation_id = ?", workstationID).
		Order("start_time ASC").
		Find(&assignments).Error; err != nil {
		return nil, err
	}
	return assignments, nil
}

// --------------------------------------------------
// Assignment sync
// --------------------------------------------------

// ReplaceStaffAssignments runs check-then-write inside one transaction.
// On postgres the parent workstation rows are locked FOR UPDATE before the
// assignments are read, so two concurrent syncs against the same workstation
// serialize instead of both seeing a conflict-free snapshot. Locking the
// assignment rows themselves would not do: an empty or stale set gives the
// second transaction nothing to block on.
func (r *StaffingGormRepository) ReplaceStaffAssignments(
	ctx context.Context,
	establishmentID uint,
	userID uint,
	proposed []stdomain.ProposedAssignment,
	ignoreConflicts bool,
) (*stdomain.SyncResult, error) {

	result := &stdomain.SyncResult{}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		if err := lockWorkstations(tx, proposed); err != nil {
			return err
		}

		for i, p := range proposed {
			existing, err := r.workstationAssignments(tx, p.WorkstationID)
			if err != nil {
				return err
			}

			candidate := schedule.Candidate{
				WorkstationID: p.WorkstationID,
				UserID:        userID,
				Interval:      p.Interval,
				Days:          p.Days,
			}

			res := schedule.CheckAssignment(candidate, existing)
			if res.Conflict {
				result.Conflicts = append(result.Conflicts, stdomain.ConflictWarning{
					Index:         i,
					WorkstationID: p.WorkstationID,
					WithUserName:  res.WithUserName,
					WithRange:     res.WithInterval.String(),
					Message: fmt.Sprintf(
						"overlaps with %s (%s)",
						res.WithUserName, res.WithInterval,
					),
				})
			}
		}

		if len(result.Conflicts) > 0 && !ignoreConflicts {
			// Soft fail: nothing written, conflicts reported.
			return nil
		}

		if err := tx.
			Where(
				"user_id = ? AND workstation_id IN (?)",
				userID,
				tx.Model(&models.Workstation{}).
					Select("id").
					Where("establishment_id = ?", establishmentID),
			).
			Delete(&models.WorkstationAssignment{}).Error; err != nil {
			return err
		}

		if len(proposed) == 0 {
			return nil
		}

		toCreate := make([]models.WorkstationAssignment, 0, len(proposed))
		for _, p := range proposed {
			toCreate = append(toCreate, models.WorkstationAssignment{
				WorkstationID: p.WorkstationID,
				UserID:        userID,
				StartTime:     p.StartTime,
				EndTime:       p.EndTime,
				Days:          models.JoinDays(p.Days),
				Notes:         p.Notes,
			})
		}

		if err := tx.Create(&toCreate).Error; err != nil {
			return err
		}

		for _, a := range toCreate {
			result.Installed = append(result.Installed, stdomain.AssignmentView{
				ID:            a.ID,
				WorkstationID: a.WorkstationID,
				StartTime:     a.StartTime,
				EndTime:       a.EndTime,
				Days:          a.DayList(),
				Notes:         a.Notes,
			})
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// lockWorkstations takes FOR UPDATE on the workstation rows touched by the
// batch, in ascending id order so overlapping batches cannot deadlock.
// sqlite (tests) has no FOR UPDATE and is single-writer anyway, so the lock
// and the serialization guarantee are postgres only.
func lockWorkstations(tx *gorm.DB, proposed []stdomain.ProposedAssignment) error {
	if tx.Dialector.Name() != "postgres" || len(proposed) == 0 {
		return nil
	}

	seen := make(map[uint]struct{}, len(proposed))
	ids := make([]uint, 0, len(proposed))
	for _, p := range proposed {
		if _, ok := seen[p.WorkstationID]; ok {
			continue
		}
		seen[p.WorkstationID] = struct{}{}
		ids = append(ids, p.WorkstationID)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var locked []uint
	return tx.Model(&models.Workstation{}).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id IN ?", ids).
		Order("id ASC").
		Pluck("id", &locked).Error
}

func (r *StaffingGormRepository) workstationAssignments(
	tx *gorm.DB,
	workstationID uint,
) ([]schedule.Existing, error) {

	var rows []models.WorkstationAssignment
	if err := tx.
		Preload("User").
		Where("workstation_id = ?", workstationID).
		Find(&rows).Error; err != nil {
		return nil, err
	}

	existing := make([]schedule.Existing, 0, len(rows))
	for _, row := range rows {
		iv, err := schedule.ParseInterval(row.StartTime, row.EndTime)
		if err != nil {
			// Stored rows are validated on write; skip anything
			// unreadable rather than failing the whole sync.
			continue
		}
		existing = append(existing, schedule.Existing{
			UserID:   row.UserID,
			UserName: row.User.Name,
			Interval: iv,
			Days:     row.DayList(),
		})
	}

	return existing, nil
}

// Compile-time check
var _ stdomain.Repository = (*StaffingGormRepository)(nil)
