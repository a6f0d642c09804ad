package repository

import (
	"time"

	apperrors "guard-ops-backend/internal/errors"

	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentRepository handles database operations for assignments
type AssignmentRepository struct {
	db *gorm.DB
}

// NewAssignmentRepository creates a new assignment repository
func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create creates a new assignment
func (r *AssignmentRepository) Create(assignment *models.Assignment) error {
	return r.db.Create(assignment).Error
}

// GetByID retrieves an assignment by ID
func (r *AssignmentRepository) GetByID(id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetByGuardID retrieves all assignments of a guard with pagination
func (r *AssignmentRepository) GetByGuardID(guardID uuid.UUID, limit, offset int) ([]models.Assignment, int64, error) {
	var assignments []models.Assignment
	var total int64

	if err := r.db.Model(&models.Assignment{}).Where("guard_id = ?", guardID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("guard_id = ?", guardID).Order("start_date DESC").Limit(limit).Offset(offset).Find(&assignments).Error
	return assignments, total, err
}

// GetOpenByGuardID retrieves the guard's active, open-ended assignment, if any
func (r *AssignmentRepository) GetOpenByGuardID(guardID uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := r.db.First(&assignment,
		"guard_id = ? AND state = ? AND end_date IS NULL",
		guardID, models.AssignmentStateActive).Error
	if err != nil {
		return nil, err
	}
	return &assignment, nil
}

// GetBusyGuardIDs returns the ids of every guard currently holding an
// active, open-ended assignment.
func (r *AssignmentRepository) GetBusyGuardIDs() ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.Model(&models.Assignment{}).
		Where("state = ? AND end_date IS NULL", models.AssignmentStateActive).
		Distinct().
		Pluck("guard_id", &ids).Error
	return ids, err
}

// HasOpenAssignmentForPost reports whether the post is currently covered by
// an active, open-ended assignment.
func (r *AssignmentRepository) HasOpenAssignmentForPost(postID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.Model(&models.Assignment{}).
		Where("post_id = ? AND state = ? AND end_date IS NULL", postID, models.AssignmentStateActive).
		Count(&count).Error
	return count > 0, err
}

// Update updates an assignment
func (r *AssignmentRepository) Update(assignment *models.Assignment) error {
	return r.db.Save(assignment).Error
}

// BindPendingCoverage applies the full bind as one atomic unit: transition
// the pending coverage to assigned, insert the assignment row, clear the
// post's pending flag and bump the guard's workload counters. The state
// transition is optimistic: if a concurrent run already bound the record,
// nothing is written and ErrDuplicateBind is returned.
func (r *AssignmentRepository) BindPendingCoverage(pc *models.PendingCoverage, assignment *models.Assignment) error {
	now := time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PendingCoverage{}).
			Where("id = ? AND state = ?", pc.ID, models.CoverageStatePending).
			Updates(map[string]interface{}{
				"state":             models.CoverageStateAssigned,
				"assigned_guard_id": assignment.GuardID,
				"assigned_at":       now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return apperrors.ErrDuplicateBind
		}

		if err := tx.Create(assignment).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.OperationalPost{}).
			Where("id = ?", pc.PostID).
			Update("is_pending_coverage", false).Error; err != nil {
			return err
		}

		return tx.Model(&models.Guard{}).
			Where("id = ?", assignment.GuardID).
			Update("prior_assignments", gorm.Expr("prior_assignments + 1")).Error
	})
}

// Close ends an assignment with the given terminal state and end date
func (r *AssignmentRepository) Close(id uuid.UUID, state models.AssignmentState, endDate time.Time) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var assignment models.Assignment
		if err := tx.First(&assignment, "id = ?", id).Error; err != nil {
			return err
		}
		if !assignment.IsOpen() {
			return apperrors.ErrAssignmentNotActive
		}

		if err := tx.Model(&models.Assignment{}).
			Where("id = ?", id).
			Updates(map[string]interface{}{"state": state, "end_date": endDate}).Error; err != nil {
			return err
		}

		return tx.Model(&models.Guard{}).
			Where("id = ?", assignment.GuardID).
			Update("last_assignment_end", endDate).Error
	})
}
