package repository

import (
	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PendingCoverageRepository handles database operations for pending coverage
type PendingCoverageRepository struct {
	db *gorm.DB
}

// NewPendingCoverageRepository creates a new pending coverage repository
func NewPendingCoverageRepository(db *gorm.DB) *PendingCoverageRepository {
	return &PendingCoverageRepository{db: db}
}

// Create creates a new pending coverage record
func (r *PendingCoverageRepository) Create(pc *models.PendingCoverage) error {
	return r.db.Create(pc).Error
}

// GetByID retrieves a pending coverage record by ID
func (r *PendingCoverageRepository) GetByID(id uuid.UUID) (*models.PendingCoverage, error) {
	var pc models.PendingCoverage
	err := r.db.First(&pc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

// GetOpenByPostID retrieves the post's pending-state record, if any. The
// detector keeps at most one open record per post.
func (r *PendingCoverageRepository) GetOpenByPostID(postID uuid.UUID) (*models.PendingCoverage, error) {
	var pc models.PendingCoverage
	err := r.db.First(&pc, "post_id = ? AND state = ?", postID, models.CoverageStatePending).Error
	if err != nil {
		return nil, err
	}
	return &pc, nil
}

// GetAllPending retrieves every pending record ordered by detection time,
// earliest first, so urgent gaps are matched before the candidate pool is
// exhausted.
func (r *PendingCoverageRepository) GetAllPending() ([]models.PendingCoverage, error) {
	var pcs []models.PendingCoverage
	err := r.db.
		Where("state = ?", models.CoverageStatePending).
		Order("detected_at ASC, id ASC").
		Find(&pcs).Error
	return pcs, err
}

// GetByState retrieves pending coverage records by state with pagination
func (r *PendingCoverageRepository) GetByState(state models.CoverageState, limit, offset int) ([]models.PendingCoverage, int64, error) {
	var pcs []models.PendingCoverage
	var total int64

	if err := r.db.Model(&models.PendingCoverage{}).Where("state = ?", state).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("state = ?", state).Order("detected_at ASC").Limit(limit).Offset(offset).Find(&pcs).Error
	return pcs, total, err
}

// Update updates a pending coverage record
func (r *PendingCoverageRepository) Update(pc *models.PendingCoverage) error {
	return r.db.Save(pc).Error
}

// Transition moves a record to a new state only if it still holds the
// expected one. Returns gorm.ErrRecordNotFound semantics via rows affected.
func (r *PendingCoverageRepository) Transition(id uuid.UUID, from, to models.CoverageState) (bool, error) {
	res := r.db.Model(&models.PendingCoverage{}).
		Where("id = ? AND state = ?", id, from).
		Update("state", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
