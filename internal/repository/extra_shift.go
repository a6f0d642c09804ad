package repository

import (
	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ExtraShiftRepository handles database operations for the extra-shift ledger
type ExtraShiftRepository struct {
	db *gorm.DB
}

// NewExtraShiftRepository creates a new extra shift repository
func NewExtraShiftRepository(db *gorm.DB) *ExtraShiftRepository {
	return &ExtraShiftRepository{db: db}
}

// Create appends a ledger record
func (r *ExtraShiftRepository) Create(shift *models.ExtraShift) error {
	return r.db.Create(shift).Error
}

// GetByPostID retrieves the ledger of a post with pagination
func (r *ExtraShiftRepository) GetByPostID(postID uuid.UUID, limit, offset int) ([]models.ExtraShift, int64, error) {
	var shifts []models.ExtraShift
	var total int64

	if err := r.db.Model(&models.ExtraShift{}).Where("post_id = ?", postID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("post_id = ?", postID).Order("date DESC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}
