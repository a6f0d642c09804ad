package repository

import (
	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GuardRepository handles database operations for guards
type GuardRepository struct {
	db *gorm.DB
}

// NewGuardRepository creates a new guard repository
func NewGuardRepository(db *gorm.DB) *GuardRepository {
	return &GuardRepository{db: db}
}

// Create creates a new guard
func (r *GuardRepository) Create(guard *models.Guard) error {
	return r.db.Create(guard).Error
}

// GetByID retrieves a guard by ID
func (r *GuardRepository) GetByID(id uuid.UUID) (*models.Guard, error) {
	var guard models.Guard
	err := r.db.First(&guard, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &guard, nil
}

// GetAll retrieves all guards with pagination
func (r *GuardRepository) GetAll(limit, offset int) ([]models.Guard, int64, error) {
	var guards []models.Guard
	var total int64

	if err := r.db.Model(&models.Guard{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("last_name ASC, first_name ASC").Limit(limit).Offset(offset).Find(&guards).Error
	return guards, total, err
}

// GetActiveWithCoordinates retrieves active guards that can be scored for
// distance: both coordinates must be known.
func (r *GuardRepository) GetActiveWithCoordinates() ([]models.Guard, error) {
	var guards []models.Guard
	err := r.db.
		Where("active = ? AND latitude IS NOT NULL AND longitude IS NOT NULL", true).
		Order("id ASC").
		Find(&guards).Error
	return guards, err
}

// Search retrieves guards matching a name fragment
func (r *GuardRepository) Search(query string, limit, offset int) ([]models.Guard, int64, error) {
	var guards []models.Guard
	var total int64

	pattern := "%" + query + "%"
	q := r.db.Model(&models.Guard{}).Where("first_name ILIKE ? OR last_name ILIKE ?", pattern, pattern)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("last_name ASC").Limit(limit).Offset(offset).Find(&guards).Error
	return guards, total, err
}

// Update updates a guard
func (r *GuardRepository) Update(guard *models.Guard) error {
	return r.db.Save(guard).Error
}

// Delete deletes a guard
func (r *GuardRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Guard{}, "id = ?", id).Error
}
