package repository

import (
	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InstallationRepository handles database operations for installations
type InstallationRepository struct {
	db *gorm.DB
}

// NewInstallationRepository creates a new installation repository
func NewInstallationRepository(db *gorm.DB) *InstallationRepository {
	return &InstallationRepository{db: db}
}

// Create creates a new installation
func (r *InstallationRepository) Create(installation *models.Installation) error {
	return r.db.Create(installation).Error
}

// GetByID retrieves an installation by ID
func (r *InstallationRepository) GetByID(id uuid.UUID) (*models.Installation, error) {
	var installation models.Installation
	err := r.db.First(&installation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &installation, nil
}

// GetByClientID retrieves all installations for a client
func (r *InstallationRepository) GetByClientID(clientID uuid.UUID, limit, offset int) ([]models.Installation, int64, error) {
	var installations []models.Installation
	var total int64

	if err := r.db.Model(&models.Installation{}).Where("client_id = ?", clientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("client_id = ?", clientID).Order("name ASC").Limit(limit).Offset(offset).Find(&installations).Error
	return installations, total, err
}

// GetAll retrieves all installations with pagination
func (r *InstallationRepository) GetAll(limit, offset int) ([]models.Installation, int64, error) {
	var installations []models.Installation
	var total int64

	if err := r.db.Model(&models.Installation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&installations).Error
	return installations, total, err
}

// GetActive retrieves all active installations
func (r *InstallationRepository) GetActive() ([]models.Installation, error) {
	var installations []models.Installation
	err := r.db.Where("active = ?", true).Order("name ASC").Find(&installations).Error
	return installations, err
}

// GetWithPosts retrieves an installation with its posts preloaded
func (r *InstallationRepository) GetWithPosts(id uuid.UUID) (*models.Installation, error) {
	var installation models.Installation
	err := r.db.Preload("Posts").First(&installation, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &installation, nil
}

// Update updates an installation
func (r *InstallationRepository) Update(installation *models.Installation) error {
	return r.db.Save(installation).Error
}

// Delete deletes an installation
func (r *InstallationRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Installation{}, "id = ?", id).Error
}
