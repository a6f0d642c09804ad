package repository

import (
	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ServiceRoleRepository handles database operations for shift-pattern roles
type ServiceRoleRepository struct {
	db *gorm.DB
}

// NewServiceRoleRepository creates a new service role repository
func NewServiceRoleRepository(db *gorm.DB) *ServiceRoleRepository {
	return &ServiceRoleRepository{db: db}
}

// Create creates a new service role
func (r *ServiceRoleRepository) Create(role *models.ServiceRole) error {
	return r.db.Create(role).Error
}

// GetByID retrieves a service role by ID
func (r *ServiceRoleRepository) GetByID(id uuid.UUID) (*models.ServiceRole, error) {
	var role models.ServiceRole
	err := r.db.First(&role, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetByName retrieves a service role by name
func (r *ServiceRoleRepository) GetByName(name string) (*models.ServiceRole, error) {
	var role models.ServiceRole
	err := r.db.First(&role, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// GetAll retrieves all service roles with pagination
func (r *ServiceRoleRepository) GetAll(limit, offset int) ([]models.ServiceRole, int64, error) {
	var roles []models.ServiceRole
	var total int64

	if err := r.db.Model(&models.ServiceRole{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&roles).Error
	return roles, total, err
}

// GetActive retrieves all active service roles
func (r *ServiceRoleRepository) GetActive() ([]models.ServiceRole, error) {
	var roles []models.ServiceRole
	err := r.db.Where("active = ?", true).Order("name ASC").Find(&roles).Error
	return roles, err
}

// Update updates a service role
func (r *ServiceRoleRepository) Update(role *models.ServiceRole) error {
	return r.db.Save(role).Error
}

// Delete deletes a service role
func (r *ServiceRoleRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.ServiceRole{}, "id = ?", id).Error
}
