package repository

import (
	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientRepository handles database operations for clients
type ClientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

// Create creates a new client
func (r *ClientRepository) Create(client *models.Client) error {
	return r.db.Create(client).Error
}

// GetByID retrieves a client by ID
func (r *ClientRepository) GetByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetByName retrieves a client by name
func (r *ClientRepository) GetByName(name string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "name = ?", name).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// GetAll retrieves all clients with pagination
func (r *ClientRepository) GetAll(limit, offset int) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	if err := r.db.Model(&models.Client{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&clients).Error
	return clients, total, err
}

// GetWithInstallations retrieves a client with its installations preloaded
func (r *ClientRepository) GetWithInstallations(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.Preload("Installations").First(&client, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

// Update updates a client
func (r *ClientRepository) Update(client *models.Client) error {
	return r.db.Save(client).Error
}

// Delete deletes a client
func (r *ClientRepository) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Client{}, "id = ?", id).Error
}
