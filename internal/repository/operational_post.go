package repository

import (
	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OperationalPostRepository handles database operations for operational posts
type OperationalPostRepository struct {
	db *gorm.DB
}

// NewOperationalPostRepository creates a new operational post repository
func NewOperationalPostRepository(db *gorm.DB) *OperationalPostRepository {
	return &OperationalPostRepository{db: db}
}

// Create creates a new operational post
func (r *OperationalPostRepository) Create(post *models.OperationalPost) error {
	return r.db.Create(post).Error
}

// CreateBatch creates several posts in one statement
func (r *OperationalPostRepository) CreateBatch(posts []models.OperationalPost) error {
	if len(posts) == 0 {
		return nil
	}
	return r.db.Create(&posts).Error
}

// GetByID retrieves an operational post by ID
func (r *OperationalPostRepository) GetByID(id uuid.UUID) (*models.OperationalPost, error) {
	var post models.OperationalPost
	err := r.db.First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetWithRole retrieves a post with its service role preloaded
func (r *OperationalPostRepository) GetWithRole(id uuid.UUID) (*models.OperationalPost, error) {
	var post models.OperationalPost
	err := r.db.Preload("ServiceRole").First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetWithInstallation retrieves a post with its installation preloaded
func (r *OperationalPostRepository) GetWithInstallation(id uuid.UUID) (*models.OperationalPost, error) {
	var post models.OperationalPost
	err := r.db.Preload("Installation").First(&post, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// GetByInstallationID retrieves all posts of an installation
func (r *OperationalPostRepository) GetByInstallationID(installationID uuid.UUID, limit, offset int) ([]models.OperationalPost, int64, error) {
	var posts []models.OperationalPost
	var total int64

	if err := r.db.Model(&models.OperationalPost{}).Where("installation_id = ?", installationID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("installation_id = ?", installationID).Order("label ASC").Limit(limit).Offset(offset).Find(&posts).Error
	return posts, total, err
}

// GetActive retrieves active posts, optionally scoped to one installation
func (r *OperationalPostRepository) GetActive(installationID *uuid.UUID) ([]models.OperationalPost, error) {
	var posts []models.OperationalPost
	query := r.db.Where("active = ?", true)
	if installationID != nil {
		query = query.Where("installation_id = ?", *installationID)
	}
	err := query.Order("id ASC").Find(&posts).Error
	return posts, err
}

// CountActiveByInstallation counts active posts of an installation
func (r *OperationalPostRepository) CountActiveByInstallation(installationID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.OperationalPost{}).
		Where("installation_id = ? AND active = ?", installationID, true).
		Count(&count).Error
	return count, err
}

// Update updates an operational post
func (r *OperationalPostRepository) Update(post *models.OperationalPost) error {
	return r.db.Save(post).Error
}

// SetPendingFlag updates only the pending-coverage flag
func (r *OperationalPostRepository) SetPendingFlag(id uuid.UUID, pending bool) error {
	return r.db.Model(&models.OperationalPost{}).
		Where("id = ?", id).
		Update("is_pending_coverage", pending).Error
}

// Deactivate marks a post inactive. Posts are never hard-deleted so
// historical schedule entries keep their references.
func (r *OperationalPostRepository) Deactivate(id uuid.UUID) error {
	return r.db.Model(&models.OperationalPost{}).
		Where("id = ?", id).
		Update("active", false).Error
}
