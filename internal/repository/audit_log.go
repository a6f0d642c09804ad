package repository

import (
	"guard-ops-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLogRepository handles database operations for audit logs. All entity
// types share the one audit_logs table; the entity type is a column.
type AuditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository
func NewAuditLogRepository(db *gorm.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create creates a new audit log record
func (r *AuditLogRepository) Create(log *models.AuditLog) error {
	return r.db.Create(log).Error
}

// GetByEntity retrieves the audit trail of one entity, newest first
func (r *AuditLogRepository) GetByEntity(entityType models.AuditEntityType, entityID uuid.UUID, limit, offset int) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog
	var total int64

	q := r.db.Model(&models.AuditLog{}).Where("entity_type = ? AND entity_id = ?", entityType, entityID)

	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	return logs, total, err
}
