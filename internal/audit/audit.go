// Package audit records state transitions and assignment decisions.
// Recording is best-effort: a failed write is logged and swallowed, never
// propagated as a failure of the primary operation.
package audit

import (
	"encoding/json"

	"guard-ops-backend/internal/database/models"
	"guard-ops-backend/internal/logger"
	"guard-ops-backend/internal/repository"

	"github.com/google/uuid"
)

// Recorder writes structured audit records for every entity type into the
// fixed audit_logs table.
type Recorder struct {
	repo repository.AuditLogWriter
	log  *logger.Logger
}

// NewRecorder creates a new audit recorder
func NewRecorder(repo repository.AuditLogWriter) *Recorder {
	return &Recorder{
		repo: repo,
		log:  logger.New(),
	}
}

// Record persists one audit entry. Before/after snapshots are marshaled
// best-effort; a nil snapshot is stored as SQL NULL.
func (r *Recorder) Record(entityType models.AuditEntityType, entityID uuid.UUID, action, actor string, before, after interface{}) {
	entry := &models.AuditLog{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     action,
		Actor:      actor,
		Before:     marshal(before),
		After:      marshal(after),
	}

	if err := r.repo.Create(entry); err != nil {
		r.log.WithFields(map[string]interface{}{
			"entity_type": entityType,
			"entity_id":   entityID,
			"action":      action,
		}).Warnf("audit write failed: %v", err)
	}
}

func marshal(v interface{}) json.RawMessage {
	if v == nil {
		return nil
	}
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}
