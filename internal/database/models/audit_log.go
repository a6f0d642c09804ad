package models

import (
	"encoding/json"

	"github.com/google/uuid"
)

// AuditEntityType names the kind of entity an audit record describes. Every
// entity type maps to the same fixed audit_logs table; the type is a column,
// never part of a table name.
type AuditEntityType string

const (
	AuditEntityScheduleEntry   AuditEntityType = "schedule_entry"
	AuditEntityPendingCoverage AuditEntityType = "pending_coverage"
	AuditEntityAssignment      AuditEntityType = "assignment"
	AuditEntityOperationalPost AuditEntityType = "operational_post"
)

// AuditLog is a structured record of a state transition or assignment
// decision. Writes are fire-and-forget.
type AuditLog struct {
	BaseModel
	EntityType AuditEntityType `json:"entity_type" gorm:"type:varchar(30);not null;index"`
	EntityID   uuid.UUID       `json:"entity_id" gorm:"type:uuid;not null;index"`
	Action     string          `json:"action" gorm:"size:60;not null"`
	Actor      string          `json:"actor" gorm:"size:60"`
	Before     json.RawMessage `json:"before" gorm:"type:jsonb"`
	After      json.RawMessage `json:"after" gorm:"type:jsonb"`
}

// TableName returns the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}
