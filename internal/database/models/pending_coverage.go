package models

import (
	"time"

	"github.com/google/uuid"
)

// PendingCoverage is a detected coverage gap: a post that currently has no
// assigned, available guard. Created by the detector, consumed by the
// assignment engine. "cancelled" and "completed" are terminal.
type PendingCoverage struct {
	BaseModel
	PostID          uuid.UUID        `json:"post_id" gorm:"type:uuid;not null;index" validate:"required"`
	Reason          CoverageReason   `json:"reason" gorm:"type:varchar(30);not null" validate:"required"`
	Priority        CoveragePriority `json:"priority" gorm:"type:varchar(10);not null;default:'normal'"`
	State           CoverageState    `json:"state" gorm:"type:varchar(15);not null;default:'pending';index"`
	DetectedAt      time.Time        `json:"detected_at" gorm:"not null"`
	Deadline        *time.Time       `json:"deadline"`
	AssignedGuardID *uuid.UUID       `json:"assigned_guard_id" gorm:"type:uuid;index"`
	AssignedAt      *time.Time       `json:"assigned_at"`

	// Relationships
	Post          OperationalPost `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	AssignedGuard *Guard          `json:"assigned_guard,omitempty" gorm:"foreignKey:AssignedGuardID"`
}

// TableName returns the table name for PendingCoverage
func (PendingCoverage) TableName() string {
	return "pending_coverages"
}
