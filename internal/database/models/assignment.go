package models

import (
	"time"

	"github.com/google/uuid"
)

// Assignment binds a guard to a post for a date range. It is the single
// source of truth for "is this guard currently busy": a guard may hold at
// most one active, open-ended assignment at any time.
type Assignment struct {
	BaseModel
	GuardID           uuid.UUID       `json:"guard_id" gorm:"type:uuid;not null;index" validate:"required"`
	PostID            uuid.UUID       `json:"post_id" gorm:"type:uuid;not null;index" validate:"required"`
	PendingCoverageID *uuid.UUID      `json:"pending_coverage_id" gorm:"type:uuid;index"`
	Type              AssignmentType  `json:"type" gorm:"type:varchar(20);not null" validate:"required"`
	State             AssignmentState `json:"state" gorm:"type:varchar(15);not null;default:'active';index"`
	StartDate         time.Time       `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate           *time.Time      `json:"end_date" gorm:"type:date"`

	// Relationships
	Guard           Guard            `json:"guard,omitempty" gorm:"foreignKey:GuardID"`
	Post            OperationalPost  `json:"post,omitempty" gorm:"foreignKey:PostID"`
	PendingCoverage *PendingCoverage `json:"pending_coverage,omitempty" gorm:"foreignKey:PendingCoverageID"`
}

// TableName returns the table name for Assignment
func (Assignment) TableName() string {
	return "assignments"
}

// IsOpen reports whether the assignment still occupies the guard
func (a *Assignment) IsOpen() bool {
	return a.State == AssignmentStateActive && a.EndDate == nil
}
