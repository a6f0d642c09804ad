package models

import (
	"time"

	"github.com/google/uuid"
)

// ExtraShift is a ledger record of an extra shift worked outside the
// generated plan. Appends are best-effort: a failed ledger write never rolls
// back the schedule-entry mutation that triggered it.
type ExtraShift struct {
	BaseModel
	PostID          uuid.UUID  `json:"post_id" gorm:"type:uuid;not null;index" validate:"required"`
	InstallationID  uuid.UUID  `json:"installation_id" gorm:"type:uuid;not null;index" validate:"required"`
	ServiceRoleID   uuid.UUID  `json:"service_role_id" gorm:"type:uuid;not null" validate:"required"`
	CoveringGuardID *uuid.UUID `json:"covering_guard_id" gorm:"type:uuid;index"`
	Date            time.Time  `json:"date" gorm:"type:date;not null" validate:"required"`
	Origin          string     `json:"origin" gorm:"size:60" validate:"max=60"`

	// Relationships
	Post         OperationalPost `json:"post,omitempty" gorm:"foreignKey:PostID"`
	Installation Installation    `json:"installation,omitempty" gorm:"foreignKey:InstallationID"`
}

// TableName returns the table name for ExtraShift
func (ExtraShift) TableName() string {
	return "extra_shifts"
}
