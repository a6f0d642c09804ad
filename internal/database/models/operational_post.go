package models

import (
	"github.com/google/uuid"
)

// OperationalPost is one coverage slot at an installation, bound to a shift
// pattern and optionally to a guard. Posts are deactivated rather than
// deleted so historical schedules keep their references.
type OperationalPost struct {
	BaseModel
	InstallationID    uuid.UUID  `json:"installation_id" gorm:"type:uuid;not null;index" validate:"required"`
	ServiceRoleID     uuid.UUID  `json:"service_role_id" gorm:"type:uuid;not null;index" validate:"required"`
	GuardID           *uuid.UUID `json:"guard_id" gorm:"type:uuid;index"`
	Label             string     `json:"label" gorm:"size:100" validate:"max=100"`
	IsPendingCoverage bool       `json:"is_pending_coverage" gorm:"default:false;index"`
	Active            bool       `json:"active" gorm:"default:true;index"`

	// Relationships
	Installation Installation `json:"installation,omitempty" gorm:"foreignKey:InstallationID;constraint:OnDelete:CASCADE"`
	ServiceRole  ServiceRole  `json:"service_role,omitempty" gorm:"foreignKey:ServiceRoleID"`
	Guard        *Guard       `json:"guard,omitempty" gorm:"foreignKey:GuardID"`
}

// TableName returns the table name for OperationalPost
func (OperationalPost) TableName() string {
	return "operational_posts"
}
