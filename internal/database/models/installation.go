package models

import (
	"github.com/google/uuid"
)

// Installation represents a client site requiring guard coverage
type Installation struct {
	BaseModel
	ClientID      uuid.UUID `json:"client_id" gorm:"type:uuid;not null;index" validate:"required"`
	Name          string    `json:"name" gorm:"size:100;not null" validate:"required,min=1,max=100"`
	Address       string    `json:"address" gorm:"size:200" validate:"max=200"`
	Latitude      *float64  `json:"latitude" gorm:"type:decimal(10,7)" validate:"omitempty,min=-90,max=90"`
	Longitude     *float64  `json:"longitude" gorm:"type:decimal(10,7)" validate:"omitempty,min=-180,max=180"`
	RequiredPosts int       `json:"required_posts" gorm:"default:0" validate:"min=0"`
	Active        bool      `json:"active" gorm:"default:true"`

	// Relationships
	Client Client            `json:"client,omitempty" gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	Posts  []OperationalPost `json:"posts,omitempty" gorm:"foreignKey:InstallationID"`
}

// TableName returns the table name for Installation
func (Installation) TableName() string {
	return "installations"
}

// HasCoordinates reports whether the installation can participate in
// distance-based candidate scoring.
func (i *Installation) HasCoordinates() bool {
	return i.Latitude != nil && i.Longitude != nil
}
