package models

import (
	"time"
)

// Guard represents a security guard on the roster. The workload counters are
// derived data maintained by the assignment engine and are used only as
// scoring inputs.
type Guard struct {
	BaseModel
	FirstName        string     `json:"first_name" gorm:"size:60;not null" validate:"required,min=1,max=60"`
	LastName         string     `json:"last_name" gorm:"size:60;not null" validate:"required,min=1,max=60"`
	Latitude         *float64   `json:"latitude" gorm:"type:decimal(10,7)" validate:"omitempty,min=-90,max=90"`
	Longitude        *float64   `json:"longitude" gorm:"type:decimal(10,7)" validate:"omitempty,min=-180,max=180"`
	ExperienceYears  *int       `json:"experience_years" validate:"omitempty,min=0,max=60"`
	AvailableNow     bool       `json:"available_now" gorm:"default:false"`
	Active           bool       `json:"active" gorm:"default:true"`
	PriorAssignments int        `json:"prior_assignments" gorm:"default:0"`
	LastAssignmentEnd *time.Time `json:"last_assignment_end" gorm:"type:date"`
}

// TableName returns the table name for Guard
func (Guard) TableName() string {
	return "guards"
}

// FullName returns the guard's display name
func (g *Guard) FullName() string {
	return g.FirstName + " " + g.LastName
}

// HasCoordinates reports whether the guard can participate in
// distance-based candidate scoring.
func (g *Guard) HasCoordinates() bool {
	return g.Latitude != nil && g.Longitude != nil
}
