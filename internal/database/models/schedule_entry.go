package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// EntryMetadata is the typed action payload attached to a schedule entry.
// Known fields cover every attendance action; Extra is an open bag for
// forward-compatible keys carried by external callers.
type EntryMetadata struct {
	CoveringGuardID *uuid.UUID             `json:"covering_guard_id,omitempty"`
	Actor           string                 `json:"actor,omitempty"`
	Action          string                 `json:"action,omitempty"`
	Origin          string                 `json:"origin,omitempty"`
	RecordedAt      *time.Time             `json:"recorded_at,omitempty"`
	Extra           map[string]interface{} `json:"extra,omitempty"`
}

// Value implements driver.Valuer so the metadata is stored as jsonb
func (m EntryMetadata) Value() (driver.Value, error) {
	return json.Marshal(m)
}

// Scan implements sql.Scanner
func (m *EntryMetadata) Scan(value interface{}) error {
	if value == nil {
		*m = EntryMetadata{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, m)
	case string:
		return json.Unmarshal([]byte(v), m)
	default:
		return fmt.Errorf("unsupported metadata type %T", value)
	}
}

// IsZero reports whether no action has written metadata yet
func (m EntryMetadata) IsZero() bool {
	return m.CoveringGuardID == nil && m.Actor == "" && m.Action == "" &&
		m.Origin == "" && m.RecordedAt == nil && len(m.Extra) == 0
}

// ScheduleEntry is one attendance-state record for one post on one calendar
// day. At most one entry exists per (post, year, month, day).
type ScheduleEntry struct {
	BaseModel
	PostID         uuid.UUID     `json:"post_id" gorm:"type:uuid;not null;uniqueIndex:idx_schedule_post_date" validate:"required"`
	GuardID        *uuid.UUID    `json:"guard_id" gorm:"type:uuid;index"`
	Year           int           `json:"year" gorm:"not null;uniqueIndex:idx_schedule_post_date" validate:"required,min=2020,max=2100"`
	Month          int           `json:"month" gorm:"not null;uniqueIndex:idx_schedule_post_date" validate:"required,min=1,max=12"`
	Day            int           `json:"day" gorm:"not null;uniqueIndex:idx_schedule_post_date" validate:"required,min=1,max=31"`
	State          EntryState    `json:"state" gorm:"type:varchar(20);not null" validate:"required"`
	CyclePhase     int           `json:"cycle_phase" gorm:"not null" validate:"min=1"`
	ManualOverride bool          `json:"manual_override" gorm:"default:false"`
	Metadata       EntryMetadata `json:"metadata" gorm:"type:jsonb"`

	// Relationships
	Post  OperationalPost `json:"post,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Guard *Guard          `json:"guard,omitempty" gorm:"foreignKey:GuardID"`
}

// TableName returns the table name for ScheduleEntry
func (ScheduleEntry) TableName() string {
	return "schedule_entries"
}

// Date returns the entry's calendar date at midnight UTC
func (e *ScheduleEntry) Date() time.Time {
	return time.Date(e.Year, time.Month(e.Month), e.Day, 0, 0, 0, 0, time.UTC)
}
