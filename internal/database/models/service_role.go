package models

// ServiceRole defines a shift pattern: a repeating work/rest day cycle with
// a daily time window. Rows referenced by generated schedules are treated as
// immutable; edits only affect future generations.
type ServiceRole struct {
	BaseModel
	Name         string `json:"name" gorm:"size:60;not null;uniqueIndex" validate:"required,min=1,max=60"`
	WorkDays     int    `json:"work_days" gorm:"default:0" validate:"min=0,max=31"`
	RestDays     int    `json:"rest_days" gorm:"default:0" validate:"min=0,max=31"`
	WeekdaysOnly bool   `json:"weekdays_only" gorm:"default:false"`
	StartTime    string `json:"start_time" gorm:"size:5" validate:"omitempty,len=5"`
	EndTime      string `json:"end_time" gorm:"size:5" validate:"omitempty,len=5"`
	Active       bool   `json:"active" gorm:"default:true"`
}

// TableName returns the table name for ServiceRole
func (ServiceRole) TableName() string {
	return "service_roles"
}

// CycleLength returns the length of the repeating cycle in days.
// Weekdays-only roles run on a fixed 7-day calendar week.
func (r *ServiceRole) CycleLength() int {
	if r.WeekdaysOnly {
		return 7
	}
	return r.WorkDays + r.RestDays
}

// HasUsablePattern reports whether the role can drive schedule generation.
func (r *ServiceRole) HasUsablePattern() bool {
	if r.WeekdaysOnly {
		return true
	}
	return r.WorkDays > 0 && r.RestDays >= 0
}
