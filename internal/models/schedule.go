package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Weekdays are the only keys allowed in a schedule document.
var Weekdays = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// IsWeekday reports whether day is one of Weekdays.
func IsWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}

// WeeklySchedule maps weekdays to optional saved plan ids.
type WeeklySchedule struct {
	ID           string         `json:"id" db:"id"`
	UserID       string         `json:"user_id" db:"user_id"`
	Name         string         `json:"name" db:"name"`
	ScheduleData types.JSONText `json:"schedule_data" db:"schedule_data"` // {"monday": "<plan id>" | null, ...}
	IsActive     bool           `json:"is_active" db:"is_active"`
	CreatedAt    time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at" db:"updated_at"`
}

// WeeklySchedulePatch lists the mutable fields of a schedule. Nil fields are left unchanged.
type WeeklySchedulePatch struct {
	Name         *string
	ScheduleData types.JSONText
	IsActive     *bool
}
