package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// SavedPlan is a named, persisted meal plan snapshot owned by one user.
type SavedPlan struct {
	ID         string         `json:"id" db:"id"`
	UserID     string         `json:"user_id" db:"user_id"`
	Name       string         `json:"name" db:"name"`
	PlanData   types.JSONText `json:"plan_data" db:"plan_data"` // Meal plan document, stored verbatim
	IsFavorite bool           `json:"is_favorite" db:"is_favorite"`
	CreatedAt  time.Time      `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at" db:"updated_at"`
}

// SavedPlanPatch lists the mutable fields of a saved plan. Nil fields are left unchanged.
type SavedPlanPatch struct {
	Name       *string
	IsFavorite *bool
}
