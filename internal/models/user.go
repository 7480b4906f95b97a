package models

import (
	"time"
)

// Migration statuses describing how a user row was reconciled with the
// external identity provider.
const (
	MigrationStatusNew      = "new"
	MigrationStatusMigrated = "migrated"
	MigrationStatusUpgraded = "upgraded"
	MigrationStatusManual   = "manual"
	MigrationStatusFailed   = "failed"
)

// User represents one person or one anonymous device in the identity store.
type User struct {
	ID              string     `json:"id" db:"id"`                                       // Internal primary key, referenced by all owned data
	DeviceID        *string    `json:"device_id,omitempty" db:"device_id"`               // Opaque client-generated device token
	Email           *string    `json:"email,omitempty" db:"email"`                       // Unique when present
	Username        *string    `json:"username,omitempty" db:"username"`                 // Display name
	PasswordHash    *string    `json:"-" db:"password_hash"`                             // Legacy bcrypt credential
	IsAnonymous     bool       `json:"is_anonymous" db:"is_anonymous"`                   // True until the user supplies an email
	NeonUserID      *string    `json:"neon_user_id,omitempty" db:"neon_user_id"`         // External identity provider id
	MigrationStatus *string    `json:"migration_status,omitempty" db:"migration_status"` // One of the MigrationStatus* constants
	MigratedAt      *time.Time `json:"migrated_at,omitempty" db:"migrated_at"`           // When a legacy row was linked
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at" db:"updated_at"`
}

// HasPassword reports whether the row carries a legacy credential.
func (u *User) HasPassword() bool {
	return u.PasswordHash != nil && *u.PasswordHash != ""
}

// ExternalIdentity is an identity assertion from the hosted auth provider.
type ExternalIdentity struct {
	UserID   string  `json:"user_id"`
	Email    string  `json:"email"`
	Username string  `json:"username"`
	DeviceID *string `json:"device_id,omitempty"`
}
