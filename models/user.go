// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lingap Contributors

package models

import "time"

// Role is the authorization role of a staff member.
type Role string

const (
	RoleAdministrator Role = "administrator"
	RoleEditor        Role = "editor"
)

// Valid reports whether the role is one of the known enumerated values.
func (r Role) Valid() bool {
	return r == RoleAdministrator || r == RoleEditor
}

// User represents an authenticated staff member of the office.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user,
	// assigned by the store at creation time.
	UserID int64 `json:"id"`

	// Username is the unique login identifier. Immutable after creation.
	Username string `json:"username"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Never serialized to JSON and never returned to clients.
	PasswordHash string `json:"-"`

	// FullName is the display name of the staff member.
	FullName string `json:"fullName"`

	// Position is the optional job title (e.g. "Social Worker II").
	Position string `json:"position,omitempty"`

	// Office is the optional office or unit the staff member belongs to.
	Office string `json:"office,omitempty"`

	// Role controls access to administrator-only endpoints.
	// Defaults to RoleEditor when not specified at creation.
	Role Role `json:"role"`

	// CreatedAt is the timestamp when the account was created. Immutable.
	CreatedAt time.Time `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
