// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// デフォルトのユーザーロール。
const RoleMember = "MEMBER"

// User represents a registered user in the system.
// One user belongs to exactly one company, which is the tenant boundary.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey"`

	// CompanyID is the owning tenant. It is assigned at signup and never changes.
	CompanyID uint `gorm:"index;not null"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users.
	Email string `gorm:"uniqueIndex;size:255;not null"`

	// PasswordHash is the hashed password for the user.
	// This should never store plaintext passwords.
	PasswordHash string `gorm:"size:255;not null"`

	// Role is the user's role within the company.
	Role string `gorm:"size:50;not null;default:MEMBER"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time
}
