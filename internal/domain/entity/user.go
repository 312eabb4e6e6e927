// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the locally mirrored slice of an account. Full identity management
// lives elsewhere; the coach only needs a stable ID to scope records, settings
// and advice, plus the email carried in access tokens.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

// NewUser creates a new User.
func NewUser(email, name string) *User {
	return &User{
		ID:        uuid.New(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
}
