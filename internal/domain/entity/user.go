// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/domain/valueobject"
)

// User represents an account owner in the Wealth Planner system.
// Every entry, recurring entry, goal and asset is scoped to exactly one user.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Currency     string // ISO 4217 code used to format amounts in alerts
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		Currency:     valueobject.DefaultCurrency,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
