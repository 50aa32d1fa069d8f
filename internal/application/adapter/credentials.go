// Package adapter declares the ports the application layer depends on. The
// integration layer provides the implementations.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// PasswordService hashes and checks account passwords.
type PasswordService interface {
	HashPassword(password string) (string, error)
	// VerifyPassword returns a non-nil error when password does not match hash.
	VerifyPassword(hash, password string) error
	// ValidatePasswordStrength rejects passwords shorter than the minimum length
	// or missing a letter or a digit.
	ValidatePasswordStrength(password string) error
}

// AccessToken is a signed bearer token.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenClaims is what a valid bearer token proves about its holder.
type TokenClaims struct {
	UserID    uuid.UUID
	Email     string
	ExpiresAt time.Time
}

// TokenService issues and checks bearer tokens.
type TokenService interface {
	GenerateAccessToken(ctx context.Context, userID uuid.UUID, email string) (*AccessToken, error)
	// ValidateAccessToken returns ErrExpiredToken for expired tokens and
	// ErrInvalidToken for anything else it cannot verify.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
