// Package adapters implements the application ports on top of bcrypt and JWT.
package adapters

import (
	"errors"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/wealth-planner/backend/internal/application/adapter"
)

// DefaultBcryptCost is used when the configured cost is outside bcrypt's range.
const DefaultBcryptCost = 12

const (
	minPasswordLength = 8
	maxPasswordLength = 72 // bcrypt ignores anything past 72 bytes
)

var (
	errPasswordTooShort = errors.New("password must be at least 8 characters long")
	errPasswordTooLong  = errors.New("password must be at most 72 bytes long")
	errPasswordTooPlain = errors.New("password must contain letters and digits")
)

type bcryptPasswords struct {
	cost int
}

// NewPasswordService returns a bcrypt backed adapter.PasswordService.
func NewPasswordService(cost int) adapter.PasswordService {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBcryptCost
	}
	return bcryptPasswords{cost: cost}
}

func (p bcryptPasswords) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), p.cost)
	return string(hash), err
}

func (p bcryptPasswords) VerifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}

func (p bcryptPasswords) ValidatePasswordStrength(password string) error {
	switch {
	case len(password) < minPasswordLength:
		return errPasswordTooShort
	case len(password) > maxPasswordLength:
		return errPasswordTooLong
	}

	var letters, digits int
	for _, r := range password {
		if unicode.IsLetter(r) {
			letters++
		} else if unicode.IsDigit(r) {
			digits++
		}
	}
	if letters == 0 || digits == 0 {
		return errPasswordTooPlain
	}
	return nil
}
