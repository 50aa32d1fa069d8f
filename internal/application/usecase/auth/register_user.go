package auth

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// RegisterUserInput is the sign-up form.
type RegisterUserInput struct {
	Email    string
	Name     string
	Password string
	Currency string // Optional ISO 4217 code, BRL when empty
}

// RegisterUserOutput carries the new account and a token so the client is
// logged in right away.
type RegisterUserOutput struct {
	AccessToken *adapter.AccessToken
	User        *entity.User
}

// RegisterUserUseCase creates accounts.
type RegisterUserUseCase struct {
	users     adapter.UserRepository
	passwords adapter.PasswordService
	tokens    adapter.TokenService
}

// NewRegisterUserUseCase creates a new RegisterUserUseCase instance.
func NewRegisterUserUseCase(
	users adapter.UserRepository,
	passwords adapter.PasswordService,
	tokens adapter.TokenService,
) *RegisterUserUseCase {
	return &RegisterUserUseCase{users: users, passwords: passwords, tokens: tokens}
}

// Execute validates the form, stores the user with a bcrypt hash and issues a token.
func (uc *RegisterUserUseCase) Execute(ctx context.Context, input RegisterUserInput) (*RegisterUserOutput, error) {
	form, err := uc.normalize(input)
	if err != nil {
		return nil, err
	}

	taken, err := uc.users.ExistsByEmail(ctx, form.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if taken {
		return nil, emailTaken()
	}

	hash, err := uc.passwords.HashPassword(form.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := entity.NewUser(form.Email, form.Name, hash)
	if form.Currency != "" {
		user.Currency = form.Currency
	}

	// A concurrent sign-up can still win the race on the unique index.
	switch err := uc.users.Create(ctx, user); {
	case errors.Is(err, domainerror.ErrEmailAlreadyExists):
		return nil, emailTaken()
	case err != nil:
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	token, err := uc.tokens.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &RegisterUserOutput{AccessToken: token, User: user}, nil
}

// normalize trims and case-folds the form and rejects invalid fields.
func (uc *RegisterUserUseCase) normalize(in RegisterUserInput) (RegisterUserInput, error) {
	out := RegisterUserInput{
		Email:    strings.ToLower(strings.TrimSpace(in.Email)),
		Name:     strings.TrimSpace(in.Name),
		Password: in.Password,
		Currency: strings.ToUpper(strings.TrimSpace(in.Currency)),
	}

	switch {
	case !emailPattern.MatchString(out.Email):
		return out, domainerror.NewAuthError(domainerror.ErrCodeInvalidEmail, "invalid email format", domainerror.ErrInvalidEmail)
	case out.Name == "":
		return out, domainerror.NewAuthError(domainerror.ErrCodeMissingFields, "name is required", nil)
	case out.Currency != "" && money.GetCurrency(out.Currency) == nil:
		return out, domainerror.NewAuthError(domainerror.ErrCodeInvalidCurrency, "unknown currency code", domainerror.ErrInvalidCurrency)
	}

	if err := uc.passwords.ValidatePasswordStrength(out.Password); err != nil {
		return out, domainerror.NewAuthError(domainerror.ErrCodeWeakPassword, err.Error(), domainerror.ErrWeakPassword)
	}
	return out, nil
}

func emailTaken() error {
	return domainerror.NewAuthError(domainerror.ErrCodeEmailExists, "email already exists", domainerror.ErrEmailAlreadyExists)
}
