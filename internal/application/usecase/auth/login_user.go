// Package auth contains the registration and login use cases.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

// LoginUserInput holds the submitted credentials.
type LoginUserInput struct {
	Email    string
	Password string
}

// LoginUserOutput carries the issued token and the account it belongs to.
type LoginUserOutput struct {
	AccessToken *adapter.AccessToken
	User        *entity.User
}

// LoginUserUseCase exchanges credentials for an access token.
type LoginUserUseCase struct {
	userRepo        adapter.UserRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService

	decoyOnce sync.Once
	decoyHash string
}

// NewLoginUserUseCase creates a new LoginUserUseCase instance.
func NewLoginUserUseCase(
	userRepo adapter.UserRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginUserUseCase {
	return &LoginUserUseCase{
		userRepo:        userRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute answers an unknown email and a wrong password with the same
// AUTH-020001 error, after the same amount of hashing work.
func (uc *LoginUserUseCase) Execute(ctx context.Context, input LoginUserInput) (*LoginUserOutput, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	user, err := uc.userRepo.FindByEmail(ctx, email)
	switch {
	case errors.Is(err, domainerror.ErrUserNotFound):
		_ = uc.passwordService.VerifyPassword(uc.decoy(), input.Password)
		return nil, invalidLogin()
	case err != nil:
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if err := uc.passwordService.VerifyPassword(user.PasswordHash, input.Password); err != nil {
		slog.InfoContext(ctx, "Login rejected", "user_id", user.ID)
		return nil, invalidLogin()
	}

	token, err := uc.tokenService.GenerateAccessToken(ctx, user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return &LoginUserOutput{AccessToken: token, User: user}, nil
}

// decoy returns a hash to verify against when the email is unknown.
func (uc *LoginUserUseCase) decoy() string {
	uc.decoyOnce.Do(func() {
		uc.decoyHash, _ = uc.passwordService.HashPassword("decoy-password-0")
	})
	return uc.decoyHash
}

func invalidLogin() error {
	return domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid email or password",
		domainerror.ErrInvalidCredentials,
	)
}
