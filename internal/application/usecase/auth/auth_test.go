package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/application/adapter"
	"github.com/wealth-planner/backend/internal/domain/entity"
	domainerror "github.com/wealth-planner/backend/internal/domain/error"
)

type memoryUserRepo struct {
	adapter.UserRepository
	byEmail map[string]*entity.User
}

func (r *memoryUserRepo) Create(_ context.Context, u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domainerror.ErrUserNotFound
	}
	return u, nil
}

func (r *memoryUserRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := r.byEmail[email]
	return ok, nil
}

type plainPasswords struct{}

func (plainPasswords) HashPassword(p string) (string, error) { return "hashed:" + p, nil }

func (plainPasswords) VerifyPassword(hash, p string) error {
	if hash != "hashed:"+p {
		return errors.New("mismatch")
	}
	return nil
}

func (plainPasswords) ValidatePasswordStrength(p string) error {
	if len(p) < 8 {
		return errors.New("too short")
	}
	return nil
}

type staticTokens struct{}

func (staticTokens) GenerateAccessToken(_ context.Context, userID uuid.UUID, _ string) (*adapter.AccessToken, error) {
	return &adapter.AccessToken{Token: "token-" + userID.String(), ExpiresAt: time.Now().Add(time.Hour)}, nil
}

func (staticTokens) ValidateAccessToken(context.Context, string) (*adapter.TokenClaims, error) {
	return nil, domainerror.ErrInvalidToken
}

func TestRegisterAndLogin(t *testing.T) {
	repo := &memoryUserRepo{byEmail: map[string]*entity.User{}}
	register := NewRegisterUserUseCase(repo, plainPasswords{}, staticTokens{})
	login := NewLoginUserUseCase(repo, plainPasswords{}, staticTokens{})
	ctx := context.Background()

	out, err := register.Execute(ctx, RegisterUserInput{Email: " Ana@Example.com ", Name: "Ana", Password: "s3cret-pass", Currency: "usd"})
	if err != nil {
		t.Fatalf("register error = %v", err)
	}
	if out.User.Email != "ana@example.com" || out.User.Currency != "USD" || out.AccessToken == nil {
		t.Errorf("registered user = %+v", out.User)
	}

	registerErrors := []struct {
		name  string
		input RegisterUserInput
		want  error
	}{
		{name: "duplicate email", input: RegisterUserInput{Email: "ana@example.com", Name: "Ana", Password: "s3cret-pass"}, want: domainerror.ErrEmailAlreadyExists},
		{name: "invalid email", input: RegisterUserInput{Email: "ana", Name: "Ana", Password: "s3cret-pass"}, want: domainerror.ErrInvalidEmail},
		{name: "weak password", input: RegisterUserInput{Email: "bob@example.com", Name: "Bob", Password: "short"}, want: domainerror.ErrWeakPassword},
		{name: "unknown currency", input: RegisterUserInput{Email: "bob@example.com", Name: "Bob", Password: "s3cret-pass", Currency: "XXQ"}, want: domainerror.ErrInvalidCurrency},
	}
	for _, tt := range registerErrors {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := register.Execute(ctx, tt.input); !errors.Is(err, tt.want) {
				t.Errorf("error = %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := login.Execute(ctx, LoginUserInput{Email: "ANA@example.com", Password: "s3cret-pass"}); err != nil {
		t.Errorf("login error = %v", err)
	}
	if _, err := login.Execute(ctx, LoginUserInput{Email: "ana@example.com", Password: "wrong-pass"}); !errors.Is(err, domainerror.ErrInvalidCredentials) {
		t.Errorf("wrong password error = %v", err)
	}
	if _, err := login.Execute(ctx, LoginUserInput{Email: "nobody@example.com", Password: "s3cret-pass"}); !errors.Is(err, domainerror.ErrInvalidCredentials) {
		t.Errorf("unknown email error = %v", err)
	}
}
