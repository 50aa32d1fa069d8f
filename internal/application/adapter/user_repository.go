package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/wealth-planner/backend/internal/domain/entity"
)

// UserRepository stores accounts. Emails are unique; Create reports a
// duplicate as ErrEmailAlreadyExists.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
