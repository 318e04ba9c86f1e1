package ports

import (
	"context"

	"github.com/crudify/crudify-server/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
