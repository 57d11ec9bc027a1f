package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/mulozi/api/internal/core/domain"
)

// UserRepository is the contract over the persistent user store. Lookup
// methods return (nil, nil) when no record matches; a non-nil error always
// means the store itself failed.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByUUID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)

	// Create persists the record and fills in ID, UUID and DateCreated.
	// Returns domain.ErrEmailExists when the store's unique constraint
	// rejects the email, regardless of any earlier EmailExists check.
	Create(ctx context.Context, user *domain.User) error

	// UpdateLastLogin stamps the user's last successful login.
	UpdateLastLogin(ctx context.Context, email string, at time.Time) error
}

type UserService interface {
	GetByUUID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}
