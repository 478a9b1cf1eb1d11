package ports

import (
	"context"

	"github.com/VitalijsFilipovs/auth-service/internal/core/domain"
)

// UserRepository defines the persistence operations for user accounts.
// Create must rely on the store's unique constraint for duplicate detection
// so that concurrent registrations resolve atomically at the database.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
