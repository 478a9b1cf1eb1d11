package ports

import (
	"context"

	"github.com/VitalijsFilipovs/auth-service/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, error)
}
