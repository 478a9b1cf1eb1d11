package service

import (
	"context"
	"errors"

	"github.com/VitalijsFilipovs/auth-service/internal/core/domain"
	"github.com/VitalijsFilipovs/auth-service/internal/core/ports"
)

// Gate resolves an inbound bearer credential to a concrete user record.
// A request moves through three states: no credential, credential presented,
// resolved user. Each failed transition has its own sentinel:
//
//	""              → domain.ErrMissingCredentials
//	invalid token   → domain.ErrInvalidToken
//	unknown subject → domain.ErrUserNotFound
type Gate struct {
	tokens ports.TokenService
	users  ports.UserRepository
}

func NewGate(tokens ports.TokenService, users ports.UserRepository) *Gate {
	return &Gate{tokens: tokens, users: users}
}

// Authenticate returns the user the credential proves, or one of the three
// gate sentinels. A valid token whose subject no longer exists fails with
// ErrUserNotFound rather than ErrInvalidToken: the token itself is fine, the
// account is gone.
func (g *Gate) Authenticate(ctx context.Context, credential string) (*domain.User, error) {
	if credential == "" {
		return nil, domain.ErrMissingCredentials
	}

	subject, err := g.tokens.Validate(credential)
	if err != nil {
		return nil, domain.ErrInvalidToken
	}

	user, err := g.users.FindByEmail(ctx, NormalizeEmail(subject))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUserNotFound
		}
		// Infrastructure failure, not an authentication outcome.
		return nil, err
	}
	return user, nil
}
