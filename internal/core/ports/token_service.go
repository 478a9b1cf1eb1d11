package ports

// TokenService issues and validates signed, time-bounded bearer tokens.
type TokenService interface {
	// Issue builds a token asserting subject, valid from now for the
	// configured lifetime.
	Issue(subject string) (string, error)
	// Validate verifies signature and expiry and returns the subject claim.
	// Any failure (bad signature, malformed token, missing subject, expired)
	// surfaces as domain.ErrInvalidToken.
	Validate(token string) (string, error)
}
