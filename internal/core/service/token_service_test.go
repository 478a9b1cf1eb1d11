package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/VitalijsFilipovs/auth-service/internal/core/domain"
)

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	subject, err := svc.Validate(token)
	if err != nil {
		t.Fatalf("Validate returned error: %v", err)
	}
	if subject != "alice@example.com" {
		t.Fatalf("expected subject alice@example.com, got %q", subject)
	}
}

func TestJWTService_Claims(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	svc := NewJWTService("secret", 60*time.Minute)
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}, jwt.WithTimeFunc(func() time.Time { return issued }))
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.IssuedAt.Unix() != issued.Unix() {
		t.Fatalf("unexpected iat: %v", claims.IssuedAt)
	}
	if claims.ExpiresAt.Unix() != issued.Add(60*time.Minute).Unix() {
		t.Fatalf("unexpected exp: %v", claims.ExpiresAt)
	}
}

func TestJWTService_ExpiryBoundary(t *testing.T) {
	issued := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	svc := NewJWTService("secret", lifetime)
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	// Just before expiry: accepted.
	svc.now = func() time.Time { return issued.Add(lifetime - time.Second) }
	if _, err := svc.Validate(token); err != nil {
		t.Fatalf("expected valid just before expiry, got %v", err)
	}

	// Just after expiry: rejected, strict against the server clock.
	svc.now = func() time.Time { return issued.Add(lifetime + time.Second) }
	if _, err := svc.Validate(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestJWTService_WrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", time.Hour)
	verifier := NewJWTService("secret-b", time.Hour)

	token, err := issuer.Issue("alice@example.com")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}
	if _, err := verifier.Validate(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTService_Malformed(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	for _, token := range []string{"", "garbage", "a.b.c"} {
		if _, err := svc.Validate(token); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}

func TestJWTService_MissingSubject(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	// Validly signed token with no sub claim.
	raw := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTService_RejectsUnsignedAlg(t *testing.T) {
	svc := NewJWTService("secret", time.Hour)

	raw := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "alice@example.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	token, err := raw.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	if _, err := svc.Validate(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for alg=none, got %v", err)
	}
}
