package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/VitalijsFilipovs/auth-service/internal/api/metrics"
	"github.com/VitalijsFilipovs/auth-service/internal/core/domain"
	"github.com/VitalijsFilipovs/auth-service/internal/core/service"
)

// UserContextKey is where the resolved user is stored in the echo context.
const UserContextKey = "user"

// Auth extracts the bearer credential from the Authorization header, resolves
// it through the gate and injects the user into the request context. Every
// failure renders 401; the gate's distinct sentinels only drive the message
// and the metric label.
func Auth(gate *service.Gate) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			credential := ""
			if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
				parts := strings.SplitN(authHeader, " ", 2)
				if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
					metrics.TokenResolutionsTotal.WithLabelValues("invalid_token").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
				}
				credential = parts[1]
			}

			user, err := gate.Authenticate(c.Request().Context(), credential)
			if err != nil {
				switch err {
				case domain.ErrMissingCredentials, domain.ErrInvalidToken, domain.ErrUserNotFound:
					metrics.TokenResolutionsTotal.WithLabelValues(resolutionLabel(err)).Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
				default:
					// Store failure while resolving the subject: a 500, not
					// an authentication outcome.
					return err
				}
			}

			metrics.TokenResolutionsTotal.WithLabelValues("resolved").Inc()
			c.Set(UserContextKey, user)

			return next(c)
		}
	}
}

// CurrentUser returns the user stored by Auth, or nil when the middleware
// did not run.
func CurrentUser(c echo.Context) *domain.User {
	user, _ := c.Get(UserContextKey).(*domain.User)
	return user
}

func resolutionLabel(err error) string {
	switch err {
	case domain.ErrMissingCredentials:
		return "missing_credentials"
	case domain.ErrUserNotFound:
		return "user_not_found"
	default:
		return "invalid_token"
	}
}
