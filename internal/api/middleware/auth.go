package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/userauth/auth-api/internal/api/metrics"
	"github.com/userauth/auth-api/internal/core/token"
)

// SubjectKey is the echo context key under which Auth stores the verified
// token subject (the authenticated user's id).
const SubjectKey = "sub"

// Auth gates a route behind bearer-token verification.
//
// A missing or structurally unusable Authorization header is 401; a header
// that carries a token which fails verification for any reason (malformed,
// bad signature, expired) is 400. On success the subject id is stored in the
// context for downstream handlers.
func Auth(tokens *token.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			parts := strings.SplitN(authHeader, " ", 2)
			if authHeader == "" || len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenRejectionsTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "access denied")
			}

			subject, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenRejectionsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusBadRequest, "invalid token")
			}

			c.Set(SubjectKey, subject)
			return next(c)
		}
	}
}
