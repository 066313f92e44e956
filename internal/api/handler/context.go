package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/userauth/auth-api/internal/api/middleware"
)

// ctxSubject extracts the authenticated user id injected by the Auth
// middleware. An empty subject means the middleware did not run on this
// route, which is a wiring bug, not a client error worth distinguishing.
func ctxSubject(c echo.Context) (string, error) {
	subject, _ := c.Get(middleware.SubjectKey).(string)
	if subject == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, nil
}
