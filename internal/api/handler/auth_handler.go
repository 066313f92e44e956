package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/userauth/auth-api/internal/api/metrics"
	"github.com/userauth/auth-api/internal/core/domain"
	"github.com/userauth/auth-api/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

type registerRequest struct {
	Name            string `json:"name" validate:"required"`
	Password        string `json:"pass" validate:"required"`
	ConfirmPassword string `json:"confpass" validate:"eqfield=Password"`
}

type loginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"pass" validate:"required"`
}

type msgResponse struct {
	Msg string `json:"msg"`
}

type loginResponse struct {
	Msg   string `json:"msg"`
	Token string `json:"token"`
}

// Register creates a new user account.
//
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Name, password, and password confirmation"
// @Success      201   {object}  msgResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /cadastro [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	_, err := h.authService.Register(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "user already exists"})
		}
		metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		// Store failures surface as an opaque 500 via the central handler.
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, msgResponse{Msg: "user created"})
}

// Login authenticates a user and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	timer := prometheus.NewTimer(metrics.LoginDuration)
	defer timer.ObserveDuration()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.LoginsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
	}

	signed, _, err := h.authService.Login(c.Request().Context(), req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserNotFound):
			metrics.LoginsTotal.WithLabelValues("user_not_found").Inc()
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "user not found"})
		case errors.Is(err, domain.ErrInvalidPassword):
			metrics.LoginsTotal.WithLabelValues("invalid_password").Inc()
			return c.JSON(http.StatusUnprocessableEntity, map[string]string{"error": "invalid password"})
		}
		metrics.LoginsTotal.WithLabelValues("error").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, loginResponse{Msg: "authentication successful", Token: signed})
}
