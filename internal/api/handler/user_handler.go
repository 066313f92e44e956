package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/userauth/auth-api/internal/core/domain"
	"github.com/userauth/auth-api/internal/core/ports"
)

// UserHandler serves the root greeting and profile reads.
type UserHandler struct {
	userService ports.UserService
	log         zerolog.Logger
}

func NewUserHandler(userService ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

type profileResponse struct {
	User *domain.User `json:"user"`
}

// Root handles GET / — an unauthenticated greeting.
func (h *UserHandler) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, msgResponse{Msg: "welcome"})
}

// GetProfile handles GET /user/:id.
//
// The Auth middleware only proves that *some* valid token was presented: any
// authenticated user may read any profile. Kept as documented behavior; the
// subject is logged so a later tightening has the data it needs.
//
// @Summary      Get a user's public profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User id (ObjectID hex)"
// @Success      200  {object}  profileResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /user/{id} [get]
func (h *UserHandler) GetProfile(c echo.Context) error {
	subject, err := ctxSubject(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if _, err := primitive.ObjectIDFromHex(id); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	h.log.Debug().
		Str("requester", subject).
		Str("user_id", id).
		Msg("profile read")

	user, err := h.userService.GetProfile(c.Request().Context(), id)
	if err != nil {
		// ErrUserNotFound / ErrInvalidUserID map centrally; the rest is a 500.
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{User: user})
}
