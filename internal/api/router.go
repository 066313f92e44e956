package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/userauth/auth-api/internal/api/handler"
	"github.com/userauth/auth-api/internal/api/middleware"
	"github.com/userauth/auth-api/internal/core/ports"
	"github.com/userauth/auth-api/internal/core/token"
)

// Deps carries everything the router wires into handlers. Services are
// interfaces so tests can run the full route table against stubs; Mongo and
// Redis are only used by the readiness probe and may be nil in tests.
type Deps struct {
	Auth   ports.AuthService
	Users  ports.UserService
	Tokens *token.Manager
	Log    zerolog.Logger

	Mongo *mongo.Database
	Redis *redis.Client
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("userauth"))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users, d.Log)
	authMiddleware := middleware.Auth(d.Tokens)

	// --- Public routes ---
	e.GET("/", userHandler.Root)
	e.POST("/cadastro", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Protected routes ---
	e.GET("/user/:id", userHandler.GetProfile, authMiddleware)

	// --- Operational surface ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/health", handler.NewHealthHandler().Liveness)
	if d.Mongo != nil {
		e.GET("/health/ready", handler.NewHealthDependenciesHandler(d.Mongo, d.Redis).Readiness)
	}

	return e
}
