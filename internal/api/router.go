package api

import (
	"database/sql"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"

	_ "github.com/VitalijsFilipovs/auth-service/docs"
	"github.com/VitalijsFilipovs/auth-service/internal/api/handler"
	"github.com/VitalijsFilipovs/auth-service/internal/api/middleware"
	"github.com/VitalijsFilipovs/auth-service/internal/core/service"
	"github.com/VitalijsFilipovs/auth-service/internal/infrastructure/config"
	"github.com/VitalijsFilipovs/auth-service/internal/infrastructure/db/postgres"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("auth"))

	// --- Dependencies ---
	userRepo := postgres.NewUserRepository(db)
	tokenService := service.NewJWTService(cfg.JWTSecret, cfg.TokenTTL())
	authService := service.NewAuthService(userRepo, tokenService)
	gate := service.NewGate(tokenService, userRepo)

	authHandler := handler.NewAuthHandler(authService)
	dataHandler := handler.NewDataHandler()
	requireAuth := middleware.Auth(gate)

	// --- Auth routes ---
	e.POST("/register", authHandler.Register)
	e.POST("/login", authHandler.Login)

	// --- Data routes ---
	e.GET("/public-data", dataHandler.Public)
	e.GET("/private-data", dataHandler.Private, requireAuth)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?

	// --- Ops endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
