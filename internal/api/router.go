package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/sens-hq/user-service/docs"
	"github.com/sens-hq/user-service/internal/api/handler"
	"github.com/sens-hq/user-service/internal/api/middleware"
	"github.com/sens-hq/user-service/internal/core/domain"
	"github.com/sens-hq/user-service/internal/core/service"
	"github.com/sens-hq/user-service/internal/infrastructure/config"
	mongouser "github.com/sens-hq/user-service/internal/infrastructure/db/mongo"
	redisdb "github.com/sens-hq/user-service/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("users"))

	// --- Dependencies ---
	userRepo := mongouser.NewUserRepository(db)
	hasher := service.NewBcryptHasher(cfg.Bcrypt.Cost)
	tokens := service.NewJWTService(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := service.NewAuthService(userRepo, hasher, tokens, log)
	userService := service.NewUserService(userRepo, hasher, log)

	authHandler := handler.NewAuthHandler(authService, userService)
	userHandler := handler.NewUserHandler(userService)

	authenticate := middleware.Auth(tokens, log)
	adminOnly := middleware.RequireRole(domain.RoleAdmin)
	throttle := middleware.RateLimit(
		redisdb.NewRateLimitStore(rdb),
		cfg.RateLimit.Max,
		cfg.RateLimit.Window,
		log,
	)

	// --- Public routes (throttled) ---
	users := e.Group("/api/users")
	users.POST("/register", authHandler.Register, throttle)
	users.POST("/login", authHandler.Login, throttle)

	// --- Protected routes ---
	users.GET("/profile", authHandler.Profile, authenticate)

	// --- Admin routes ---
	users.GET("", userHandler.List, authenticate, adminOnly)
	users.GET("/:id", userHandler.Get, authenticate, adminOnly)
	users.PATCH("/:id", userHandler.Update, authenticate, adminOnly)
	users.DELETE("/:id", userHandler.Delete, authenticate, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
