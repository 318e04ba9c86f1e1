package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/crudify/crudify-server/internal/api/handler"
	"github.com/crudify/crudify-server/internal/api/middleware"
	"github.com/crudify/crudify-server/internal/core/service"
	"github.com/crudify/crudify-server/internal/infrastructure/config"
	mongodb "github.com/crudify/crudify-server/internal/infrastructure/db/mongo"
	redisdb "github.com/crudify/crudify-server/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("crudify"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL, log)
	productService := service.NewProductService(productRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	productHandler := handler.NewProductHandler(productService)

	authMiddleware := middleware.Auth(cfg.JWTSecret)
	authLimiter := redisdb.NewRateLimiter(rdb, cfg.RateLimit.AuthLimit, cfg.RateLimit.AuthWindow)
	authRateLimit := middleware.RateLimit("auth", authLimiter, log)

	apiGroup := e.Group("/api")

	// --- Auth routes ---
	auth := apiGroup.Group("/auth")
	auth.POST("/register", authHandler.Register, authRateLimit)
	auth.POST("/login", authHandler.Login, authRateLimit)
	auth.GET("/me", authHandler.Me, authMiddleware)

	// --- Product routes ---
	products := apiGroup.Group("/products")
	products.GET("", productHandler.List)
	products.POST("", productHandler.Create)
	products.GET("/search", productHandler.Search)
	products.GET("/quantity", productHandler.MinQuantity)
	products.GET("/:id", productHandler.Get)
	products.PUT("/:id", productHandler.Update)
	products.DELETE("/:id", productHandler.Delete)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
