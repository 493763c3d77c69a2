package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/sonnasweet/ordering-system/docs"
	"github.com/sonnasweet/ordering-system/internal/api/handler"
	"github.com/sonnasweet/ordering-system/internal/api/middleware"
	"github.com/sonnasweet/ordering-system/internal/core/domain"
	"github.com/sonnasweet/ordering-system/internal/core/service"
	"github.com/sonnasweet/ordering-system/internal/infrastructure/config"
	"github.com/sonnasweet/ordering-system/internal/infrastructure/db/redis"
	"github.com/sonnasweet/ordering-system/internal/infrastructure/supabase"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The Redis client is optional; without it the rate limiter is disabled.
func NewRouter(sb *supabase.Client, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log, cfg.Env)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins:     []string{cfg.CORS.FrontendURL, cfg.CORS.AdminURL},
		AllowMethods:     []string{echo.GET, echo.POST, echo.PUT, echo.DELETE, echo.PATCH, echo.OPTIONS},
		AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization, "x-refresh-token"},
		AllowCredentials: true,
	}))
	e.Use(echoprometheus.NewMiddleware("ordering"))
	if rdb != nil {
		limiter := redis.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)
		e.Use(middleware.RateLimit(limiter, log))
	}

	// --- Dependencies ---
	users := supabase.NewUserRepository(sb)
	authService := service.NewAuthService(users, sb, cfg.JWTSecret, cfg.JWTExpiry, log)

	authHandler := handler.NewAuthHandler(authService)
	menuHandler := handler.NewMenuHandler()
	orderHandler := handler.NewOrderHandler()
	userHandler := handler.NewUserHandler(users)
	adminHandler := handler.NewAdminHandler(users)
	analyticsHandler := handler.NewAnalyticsHandler()
	uploadHandler := handler.NewUploadHandler(cfg.UploadDir)

	authn := middleware.Auth(sb, users, cfg.JWTSecret)
	adminOnly := middleware.Authorize(domain.RoleAdmin)
	adminOrStaff := middleware.Authorize(domain.RoleAdmin, domain.RoleStaff)

	// --- Routes ---
	v1 := e.Group("/api/" + cfg.APIVersion)

	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout, authn)
	auth.GET("/me", authHandler.Me, authn)

	menu := v1.Group("/menu")
	menu.GET("", menuHandler.List)
	menu.POST("", menuHandler.Create, authn, adminOnly)
	menu.PUT("/:id", menuHandler.Update, authn, adminOnly)
	menu.DELETE("/:id", menuHandler.Delete, authn, adminOnly)

	orders := v1.Group("/orders", authn)
	orders.GET("", orderHandler.List)
	orders.POST("", orderHandler.Create)

	v1.GET("/users", userHandler.List, authn, adminOnly)

	admin := v1.Group("/admin", authn, adminOnly)
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id/status", adminHandler.UpdateUserStatus)

	v1.GET("/analytics/dashboard", analyticsHandler.Dashboard, authn, adminOnly)

	v1.POST("/upload/image", uploadHandler.Image, authn, adminOrStaff)

	// --- Health probes and operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler(cfg.Env, cfg.APIVersion)
	readinessHandler := handler.NewReadinessHandler(sb, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
