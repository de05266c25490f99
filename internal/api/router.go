package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/agrovia/farm-management/internal/api/handler"
	"github.com/agrovia/farm-management/internal/api/middleware"
	"github.com/agrovia/farm-management/internal/core/domain"
	"github.com/agrovia/farm-management/internal/core/ports"
	"github.com/agrovia/farm-management/internal/core/service"
	"github.com/agrovia/farm-management/internal/infrastructure/config"
	mongodb "github.com/agrovia/farm-management/internal/infrastructure/db/mongo"
	redisdb "github.com/agrovia/farm-management/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// queue may be nil when notifications are disabled.
func NewRouter(
	db *mongodriver.Database,
	rdb *redis.Client,
	cfg *config.Config,
	queue ports.NotificationQueue,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("farm"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	farmRepo := mongodb.NewFarmRepository(db)
	cropRepo := mongodb.NewCropRepository(db)
	dashboardRepo := mongodb.NewDashboardRepository(db)
	calendarRepo := mongodb.NewCalendarRepository(db)
	healthRepo := mongodb.NewFarmHealthRepository(db)
	denylist := redisdb.NewTokenDenylist(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, denylist, cfg.JWTSecret, cfg.TokenTTL)
	userService := service.NewUserService(userRepo)
	farmService := service.NewFarmService(farmRepo, cropRepo, dashboardRepo, healthRepo, log)
	cropService := service.NewCropService(cropRepo, farmRepo)
	dashboardService := service.NewDashboardService(dashboardRepo, farmRepo, userRepo, cropRepo, calendarRepo)
	calendarService := service.NewCalendarService(calendarRepo, queue, log)
	healthService := service.NewFarmHealthService(healthRepo, farmRepo)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	farmHandler := handler.NewFarmHandler(farmService)
	cropHandler := handler.NewCropHandler(cropService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	healthHandler := handler.NewFarmHealthHandler(healthService)

	authMiddleware := middleware.Auth(cfg.JWTSecret, denylist)

	// --- Public routes ---
	e.POST("/v1/auth/signup", authHandler.Signup)
	e.POST("/v1/auth/login", authHandler.Login)

	// --- Probes and metrics (no auth required) ---
	liveness := handler.NewHealthHandler()
	readiness := handler.NewReadinessHandler(db, rdb)
	e.GET("/health", liveness.Liveness)
	e.GET("/health/ready", readiness.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Authenticated routes ---
	v1 := e.Group("/v1", authMiddleware)

	v1.POST("/auth/logout", authHandler.Logout)
	v1.GET("/me", userHandler.Me)
	v1.PUT("/me", userHandler.UpdateMe)

	v1.GET("/farms", farmHandler.List)
	v1.POST("/farms", farmHandler.Create)
	v1.GET("/farms/:id", farmHandler.Get)
	v1.PUT("/farms/:id", farmHandler.Update)
	v1.DELETE("/farms/:id", farmHandler.Delete)

	v1.GET("/farms/:id/crops", cropHandler.List)
	v1.POST("/farms/:id/crops", cropHandler.Create)
	v1.PUT("/crops/:id", cropHandler.Update)
	v1.DELETE("/crops/:id", cropHandler.Delete)

	v1.GET("/farms/:id/dashboard", dashboardHandler.GetFarmDashboard)
	v1.PUT("/farms/:id/dashboard", dashboardHandler.PutFarmDashboard)

	v1.GET("/farms/:id/health", healthHandler.Get)
	v1.PUT("/farms/:id/health", healthHandler.Put, middleware.RBAC(domain.RoleAdmin))

	v1.GET("/events", calendarHandler.List)
	v1.POST("/events", calendarHandler.Create)
	v1.PUT("/events/:id", calendarHandler.Update)
	v1.DELETE("/events/:id", calendarHandler.Delete)

	// --- Role-scoped dashboard areas (303 on mismatch) ---
	admin := v1.Group("/admin", middleware.RoleRedirect(domain.RoleAdmin))
	admin.GET("/dashboard", dashboardHandler.AdminHome)
	admin.GET("/users", userHandler.List)
	admin.POST("/users", userHandler.Create)
	admin.PUT("/users/:id", userHandler.Update)
	admin.DELETE("/users/:id", userHandler.Delete)

	client := v1.Group("/client", middleware.RoleRedirect(domain.RoleClient))
	client.GET("/dashboard", dashboardHandler.ClientHome)

	return e
}
