package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/hrops/payroll-system/docs"
	"github.com/hrops/payroll-system/internal/api/handler"
	"github.com/hrops/payroll-system/internal/api/middleware"
	"github.com/hrops/payroll-system/internal/core/domain"
	"github.com/hrops/payroll-system/internal/core/service"
	"github.com/hrops/payroll-system/internal/infrastructure/config"
	mongodb "github.com/hrops/payroll-system/internal/infrastructure/db/mongo"
	redisdb "github.com/hrops/payroll-system/internal/infrastructure/db/redis"
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
	e.Use(echoprometheus.NewMiddleware("payroll"))

	// --- Dependencies ---
	employeeRepo := mongodb.NewEmployeeRepository(db)
	roleRepo := mongodb.NewRoleRepository(db)
	revoker := redisdb.NewRevocationStore(rdb)

	authService := service.NewAuthService(employeeRepo, roleRepo, revoker, cfg.JWTSecret, cfg.TokenTTL, log)
	employeeService := service.NewEmployeeService(employeeRepo, roleRepo, log)
	roleService := service.NewRoleService(roleRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	employeeHandler := handler.NewEmployeeHandler(employeeService)
	roleHandler := handler.NewRoleHandler(roleService)
	dashboardHandler := handler.NewDashboardHandler(employeeService)

	authRequired := middleware.Auth(cfg.JWTSecret, revoker)
	adminOnly := middleware.RBAC(domain.AuthorityAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout, authRequired)
	e.GET("/auth/current-user", authHandler.CurrentUser, authRequired)

	// --- Dashboard routes ---
	e.GET("/dashboard/user-info", dashboardHandler.UserInfo, authRequired)
	e.GET("/dashboard/complete-profile", dashboardHandler.CompleteProfile, authRequired)

	// --- Employee routes ---
	employees := e.Group("/employees", authRequired)
	employees.GET("", employeeHandler.List, adminOnly)
	employees.POST("", employeeHandler.Create, adminOnly)
	employees.GET("/:id", employeeHandler.Get)
	employees.PUT("/:id", employeeHandler.Replace)
	employees.DELETE("/:id", employeeHandler.Delete, adminOnly)

	// --- Role routes ---
	// TODO: role mutations are open to any authenticated principal; restrict
	// to admins once the access policy for roles is decided.
	roles := e.Group("/roles", authRequired)
	roles.GET("", roleHandler.List)
	roles.POST("", roleHandler.Create)
	roles.GET("/:id", roleHandler.Get)
	roles.PUT("/:id", roleHandler.Replace)
	roles.DELETE("/:id", roleHandler.Delete)

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
