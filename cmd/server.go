package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"

	"saasboard/internal/common"
	"saasboard/internal/config"
	_ "saasboard/internal/docs"
	"saasboard/internal/handlers"
	"saasboard/internal/logger"
	"saasboard/internal/metrics"
	"saasboard/internal/middleware"
	"saasboard/internal/services"
)

type serverDeps struct {
	Auth     services.AuthService
	Tenants  services.TenantService
	Users    services.UserService
	Projects services.ProjectService
	Tasks    services.TaskService
	DB       handlers.Pinger
	Redis    handlers.Pinger
}

func newServer(cfg *config.Config, zlog *zap.Logger, m *metrics.Metrics, deps serverDeps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Binder = &common.StrictBinder{}
	e.Validator = common.RequestValidator{}
	e.HTTPErrorHandler = common.HTTPErrorHandler
	if cfg.Server.TrustProxy {
		e.IPExtractor = echo.ExtractIPFromXFFHeader()
	} else {
		e.IPExtractor = echo.ExtractIPDirect()
	}

	e.Pre(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.RequestID())
	e.Use(logger.Middleware(zlog))
	e.Use(m.Middleware())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{cfg.Server.FrontendURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	e.GET("/metrics", m.Handler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authHandlers := handlers.NewAuthHandlers(deps.Auth)
	tenantHandlers := handlers.NewTenantHandlers(deps.Tenants)
	userHandlers := handlers.NewUserHandlers(deps.Users)
	projectHandlers := handlers.NewProjectHandlers(deps.Projects)
	taskHandlers := handlers.NewTaskHandlers(deps.Tasks)
	healthHandlers := handlers.NewHealthHandlers(deps.DB, deps.Redis)

	api := e.Group("/api", middleware.VersionHeader(middleware.APIVersion))
	api.GET("/health", healthHandlers.HealthCheck)

	limiter := middleware.NewIPRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	api.POST("/auth/login", authHandlers.Login, limiter.Middleware())
	api.POST("/auth/register-tenant", tenantHandlers.RegisterTenant, limiter.Middleware())

	// applied per route so unknown /api paths still answer 404
	authed := []echo.MiddlewareFunc{
		middleware.JWTMiddleware(deps.Auth),
		middleware.TenantIsolation(m),
		middleware.AuditTrail(),
	}
	adminOnly := func(action string) []echo.MiddlewareFunc {
		return append(authed[:len(authed):len(authed)], middleware.RequireTenantAdmin(action))
	}

	api.GET("/auth/me", authHandlers.Me, authed...)

	api.POST("/users", userHandlers.CreateUser, adminOnly("create users")...)
	api.GET("/users", userHandlers.ListUsers, authed...)
	api.PATCH("/users/:id", userHandlers.UpdateUser, adminOnly("update users")...)
	api.DELETE("/users/:id", userHandlers.DeleteUser, adminOnly("delete users")...)

	api.POST("/projects", projectHandlers.CreateProject, adminOnly("create projects")...)
	api.GET("/projects", projectHandlers.ListProjects, authed...)
	api.PATCH("/projects/:id", projectHandlers.UpdateProject, authed...)
	api.DELETE("/projects/:id", projectHandlers.DeleteProject, authed...)

	api.POST("/tasks", taskHandlers.CreateTask, authed...)
	api.GET("/tasks", taskHandlers.ListTasks, authed...)
	api.PATCH("/tasks/:id", taskHandlers.UpdateTask, authed...)
	api.DELETE("/tasks/:id", taskHandlers.DeleteTask, authed...)

	return e
}
