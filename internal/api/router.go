package api

import (
	"strings"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/oficina/workshop/docs" // swagger spec registration
	"github.com/oficina/workshop/internal/api/handler"
	"github.com/oficina/workshop/internal/api/middleware"
	"github.com/oficina/workshop/internal/core/domain"
	"github.com/oficina/workshop/internal/core/ports"
	infrahttp "github.com/oficina/workshop/internal/infrastructure/http"
	"github.com/oficina/workshop/internal/infrastructure/http/handlers"
	"github.com/oficina/workshop/internal/web"
)

const metricsSubsystem = "oficina"

// Deps is everything the router needs. The use cases are shared by the JSON
// API and the HTML pages.
type Deps struct {
	Auth      ports.AuthService
	Users     ports.UserService
	Vehicles  ports.VehicleService
	Lifecycle ports.LifecycleService
	Quotes    ports.QuoteService
	Dashboard ports.DashboardService
	History   ports.HistoryService

	Sessions ports.SessionStore
	Session  web.SessionConfig
	Renderer echo.Renderer

	// Checks are the readiness probes, keyed by dependency name.
	Checks map[string]handlers.Check
	// Registry receives the HTTP metrics. Nil uses the default registry.
	Registry *prometheus.Registry

	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.Renderer = d.Renderer
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(middleware.RequestLogger(d.Logger))
	e.Use(prometheusMiddleware(d.Registry))

	// --- Observability (no auth required) ---
	e.GET("/metrics", prometheusHandler(d.Registry))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	infrahttp.RegisterHealthRoutes(e, d.Checks)

	// --- JSON API ---
	authHandler := handler.NewAuthHandler(d.Auth)
	userHandler := handler.NewUserHandler(d.Users)
	vehicleHandler := handler.NewVehicleHandler(d.Vehicles)
	serviceHandler := handler.NewServiceHandler(d.Lifecycle, d.Quotes, d.History)
	dashboardHandler := handler.NewDashboardHandler(d.Dashboard)

	g := e.Group("/api")
	g.POST("/auth/registro", authHandler.Register)
	g.POST("/auth/login", authHandler.Login)

	p := g.Group("", middleware.Auth(d.Auth))
	p.GET("/auth/perfil", authHandler.Profile)
	p.GET("/dashboard", dashboardHandler.Get)

	p.GET("/usuarios", userHandler.List)
	p.GET("/usuarios/:id", userHandler.Get)
	p.POST("/usuarios", userHandler.Create, middleware.RequireAccess(domain.ResourceUser, domain.ActionCreate))
	p.PUT("/usuarios/:id", userHandler.Update)
	p.DELETE("/usuarios/:id", userHandler.Delete, middleware.RequireAccess(domain.ResourceUser, domain.ActionDelete))

	p.GET("/veiculos", vehicleHandler.List)
	p.GET("/veiculos/:id", vehicleHandler.Get)
	p.POST("/veiculos", vehicleHandler.Create, middleware.RequireAccess(domain.ResourceVehicle, domain.ActionCreate))
	p.PUT("/veiculos/:id", vehicleHandler.Update, middleware.RequireAccess(domain.ResourceVehicle, domain.ActionUpdate))
	p.DELETE("/veiculos/:id", vehicleHandler.Delete, middleware.RequireAccess(domain.ResourceVehicle, domain.ActionDelete))

	p.GET("/servicos", serviceHandler.List)
	p.GET("/servicos/:id", serviceHandler.Get)
	p.POST("/servicos", serviceHandler.Create)
	p.PUT("/servicos/:id", serviceHandler.Update, middleware.RequireAccess(domain.ResourceService, domain.ActionUpdate))
	p.POST("/servicos/:id/orcamento", serviceHandler.CreateQuote, middleware.RequireAccess(domain.ResourceQuote, domain.ActionCreate))
	p.GET("/servicos/:id/orcamentos", serviceHandler.ListQuotes)
	p.GET("/servicos/:id/historico", serviceHandler.History)
	p.POST("/orcamentos/:id/aprovar", serviceHandler.ApproveQuote, middleware.RequireAccess(domain.ResourceQuote, domain.ActionApprove))

	// --- HTML frontend ---
	if d.Sessions != nil && d.Renderer != nil {
		web.NewHandler(web.Services{
			Auth:      d.Auth,
			Users:     d.Users,
			Vehicles:  d.Vehicles,
			Lifecycle: d.Lifecycle,
			Quotes:    d.Quotes,
			Dashboard: d.Dashboard,
			History:   d.History,
		}, d.Sessions, d.Session, d.Logger).Mount(e)
	}

	return e
}

func prometheusMiddleware(reg *prometheus.Registry) echo.MiddlewareFunc {
	cfg := echoprometheus.MiddlewareConfig{
		Subsystem: metricsSubsystem,
		Skipper: func(c echo.Context) bool {
			path := c.Path()
			return path == "/metrics" || strings.HasPrefix(path, "/health")
		},
	}
	if reg != nil {
		cfg.Registerer = reg
	}
	return echoprometheus.NewMiddlewareWithConfig(cfg)
}

func prometheusHandler(reg *prometheus.Registry) echo.HandlerFunc {
	if reg == nil {
		return echoprometheus.NewHandler()
	}
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: reg})
}
