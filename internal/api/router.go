package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/portal-comunidad/portal-api/docs"
	"github.com/portal-comunidad/portal-api/internal/api/handler"
	"github.com/portal-comunidad/portal-api/internal/api/middleware"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
)

// Services are the use cases exposed over HTTP.
type Services struct {
	Access       ports.AccessService
	Events       ports.EventService
	Archivos     ports.ArchivoService
	Posts        ports.PostService
	Delegaciones ports.DelegacionService
	Admin        ports.AdminService
}

type Options struct {
	SessionCookie      string
	SiteMode           ports.SiteModeStore
	RateLimitPerMinute int
	Production         bool
	HealthChecks       map[string]handler.HealthCheck
	Log                zerolog.Logger
	// Registry receives the HTTP metrics and backs /metrics. Nil selects the
	// default registry, which also holds the metrics package collectors.
	Registry *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(svc Services, opts Options) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(opts.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(requestLogger(opts.Log))
	var (
		registerer prometheus.Registerer = prometheus.DefaultRegisterer
		gatherer   prometheus.Gatherer   = prometheus.DefaultGatherer
	)
	if opts.Registry != nil {
		registerer, gatherer = opts.Registry, opts.Registry
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "portal",
		Registerer: registerer,
	}))
	e.Use(middleware.SecureHeaders(opts.Production))
	e.Use(middleware.Construction(opts.SiteMode, middleware.DefaultExemptPrefixes, opts.Log))

	// --- Probes, metrics, docs ---
	health := handler.NewHealthHandler(opts.HealthChecks)
	e.GET("/health", health.Liveness)
	e.GET("/health/ready", health.Readiness)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{Gatherer: gatherer}))
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET(middleware.PlaceholderPath, handler.ConstructionPage)

	// --- JSON API ---
	optionalSession := middleware.Session(svc.Access, opts.SessionCookie, false)
	requiredSession := middleware.Session(svc.Access, opts.SessionCookie, true)

	events := handler.NewEventHandler(svc.Events)
	archivos := handler.NewArchivoHandler(svc.Archivos)
	posts := handler.NewPostHandler(svc.Posts)
	delegaciones := handler.NewDelegacionHandler(svc.Delegaciones)
	dashboard := handler.NewDashboardHandler(svc.Access)
	admin := handler.NewAdminHandler(svc.Admin)

	g := e.Group("/api", middleware.RateLimit(opts.RateLimitPerMinute))
	g.GET("/events", events.List, optionalSession)
	g.GET("/events/:id", events.Get, optionalSession)
	g.GET("/posts", posts.List)
	g.GET("/posts/:slug", posts.Get)
	g.GET("/archivos", archivos.List, requiredSession)
	g.GET("/delegaciones", delegaciones.List)
	g.GET("/delegaciones/:slug", delegaciones.Get)
	g.GET("/dashboard/access", dashboard.Access, requiredSession)

	ag := g.Group("/admin", requiredSession, middleware.RequireDashboard(svc.Access))
	ag.GET("/users", admin.ListUsers)
	ag.GET("/roles", admin.ListRoles)
	ag.GET("/site-mode", admin.SiteMode)
	ag.PUT("/site-mode", admin.SetSiteMode)

	return e
}

// requestLogger writes one zerolog event per request.
func requestLogger(log zerolog.Logger) echo.MiddlewareFunc {
	return echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			ev := log.Info()
			switch {
			case v.Status >= 500:
				ev = log.Error()
			case v.Status >= 400:
				ev = log.Warn()
			}
			ev.Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency.Round(time.Microsecond)).
				Str("request_id", v.RequestID).
				Str("remote_ip", v.RemoteIP).
				Msg("request")
			return nil
		},
	})
}
