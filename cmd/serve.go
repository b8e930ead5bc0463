package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/errgroup"

	"github.com/portal-comunidad/portal-api/internal/api"
	"github.com/portal-comunidad/portal-api/internal/api/handler"
	"github.com/portal-comunidad/portal-api/internal/core/ports"
	"github.com/portal-comunidad/portal-api/internal/core/service"
	"github.com/portal-comunidad/portal-api/internal/infrastructure/backend"
	"github.com/portal-comunidad/portal-api/internal/infrastructure/db/memory"
	redisstore "github.com/portal-comunidad/portal-api/internal/infrastructure/db/redis"
	"github.com/portal-comunidad/portal-api/internal/pkg/config"
	"github.com/portal-comunidad/portal-api/internal/telemetry"
	"github.com/portal-comunidad/portal-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		log := logger.Init(logger.Options{
			Level:   cfg.LogLevel,
			Pretty:  !cfg.IsProduction(),
			Service: cfg.Telemetry.ServiceName,
		})

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return serve(ctx, cfg, log)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func serve(ctx context.Context, cfg *config.Config, log zerolog.Logger) error {
	shutdownTracing, err := telemetry.NewProvider(ctx, telemetry.Options{
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      version,
		Stdout:       cfg.Telemetry.Stdout,
		StdoutWriter: os.Stderr,
	}, log)
	if err != nil {
		return fmt.Errorf("telemetry: %w", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn().Err(err).Msg("tracing shutdown failed")
		}
	}()

	client, err := backend.NewClient(backend.Config{
		URL:        cfg.Backend.URL,
		AnonKey:    cfg.Backend.AnonKey,
		ServiceKey: cfg.Backend.ServiceKey,
		Timeout:    cfg.Backend.Timeout,
	}, logger.Component("backend"))
	if err != nil {
		return err
	}
	if !client.HasServiceKey() {
		log.Warn().Msg("BACKEND_SERVICE_ROLE_KEY not set; admin user listing is unavailable")
	}

	checks := map[string]handler.HealthCheck{"backend": client.Ping}

	var siteMode ports.SiteModeStore
	if cfg.Redis.Addr != "" {
		rdb, err := redisstore.Connect(ctx, redisstore.Config{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			ClientName: cfg.Telemetry.ServiceName,
		})
		if err != nil {
			return err
		}
		defer rdb.Close()
		siteMode = redisstore.NewSiteModeStore(rdb, cfg.UnderConstruction)
		checks["redis"] = redisstore.Probe(rdb)
	} else {
		siteMode = memory.NewSiteModeStore(cfg.UnderConstruction)
	}

	auth := backend.NewAuthGateway(client)
	roles := backend.NewRoleRepository(client)
	svcLog := logger.Component("service")

	access := service.NewAccessService(auth, roles, cfg.DefaultRoleName, svcLog)
	e := api.NewRouter(api.Services{
		Access:       access,
		Events:       service.NewEventService(backend.NewEventRepository(client), svcLog),
		Archivos:     service.NewArchivoService(backend.NewArchivoRepository(client), svcLog),
		Posts:        service.NewPostService(backend.NewPostRepository(client), svcLog),
		Delegaciones: service.NewDelegacionService(backend.NewDelegacionRepository(client), svcLog),
		Admin:        service.NewAdminService(auth, roles, siteMode, cfg.RoleLookupConcurrency, svcLog),
	}, api.Options{
		SessionCookie:      cfg.SessionCookieName(),
		SiteMode:           siteMode,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
		Production:         cfg.IsProduction(),
		HealthChecks:       checks,
		Log:                logger.Component("http"),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(e, "portal-api"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
