package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	_ "github.com/ghuser/orderdesk/docs/swagger"
	"github.com/ghuser/orderdesk/pkg/app"
	"github.com/ghuser/orderdesk/pkg/auth"
	"github.com/ghuser/orderdesk/pkg/config"
	"github.com/ghuser/orderdesk/pkg/database"
	"github.com/ghuser/orderdesk/pkg/errhttp"
	"github.com/ghuser/orderdesk/pkg/httpx"
	"github.com/ghuser/orderdesk/pkg/kvstore"
	"github.com/ghuser/orderdesk/pkg/logger"
	"github.com/ghuser/orderdesk/pkg/telemetry"
	catalogApi "github.com/ghuser/orderdesk/services/catalog/application/api"
	catalogsvcs "github.com/ghuser/orderdesk/services/catalog/application/services"
	directoryApi "github.com/ghuser/orderdesk/services/directory/application/api"
	directorysvcs "github.com/ghuser/orderdesk/services/directory/application/services"
	orderApi "github.com/ghuser/orderdesk/services/order/application/api"
	ordersvcs "github.com/ghuser/orderdesk/services/order/application/services"
)

// @title			Orderdesk API
// @version		1.0
// @description	Order entry, product catalog and user administration for a small shop.
// @license.name	MIT
// @license.url	https://opensource.org/licenses/MIT
// @host			localhost:8080
// @BasePath		/api
// @schemes		http https
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := config.ValidateForProduction(cfg); err != nil {
		slog.Error("production config validation failed", "error", err)
		os.Exit(1)
	}

	log := logger.New(cfg)

	reportLoc, err := cfg.ReportLocation()
	if err != nil {
		log.Error("invalid report timezone", "error", err)
		os.Exit(1)
	}

	// Telemetry: OTel tracing + metrics
	ctx := context.Background()
	otelShutdown, metricsHandler, err := telemetry.Setup(ctx, cfg)
	if err != nil {
		log.Error("failed to setup otel", "error", err)
		os.Exit(1)
	}
	defer otelShutdown(ctx) //nolint:errcheck

	// Crash reporting: Sentry (optional, log and continue on failure)
	if err := telemetry.SetupSentry(cfg); err != nil {
		log.Warn("failed to setup sentry, continuing without crash reporting", "error", err)
	}
	defer telemetry.SentryFlush()

	db, err := database.New(ctx, cfg.DatabaseDriver, cfg.DatabaseURL, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1) //nolint:gocritic // intentional: startup failure, deferred flushes are best-effort
	}
	defer db.Close() //nolint:errcheck
	log.Info("database connected", "driver", cfg.DatabaseDriver)

	secureCookie := cfg.Environment == config.EnvProduction
	var (
		redisClient  *kvstore.RedisClient
		sessionStore sessions.Store
	)
	switch cfg.SessionBackend {
	case config.SessionBackendCookie:
		sessionStore = auth.NewCookieSessionStore(
			[]byte(cfg.SessionAuthKey),
			[]byte(cfg.SessionEncryptionKey),
			secureCookie,
		)
	default:
		redisClient, err = kvstore.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Error("failed to connect to redis", "error", err)
			os.Exit(1) //nolint:gocritic // intentional: startup failure
		}
		defer redisClient.Close() //nolint:errcheck
		log.Info("redis connected")

		sessionStore = auth.NewSessionStore(
			redisClient.Client(),
			[]byte(cfg.SessionAuthKey),
			[]byte(cfg.SessionEncryptionKey),
			secureCookie,
		)
	}
	log.Info("session store initialized", "backend", cfg.SessionBackend)

	appConfig := &app.Application{
		Config:         cfg,
		Db:             db,
		Logger:         log,
		Redis:          redisClient,
		SessionStore:   sessionStore,
		ReportLocation: reportLoc,
	}
	errhttp.SetProduction(appConfig.IsProduction())

	r := httpx.NewRouter(
		httpx.ServerConfig{
			ServiceName:        cfg.ServiceName,
			IsDevelopment:      cfg.Environment == config.EnvDevelopment,
			CORSAllowedOrigins: cfg.CORSAllowedOrigins,
		},
		logger.Middleware(log),
		logger.Recovery(log),
		telemetry.SentryMiddleware(),
		otelhttp.NewMiddleware(cfg.ServiceName),
	)

	checks := httpx.HealthChecks{Database: db}
	if redisClient != nil {
		checks.Redis = redisClient
	}
	r.Get("/health", httpx.HealthHandler(checks))
	r.Get("/metrics", metricsHandler.ServeHTTP)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	r.Route("/api", func(r chi.Router) {
		registerRoutes(r, appConfig)
	})

	srv := httpx.NewServer(cfg.HTTPAddr, r)

	go func() {
		log.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("forced shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server stopped")
}

// registerRoutes mounts all service routes under /api.
// Add each new service's route function here.
func registerRoutes(r chi.Router, a *app.Application) {
	catalog := catalogsvcs.New(a)
	directory := directorysvcs.New(a)
	orders := ordersvcs.New(a, catalog, directory)

	directoryApi.PublicRoutes(r, a, directory)

	r.Group(func(r chi.Router) {
		r.Use(auth.RequireAuth(a.SessionStore, directory.User, a.Logger))
		directoryApi.DirectoryRoutes(r, a, directory)
		catalogApi.ProductRoutes(r, a, catalog)
		orderApi.OrderRoutes(r, a, orders)
	})
}
