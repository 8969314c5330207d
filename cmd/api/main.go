package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/BruksfildServices01/venue-site/internal/auth"
	"github.com/BruksfildServices01/venue-site/internal/cache"
	"github.com/BruksfildServices01/venue-site/internal/config"
	dbpkg "github.com/BruksfildServices01/venue-site/internal/db"
	infraRepo "github.com/BruksfildServices01/venue-site/internal/infra/repository"
	"github.com/BruksfildServices01/venue-site/internal/logging"
	"github.com/BruksfildServices01/venue-site/internal/middleware"
	"github.com/BruksfildServices01/venue-site/internal/routes"
	"github.com/BruksfildServices01/venue-site/internal/storage"
	ucAuth "github.com/BruksfildServices01/venue-site/internal/usecase/auth"
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func main() {
	cfg := config.Load()
	logger := logging.New(cfg)
	slog.SetDefault(logger)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	if cfg.JWTSecretFallback {
		logger.Warn("JWT_SECRET is not set, using the development fallback secret")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := dbpkg.Connect(cfg)
	if err != nil {
		logger.Error("database unavailable", "error", err)
		os.Exit(1)
	}
	if err := dbpkg.Migrate(db); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}

	repos := routes.Repositories{
		Appointments: infraRepo.NewAppointmentGormRepository(db),
		Games:        infraRepo.NewGameGormRepository(db),
		Entries:      infraRepo.NewHallOfShameGormRepository(db),
		Users:        infraRepo.NewUserGormRepository(db),
	}

	if _, err := ucAuth.NewBootstrap(repos.Users, logger).Execute(ctx); err != nil {
		logger.Error("bootstrap failed", "error", err)
		os.Exit(1)
	}

	deps := routes.Deps{
		Config: cfg,
		Logger: logger,
		Repos:  repos,
		Tokens: auth.NewTokenService(cfg.JWTSecret),
	}

	if cfg.RedisURL != "" {
		store, err := cache.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			// the cache is an optimisation, serve without it
			logger.Warn("redis unavailable, response cache disabled", "error", err)
		} else {
			defer store.Close()
			deps.Cache = store
		}
	}

	if cfg.UploadsEnabled() {
		deps.Objects = storage.NewS3Store(cfg)
	} else {
		logger.Info("S3_BUCKET not set, image uploads disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	deps.Gatherer = reg

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(logger),
		middleware.NewMetrics(reg).Middleware(),
	)

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	go func() {
		logger.Info("server running", "addr", cfg.Addr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
	logger.Info("server stopped")
}
