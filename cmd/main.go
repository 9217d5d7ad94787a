package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"saasboard/internal/caching"
	"saasboard/internal/config"
	"saasboard/internal/handlers"
	"saasboard/internal/logger"
	"saasboard/internal/metrics"
	"saasboard/internal/repositories"
	"saasboard/internal/services"
	"saasboard/pkg/database"
)

//go:generate swag init --dir ../ --generalInfo cmd/main.go --output ../internal/docs --outputTypes go

// @title                       SaaSBoard API
// @version                     1.0
// @description                 Multi-tenant project and task management backend.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := run(); err != nil {
		log.Fatalf("saasboard: %v", err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	zlog, err := logger.InitLogger(cfg.Server.Env, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.JWT.Generated {
		zlog.Warn("JWT_SECRET not set, using a generated secret; issued tokens will not survive a restart")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database.URL, database.Options{
		MaxConns: int32(cfg.Database.MaxConns),
		MinConns: int32(cfg.Database.MinConns),
	})
	if err != nil {
		return err
	}
	defer database.ClosePool(pool)

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, pool); err != nil {
			return err
		}
		zlog.Info("Database schema applied")
	}

	var (
		redisPinger handlers.Pinger
		throttle    services.LoginThrottle
	)
	if cfg.Redis.Addr != "" {
		cache := caching.NewRedisCacheService(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer cache.Close()
		if err := cache.Ping(ctx); err != nil {
			zlog.Warn("Redis unavailable, login throttling fails open until it recovers", zap.Error(err))
		}
		redisPinger = cache
		throttle = services.NewLoginThrottle(cache, cfg.Redis.LoginMaxAttempts, cfg.Redis.LoginWindow)
	} else {
		zlog.Info("REDIS_ADDR not set, login throttling disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(reg, "saasboard")

	store := repositories.NewStore(pool)
	quota := services.NewQuotaService(m)

	e := newServer(cfg, zlog, m, serverDeps{
		Auth: services.NewAuthService(store, services.TokenConfig{
			Secret: cfg.JWT.Secret,
			Issuer: cfg.JWT.Issuer,
			TTL:    cfg.JWT.TTL,
		}, throttle, m),
		Tenants:  services.NewTenantService(store, m),
		Users:    services.NewUserService(store, quota),
		Projects: services.NewProjectService(store, quota),
		Tasks:    services.NewTaskService(store),
		DB:       pool,
		Redis:    redisPinger,
	})

	serverErr := make(chan error, 1)
	go func() {
		zlog.Info("Starting server", zap.String("port", cfg.Server.Port), zap.String("env", cfg.Server.Env))
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
	}

	zlog.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}
