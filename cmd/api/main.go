package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/flickstack/rental-api/internal/audit"
	"github.com/flickstack/rental-api/internal/config"
	"github.com/flickstack/rental-api/internal/infrastructure/postgres"
	"github.com/flickstack/rental-api/internal/infrastructure/rabbitmq"
	"github.com/flickstack/rental-api/internal/infrastructure/redis"
	"github.com/flickstack/rental-api/internal/pkg/logger"
	"github.com/flickstack/rental-api/internal/service"
	"github.com/flickstack/rental-api/internal/transport/rest"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	if cfg.LogLevel != "" {
		_ = os.Setenv("LOG_LEVEL", cfg.LogLevel)
	}

	logger.Init()
	log := logger.Logger.With().
		Str("service", "rental-api").
		Str("env", cfg.AppEnv).
		Logger()

	// Root ctx with signal cancellation
	rootCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ---- Postgres ----
	dbPool, err := pgxpool.New(rootCtx, cfg.DBDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres pool create failed")
	}
	defer dbPool.Close()

	{
		pingCtx, cancel := context.WithTimeout(rootCtx, 5*time.Second)
		defer cancel()

		if err := dbPool.Ping(pingCtx); err != nil {
			log.Fatal().Err(err).Msg("postgres ping failed")
		}
		log.Info().Msg("postgres connected")
	}

	users := postgres.NewUserRepository(dbPool)
	customers := postgres.NewCustomerRepository(dbPool)
	movies := postgres.NewMovieRepository(dbPool)
	bootstrap := postgres.NewBootstrap(dbPool)

	// ---- Redis (rate limiting; best-effort) ----
	cache := redis.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	{
		pingCtx, cancel := context.WithTimeout(rootCtx, 2*time.Second)
		defer cancel()

		if err := cache.Client.Ping(pingCtx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed (continuing)")
		} else {
			log.Info().Msg("redis connected")
		}
	}

	// ---- RabbitMQ (staff events; optional) ----
	var publisher service.EventPublisher
	if cfg.RabbitURL != "" {
		pub, err := rabbitmq.NewPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			log.Warn().Err(err).Msg("rabbitmq connect failed (events disabled)")
		} else {
			defer pub.Close()
			publisher = pub
			log.Info().Msg("rabbitmq connected")
		}
	}

	// ---- Application services ----
	auditLog := audit.New(log)
	authSvc := service.NewAuth(users, cfg.SessionIdleTimeout, auditLog, publisher)
	userSvc := service.NewUsers(users, cfg.SessionIdleTimeout, auditLog, publisher)
	customerSvc := service.NewCustomers(customers)
	movieSvc := service.NewMovies(movies)
	healthSvc := service.NewHealth(bootstrap)

	// ---- Router ----
	deps := rest.RouterDeps{
		Sessions:  authSvc,
		Auth:      rest.NewAuthHandler(authSvc),
		Users:     rest.NewUserHandler(userSvc),
		Customers: rest.NewCustomerHandler(customerSvc),
		Movies:    rest.NewMovieHandler(movieSvc),
		Health:    rest.NewHealthHandler(healthSvc),
	}
	if cfg.RLEnabled {
		deps.Cache = cache
		deps.RLLimit = cfg.RLLimit
		deps.RLWindow = cfg.RLWindow
	}
	httpHandler := rest.NewRouter(deps)

	// ---- HTTP server ----
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           httpHandler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.Port).Msg("http server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-rootCtx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("http server crashed")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
	log.Info().Msg("shutdown complete")
}
