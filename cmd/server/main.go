// Command server runs the portal gateway: it owns browser sessions and
// role-gated routing for the GameTime booking portal and delegates every data
// operation to the upstream QuickCourt API.
//
// @title        GameTime Portal Gateway API
// @version      1.0
// @description  Session, route authorization and upstream delegation for the GameTime booking portal.
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sonalgupta2005/game-time-go/internal/api"
	"github.com/Sonalgupta2005/game-time-go/internal/backend"
	"github.com/Sonalgupta2005/game-time-go/internal/core/ports"
	mongostore "github.com/Sonalgupta2005/game-time-go/internal/infrastructure/db/mongo"
	redisstore "github.com/Sonalgupta2005/game-time-go/internal/infrastructure/db/redis"
	healthhandlers "github.com/Sonalgupta2005/game-time-go/internal/infrastructure/http/handlers"
	"github.com/Sonalgupta2005/game-time-go/internal/infrastructure/queue"
	"github.com/Sonalgupta2005/game-time-go/internal/pkg/config"
	"github.com/Sonalgupta2005/game-time-go/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		// Logger is not up yet.
		fmt.Fprintln(os.Stderr, "fatal:", err)
		os.Exit(1)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	if cfg.JWTSecret == "" {
		if cfg.Env != "development" {
			log.Fatal().Msg("JWT_SECRET is required outside development")
		}
		cfg.JWTSecret = "dev-only-secret"
		log.Warn().Msg("JWT_SECRET not set, using development default")
	}

	// --- Session store ---
	var (
		repo       ports.SessionRepository
		storeCheck healthhandlers.Check
		closeStore func()
	)
	switch cfg.SessionStore {
	case "mongo":
		client, db, err := mongostore.Connect(ctx, mongostore.Config{
			URI:      cfg.Mongo.URI,
			Database: cfg.Mongo.Database,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("mongo connection failed")
		}
		repo = mongostore.NewSessionRepository(db)
		storeCheck = func(ctx context.Context) error { return client.Ping(ctx, nil) }
		closeStore = func() { _ = client.Disconnect(context.Background()) }
	default:
		client, err := redisstore.Connect(ctx, redisstore.Config{
			Addr: cfg.Redis.Addr,
			DB:   cfg.Redis.DB,
		})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		repo = redisstore.NewSessionRepository(client, cfg.SessionTTL)
		storeCheck = func(ctx context.Context) error { return client.Ping(ctx).Err() }
		closeStore = func() { _ = client.Close() }
	}
	defer closeStore()

	// --- Upstream clients ---
	upstream := backend.NewClient(cfg.UpstreamURL, log)

	// --- Activity dispatcher ---
	dispatcher := queue.NewDispatcher(cfg.ActivityWorkers, backend.NewActivityClient(upstream), log)
	dispatcher.Start(ctx)

	// --- Router ---
	e := api.NewRouter(api.Deps{
		SessionRepo: repo,
		Auth:        backend.NewAuthClient(upstream),
		Venues:      backend.NewVenueClient(upstream),
		Bookings:    backend.NewBookingClient(upstream),
		Profiles:    backend.NewProfileClient(upstream),
		Reviews:     backend.NewReviewClient(upstream),
		Facility:    backend.NewFacilityClient(upstream),
		Admin:       backend.NewAdminClient(upstream),
		Activity:    dispatcher,
		Health: healthhandlers.NewHealthHandler(map[string]healthhandlers.Check{
			"session_store": storeCheck,
			"upstream":      upstream.Ping,
		}),
		JWTSecret:          cfg.JWTSecret,
		CookieName:         cfg.CookieName,
		SessionTTL:         cfg.SessionTTL,
		AdminAccessKeyHash: cfg.AdminAccessKeyHash,
		Logger:             log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("portal gateway listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
