// Command server runs the workshop JSON API and HTML frontend.
//
// @title           Oficina API
// @version         1.0
// @description     Auto repair workshop: vehicles, service lifecycle and quotes.
// @BasePath        /api
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/oficina/workshop/internal/api"
	"github.com/oficina/workshop/internal/api/metrics"
	"github.com/oficina/workshop/internal/core/service"
	"github.com/oficina/workshop/internal/infrastructure/config"
	mongodb "github.com/oficina/workshop/internal/infrastructure/db/mongo"
	"github.com/oficina/workshop/internal/infrastructure/db/postgres"
	redisdb "github.com/oficina/workshop/internal/infrastructure/db/redis"
	"github.com/oficina/workshop/internal/infrastructure/http/handlers"
	"github.com/oficina/workshop/internal/infrastructure/queue"
	"github.com/oficina/workshop/internal/web"
	"github.com/oficina/workshop/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		log := logger.Get()
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
		App:    "oficina",
	})

	db, err := postgres.Connect(ctx, postgres.Config{
		DSN:    cfg.Database.DSN,
		Logger: logger.NewGormLogger(log, cfg.Database.Debug),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("postgres unavailable")
	}
	defer func() { _ = postgres.Close(db) }()

	mdb, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  "oficina",
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo unavailable")
	}
	eventRepo := mongodb.NewEventRepository(mdb)
	if err := eventRepo.EnsureIndexes(ctx); err != nil {
		log.Warn().Err(err).Msg("could not create history index")
	}

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis unavailable")
	}
	defer func() { _ = rdb.Close() }()

	// Audit writes happen off the request path.
	dispatcher := queue.NewDispatcher(cfg.Audit.Workers, eventRepo, metrics.QueueObserver{}, logger.Component(log, "audit"))
	dispatcher.Start(ctx)
	events := metrics.NewRecorder(dispatcher)

	users := postgres.NewUserRepository(db)
	vehicles := postgres.NewVehicleRepository(db)
	services := postgres.NewServiceRepository(db)
	quotes := postgres.NewQuoteRepository(db)
	stats := postgres.NewStatsRepository(db)

	renderer, err := web.NewRenderer()
	if err != nil {
		log.Fatal().Err(err).Msg("templates failed to parse")
	}

	tokens := service.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	e := api.NewRouter(api.Deps{
		Auth:      service.NewAuthService(users, vehicles, tokens, log),
		Users:     service.NewUserService(users, vehicles, log),
		Vehicles:  service.NewVehicleService(vehicles, users, services, log),
		Lifecycle: service.NewLifecycleService(services, vehicles, users, quotes, events, log),
		Quotes:    service.NewQuoteService(quotes, services, events, log),
		Dashboard: service.NewDashboardService(stats, services, vehicles),
		History:   service.NewHistoryService(services, eventRepo),

		Sessions: redisdb.NewSessionStore(rdb, cfg.Session.TTL),
		Session: web.SessionConfig{
			Cookie: cfg.Session.Cookie,
			TTL:    cfg.Session.TTL,
			Secure: cfg.Session.Secure,
		},
		Renderer: renderer,
		Checks: map[string]handlers.Check{
			"postgres": handlers.PostgresCheck(db),
			"mongo":    handlers.MongoCheck(mdb),
			"redis":    handlers.RedisCheck(rdb),
		},
		Logger: log,
	})

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	// Drain queued audit events before closing mongo.
	dispatcher.Stop()
	if err := mongodb.Disconnect(shutdownCtx, mdb); err != nil {
		log.Error().Err(err).Msg("mongo disconnect")
	}
	log.Info().Msg("server stopped")
}
