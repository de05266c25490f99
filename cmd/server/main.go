package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	mongodriver "go.mongodb.org/mongo-driver/mongo"

	"github.com/agrovia/farm-management/internal/api"
	"github.com/agrovia/farm-management/internal/infrastructure/config"
	mongodb "github.com/agrovia/farm-management/internal/infrastructure/db/mongo"
	redisdb "github.com/agrovia/farm-management/internal/infrastructure/db/redis"
	"github.com/agrovia/farm-management/internal/infrastructure/email"
	"github.com/agrovia/farm-management/internal/infrastructure/queue"
	"github.com/agrovia/farm-management/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bootstrapLog := logger.Init(logger.Options{Level: os.Getenv("LOG_LEVEL"), Pretty: os.Getenv("ENV") != "production"})

	cfg, err := config.Load(ctx)
	if err != nil {
		// Fails here when JWT_SECRET is unset: the server never runs with a
		// default signing secret.
		bootstrapLog.Fatal().Err(err).Msg("failed to load configuration")
	}
	log := logger.Get()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to mongodb")
	}
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = mongoClient.Disconnect(disconnectCtx)
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}
	defer rdb.Close()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	sender, err := email.NewSender(email.Config{
		Enabled:  cfg.SMTP.Enabled,
		Host:     cfg.SMTP.Host,
		Port:     cfg.SMTP.Port,
		Username: cfg.SMTP.Username,
		Password: cfg.SMTP.Password,
		From:     cfg.SMTP.From,
	}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to configure email sender")
	}

	dispatcher := queue.NewDispatcher(cfg.NotifyWorkers, sender, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(db, rdb, cfg, dispatcher, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped unexpectedly")
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

// ensureIndexes creates all collection indexes, including the unique email
// index that backs the email-uniqueness invariant.
func ensureIndexes(ctx context.Context, db *mongodriver.Database) error {
	type indexer interface {
		EnsureIndexes(ctx context.Context) error
	}
	repos := []indexer{
		mongodb.NewUserRepository(db),
		mongodb.NewFarmRepository(db),
		mongodb.NewCropRepository(db),
		mongodb.NewDashboardRepository(db),
		mongodb.NewCalendarRepository(db),
		mongodb.NewFarmHealthRepository(db),
	}
	for _, r := range repos {
		if err := r.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}
