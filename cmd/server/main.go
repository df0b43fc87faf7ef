package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmpanasiti/rda-platform-api/internal/config"
	"github.com/jmpanasiti/rda-platform-api/internal/infra"
	"github.com/jmpanasiti/rda-platform-api/internal/repository"
	"github.com/jmpanasiti/rda-platform-api/internal/router"
	"github.com/jmpanasiti/rda-platform-api/internal/worker"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Structured logger — dev: pretty, prod: JSON
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	rdb, err := infra.NewRedis(cfg.RedisURL)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to redis")
	}

	files, err := infra.NewFileStore(cfg.FileStoragePath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to init file storage")
	}

	// Background workers are wired here (composition root) so the pool and
	// the reminder scanner share the same infrastructure as the HTTP layer.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	vehicleRepo := repository.NewVehicleRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	pool := worker.NewPool(rdb, notificationRepo)
	pool.Start(ctx, cfg.WorkerPoolSize)

	worker.StartReminderScanner(ctx, worker.ReminderConfig{
		Vehicles:      vehicleRepo,
		Notifications: notificationRepo,
		Dispatcher:    worker.NewDispatcher(rdb),
		Interval:      time.Duration(cfg.ReminderIntervalHours) * time.Hour,
		Window:        time.Duration(cfg.ReminderWindowDays) * 24 * time.Hour,
	})

	r := router.New(cfg, db, rdb, files)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown on SIGINT / SIGTERM
	go func() {
		log.Info().Msgf("fleet platform API listening on :%d", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server…")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("forced shutdown")
	}
	log.Info().Msg("server exited")
}
