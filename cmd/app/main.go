package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"frontdesk/config"
	"frontdesk/di"
	_ "frontdesk/docs"
	"frontdesk/helper"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Front Desk API
// @version 1.0
// @description Bookings, room status, housekeeping, occupancy and receipts for a single hotel front desk.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app := di.InitializeApplication()

	defer func() {
		if err := app.Kafka.Close(); err != nil {
			log.Error().Err(err).Msg("Failed to close kafka client")
		}
	}()

	go app.Rollover.Run(ctx)

	app.HTTP.Serve(ctx)
}
