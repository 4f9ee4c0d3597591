package di

import (
	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/internal/workers/rollover"
	"frontdesk/transport/http"

	authService "frontdesk/internal/domains/auth/service"
	roomService "frontdesk/internal/domains/room/service"
)

// Application is everything cmd/app runs.
type Application struct {
	HTTP     *http.HTTP
	Rollover *rollover.Worker
	Kafka    kafka.Client
}

// Provisioner seeds rooms and staff accounts for cmd/provision.
type Provisioner struct {
	Config *config.Config
	Room   roomService.Room
	Auth   authService.Auth
}
