package router

import (
	"frontdesk/internal/handlers/auth"
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/dashboard"
	"frontdesk/internal/handlers/health"
	"frontdesk/internal/handlers/housekeeping"
	"frontdesk/internal/handlers/receipt"
	"frontdesk/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Health       health.Handler
	Auth         auth.Handler
	Room         room.Handler
	Booking      booking.Handler
	Housekeeping housekeeping.Handler
	Dashboard    dashboard.Handler
	Receipt      receipt.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Health.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Housekeeping.Router(routerGroup)
		r.DomainHandlers.Dashboard.Router(routerGroup)
		r.DomainHandlers.Receipt.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
