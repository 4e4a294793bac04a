package router

import (
	"github.com/go-chi/chi/v5"

	"salonbooking/internal/handlers/appointment"
	"salonbooking/internal/handlers/booking"
	"salonbooking/internal/handlers/catalog"
)

type DomainHandlers struct {
	Catalog     catalog.Handler
	Booking     booking.Handler
	Appointment appointment.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Catalog.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Appointment.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
