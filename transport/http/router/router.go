package router

import (
	"loungepass/internal/handlers/airport"
	"loungepass/internal/handlers/booking"
	"loungepass/internal/handlers/lounge"
	"loungepass/internal/handlers/navigation"
	"loungepass/internal/handlers/session"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Airport    airport.Handler
	Lounge     lounge.Handler
	Booking    booking.Handler
	Navigation navigation.Handler
	Session    session.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Airport.Router(routerGroup)
		r.DomainHandlers.Lounge.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Navigation.Router(routerGroup)
		r.DomainHandlers.Session.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
