package router

import (
	"villadesk/internal/handlers/calendar"
	"villadesk/internal/handlers/customer"
	"villadesk/internal/handlers/pricing"
	"villadesk/internal/handlers/region"
	"villadesk/internal/handlers/reservation"
	"villadesk/internal/handlers/seo"
	"villadesk/internal/handlers/tag"
	"villadesk/internal/handlers/villa"
	"villadesk/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Villa       villa.Handler
	Region      region.Handler
	Tag         tag.Handler
	Customer    customer.Handler
	Seo         seo.Handler
	Calendar    calendar.Handler
	Pricing     pricing.Handler
	Reservation reservation.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		// Internal callers present an API key and skip the JWT check.
		routerGroup.Use(r.Auth.APIKey)
		routerGroup.Use(r.Auth.Auth)

		r.DomainHandlers.Villa.Router(routerGroup)
		r.DomainHandlers.Region.Router(routerGroup)
		r.DomainHandlers.Tag.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Seo.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
		r.DomainHandlers.Pricing.Router(routerGroup)
		r.DomainHandlers.Reservation.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
