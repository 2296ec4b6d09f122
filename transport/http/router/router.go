package router

import (
	"pawsit/internal/handlers/assignment"
	"pawsit/internal/handlers/booking"
	"pawsit/internal/handlers/payment"
	"pawsit/internal/handlers/sitter"
	"pawsit/internal/handlers/visit"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"
)

// DomainHandlers groups every HTTP handler the router mounts.
type DomainHandlers struct {
	Assignment *assignment.Handler
	Booking    *booking.Handler
	Payment    *payment.Handler
	Sitter     *sitter.Handler
	Visit      *visit.Handler
}

type Router struct {
	handlers DomainHandlers
}

func New(handlers DomainHandlers) Router {
	return Router{handlers: handlers}
}

// SetupRoutes mounts every domain under /v1 plus the swagger UI.
func (r *Router) SetupRoutes(mux chi.Router) {
	mux.Get("/swagger/*", httpSwagger.WrapHandler)

	mux.Route("/v1", func(v1 chi.Router) {
		r.handlers.Assignment.Router(v1)
		r.handlers.Booking.Router(v1)
		r.handlers.Payment.Router(v1)
		r.handlers.Sitter.Router(v1)
		r.handlers.Visit.Router(v1)
	})
}
