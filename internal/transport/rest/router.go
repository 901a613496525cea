package rest

import (
	"net/http"
	"time"

	"github.com/flickstack/rental-api/internal/domain"
	"github.com/flickstack/rental-api/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Sessions  SessionChecker
	Auth      *AuthHandler
	Users     *UserHandler
	Customers *CustomerHandler
	Movies    *MovieHandler
	Health    *HealthHandler

	// Rate limiting is skipped when Cache is nil or RLLimit is zero.
	Cache    domain.CacheRepository
	RLLimit  int
	RLWindow time.Duration
}

func NewRouter(d RouterDeps) http.Handler {
	if d.Sessions == nil {
		panic("rest.NewRouter: nil sessions")
	}
	if d.Auth == nil || d.Users == nil || d.Customers == nil || d.Movies == nil || d.Health == nil {
		panic("rest.NewRouter: nil handler")
	}

	r := chi.NewRouter()

	// Request ID + structured access log
	r.Use(RequestID)
	r.Use(HTTPLogger)

	// Panic recovery
	r.Use(middleware.Recoverer)

	// Cross-cutting
	r.Use(metrics.Middleware)
	if d.Cache != nil && d.RLLimit > 0 {
		r.Use(RateLimitMiddleware(d.Cache, d.RLLimit, d.RLWindow))
	}
	r.Use(SecurityHeaders)

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Open endpoints: establishing identity and clearing it. Logout
		// takes only an identifier, no token proof.
		r.Post("/login", d.Auth.Login)
		r.Post("/logout", d.Auth.Logout)
		r.Get("/health", d.Health.Check)

		// Everything else re-validates the session on each call.
		r.Group(func(r chi.Router) {
			r.Use(SessionAuth(d.Sessions))

			r.Post("/users", d.Users.Create)
			r.Get("/users/signed-in", d.Users.SignedIn)

			r.Get("/customers", d.Customers.List)
			r.Post("/customers", d.Customers.Create)
			r.Put("/customers/{id}", d.Customers.Edit)

			r.Get("/movies", d.Movies.Get)
			r.Post("/movies", d.Movies.Create)
			r.Put("/movies/{upc}", d.Movies.Edit)
			r.Post("/movies/{upc}/copies", d.Movies.AddCopy)
		})
	})

	return r
}
