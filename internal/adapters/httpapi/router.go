package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type RouterOptions struct {
	// Middleware is applied after the baseline middleware, before routing.
	Middleware []func(http.Handler) http.Handler
}

// NewRouter constructs the API HTTP router.
func NewRouter(s *Server) http.Handler {
	return NewRouterWithOptions(s, RouterOptions{})
}

func NewRouterWithOptions(s *Server, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	for _, mw := range opts.Middleware {
		r.Use(mw)
	}

	// Used for infra checks.
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/plan", s.GetPlan)

	r.Route("/destinations", func(r chi.Router) {
		r.Get("/", s.ListDestinations)
		r.With(s.Idempotent).Post("/", s.AddDestination)
		r.Get("/display", s.DisplayDestinations)
		r.Delete("/{name}", s.RemoveDestination)
	})

	r.Route("/travelers", func(r chi.Router) {
		r.Get("/", s.ListTravelers)
		r.With(s.Idempotent).Post("/", s.AdmitTraveler)
		r.Get("/display", s.DisplayTravelers)
		r.Delete("/{firstName}/{lastName}", s.DeleteTraveler)
	})

	return r
}
