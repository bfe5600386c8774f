package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter constructs the API HTTP router.
//
// Register and login are open; everything else under /api sits behind the
// bearer-auth guard. The health endpoint stays outside /api for infra checks.
func NewRouter(s *Server) http.Handler {
	r := chi.NewRouter()

	// Baseline production-safe middleware (minimal but useful).
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/register", s.handleRegister)
		r.Post("/auth/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(NewAuthMiddleware(s.auth))

			r.Get("/vehicles", s.handleListVehicles)
			r.Post("/vehicles", s.handleCreateVehicle)
			r.Get("/vehicles/{id}", s.handleGetVehicle)
			r.Put("/vehicles/{id}", s.handleUpdateVehicle)
			r.Delete("/vehicles/{id}", s.handleDeleteVehicle)

			r.Get("/drivers", s.handleListDrivers)
			r.Post("/drivers", s.handleCreateDriver)
			r.Get("/drivers/{id}", s.handleGetDriver)
			r.Put("/drivers/{id}", s.handleUpdateDriver)
			r.Delete("/drivers/{id}", s.handleDeleteDriver)

			r.Post("/trips", s.handleCreateTrip)
			r.Get("/trips/history/{type}/{id}", s.handleTripHistory)
			r.Get("/trips/total-km/{type}/{id}", s.handleTripTotalKM)
		})
	})

	return r
}
