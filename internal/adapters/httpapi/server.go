package httpapi

import (
	"log/slog"

	"github.com/FBenja/fleet-api/internal/app/auth"
	"github.com/FBenja/fleet-api/internal/app/drivers"
	"github.com/FBenja/fleet-api/internal/app/trips"
	"github.com/FBenja/fleet-api/internal/app/vehicles"
)

// Server holds the application services the HTTP handlers delegate to.
// This is intentionally a thin adapter: decode, call the service, encode.
type Server struct {
	auth     *auth.Service
	vehicles *vehicles.Service
	drivers  *drivers.Service
	trips    *trips.Service

	log *slog.Logger
}

func NewServer(authSvc *auth.Service, vehiclesSvc *vehicles.Service, driversSvc *drivers.Service, tripsSvc *trips.Service, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{
		auth:     authSvc,
		vehicles: vehiclesSvc,
		drivers:  driversSvc,
		trips:    tripsSvc,
		log:      log,
	}
}
