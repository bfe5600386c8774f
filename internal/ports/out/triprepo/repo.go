package triprepo

import (
	"context"

	"github.com/FBenja/fleet-api/internal/domain"
)

// Repository provides access to persisted trips.
//
// Result ordering expectations:
// - ListByVehicle/ListByDriver return trips ordered by departure time descending.
type Repository interface {
	Create(ctx context.Context, t domain.Trip) error

	ListByVehicle(ctx context.Context, id domain.VehicleID) ([]domain.Trip, error)
	ListByDriver(ctx context.Context, id domain.DriverID) ([]domain.Trip, error)

	// TotalDistanceByVehicle/TotalDistanceByDriver sum distance_km over matching
	// trips. No matching trips is 0, not an error.
	TotalDistanceByVehicle(ctx context.Context, id domain.VehicleID) (float64, error)
	TotalDistanceByDriver(ctx context.Context, id domain.DriverID) (float64, error)

	// ExistsForVehicle/ExistsForDriver report whether any trip references the
	// entity. Used by the deletion guards.
	ExistsForVehicle(ctx context.Context, id domain.VehicleID) (bool, error)
	ExistsForDriver(ctx context.Context, id domain.DriverID) (bool, error)
}
