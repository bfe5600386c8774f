package vehiclerepo

import (
	"context"

	"github.com/FBenja/fleet-api/internal/domain"
)

// Repository provides access to persisted vehicles.
//
// Result ordering expectations:
// - List returns vehicles ordered by plate ascending to keep behavior deterministic.
type Repository interface {
	Create(ctx context.Context, v domain.Vehicle) error
	Update(ctx context.Context, v domain.Vehicle) error

	GetByID(ctx context.Context, id domain.VehicleID) (domain.Vehicle, error)
	List(ctx context.Context) ([]domain.Vehicle, error)

	// Delete removes the vehicle. Implementations backed by storage with
	// foreign-key constraints return ErrReferenced when trips still point at it.
	Delete(ctx context.Context, id domain.VehicleID) error
}
