package driverrepo

import (
	"context"

	"github.com/FBenja/fleet-api/internal/domain"
)

// Repository provides access to persisted drivers.
//
// Result ordering expectations:
// - List returns drivers ordered by last name, then first name, ascending.
type Repository interface {
	Create(ctx context.Context, d domain.Driver) error
	Update(ctx context.Context, d domain.Driver) error

	GetByID(ctx context.Context, id domain.DriverID) (domain.Driver, error)
	List(ctx context.Context) ([]domain.Driver, error)

	// Delete removes the driver. Implementations backed by storage with
	// foreign-key constraints return ErrReferenced when trips still point at it.
	Delete(ctx context.Context, id domain.DriverID) error
}
