package triprepo

import (
	"context"
	"sort"
	"sync"

	"github.com/FBenja/fleet-api/internal/domain"
	"github.com/FBenja/fleet-api/internal/ports/out/triprepo"
)

// Repo is an in-memory implementation of triprepo.Repository.
// It is safe for concurrent use. Referential checks against vehicles/drivers
// happen at the application layer; this store only enforces trip identity.
type Repo struct {
	mu   sync.RWMutex
	byID map[domain.TripID]domain.Trip
}

func NewRepo() *Repo {
	return &Repo{byID: make(map[domain.TripID]domain.Trip)}
}

func (r *Repo) Create(ctx context.Context, t domain.Trip) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[t.ID]; ok {
		return triprepo.ErrAlreadyExists
	}
	r.byID[t.ID] = t
	return nil
}

func (r *Repo) ListByVehicle(ctx context.Context, id domain.VehicleID) ([]domain.Trip, error) {
	_ = ctx
	return r.list(func(t domain.Trip) bool { return t.VehicleID == id }), nil
}

func (r *Repo) ListByDriver(ctx context.Context, id domain.DriverID) ([]domain.Trip, error) {
	_ = ctx
	return r.list(func(t domain.Trip) bool { return t.DriverID == id }), nil
}

func (r *Repo) TotalDistanceByVehicle(ctx context.Context, id domain.VehicleID) (float64, error) {
	_ = ctx
	return r.sum(func(t domain.Trip) bool { return t.VehicleID == id }), nil
}

func (r *Repo) TotalDistanceByDriver(ctx context.Context, id domain.DriverID) (float64, error) {
	_ = ctx
	return r.sum(func(t domain.Trip) bool { return t.DriverID == id }), nil
}

func (r *Repo) ExistsForVehicle(ctx context.Context, id domain.VehicleID) (bool, error) {
	_ = ctx
	return len(r.list(func(t domain.Trip) bool { return t.VehicleID == id })) > 0, nil
}

func (r *Repo) ExistsForDriver(ctx context.Context, id domain.DriverID) (bool, error) {
	_ = ctx
	return len(r.list(func(t domain.Trip) bool { return t.DriverID == id })) > 0, nil
}

func (r *Repo) list(match func(domain.Trip) bool) []domain.Trip {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Trip, 0)
	for _, t := range r.byID {
		if match(t) {
			out = append(out, t)
		}
	}
	// Departure time descending; ID breaks ties for determinism.
	sort.Slice(out, func(i, j int) bool {
		if out[i].DepartureTime.Equal(out[j].DepartureTime) {
			return out[i].ID < out[j].ID
		}
		return out[i].DepartureTime.After(out[j].DepartureTime)
	})
	return out
}

func (r *Repo) sum(match func(domain.Trip) bool) float64 {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var total float64
	for _, t := range r.byID {
		if match(t) {
			total += t.DistanceKM
		}
	}
	return total
}
