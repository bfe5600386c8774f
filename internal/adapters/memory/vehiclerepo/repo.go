package vehiclerepo

import (
	"context"
	"sort"
	"sync"

	"github.com/FBenja/fleet-api/internal/domain"
	"github.com/FBenja/fleet-api/internal/ports/out/vehiclerepo"
)

// Repo is an in-memory implementation of vehiclerepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID      map[domain.VehicleID]domain.Vehicle
	idByPlate map[string]domain.VehicleID
}

func NewRepo() *Repo {
	return &Repo{
		byID:      make(map[domain.VehicleID]domain.Vehicle),
		idByPlate: make(map[string]domain.VehicleID),
	}
}

func (r *Repo) Create(ctx context.Context, v domain.Vehicle) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.idByPlate[v.Plate]; ok {
		return vehiclerepo.ErrDuplicatePlate
	}
	r.byID[v.ID] = v
	r.idByPlate[v.Plate] = v.ID
	return nil
}

func (r *Repo) Update(ctx context.Context, v domain.Vehicle) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[v.ID]
	if !ok {
		return vehiclerepo.ErrNotFound
	}
	if other, ok := r.idByPlate[v.Plate]; ok && other != v.ID {
		return vehiclerepo.ErrDuplicatePlate
	}
	delete(r.idByPlate, existing.Plate)
	r.byID[v.ID] = v
	r.idByPlate[v.Plate] = v.ID
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.VehicleID) (domain.Vehicle, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.byID[id]
	if !ok {
		return domain.Vehicle{}, vehiclerepo.ErrNotFound
	}
	return v, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Vehicle, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Vehicle, 0, len(r.byID))
	for _, v := range r.byID {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Plate < out[j].Plate })
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.VehicleID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	v, ok := r.byID[id]
	if !ok {
		return vehiclerepo.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.idByPlate, v.Plate)
	return nil
}
