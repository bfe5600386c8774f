package driverrepo

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/FBenja/fleet-api/internal/domain"
	"github.com/FBenja/fleet-api/internal/ports/out/driverrepo"
)

// Repo is an in-memory implementation of driverrepo.Repository.
// It is safe for concurrent use.
type Repo struct {
	mu sync.RWMutex

	byID           map[domain.DriverID]domain.Driver
	idByNationalID map[string]domain.DriverID
}

func NewRepo() *Repo {
	return &Repo{
		byID:           make(map[domain.DriverID]domain.Driver),
		idByNationalID: make(map[string]domain.DriverID),
	}
}

func (r *Repo) Create(ctx context.Context, d domain.Driver) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.idByNationalID[d.NationalID]; ok {
		return driverrepo.ErrDuplicateNationalID
	}
	r.byID[d.ID] = d
	r.idByNationalID[d.NationalID] = d.ID
	return nil
}

func (r *Repo) Update(ctx context.Context, d domain.Driver) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.byID[d.ID]
	if !ok {
		return driverrepo.ErrNotFound
	}
	if other, ok := r.idByNationalID[d.NationalID]; ok && other != d.ID {
		return driverrepo.ErrDuplicateNationalID
	}
	delete(r.idByNationalID, existing.NationalID)
	r.byID[d.ID] = d
	r.idByNationalID[d.NationalID] = d.ID
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.DriverID) (domain.Driver, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	d, ok := r.byID[id]
	if !ok {
		return domain.Driver{}, driverrepo.ErrNotFound
	}
	return d, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Driver, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Driver, 0, len(r.byID))
	for _, d := range r.byID {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool {
		li := strings.ToLower(out[i].LastName)
		lj := strings.ToLower(out[j].LastName)
		if li == lj {
			return strings.ToLower(out[i].FirstName) < strings.ToLower(out[j].FirstName)
		}
		return li < lj
	})
	return out, nil
}

func (r *Repo) Delete(ctx context.Context, id domain.DriverID) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.byID[id]
	if !ok {
		return driverrepo.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.idByNationalID, d.NationalID)
	return nil
}
