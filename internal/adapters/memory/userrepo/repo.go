package userrepo

import (
	"context"
	"strings"
	"sync"

	"github.com/FBenja/fleet-api/internal/domain"
	"github.com/FBenja/fleet-api/internal/ports/out/userrepo"
)

// Repo is an in-memory implementation of userrepo.Repository.
// It is safe for concurrent use; the mutex plays the role of the storage
// engine's constraint check for racing creates.
type Repo struct {
	mu sync.RWMutex

	byID      map[domain.UserID]domain.User
	idByEmail map[string]domain.UserID
}

func NewRepo() *Repo {
	return &Repo{
		byID:      make(map[domain.UserID]domain.User),
		idByEmail: make(map[string]domain.UserID),
	}
}

func (r *Repo) Create(ctx context.Context, u domain.User) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()

	key := emailKey(u.Email)
	if _, ok := r.idByEmail[key]; ok {
		return userrepo.ErrDuplicateEmail
	}
	r.byID[u.ID] = u
	r.idByEmail[key] = u.ID
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.UserID) (domain.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	u, ok := r.byID[id]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	return u, nil
}

func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.idByEmail[emailKey(email)]
	if !ok {
		return domain.User{}, userrepo.ErrNotFound
	}
	return r.byID[id], nil
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
