package userrepo

import (
	"context"

	"github.com/FBenja/fleet-api/internal/domain"
)

// Repository provides access to persisted user accounts.
//
// Email uniqueness is enforced by the storage layer: two concurrent Creates
// racing on the same email resolve there, one of them receiving
// ErrDuplicateEmail.
type Repository interface {
	Create(ctx context.Context, u domain.User) error

	GetByID(ctx context.Context, id domain.UserID) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
}
