package httpapi

import (
	"context"

	"github.com/FBenja/fleet-api/internal/domain"
)

// Identity is the resolved caller attached to the request context by the auth
// middleware. Downstream handlers never re-derive it.
type Identity struct {
	ID    domain.UserID
	Name  string
	Email string
}

type identityKey struct{}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(identityKey{}).(Identity)
	return v, ok && v.ID != ""
}
