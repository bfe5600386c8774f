package userrepo

import (
	"context"
	"errors"
	"testing"

	"github.com/FBenja/fleet-api/internal/domain"
	"github.com/FBenja/fleet-api/internal/ports/out/userrepo"
)

func TestRepo_Create_DuplicateEmail(t *testing.T) {
	t.Parallel()

	r := NewRepo()
	ctx := context.Background()

	err := r.Create(ctx, domain.User{ID: "user-1", Name: "Alice", Email: "alice@example.com"})
	if err != nil {
		t.Fatalf("Create err=%v", err)
	}

	// Email uniqueness is case-insensitive.
	err = r.Create(ctx, domain.User{ID: "user-2", Name: "Mallory", Email: "ALICE@example.com"})
	if !errors.Is(err, userrepo.ErrDuplicateEmail) {
		t.Fatalf("err=%v, want ErrDuplicateEmail", err)
	}
}

func TestRepo_GetByEmail_CaseInsensitive(t *testing.T) {
	t.Parallel()

	r := NewRepo()
	ctx := context.Background()

	if err := r.Create(ctx, domain.User{ID: "user-1", Email: "Alice@Example.com"}); err != nil {
		t.Fatalf("Create err=%v", err)
	}

	u, err := r.GetByEmail(ctx, "alice@example.com")
	if err != nil {
		t.Fatalf("GetByEmail err=%v", err)
	}
	if u.ID != "user-1" {
		t.Fatalf("id=%q", u.ID)
	}
}

func TestRepo_Get_NotFound(t *testing.T) {
	t.Parallel()

	r := NewRepo()
	ctx := context.Background()

	if _, err := r.GetByID(ctx, "missing"); !errors.Is(err, userrepo.ErrNotFound) {
		t.Fatalf("GetByID err=%v, want ErrNotFound", err)
	}
	if _, err := r.GetByEmail(ctx, "missing@example.com"); !errors.Is(err, userrepo.ErrNotFound) {
		t.Fatalf("GetByEmail err=%v, want ErrNotFound", err)
	}
}
