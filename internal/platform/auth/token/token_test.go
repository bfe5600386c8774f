package token

import (
	"errors"
	"strings"
	"testing"
	"time"

	memclock "github.com/FBenja/fleet-api/internal/adapters/memory/clock"
	"github.com/FBenja/fleet-api/internal/domain"
)

func newTestService(t *testing.T, secret string, start time.Time) (*Service, *memclock.ManualClock) {
	t.Helper()
	clk := memclock.NewManualClock(start)
	return NewService([]byte(secret), 2*time.Hour, clk), clk
}

func TestService_IssueVerify_Roundtrip(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "secret-1", time.Unix(1700000000, 0).UTC())

	raw, err := svc.Issue(domain.UserID("user-1"))
	if err != nil {
		t.Fatalf("Issue err=%v", err)
	}
	got, err := svc.Verify(raw)
	if err != nil {
		t.Fatalf("Verify err=%v", err)
	}
	if got != domain.UserID("user-1") {
		t.Fatalf("user id: got %q", got)
	}
}

func TestService_Verify_ExpiryBoundary(t *testing.T) {
	t.Parallel()

	svc, clk := newTestService(t, "secret-1", time.Unix(1700000000, 0).UTC())
	raw, err := svc.Issue(domain.UserID("user-1"))
	if err != nil {
		t.Fatalf("Issue err=%v", err)
	}

	clk.Advance(119 * time.Minute)
	if _, err := svc.Verify(raw); err != nil {
		t.Fatalf("at +119min: err=%v, want valid", err)
	}

	clk.Advance(1 * time.Minute)
	if _, err := svc.Verify(raw); err != nil {
		t.Fatalf("at +120min exactly: err=%v, want valid", err)
	}

	clk.Advance(1 * time.Minute)
	if _, err := svc.Verify(raw); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("at +121min: err=%v, want ErrTokenExpired", err)
	}
}

func TestService_Verify_WrongKey(t *testing.T) {
	t.Parallel()

	start := time.Unix(1700000000, 0).UTC()
	issuer, _ := newTestService(t, "secret-1", start)
	verifier, _ := newTestService(t, "secret-2", start)

	raw, err := issuer.Issue(domain.UserID("user-1"))
	if err != nil {
		t.Fatalf("Issue err=%v", err)
	}
	if _, err := verifier.Verify(raw); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err=%v, want ErrTokenInvalid", err)
	}
}

func TestService_Verify_Tampered(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "secret-1", time.Unix(1700000000, 0).UTC())
	raw, err := svc.Issue(domain.UserID("user-1"))
	if err != nil {
		t.Fatalf("Issue err=%v", err)
	}

	// Flip a character in the payload segment.
	parts := strings.Split(raw, ".")
	if len(parts) != 3 {
		t.Fatalf("unexpected token shape: %q", raw)
	}
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	if _, err := svc.Verify(tampered); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("err=%v, want ErrTokenInvalid", err)
	}
}

func TestService_Verify_Malformed(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, "secret-1", time.Unix(1700000000, 0).UTC())
	for _, raw := range []string{"", "garbage", "a.b", "a.b.c.d"} {
		if _, err := svc.Verify(raw); !errors.Is(err, ErrTokenInvalid) {
			t.Fatalf("raw=%q err=%v, want ErrTokenInvalid", raw, err)
		}
	}
}
