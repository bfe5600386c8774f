package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	rec := h.do(t, http.MethodGet, "/api/vehicles", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", rec.Code)
	}
	var body struct {
		Msg string `json:"msg"`
	}
	decodeInto(t, rec, &body)
	if body.Msg == "" {
		t.Fatalf("body=%s, want msg", rec.Body)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	for _, authz := range []string{"Basic abc", "Bearer", "token xyz"} {
		req := httptest.NewRequest(http.MethodGet, "/api/vehicles", nil)
		req.Header.Set("Authorization", authz)
		rec := httptest.NewRecorder()
		h.router.ServeHTTP(rec, req)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status=%d, want 401", authz, rec.Code)
		}
	}
}

func TestAuthMiddleware_GarbageToken(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	rec := h.do(t, http.MethodGet, "/api/vehicles", "not-a-real-token", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401", rec.Code)
	}
}

func TestAuthMiddleware_ValidTokenPasses(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	tok := h.registerAndLogin(t)

	rec := h.do(t, http.MethodGet, "/api/vehicles", tok, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status=%d body=%s, want 200", rec.Code, rec.Body)
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	tok := h.registerAndLogin(t)

	h.clk.Advance(121 * time.Minute)

	rec := h.do(t, http.MethodGet, "/api/vehicles", tok, nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status=%d, want 401 after expiry", rec.Code)
	}
}
