package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/FBenja/fleet-api/internal/domain"
	clockport "github.com/FBenja/fleet-api/internal/ports/out/clock"
)

var (
	// ErrTokenInvalid indicates a bad signature or a malformed payload.
	ErrTokenInvalid = errors.New("token invalid")

	// ErrTokenExpired indicates a well-formed, correctly signed token whose
	// expiry has passed.
	ErrTokenExpired = errors.New("token expired")
)

// Service issues and verifies bearer tokens. The signing key is process-wide
// configuration injected at construction; there is no refresh mechanism, expiry
// forces re-login.
type Service struct {
	secret []byte
	ttl    time.Duration
	clk    clockport.Clock
}

func NewService(secret []byte, ttl time.Duration, clk clockport.Clock) *Service {
	return &Service{secret: secret, ttl: ttl, clk: clk}
}

// claims is the token payload. Expiry is validated against the injected clock,
// not the parser's, so Valid is a no-op.
type claims struct {
	UserID   string `json:"user_id"`
	IssuedAt int64  `json:"iat"`
	Expiry   int64  `json:"exp"`
}

func (claims) Valid() error { return nil }

// Issue produces a signed token for the user, expiring TTL from now.
func (s *Service) Issue(userID domain.UserID) (string, error) {
	now := s.clk.Now()
	c := claims{
		UserID:   string(userID),
		IssuedAt: now.Unix(),
		Expiry:   now.Add(s.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify checks signature and expiry and returns the embedded user ID.
// A token is expired strictly when now is past its expiry instant.
func (s *Service) Verify(raw string) (domain.UserID, error) {
	var c claims
	tok, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrTokenInvalid
	}
	if c.UserID == "" || c.Expiry == 0 {
		return "", ErrTokenInvalid
	}
	if s.clk.Now().After(time.Unix(c.Expiry, 0)) {
		return "", ErrTokenExpired
	}
	return domain.UserID(c.UserID), nil
}
