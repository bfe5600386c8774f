package auth

import (
	"context"
	"errors"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/FBenja/fleet-api/internal/app/apperr"
	"github.com/FBenja/fleet-api/internal/domain"
	"github.com/FBenja/fleet-api/internal/platform/auth/password"
	"github.com/FBenja/fleet-api/internal/platform/auth/token"
	clockport "github.com/FBenja/fleet-api/internal/ports/out/clock"
	"github.com/FBenja/fleet-api/internal/ports/out/userrepo"
)

// dummyHash is a bcrypt hash compared against when login hits an unknown email,
// so that path does the same work as a wrong-password attempt.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service is the credential lifecycle: registration, login, and token-to-identity
// resolution for the request guard.
type Service struct {
	users  userrepo.Repository
	hasher *password.Hasher
	tokens *token.Service
	clk    clockport.Clock

	newUserID func() domain.UserID
}

func NewService(users userrepo.Repository, hasher *password.Hasher, tokens *token.Service, clk clockport.Clock) *Service {
	return &Service{
		users:  users,
		hasher: hasher,
		tokens: tokens,
		clk:    clk,
		newUserID: func() domain.UserID {
			return domain.UserID(uuid.NewString())
		},
	}
}

// Register creates a new user account. The plaintext password is hashed with the
// configured work factor before anything touches storage, and the email is
// stored lowercased so uniqueness is case-insensitive on every backend.
func (s *Service) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	name := domain.NormalizeHumanName(in.Name)
	if name == "" {
		return domain.User{}, apperr.Validation(apperr.FieldError{Field: "name", Message: "must be non-empty"})
	}
	email, err := validEmail(in.Email)
	if err != nil {
		return domain.User{}, apperr.Validation(apperr.FieldError{Field: "email", Message: err.Error()})
	}
	if utf8.RuneCountInString(in.Password) < 6 {
		return domain.User{}, apperr.Validation(apperr.FieldError{Field: "password", Message: "must be at least 6 characters"})
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return domain.User{}, err
	}

	u := domain.User{
		ID:           s.newUserID(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.clk.Now(),
	}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, userrepo.ErrDuplicateEmail) {
			return domain.User{}, &apperr.Error{
				Status:  400,
				Code:    "DUPLICATE_KEY",
				Message: "email already registered",
			}
		}
		return domain.User{}, err
	}
	return u, nil
}

// Login verifies credentials and issues a bearer token. Unknown email and wrong
// password produce the same error so callers learn nothing about which failed.
func (s *Service) Login(ctx context.Context, in LoginInput) (LoginResult, error) {
	u, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			s.hasher.Compare(dummyHash, in.Password)
			return LoginResult{}, invalidCredentials()
		}
		return LoginResult{}, err
	}
	if !s.hasher.Compare(u.PasswordHash, in.Password) {
		return LoginResult{}, invalidCredentials()
	}

	tok, err := s.tokens.Issue(u.ID)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{User: u, Token: tok}, nil
}

// Authenticate resolves a bearer token to the calling user. Any failure,
// including a token for a user that no longer exists, collapses to the same
// unauthenticated signal.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (domain.User, error) {
	userID, err := s.tokens.Verify(rawToken)
	if err != nil {
		return domain.User{}, unauthenticated()
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return domain.User{}, unauthenticated()
		}
		return domain.User{}, err
	}
	return u, nil
}

func invalidCredentials() *apperr.Error {
	return &apperr.Error{Status: 401, Code: "INVALID_CREDENTIALS", Message: "invalid credentials"}
}

func unauthenticated() *apperr.Error {
	return &apperr.Error{Status: 401, Code: "UNAUTHENTICATED", Message: "invalid or expired token"}
}

func validEmail(email string) (string, error) {
	if email == "" {
		return "", errors.New("must be non-empty")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return "", errors.New("must be a valid email address")
	}
	// Ensure no "Name <email@x>" format sneaks in.
	if addr.Address != email {
		return "", errors.New("must be a bare email address")
	}
	return strings.ToLower(email), nil
}
