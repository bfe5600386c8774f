package drivers

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/FBenja/fleet-api/internal/app/apperr"
	"github.com/FBenja/fleet-api/internal/app/validate"
	"github.com/FBenja/fleet-api/internal/domain"
	clockport "github.com/FBenja/fleet-api/internal/ports/out/clock"
	"github.com/FBenja/fleet-api/internal/ports/out/driverrepo"
	"github.com/FBenja/fleet-api/internal/ports/out/triprepo"
)

type Service struct {
	repo  driverrepo.Repository
	trips triprepo.Repository
	clk   clockport.Clock

	newDriverID func() domain.DriverID
}

func NewService(repo driverrepo.Repository, trips triprepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo:  repo,
		trips: trips,
		clk:   clk,
		newDriverID: func() domain.DriverID {
			return domain.DriverID(uuid.NewString())
		},
	}
}

// Input carries driver fields as received at the boundary. LicenseExpiry is a
// calendar date string; it is validated and parsed here, once.
type Input struct {
	FirstName     string
	LastName      string
	NationalID    string
	LicenseNumber string
	LicenseExpiry string
}

// rules is the driver validation table, evaluated before anything touches storage.
func rules(in Input) []validate.Rule {
	return []validate.Rule{
		{Field: "first_name", Message: "must be non-empty", OK: func() bool {
			return domain.NormalizeHumanName(in.FirstName) != ""
		}},
		{Field: "last_name", Message: "must be non-empty", OK: func() bool {
			return domain.NormalizeHumanName(in.LastName) != ""
		}},
		{Field: "national_id", Message: "must be 7 to 20 characters", OK: func() bool {
			return validate.LengthBetween(strings.TrimSpace(in.NationalID), 7, 20)
		}},
		{Field: "license_number", Message: "must be non-empty", OK: func() bool {
			return strings.TrimSpace(in.LicenseNumber) != ""
		}},
		{Field: "license_expiry", Message: "must be a calendar date (YYYY-MM-DD)", OK: func() bool {
			_, ok := validate.ParseDate(in.LicenseExpiry)
			return ok
		}},
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Driver, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id domain.DriverID) (domain.Driver, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, driverrepo.ErrNotFound) {
			return domain.Driver{}, notFound()
		}
		return domain.Driver{}, err
	}
	return d, nil
}

func (s *Service) Create(ctx context.Context, in Input) (domain.Driver, error) {
	if fields := validate.Check(rules(in)...); fields != nil {
		return domain.Driver{}, apperr.Validation(fields...)
	}
	expiry, _ := validate.ParseDate(in.LicenseExpiry)

	now := s.clk.Now()
	d := domain.Driver{
		ID:            s.newDriverID(),
		FirstName:     domain.NormalizeHumanName(in.FirstName),
		LastName:      domain.NormalizeHumanName(in.LastName),
		NationalID:    strings.TrimSpace(in.NationalID),
		LicenseNumber: strings.TrimSpace(in.LicenseNumber),
		LicenseExpiry: expiry,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		if errors.Is(err, driverrepo.ErrDuplicateNationalID) {
			return domain.Driver{}, duplicateNationalID()
		}
		return domain.Driver{}, err
	}
	return d, nil
}

func (s *Service) Update(ctx context.Context, id domain.DriverID, in Input) (domain.Driver, error) {
	if fields := validate.Check(rules(in)...); fields != nil {
		return domain.Driver{}, apperr.Validation(fields...)
	}
	expiry, _ := validate.ParseDate(in.LicenseExpiry)

	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, driverrepo.ErrNotFound) {
			return domain.Driver{}, notFound()
		}
		return domain.Driver{}, err
	}

	d.FirstName = domain.NormalizeHumanName(in.FirstName)
	d.LastName = domain.NormalizeHumanName(in.LastName)
	d.NationalID = strings.TrimSpace(in.NationalID)
	d.LicenseNumber = strings.TrimSpace(in.LicenseNumber)
	d.LicenseExpiry = expiry
	d.UpdatedAt = s.clk.Now()

	if err := s.repo.Update(ctx, d); err != nil {
		switch {
		case errors.Is(err, driverrepo.ErrNotFound):
			return domain.Driver{}, notFound()
		case errors.Is(err, driverrepo.ErrDuplicateNationalID):
			return domain.Driver{}, duplicateNationalID()
		}
		return domain.Driver{}, err
	}
	return d, nil
}

// Delete removes a driver. Deletion is rejected while trips reference the
// driver; the storage layer repeats the check so a racing trip insert still
// resolves to the same conflict.
func (s *Service) Delete(ctx context.Context, id domain.DriverID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, driverrepo.ErrNotFound) {
			return notFound()
		}
		return err
	}

	referenced, err := s.trips.ExistsForDriver(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return referentialConflict()
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, driverrepo.ErrNotFound):
			return notFound()
		case errors.Is(err, driverrepo.ErrReferenced):
			return referentialConflict()
		}
		return err
	}
	return nil
}

func notFound() *apperr.Error {
	return &apperr.Error{Status: 404, Code: "NOT_FOUND", Message: "driver not found"}
}

func duplicateNationalID() *apperr.Error {
	return &apperr.Error{Status: 400, Code: "DUPLICATE_KEY", Message: "national id already registered"}
}

func referentialConflict() *apperr.Error {
	return &apperr.Error{Status: 400, Code: "REFERENTIAL_CONFLICT", Message: "driver is referenced by existing trips"}
}
