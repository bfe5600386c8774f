package vehicles

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/FBenja/fleet-api/internal/app/apperr"
	"github.com/FBenja/fleet-api/internal/app/validate"
	"github.com/FBenja/fleet-api/internal/domain"
	clockport "github.com/FBenja/fleet-api/internal/ports/out/clock"
	"github.com/FBenja/fleet-api/internal/ports/out/triprepo"
	"github.com/FBenja/fleet-api/internal/ports/out/vehiclerepo"
)

type Service struct {
	repo  vehiclerepo.Repository
	trips triprepo.Repository
	clk   clockport.Clock

	newVehicleID func() domain.VehicleID
}

func NewService(repo vehiclerepo.Repository, trips triprepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo:  repo,
		trips: trips,
		clk:   clk,
		newVehicleID: func() domain.VehicleID {
			return domain.VehicleID(uuid.NewString())
		},
	}
}

type Input struct {
	Brand        string
	Model        string
	Plate        string
	Year         int
	LoadCapacity float64
}

// rules is the vehicle validation table, evaluated before anything touches storage.
func rules(in Input) []validate.Rule {
	return []validate.Rule{
		{Field: "brand", Message: "must be non-empty", OK: func() bool {
			return domain.NormalizeHumanName(in.Brand) != ""
		}},
		{Field: "model", Message: "must be non-empty", OK: func() bool {
			return domain.NormalizeHumanName(in.Model) != ""
		}},
		{Field: "plate", Message: "must be 6 to 20 characters", OK: func() bool {
			return validate.LengthBetween(domain.NormalizePlate(in.Plate), 6, 20)
		}},
		{Field: "year", Message: "must be between 1900 and 2100", OK: func() bool {
			return in.Year >= 1900 && in.Year <= 2100
		}},
		{Field: "load_capacity", Message: "must be zero or positive", OK: func() bool {
			return in.LoadCapacity >= 0
		}},
	}
}

func (s *Service) List(ctx context.Context) ([]domain.Vehicle, error) {
	return s.repo.List(ctx)
}

func (s *Service) Get(ctx context.Context, id domain.VehicleID) (domain.Vehicle, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehiclerepo.ErrNotFound) {
			return domain.Vehicle{}, notFound()
		}
		return domain.Vehicle{}, err
	}
	return v, nil
}

func (s *Service) Create(ctx context.Context, in Input) (domain.Vehicle, error) {
	if fields := validate.Check(rules(in)...); fields != nil {
		return domain.Vehicle{}, apperr.Validation(fields...)
	}

	now := s.clk.Now()
	v := domain.Vehicle{
		ID:           s.newVehicleID(),
		Brand:        domain.NormalizeHumanName(in.Brand),
		Model:        domain.NormalizeHumanName(in.Model),
		Plate:        domain.NormalizePlate(in.Plate),
		Year:         in.Year,
		LoadCapacity: in.LoadCapacity,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, v); err != nil {
		if errors.Is(err, vehiclerepo.ErrDuplicatePlate) {
			return domain.Vehicle{}, duplicatePlate()
		}
		return domain.Vehicle{}, err
	}
	return v, nil
}

func (s *Service) Update(ctx context.Context, id domain.VehicleID, in Input) (domain.Vehicle, error) {
	if fields := validate.Check(rules(in)...); fields != nil {
		return domain.Vehicle{}, apperr.Validation(fields...)
	}

	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, vehiclerepo.ErrNotFound) {
			return domain.Vehicle{}, notFound()
		}
		return domain.Vehicle{}, err
	}

	v.Brand = domain.NormalizeHumanName(in.Brand)
	v.Model = domain.NormalizeHumanName(in.Model)
	v.Plate = domain.NormalizePlate(in.Plate)
	v.Year = in.Year
	v.LoadCapacity = in.LoadCapacity
	v.UpdatedAt = s.clk.Now()

	if err := s.repo.Update(ctx, v); err != nil {
		switch {
		case errors.Is(err, vehiclerepo.ErrNotFound):
			return domain.Vehicle{}, notFound()
		case errors.Is(err, vehiclerepo.ErrDuplicatePlate):
			return domain.Vehicle{}, duplicatePlate()
		}
		return domain.Vehicle{}, err
	}
	return v, nil
}

// Delete removes a vehicle. Deletion is rejected while trips reference the
// vehicle; the storage layer repeats the check so a racing trip insert still
// resolves to the same conflict.
func (s *Service) Delete(ctx context.Context, id domain.VehicleID) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, vehiclerepo.ErrNotFound) {
			return notFound()
		}
		return err
	}

	referenced, err := s.trips.ExistsForVehicle(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return referentialConflict()
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		switch {
		case errors.Is(err, vehiclerepo.ErrNotFound):
			return notFound()
		case errors.Is(err, vehiclerepo.ErrReferenced):
			return referentialConflict()
		}
		return err
	}
	return nil
}

func notFound() *apperr.Error {
	return &apperr.Error{Status: 404, Code: "NOT_FOUND", Message: "vehicle not found"}
}

func duplicatePlate() *apperr.Error {
	return &apperr.Error{Status: 400, Code: "DUPLICATE_KEY", Message: "plate already registered"}
}

func referentialConflict() *apperr.Error {
	return &apperr.Error{Status: 400, Code: "REFERENTIAL_CONFLICT", Message: "vehicle is referenced by existing trips"}
}
