package trips

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
	"github.com/FBenja/fleet-api/internal/ports/out/vehiclerepo"
)

type Service struct {
	trips    triprepo.Repository
	vehicles vehiclerepo.Repository
	drivers  driverrepo.Repository
	clk      clockport.Clock

	newTripID func() domain.TripID
}

func NewService(tripsRepo triprepo.Repository, vehiclesRepo vehiclerepo.Repository, driversRepo driverrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		trips:    tripsRepo,
		vehicles: vehiclesRepo,
		drivers:  driversRepo,
		clk:      clk,
		newTripID: func() domain.TripID {
			return domain.TripID(uuid.NewString())
		},
	}
}

// Create validates field shape, then the vehicle/driver references, then inserts.
// A reference to a missing vehicle or driver is a referential conflict, not a
// validation error.
func (s *Service) Create(ctx context.Context, in CreateInput) (domain.Trip, error) {
	fields := validate.Check(
		validate.Rule{Field: "vehicle_id", Message: "is required", OK: func() bool {
			return strings.TrimSpace(string(in.VehicleID)) != ""
		}},
		validate.Rule{Field: "driver_id", Message: "is required", OK: func() bool {
			return strings.TrimSpace(string(in.DriverID)) != ""
		}},
		validate.Rule{Field: "departure_time", Message: "is required", OK: func() bool {
			return !in.DepartureTime.IsZero()
		}},
		validate.Rule{Field: "arrival_time", Message: "is required", OK: func() bool {
			return !in.ArrivalTime.IsZero()
		}},
		validate.Rule{Field: "arrival_time", Message: "must not be before departure_time", OK: func() bool {
			return in.DepartureTime.IsZero() || in.ArrivalTime.IsZero() || !in.ArrivalTime.Before(in.DepartureTime)
		}},
		validate.Rule{Field: "origin", Message: "must be non-empty", OK: func() bool {
			return strings.TrimSpace(in.Origin) != ""
		}},
		validate.Rule{Field: "destination", Message: "must be non-empty", OK: func() bool {
			return strings.TrimSpace(in.Destination) != ""
		}},
		validate.Rule{Field: "distance_km", Message: "must be zero or positive", OK: func() bool {
			return in.DistanceKM >= 0
		}},
	)
	if fields != nil {
		return domain.Trip{}, apperr.Validation(fields...)
	}

	if _, err := s.vehicles.GetByID(ctx, in.VehicleID); err != nil {
		if errors.Is(err, vehiclerepo.ErrNotFound) {
			return domain.Trip{}, invalidReference()
		}
		return domain.Trip{}, err
	}
	if _, err := s.drivers.GetByID(ctx, in.DriverID); err != nil {
		if errors.Is(err, driverrepo.ErrNotFound) {
			return domain.Trip{}, invalidReference()
		}
		return domain.Trip{}, err
	}

	t := domain.Trip{
		ID:            s.newTripID(),
		VehicleID:     in.VehicleID,
		DriverID:      in.DriverID,
		DepartureTime: in.DepartureTime.UTC(),
		ArrivalTime:   in.ArrivalTime.UTC(),
		Origin:        strings.TrimSpace(in.Origin),
		Destination:   strings.TrimSpace(in.Destination),
		DistanceKM:    in.DistanceKM,
		Notes:         in.Notes,
		CreatedAt:     s.clk.Now(),
	}
	if err := s.trips.Create(ctx, t); err != nil {
		// A concurrent vehicle/driver delete can still invalidate the reference
		// between the checks above and the insert.
		if errors.Is(err, triprepo.ErrInvalidReference) {
			return domain.Trip{}, invalidReference()
		}
		return domain.Trip{}, err
	}
	return t, nil
}

// History returns all trips referencing the entity, newest departure first,
// each joined with the driver's name and a vehicle descriptor. An entity with
// no trips yields an empty slice, not an error.
func (s *Service) History(ctx context.Context, kind EntityKind, id string) ([]HistoryEntry, error) {
	ts, err := s.listForEntity(ctx, kind, id)
	if err != nil {
		return nil, err
	}

	driverNames := make(map[domain.DriverID]string)
	vehicleInfos := make(map[domain.VehicleID]string)

	out := make([]HistoryEntry, 0, len(ts))
	for _, t := range ts {
		name, ok := driverNames[t.DriverID]
		if !ok {
			d, err := s.drivers.GetByID(ctx, t.DriverID)
			if err != nil {
				return nil, err
			}
			name = d.FullName()
			driverNames[t.DriverID] = name
		}
		info, ok := vehicleInfos[t.VehicleID]
		if !ok {
			v, err := s.vehicles.GetByID(ctx, t.VehicleID)
			if err != nil {
				return nil, err
			}
			info = v.Brand + " - " + v.Plate
			vehicleInfos[t.VehicleID] = info
		}
		out = append(out, HistoryEntry{
			TripID:        t.ID,
			DepartureTime: t.DepartureTime,
			ArrivalTime:   t.ArrivalTime,
			Origin:        t.Origin,
			Destination:   t.Destination,
			DistanceKM:    t.DistanceKM,
			DriverName:    name,
			VehicleInfo:   info,
		})
	}
	return out, nil
}

// TotalDistance sums distance_km over all trips referencing the entity.
// No matching trips is a total of 0, never an error.
func (s *Service) TotalDistance(ctx context.Context, kind EntityKind, id string) (float64, error) {
	switch kind {
	case KindDriver:
		return s.trips.TotalDistanceByDriver(ctx, domain.DriverID(id))
	case KindVehicle:
		return s.trips.TotalDistanceByVehicle(ctx, domain.VehicleID(id))
	default:
		return 0, invalidKind()
	}
}

func (s *Service) listForEntity(ctx context.Context, kind EntityKind, id string) ([]domain.Trip, error) {
	switch kind {
	case KindDriver:
		return s.trips.ListByDriver(ctx, domain.DriverID(id))
	case KindVehicle:
		return s.trips.ListByVehicle(ctx, domain.VehicleID(id))
	default:
		return nil, invalidKind()
	}
}

func invalidReference() *apperr.Error {
	return &apperr.Error{Status: 400, Code: "REFERENTIAL_CONFLICT", Message: "invalid vehicle or driver id"}
}

func invalidKind() *apperr.Error {
	return apperr.Validation(apperr.FieldError{Field: "type", Message: "must be driver or vehicle"})
}
