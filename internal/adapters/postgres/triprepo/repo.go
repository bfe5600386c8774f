package triprepo

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/FBenja/fleet-api/internal/adapters/postgres"
	"github.com/FBenja/fleet-api/internal/domain"
	"github.com/FBenja/fleet-api/internal/ports/out/triprepo"
)

// Repo is a Postgres implementation of triprepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, vehicle_id, driver_id, departure_time, arrival_time, origin, destination, distance_km, notes, created_at`

func (r *Repo) Create(ctx context.Context, t domain.Trip) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO trips (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`,
		string(t.ID),
		string(t.VehicleID),
		string(t.DriverID),
		t.DepartureTime.UTC(),
		t.ArrivalTime.UTC(),
		t.Origin,
		t.Destination,
		t.DistanceKM,
		t.Notes,
		t.CreatedAt.UTC(),
	)
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok {
			switch pe.Code {
			case postgres.ForeignKeyViolationCode:
				return triprepo.ErrInvalidReference
			case postgres.UniqueViolationCode:
				return triprepo.ErrAlreadyExists
			}
		}
		return err
	}
	return nil
}

func (r *Repo) ListByVehicle(ctx context.Context, id domain.VehicleID) ([]domain.Trip, error) {
	return r.list(ctx, `vehicle_id`, string(id))
}

func (r *Repo) ListByDriver(ctx context.Context, id domain.DriverID) ([]domain.Trip, error) {
	return r.list(ctx, `driver_id`, string(id))
}

func (r *Repo) TotalDistanceByVehicle(ctx context.Context, id domain.VehicleID) (float64, error) {
	return r.sum(ctx, `vehicle_id`, string(id))
}

func (r *Repo) TotalDistanceByDriver(ctx context.Context, id domain.DriverID) (float64, error) {
	return r.sum(ctx, `driver_id`, string(id))
}

func (r *Repo) ExistsForVehicle(ctx context.Context, id domain.VehicleID) (bool, error) {
	return r.exists(ctx, `vehicle_id`, string(id))
}

func (r *Repo) ExistsForDriver(ctx context.Context, id domain.DriverID) (bool, error) {
	return r.exists(ctx, `driver_id`, string(id))
}

// column is always one of the two FK column literals above, never caller input.

func (r *Repo) list(ctx context.Context, column, id string) ([]domain.Trip, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+columns+`
		FROM trips
		WHERE `+column+` = $1
		ORDER BY departure_time DESC, id ASC
	`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Trip, 0)
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (r *Repo) sum(ctx context.Context, column, id string) (float64, error) {
	var total float64
	err := r.pool.QueryRow(ctx, `
		SELECT COALESCE(SUM(distance_km), 0)
		FROM trips
		WHERE `+column+` = $1
	`, id).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *Repo) exists(ctx context.Context, column, id string) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM trips WHERE `+column+` = $1)
	`, id).Scan(&found)
	if err != nil {
		return false, err
	}
	return found, nil
}

func scanTrip(row pgx.Row) (domain.Trip, error) {
	var t domain.Trip
	var id, vehicleID, driverID string
	err := row.Scan(&id, &vehicleID, &driverID, &t.DepartureTime, &t.ArrivalTime, &t.Origin, &t.Destination, &t.DistanceKM, &t.Notes, &t.CreatedAt)
	if err != nil {
		return domain.Trip{}, err
	}
	t.ID = domain.TripID(id)
	t.VehicleID = domain.VehicleID(vehicleID)
	t.DriverID = domain.DriverID(driverID)
	return t, nil
}
