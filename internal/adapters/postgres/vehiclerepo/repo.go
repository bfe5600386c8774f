package vehiclerepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/FBenja/fleet-api/internal/adapters/postgres"
	"github.com/FBenja/fleet-api/internal/domain"
	"github.com/FBenja/fleet-api/internal/ports/out/vehiclerepo"
)

// Repo is a Postgres implementation of vehiclerepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, brand, model, plate, year, load_capacity, created_at, updated_at`

func (r *Repo) Create(ctx context.Context, v domain.Vehicle) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO vehicles (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		string(v.ID),
		v.Brand,
		v.Model,
		v.Plate,
		v.Year,
		v.LoadCapacity,
		v.CreatedAt.UTC(),
		v.UpdatedAt.UTC(),
	)
	return mapWriteError(err)
}

func (r *Repo) Update(ctx context.Context, v domain.Vehicle) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE vehicles
		SET brand = $2,
		    model = $3,
		    plate = $4,
		    year = $5,
		    load_capacity = $6,
		    updated_at = $7
		WHERE id = $1
	`,
		string(v.ID),
		v.Brand,
		v.Model,
		v.Plate,
		v.Year,
		v.LoadCapacity,
		v.UpdatedAt.UTC(),
	)
	if err != nil {
		return mapWriteError(err)
	}
	if ct.RowsAffected() == 0 {
		return vehiclerepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.VehicleID) (domain.Vehicle, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+columns+` FROM vehicles WHERE id = $1`, string(id))
	v, err := scanVehicle(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Vehicle{}, vehiclerepo.ErrNotFound
		}
		return domain.Vehicle{}, err
	}
	return v, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Vehicle, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+columns+` FROM vehicles ORDER BY plate ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Vehicle, 0)
	for rows.Next() {
		v, err := scanVehicle(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, id domain.VehicleID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, string(id))
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.ForeignKeyViolationCode {
			return vehiclerepo.ErrReferenced
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return vehiclerepo.ErrNotFound
	}
	return nil
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
		if pe.ConstraintName == "vehicles_plate_unique" {
			return vehiclerepo.ErrDuplicatePlate
		}
	}
	return err
}

func scanVehicle(row pgx.Row) (domain.Vehicle, error) {
	var v domain.Vehicle
	var id string
	err := row.Scan(&id, &v.Brand, &v.Model, &v.Plate, &v.Year, &v.LoadCapacity, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return domain.Vehicle{}, err
	}
	v.ID = domain.VehicleID(id)
	return v, nil
}
