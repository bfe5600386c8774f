package driverrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/FBenja/fleet-api/internal/adapters/postgres"
	"github.com/FBenja/fleet-api/internal/domain"
	"github.com/FBenja/fleet-api/internal/ports/out/driverrepo"
)

// Repo is a Postgres implementation of driverrepo.Repository.
type Repo struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = `id, first_name, last_name, national_id, license_number, license_expiry, created_at, updated_at`

func (r *Repo) Create(ctx context.Context, d domain.Driver) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO drivers (`+columns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`,
		string(d.ID),
		d.FirstName,
		d.LastName,
		d.NationalID,
		d.LicenseNumber,
		d.LicenseExpiry,
		d.CreatedAt.UTC(),
		d.UpdatedAt.UTC(),
	)
	return mapWriteError(err)
}

func (r *Repo) Update(ctx context.Context, d domain.Driver) error {
	ct, err := r.pool.Exec(ctx, `
		UPDATE drivers
		SET first_name = $2,
		    last_name = $3,
		    national_id = $4,
		    license_number = $5,
		    license_expiry = $6,
		    updated_at = $7
		WHERE id = $1
	`,
		string(d.ID),
		d.FirstName,
		d.LastName,
		d.NationalID,
		d.LicenseNumber,
		d.LicenseExpiry,
		d.UpdatedAt.UTC(),
	)
	if err != nil {
		return mapWriteError(err)
	}
	if ct.RowsAffected() == 0 {
		return driverrepo.ErrNotFound
	}
	return nil
}

func (r *Repo) GetByID(ctx context.Context, id domain.DriverID) (domain.Driver, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+columns+` FROM drivers WHERE id = $1`, string(id))
	d, err := scanDriver(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Driver{}, driverrepo.ErrNotFound
		}
		return domain.Driver{}, err
	}
	return d, nil
}

func (r *Repo) List(ctx context.Context) ([]domain.Driver, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+columns+`
		FROM drivers
		ORDER BY lower(last_name) ASC, lower(first_name) ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]domain.Driver, 0)
	for rows.Next() {
		d, err := scanDriver(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, id domain.DriverID) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM drivers WHERE id = $1`, string(id))
	if err != nil {
		if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.ForeignKeyViolationCode {
			return driverrepo.ErrReferenced
		}
		return err
	}
	if ct.RowsAffected() == 0 {
		return driverrepo.ErrNotFound
	}
	return nil
}

func mapWriteError(err error) error {
	if err == nil {
		return nil
	}
	if pe, ok := postgres.AsPgError(err); ok && pe.Code == postgres.UniqueViolationCode {
		if pe.ConstraintName == "drivers_national_id_unique" {
			return driverrepo.ErrDuplicateNationalID
		}
	}
	return err
}

func scanDriver(row pgx.Row) (domain.Driver, error) {
	var d domain.Driver
	var id string
	err := row.Scan(&id, &d.FirstName, &d.LastName, &d.NationalID, &d.LicenseNumber, &d.LicenseExpiry, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return domain.Driver{}, err
	}
	d.ID = domain.DriverID(id)
	return d, nil
}
