package driverrepo

import "errors"

var (
	// ErrNotFound indicates the requested driver does not exist.
	ErrNotFound = errors.New("driver not found")

	// ErrDuplicateNationalID indicates a driver already exists with the provided national id.
	ErrDuplicateNationalID = errors.New("driver national id already registered")

	// ErrReferenced indicates the driver is still referenced by at least one trip.
	ErrReferenced = errors.New("driver referenced by trips")
)
