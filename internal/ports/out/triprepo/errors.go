package triprepo

import "errors"

var (
	// ErrAlreadyExists indicates a trip already exists with the provided ID.
	ErrAlreadyExists = errors.New("trip already exists")

	// ErrInvalidReference indicates vehicle_id or driver_id points at a row that
	// does not exist. Surfaced by storage-level foreign-key checks; the app layer
	// also pre-validates, so hitting this means a concurrent delete won the race.
	ErrInvalidReference = errors.New("invalid vehicle or driver reference")
)
