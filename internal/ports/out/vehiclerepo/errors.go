package vehiclerepo

import "errors"

var (
	// ErrNotFound indicates the requested vehicle does not exist.
	ErrNotFound = errors.New("vehicle not found")

	// ErrDuplicatePlate indicates a vehicle already exists with the provided plate.
	ErrDuplicatePlate = errors.New("vehicle plate already registered")

	// ErrReferenced indicates the vehicle is still referenced by at least one trip.
	ErrReferenced = errors.New("vehicle referenced by trips")
)
