package userrepo

import "errors"

var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrDuplicateEmail indicates a user already exists with the provided email.
	ErrDuplicateEmail = errors.New("user email already registered")
)
