package domain

import "time"

// Driver is a person licensed to operate fleet vehicles.
// NationalID is unique; LicenseExpiry carries date-only semantics at the edges.
type Driver struct {
	ID            DriverID
	FirstName     string
	LastName      string
	NationalID    string
	LicenseNumber string
	LicenseExpiry time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the driver's display name as used in trip history entries.
func (d Driver) FullName() string {
	return d.FirstName + " " + d.LastName
}
