package domain

import "time"

// Vehicle is a fleet vehicle. Plate is unique across the fleet.
type Vehicle struct {
	ID           VehicleID
	Brand        string
	Model        string
	Plate        string
	Year         int
	LoadCapacity float64

	CreatedAt time.Time
	UpdatedAt time.Time
}
