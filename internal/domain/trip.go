package domain

import "time"

// Trip is a completed or planned journey. VehicleID and DriverID must reference
// existing records; that invariant is enforced on create and on referenced-entity
// deletion, never relaxed.
type Trip struct {
	ID        TripID
	VehicleID VehicleID
	DriverID  DriverID

	DepartureTime time.Time
	ArrivalTime   time.Time
	Origin        string
	Destination   string
	DistanceKM    float64
	Notes         *string

	CreatedAt time.Time
}
