package trips

import (
	"time"

	"github.com/FBenja/fleet-api/internal/domain"
)

// EntityKind selects which side of a trip an aggregate query groups by.
type EntityKind string

const (
	KindDriver  EntityKind = "driver"
	KindVehicle EntityKind = "vehicle"
)

// ParseEntityKind validates a path parameter into an EntityKind.
// Anything outside {driver, vehicle} is invalid.
func ParseEntityKind(s string) (EntityKind, bool) {
	switch EntityKind(s) {
	case KindDriver, KindVehicle:
		return EntityKind(s), true
	default:
		return "", false
	}
}

type CreateInput struct {
	VehicleID domain.VehicleID
	DriverID  domain.DriverID

	DepartureTime time.Time
	ArrivalTime   time.Time
	Origin        string
	Destination   string
	DistanceKM    float64
	Notes         *string
}

// HistoryEntry is a trip joined with human-readable driver and vehicle labels.
type HistoryEntry struct {
	TripID        domain.TripID
	DepartureTime time.Time
	ArrivalTime   time.Time
	Origin        string
	Destination   string
	DistanceKM    float64
	DriverName    string
	VehicleInfo   string
}
