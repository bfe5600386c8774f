package domain

// UserID is an internal identifier for a user account.
type UserID string

// VehicleID is an internal identifier for a vehicle record.
type VehicleID string

// DriverID is an internal identifier for a driver record.
type DriverID string

// TripID is an internal identifier for a trip record.
type TripID string
