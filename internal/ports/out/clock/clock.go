package clock

import "time"

// Clock is the time source the services depend on. Nothing in the application
// calls time.Now directly; token expiry and record timestamps all flow through
// here so tests can drive them with a manual implementation.
type Clock interface {
	Now() time.Time
}
