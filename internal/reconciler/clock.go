package reconciler

import "time"

// Clock provides times.
type Clock interface {
	// Now returns current UTC time.
	Now() time.Time
}

type systemClock struct{}

// Now returns current time.
func (c systemClock) Now() time.Time {
	return time.Now().UTC()
}
