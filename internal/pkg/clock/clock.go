// Package clock stamps stored records with the current time
package clock

import "time"

//go:generate mockgen -destination=mock/mock.go -package=mockclock github.com/KirkDiggler/talent-api/internal/pkg/clock Clock

// Clock returns the time used for record timestamps
type Clock interface {
	Now() time.Time
}

// UTC reports the system time in UTC with sub-second precision dropped, so a
// stamped record reads back identical after a JSON round trip
type UTC struct{}

// Now returns the current UTC time truncated to the second
func (UTC) Now() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

// Fixed always reports the same instant
type Fixed time.Time

// Now returns the fixed instant
func (f Fixed) Now() time.Time {
	return time.Time(f)
}

// New returns the system clock
func New() Clock {
	return UTC{}
}
