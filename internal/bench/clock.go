//go:generate mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks

package bench

import "time"

// Clock abstracts the time source sampled around each timed stage.
type Clock interface {
	// Now returns the current time, including its monotonic reading.
	Now() time.Time
}

// SystemClock reads the wall clock through time.Now. Durations computed from
// two of its readings use the monotonic clock.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time { return time.Now() }
