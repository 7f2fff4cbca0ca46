package engine

import "time"

// Clock abstracts the time source so timers are testable without sleeping
type Clock interface {
	Now() time.Time
}

// MonotonicClock provides the real system time with monotonic readings
type MonotonicClock struct{}

// NewMonotonicClock creates the production clock
func NewMonotonicClock() *MonotonicClock {
	return &MonotonicClock{}
}

// Now returns the current time with a monotonic clock reading
func (c *MonotonicClock) Now() time.Time {
	return time.Now()
}
