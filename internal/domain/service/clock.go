package service

import "time"

// Clock supplies the current time. Scheduling uses it to decide what "today" is.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in UTC.
type SystemClock struct{}

// Now returns the current UTC time.
func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// NewSystemClock provides the wall clock to the Fx graph.
func NewSystemClock() Clock {
	return SystemClock{}
}

// ClockOrSystem returns c, or SystemClock when c is nil.
func ClockOrSystem(c Clock) Clock {
	if c == nil {
		return SystemClock{}
	}

	return c
}
