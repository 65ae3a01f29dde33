package util

import "time"

// Clock supplies current time. Injected so the cool-off policy and
// state transitions are testable against a fixed instant.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time {
	return time.Now().UTC()
}

func NewClock() Clock {
	return realClock{}
}

// FixedClock always returns Instant. Test helper.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}
