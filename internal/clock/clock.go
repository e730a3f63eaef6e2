package clock

import (
	"time"

	"github.com/aalvaropc/customs/internal/ports"
)

// RealClock reads the local wall clock.
type RealClock struct{}

func (RealClock) Now() time.Time {
	return time.Now()
}

// Fixed always returns the same instant. Useful for tests.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

var (
	_ ports.Clock = RealClock{}
	_ ports.Clock = Fixed{}
)
