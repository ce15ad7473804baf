// pkg/clock/epoch.go

package clock

import (
	"strconv"
	"time"
)

// Epoch is a wall-clock reference point, expressed as the duration elapsed
// since the UNIX reference instant. It is a value type: arithmetic returns a
// new Epoch and never mutates in place.
type Epoch time.Duration

// FromUnix captures the current system wall-clock time as an Epoch.
// It panics if the system clock reports a time before the UNIX reference
// instant, which is an unrecoverable environment fault.
func FromUnix() Epoch {
	d := time.Since(time.Unix(0, 0))
	if d < 0 {
		panic("clock: system time is before the UNIX reference instant")
	}
	return Epoch(d)
}

// FromDuration wraps an arbitrary duration as an Epoch.
func FromDuration(d time.Duration) Epoch {
	return Epoch(d)
}

// Zero returns the zero Epoch.
func Zero() Epoch {
	return Epoch(0)
}

// Add returns the sum of two epochs.
func (e Epoch) Add(o Epoch) Epoch {
	return e + o
}

// Sub returns the difference of two epochs. It panics if the result would
// be negative; an underflowing subtraction is a programmer error.
func (e Epoch) Sub(o Epoch) Epoch {
	if o > e {
		panic("clock: epoch subtraction underflow")
	}
	return e - o
}

// AddDuration returns the epoch shifted forward by d.
func (e Epoch) AddDuration(d time.Duration) Epoch {
	return e + Epoch(d)
}

// SubDuration returns the epoch shifted backward by d. It panics if the
// result would be negative.
func (e Epoch) SubDuration(d time.Duration) Epoch {
	if Epoch(d) > e {
		panic("clock: epoch subtraction underflow")
	}
	return e - Epoch(d)
}

// Duration returns the underlying offset since the UNIX reference instant.
func (e Epoch) Duration() time.Duration {
	return time.Duration(e)
}

// Seconds returns the offset as seconds with fractional nanoseconds.
func (e Epoch) Seconds() float64 {
	return time.Duration(e).Seconds()
}

func (e Epoch) String() string {
	return strconv.FormatFloat(e.Seconds(), 'f', -1, 64)
}
