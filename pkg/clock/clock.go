// pkg/clock/clock.go

package clock

import (
	"strconv"
	"sync"
	"time"
)

// Clock is a pausable monotonic stopwatch anchored to a wall-clock Epoch.
// Elapsed time is measured with the monotonic clock; the Epoch, captured at
// construction (and recaptured by Reset), converts elapsed readings into
// absolute timestamps without further system-clock calls.
//
// A Clock is a shared handle: copies refer to the same underlying stopwatch,
// and all operations are safe for concurrent use. Mutators serialize through
// a write lock, accessors through a read lock.
type Clock struct {
	state *clockState
}

type clockState struct {
	mu    sync.RWMutex
	epoch Epoch
	start time.Time // beginning of the current running interval
	stop  time.Time // zero while ticking
}

// New returns a running Clock anchored to a freshly captured Epoch.
func New() Clock {
	return Clock{state: &clockState{
		epoch: FromUnix(),
		start: time.Now(),
	}}
}

// Start rebases the running interval to begin now, discarding any elapsed
// time, and leaves the epoch untouched.
func (c Clock) Start() {
	s := c.state
	s.mu.Lock()
	s.start = time.Now()
	s.stop = time.Time{}
	s.mu.Unlock()
}

// Stop freezes the stopwatch and returns the elapsed running time. Calling
// Stop on an already stopped clock does not move the recorded stop instant;
// it returns the same duration as the call that stopped it.
func (c Clock) Stop() time.Duration {
	s := c.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop.IsZero() {
		s.stop = time.Now()
	}
	return s.stop.Sub(s.start)
}

// Resume clears the stopped marker and returns the duration the clock was
// paused, or zero if it was already running. The start instant is not
// rebased, so the paused interval remains part of subsequent Now readings.
func (c Clock) Resume() time.Duration {
	s := c.state
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.stop.IsZero() {
		return 0
	}
	paused := time.Since(s.stop)
	s.stop = time.Time{}
	return paused
}

// Reset rebases the running interval to begin now and recaptures the Epoch
// from the wall clock. This is the only operation that changes the epoch
// after construction.
func (c Clock) Reset() {
	s := c.state
	s.mu.Lock()
	s.epoch = FromUnix()
	s.start = time.Now()
	s.stop = time.Time{}
	s.mu.Unlock()
}

// Epoch returns the wall-clock anchor captured at construction or at the
// last Reset.
func (c Clock) Epoch() Epoch {
	s := c.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.epoch
}

// Now returns the elapsed time of the current running interval. While the
// clock is stopped the value is frozen at the stop instant.
func (c Clock) Now() time.Duration {
	s := c.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now()
}

// Time returns the elapsed time plus the epoch offset, approximating the
// current wall-clock time as a duration since the UNIX reference instant.
func (c Clock) Time() time.Duration {
	s := c.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now() + s.epoch.Duration()
}

// TimeAsFloat returns Time as seconds with fractional nanoseconds.
func (c Clock) TimeAsFloat() float64 {
	return c.Time().Seconds()
}

// IsTicking reports whether the clock is running.
func (c Clock) IsTicking() bool {
	s := c.state
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stop.IsZero()
}

func (c Clock) String() string {
	return strconv.FormatFloat(c.TimeAsFloat(), 'f', -1, 64)
}

// now assumes the caller holds at least the read lock.
func (s *clockState) now() time.Duration {
	if !s.stop.IsZero() {
		return s.stop.Sub(s.start)
	}
	return time.Since(s.start)
}
