// pkg/clock/epoch_test.go

package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEpochFromUnix(t *testing.T) {
	e := FromUnix()
	// Anything earlier than 2020 means the wall clock is broken.
	require.Greater(t, e.Duration(), 50*365*24*time.Hour)
}

func TestEpochFromDuration(t *testing.T) {
	e := FromDuration(90 * time.Second)
	assert.Equal(t, 90*time.Second, e.Duration())
	assert.Equal(t, time.Duration(0), Zero().Duration())
}

func TestEpochArithmetic(t *testing.T) {
	a := FromDuration(10 * time.Second)
	b := FromDuration(3 * time.Second)

	assert.Equal(t, FromDuration(13*time.Second), a.Add(b))
	assert.Equal(t, FromDuration(7*time.Second), a.Sub(b))
	assert.Equal(t, FromDuration(12*time.Second), a.AddDuration(2*time.Second))
	assert.Equal(t, FromDuration(8*time.Second), a.SubDuration(2*time.Second))

	// Operands are untouched.
	assert.Equal(t, FromDuration(10*time.Second), a)
	assert.Equal(t, FromDuration(3*time.Second), b)
}

func TestEpochSubUnderflowPanics(t *testing.T) {
	a := FromDuration(time.Second)
	b := FromDuration(2 * time.Second)
	assert.Panics(t, func() { a.Sub(b) })
	assert.Panics(t, func() { a.SubDuration(2 * time.Second) })
}

func TestEpochSeconds(t *testing.T) {
	e := FromDuration(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, e.Seconds(), 1e-12)
}

func TestEpochString(t *testing.T) {
	assert.Equal(t, "1.5", FromDuration(1500*time.Millisecond).String())
	assert.Equal(t, "0", Zero().String())
	assert.Equal(t, "2.000000001", FromDuration(2*time.Second+time.Nanosecond).String())
}
