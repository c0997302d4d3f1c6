package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const freq = uint64(1_000_000_000)

func TestClockFirstTickLatchesStart(t *testing.T) {
	var c Clock
	s := c.Tick(5*freq, freq)

	assert.Zero(t, s.Delta)
	assert.Zero(t, s.Elapsed)
	assert.False(t, s.FPSUpdated)
	assert.Equal(t, 1, c.Pending())
}

func TestClockDelta(t *testing.T) {
	var c Clock
	c.Tick(0, freq)

	s := c.Tick(freq/4, freq)
	assert.InDelta(t, 0.25, s.Delta, 1e-12)

	s = c.Tick(freq/4+freq/50, freq)
	assert.InDelta(t, 0.02, s.Delta, 1e-12)
}

func TestClockNonNanosecondFrequency(t *testing.T) {
	var c Clock
	c.Tick(1000, 1000)
	s := c.Tick(1500, 1000)

	assert.InDelta(t, 0.5, s.Delta, 1e-12)
	assert.InDelta(t, 0.5, s.ElapsedExact, 1e-12)
	assert.Equal(t, 0, s.Elapsed)
}

func TestClockFPSAfterOneSecond(t *testing.T) {
	var c Clock
	first := c.Tick(0, freq)
	assert.False(t, first.FPSUpdated)

	second := c.Tick(freq, freq)
	assert.True(t, second.FPSUpdated)
	assert.Equal(t, 2, second.FPS, "both ticks in the interval are counted")
	assert.Equal(t, 0, c.Pending(), "counter resets after latching")
}

func TestClockFPSCountsIntermediateTicks(t *testing.T) {
	var c Clock
	var last FrameSample
	for i := 0; i <= 60; i++ {
		last = c.Tick(uint64(i)*freq/60, freq)
	}

	assert.True(t, last.FPSUpdated)
	assert.Equal(t, 61, last.FPS)
}

func TestClockFPSPersistsBetweenLatches(t *testing.T) {
	var c Clock
	c.Tick(0, freq)
	c.Tick(freq, freq)

	s := c.Tick(freq+freq/2, freq)
	assert.False(t, s.FPSUpdated)
	assert.Equal(t, 2, s.FPS)
	assert.Equal(t, 2, c.FPS())
}

func TestClockElapsedWholeSeconds(t *testing.T) {
	var c Clock
	c.Tick(10*freq, freq)

	tests := []struct {
		now     uint64
		elapsed int
	}{
		{10*freq + freq/2, 0},
		{11*freq - 1, 0},
		{11 * freq, 1},
		{13*freq + freq/3, 3},
	}

	for _, tc := range tests {
		s := c.Tick(tc.now, freq)
		assert.Equal(t, tc.elapsed, s.Elapsed, "now=%d", tc.now)
	}
}

func TestClockZeroFrequency(t *testing.T) {
	var c Clock
	s := c.Tick(100, 0)
	assert.Zero(t, s.Delta)
	assert.Zero(t, s.FPS)
}
