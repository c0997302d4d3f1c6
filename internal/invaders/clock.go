package invaders

// FrameSample is what the clock reports for one loop iteration.
type FrameSample struct {
	Delta        float64 // Seconds since the previous tick
	FPS          int     // Most recent frames-per-second sample
	FPSUpdated   bool    // True when this tick latched a new FPS sample
	Elapsed      int     // Whole seconds since the first tick
	ElapsedExact float64 // Seconds since the first tick
}

// Clock converts a monotonic counter into frame deltas and an FPS sample.
// The zero value is ready to use: the first Tick latches its timestamp as the
// start and reports a zero delta.
type Clock struct {
	start      uint64
	lastFrame  uint64
	lastSecond uint64
	frames     int
	fps        int
	started    bool
}

// Tick records one frame at counter value now. frequency is the number of
// counter ticks per second.
func (c *Clock) Tick(now, frequency uint64) FrameSample {
	if !c.started {
		c.start, c.lastFrame, c.lastSecond = now, now, now
		c.started = true
	}
	if frequency == 0 {
		return FrameSample{FPS: c.fps}
	}

	freq := float64(frequency)
	sample := FrameSample{
		Delta:        float64(now-c.lastFrame) / freq,
		Elapsed:      int((now - c.start) / frequency),
		ElapsedExact: float64(now-c.start) / freq,
	}

	c.lastFrame = now
	c.frames++

	if now-c.lastSecond >= frequency {
		c.fps = c.frames
		c.frames = 0
		c.lastSecond = now
		sample.FPSUpdated = true
	}

	sample.FPS = c.fps
	return sample
}

// FPS returns the last latched frames-per-second value.
func (c *Clock) FPS() int {
	return c.fps
}

// Pending returns the frames counted since the last FPS latch.
func (c *Clock) Pending() int {
	return c.frames
}
