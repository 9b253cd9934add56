package telemetry

// Collector accumulates pointer events within frame windows and produces
// WindowStats. Windows are measured in frames; the caller decides when to
// flush via ShouldFlush.
type Collector struct {
	windowFrames int64
	dt           float64 // seconds per frame, for frame-to-time conversion

	windowStartFrame int64

	// Event counters for the current window
	enters int
	moves  int
	leaves int
}

// NewCollector creates a collector with the given window duration in
// seconds and per-frame time step.
func NewCollector(windowSec, dt float64) *Collector {
	frames := int64(windowSec / dt)
	if frames < 1 {
		frames = 1
	}
	return &Collector{
		windowFrames: frames,
		dt:           dt,
	}
}

// RecordEnter records a pointer enter event.
func (c *Collector) RecordEnter() {
	c.enters++
}

// RecordMove records a pointer move event.
func (c *Collector) RecordMove() {
	c.moves++
}

// RecordLeave records a pointer leave event.
func (c *Collector) RecordLeave() {
	c.leaves++
}

// ShouldFlush returns true once a full window of frames has elapsed.
func (c *Collector) ShouldFlush(currentFrame int64) bool {
	return currentFrame-c.windowStartFrame >= c.windowFrames
}

// FrameSample holds the per-frame field state sampled at flush time.
type FrameSample struct {
	TimeSec        float64
	HoverIntensity float64
	PointerX       float64
	PointerY       float64
	Hovering       bool
	Elevations     []float64
	VisiblePoints  int
	MeanPointSize  float64
}

// Flush produces a WindowStats from the current counters and the supplied
// end-of-window sample, then resets the counters for the next window.
func (c *Collector) Flush(currentFrame int64, sample FrameSample) WindowStats {
	elev := ComputeElevationStats(sample.Elevations)

	stats := WindowStats{
		WindowStartFrame: c.windowStartFrame,
		WindowEndFrame:   currentFrame,
		TimeSec:          sample.TimeSec,

		HoverIntensity: sample.HoverIntensity,
		PointerX:       sample.PointerX,
		PointerY:       sample.PointerY,
		Hovering:       sample.Hovering,

		Enters: c.enters,
		Moves:  c.moves,
		Leaves: c.leaves,

		ElevMean: elev.Mean,
		ElevStd:  elev.Std,
		ElevMin:  elev.Min,
		ElevMax:  elev.Max,
		ElevP10:  elev.P10,
		ElevP50:  elev.P50,
		ElevP90:  elev.P90,

		VisiblePoints: sample.VisiblePoints,
		MeanPointSize: sample.MeanPointSize,
	}

	c.windowStartFrame = currentFrame
	c.enters = 0
	c.moves = 0
	c.leaves = 0

	return stats
}

// WindowFrames returns the number of frames per window.
func (c *Collector) WindowFrames() int64 {
	return c.windowFrames
}
