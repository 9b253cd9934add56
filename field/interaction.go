package field

// Tracker maintains pointer state across frames. Position updates are
// instantaneous; only the hover intensity is smoothed. All methods are meant
// to be called from the single frame-driving goroutine.
type Tracker struct {
	px, py   float32
	hover    float32
	hovering bool
	alpha    float32
}

// NewTracker creates a tracker with hover intensity 0 and no pointer.
func NewTracker(alpha float32) Tracker {
	return Tracker{alpha: alpha}
}

// Enter marks the pointer as present.
func (tr *Tracker) Enter() {
	tr.hovering = true
}

// Move updates the pointer position and marks it present. Coordinates are
// normalized to [-1,1] per axis.
func (tr *Tracker) Move(px, py float32) {
	tr.hovering = true
	tr.px = px
	tr.py = py
}

// Leave marks the pointer as absent. The position is kept so the ripple
// fades out at its last location instead of snapping to the origin.
func (tr *Tracker) Leave() {
	tr.hovering = false
}

// Tick advances hover intensity one step toward its target (1 while
// hovering, 0 otherwise) by the fixed smoothing factor. The step is per
// frame, not per unit time, matching the reference behavior.
func (tr *Tracker) Tick() {
	target := float32(0)
	if tr.hovering {
		target = 1
	}
	tr.hover += (target - tr.hover) * tr.alpha
}

// Intensity returns the smoothed hover intensity in [0,1].
func (tr *Tracker) Intensity() float32 {
	return tr.hover
}

// Hovering reports whether the pointer is currently present.
func (tr *Tracker) Hovering() bool {
	return tr.hovering
}

// Pointer returns the last known normalized pointer position.
func (tr *Tracker) Pointer() (px, py float32) {
	return tr.px, tr.py
}
