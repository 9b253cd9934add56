// Package field implements the particle wave curtain: a fixed planar lattice
// of vertices displaced by a procedural wave function and a pointer-driven
// ripple, with per-point size and alpha shading.
package field

import (
	"fmt"
	"math"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/PrashantSinghB22/Paricle-Wave/config"
)

// Vertex is one point of the base lattice. Base positions are immutable;
// displacement only ever produces a derived z, never mutates x/y.
type Vertex struct {
	X, Y float32 // lattice position in the plane's local frame, centered on origin
	U, V float32 // texture coordinate in [0,1]
}

// Color is an RGB triple with components in [0,1].
type Color struct {
	R, G, B float32
}

// WaveParams holds the base wave configuration.
type WaveParams struct {
	Speed     float32
	Frequency float32
	Amplitude float32

	// Simplex noise layer. Zero strength disables it and the elevation
	// bound reduces to 1.5 * Amplitude.
	NoiseDensity  float32
	NoiseStrength float32
}

// InteractionParams holds pointer ripple configuration.
type InteractionParams struct {
	Radius         float32 // influence radius in world units, must be > 0
	RippleFreq     float32 // spatial frequency of the traveling ripple
	RippleSpeed    float32 // temporal frequency of the traveling ripple
	RippleStrength float32 // peak ripple amplitude
	Smoothing      float32 // per-tick hover intensity lerp factor, in (0,1]
}

// PointParams holds per-point shading configuration.
type PointParams struct {
	BaseSize          float32
	ReferenceDistance float32
	Color             Color
}

// Params configures a Field.
type Params struct {
	PlaneWidth  float32
	PlaneHeight float32
	SegmentsX   int
	SegmentsY   int
	Wave        WaveParams
	Interaction InteractionParams
	Points      PointParams
	NoiseSeed   int64
}

// FromConfig builds field parameters from the loaded configuration.
func FromConfig(cfg *config.Config) Params {
	return Params{
		PlaneWidth:  float32(cfg.Plane.Width),
		PlaneHeight: float32(cfg.Plane.Height),
		SegmentsX:   cfg.Plane.SegmentsX,
		SegmentsY:   cfg.Plane.SegmentsY,
		Wave: WaveParams{
			Speed:         float32(cfg.Wave.Speed),
			Frequency:     float32(cfg.Wave.Frequency),
			Amplitude:     float32(cfg.Wave.Amplitude),
			NoiseDensity:  float32(cfg.Wave.NoiseDensity),
			NoiseStrength: float32(cfg.Wave.NoiseStrength),
		},
		Interaction: InteractionParams{
			Radius:         float32(cfg.Interaction.Radius),
			RippleFreq:     float32(cfg.Interaction.RippleFreq),
			RippleSpeed:    float32(cfg.Interaction.RippleSpeed),
			RippleStrength: float32(cfg.Interaction.RippleStrength),
			Smoothing:      float32(cfg.Interaction.Smoothing),
		},
		Points: PointParams{
			BaseSize:          float32(cfg.Points.BaseSize),
			ReferenceDistance: float32(cfg.Points.ReferenceDistance),
			Color: Color{
				R: float32(cfg.Points.Color.R),
				G: float32(cfg.Points.Color.G),
				B: float32(cfg.Points.Color.B),
			},
		},
	}
}

// Field owns the lattice, the wave parameters and the interaction state for
// one particle curtain. Multiple independent fields can coexist; nothing here
// is global.
type Field struct {
	params  Params
	verts   []Vertex
	tracker Tracker
	noise   opensimplex.Noise32
	elapsed float32
}

// New creates a field with the given parameters. The lattice is built once
// and never resized.
func New(p Params) (*Field, error) {
	if p.PlaneWidth <= 0 || p.PlaneHeight <= 0 {
		return nil, fmt.Errorf("field: plane extents must be positive, got %gx%g", p.PlaneWidth, p.PlaneHeight)
	}
	if p.SegmentsX < 1 || p.SegmentsY < 1 {
		return nil, fmt.Errorf("field: subdivisions must be >= 1, got %dx%d", p.SegmentsX, p.SegmentsY)
	}
	if p.Interaction.Radius <= 0 {
		return nil, fmt.Errorf("field: interaction radius must be positive, got %g", p.Interaction.Radius)
	}
	if p.Interaction.Smoothing <= 0 || p.Interaction.Smoothing > 1 {
		return nil, fmt.Errorf("field: smoothing must be in (0, 1], got %g", p.Interaction.Smoothing)
	}
	if p.Points.BaseSize <= 0 || p.Points.ReferenceDistance <= 0 {
		return nil, fmt.Errorf("field: point base size and reference distance must be positive")
	}

	f := &Field{
		params:  p,
		verts:   buildLattice(p.PlaneWidth, p.PlaneHeight, p.SegmentsX, p.SegmentsY),
		tracker: NewTracker(p.Interaction.Smoothing),
		noise:   opensimplex.NewNormalized32(p.NoiseSeed),
	}
	return f, nil
}

// MustNew is like New but panics on error.
func MustNew(p Params) *Field {
	f, err := New(p)
	if err != nil {
		panic(err)
	}
	return f
}

// buildLattice lays out (segX+1)*(segY+1) vertices row-major over a
// width x height plane centered on the origin.
func buildLattice(width, height float32, segX, segY int) []Vertex {
	cols := segX + 1
	rows := segY + 1
	verts := make([]Vertex, 0, cols*rows)
	for r := 0; r < rows; r++ {
		v := float32(r) / float32(segY)
		y := (v - 0.5) * height
		for c := 0; c < cols; c++ {
			u := float32(c) / float32(segX)
			x := (u - 0.5) * width
			verts = append(verts, Vertex{X: x, Y: y, U: u, V: v})
		}
	}
	return verts
}

// Vertices returns the base lattice. Callers must not mutate it.
func (f *Field) Vertices() []Vertex {
	return f.verts
}

// Params returns a copy of the field's parameters.
func (f *Field) Params() Params {
	return f.params
}

// Wave returns the current wave parameters.
func (f *Field) Wave() WaveParams {
	return f.params.Wave
}

// SetWave replaces the wave parameters. Safe to call between frames; the
// parameters are read only inside the per-frame evaluation.
func (f *Field) SetWave(w WaveParams) {
	f.params.Wave = w
}

// Interaction returns the current interaction parameters.
func (f *Field) Interaction() InteractionParams {
	return f.params.Interaction
}

// SetInteraction replaces the interaction parameters.
func (f *Field) SetInteraction(p InteractionParams) {
	f.params.Interaction = p
	f.tracker.alpha = p.Smoothing
}

// Elapsed returns the time passed to the most recent Update.
func (f *Field) Elapsed() float32 {
	return f.elapsed
}

// BaseElevation computes the wave elevation at (x, y) without any pointer
// contribution: two phase-shifted sines at different spatial and temporal
// frequencies, plus the optional simplex layer.
func (f *Field) BaseElevation(x, y, t float32) float32 {
	w := f.params.Wave
	e := w.Amplitude*sinf(x*w.Frequency+t*w.Speed) +
		0.5*w.Amplitude*sinf(y*w.Frequency*0.5+t*w.Speed*0.5)
	if w.NoiseStrength != 0 {
		// Normalized noise is in [0,1]; recenter so the layer is signed.
		n := f.noise.Eval3(x*w.NoiseDensity, y*w.NoiseDensity, t*0.1)
		e += w.NoiseStrength * (n*2 - 1)
	}
	return e
}

// Ripple computes the pointer-driven displacement at (x, y). It is exactly
// zero whenever hover intensity is zero or the vertex lies outside the
// interaction radius.
func (f *Field) Ripple(x, y, t float32) float32 {
	hover := f.tracker.Intensity()
	if hover == 0 {
		return 0
	}
	px, py := f.tracker.Pointer()
	// Project the normalized pointer into the plane's world scale.
	mx := px * f.params.PlaneWidth / 2
	my := py * f.params.PlaneHeight / 2

	dx := mx - x
	dy := my - y
	d := sqrtf(dx*dx + dy*dy)

	infl := Influence(d, f.params.Interaction.Radius)
	if infl == 0 {
		return 0
	}
	return sinf(d*f.params.Interaction.RippleFreq-t*f.params.Interaction.RippleSpeed) *
		infl * f.params.Interaction.RippleStrength * hover
}

// Displace returns the full elevation at (x, y): base wave plus ripple.
// Pure in its inputs and the current interaction state.
func (f *Field) Displace(x, y, t float32) float32 {
	return f.BaseElevation(x, y, t) + f.Ripple(x, y, t)
}

// Influence is the radial falloff of the pointer ripple: 1 at the pointer,
// linearly decaying to 0 at distance radius, 0 beyond.
func Influence(d, radius float32) float32 {
	return clamp(1-d/radius, 0, 1)
}

// Enter reports that the pointer entered the viewing surface.
func (f *Field) Enter() {
	f.tracker.Enter()
}

// Move reports a pointer move with a position normalized to [-1,1] per axis.
func (f *Field) Move(px, py float32) {
	f.tracker.Move(px, py)
}

// Leave reports that the pointer left the viewing surface. The last pointer
// position is retained so the ripple fades out in place.
func (f *Field) Leave() {
	f.tracker.Leave()
}

// Update advances the per-frame state: records elapsed time and ticks the
// hover intensity toward its target. Call exactly once per rendered frame.
func (f *Field) Update(t float32) {
	f.elapsed = t
	f.tracker.Tick()
}

// HoverIntensity returns the current smoothed hover intensity in [0,1].
func (f *Field) HoverIntensity() float32 {
	return f.tracker.Intensity()
}

// Pointer returns the last known normalized pointer position.
func (f *Field) Pointer() (px, py float32) {
	return f.tracker.Pointer()
}

// Uniforms is the typed set of shader parameters for the GPU render path.
// Field names mirror the uniform names in shaders/particles.vs.
type Uniforms struct {
	Time           float32
	Color          Color
	Speed          float32
	Frequency      float32
	Amplitude      float32
	MouseX, MouseY float32 // normalized [-1,1]
	HoverIntensity float32
	Radius         float32
	RippleFreq     float32
	RippleSpeed    float32
	RippleStrength float32
	PointBaseSize  float32
	ReferenceDist  float32
	HalfWidth      float32
	HalfHeight     float32
}

// Uniforms captures the current frame's shader parameters.
func (f *Field) Uniforms() Uniforms {
	px, py := f.tracker.Pointer()
	return Uniforms{
		Time:           f.elapsed,
		Color:          f.params.Points.Color,
		Speed:          f.params.Wave.Speed,
		Frequency:      f.params.Wave.Frequency,
		Amplitude:      f.params.Wave.Amplitude,
		MouseX:         px,
		MouseY:         py,
		HoverIntensity: f.tracker.Intensity(),
		Radius:         f.params.Interaction.Radius,
		RippleFreq:     f.params.Interaction.RippleFreq,
		RippleSpeed:    f.params.Interaction.RippleSpeed,
		RippleStrength: f.params.Interaction.RippleStrength,
		PointBaseSize:  f.params.Points.BaseSize,
		ReferenceDist:  f.params.Points.ReferenceDistance,
		HalfWidth:      f.params.PlaneWidth / 2,
		HalfHeight:     f.params.PlaneHeight / 2,
	}
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func sqrtf(x float32) float32 {
	return float32(math.Sqrt(float64(x)))
}

func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
