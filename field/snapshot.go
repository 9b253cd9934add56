package field

import "github.com/PrashantSinghB22/Paricle-Wave/camera"

// RenderedPoint is the per-vertex output of a CPU evaluation pass: screen
// position, perspective-attenuated size, and shaded color. Recomputed every
// frame, never stored across frames.
type RenderedPoint struct {
	ScreenX, ScreenY float32
	Elevation        float32
	Size             float32
	R, G, B, A       float32
}

// Snapshot evaluates the full displacement and shading pipeline on the CPU
// for every lattice vertex, producing renderable points for the current
// elapsed time and interaction state. Vertices at or behind the camera plane
// are skipped. This is the render path used headless and under test; the GPU
// shaders mirror the same math.
func (f *Field) Snapshot(cam *camera.Camera, viewportW, viewportH float32) []RenderedPoint {
	t := f.elapsed
	pts := make([]RenderedPoint, 0, len(f.verts))
	col := f.params.Points.Color

	for i := range f.verts {
		v := &f.verts[i]
		z := f.Displace(v.X, v.Y, t)
		world := camera.Vec3{X: v.X, Y: v.Y, Z: z}

		sx, sy, ok := cam.WorldToScreen(world, viewportW, viewportH)
		if !ok {
			continue
		}
		depth := cam.ViewDepth(world)
		if depth >= 0 {
			continue
		}

		pts = append(pts, RenderedPoint{
			ScreenX:   sx,
			ScreenY:   sy,
			Elevation: z,
			Size:      PointSize(f.params.Points.BaseSize, f.params.Points.ReferenceDistance, depth),
			R:         col.R,
			G:         col.G,
			B:         col.B,
			A:         Alpha(z),
		})
	}
	return pts
}

// Elevations evaluates the displaced elevation of every lattice vertex into
// dst, reusing it when capacity allows. Used by telemetry to sample the
// field's distribution without allocating per frame.
func (f *Field) Elevations(dst []float64) []float64 {
	t := f.elapsed
	if cap(dst) < len(f.verts) {
		dst = make([]float64, len(f.verts))
	}
	dst = dst[:len(f.verts)]
	for i := range f.verts {
		v := &f.verts[i]
		dst[i] = float64(f.Displace(v.X, v.Y, t))
	}
	return dst
}
