package field

import (
	"math"
	"testing"

	"github.com/PrashantSinghB22/Paricle-Wave/camera"
)

func TestPointSizeAtReferenceDistance(t *testing.T) {
	// base 3, reference 15, depth -15: attenuation factor 1
	if got := PointSize(3, 15, -15); got != 3.0 {
		t.Errorf("expected size 3.0 at reference distance, got %f", got)
	}
}

func TestPointSizeAttenuation(t *testing.T) {
	near := PointSize(3, 15, -7.5)
	far := PointSize(3, 15, -30)

	if near != 6.0 {
		t.Errorf("expected size 6.0 at half reference distance, got %f", near)
	}
	if far != 1.5 {
		t.Errorf("expected size 1.5 at double reference distance, got %f", far)
	}
}

func TestPointSizeDepthClamp(t *testing.T) {
	// A vertex exactly at the camera plane must not divide by zero.
	got := PointSize(3, 15, 0)
	if math.IsInf(float64(got), 0) || math.IsNaN(float64(got)) {
		t.Fatalf("expected finite size at zero depth, got %f", got)
	}
	if got <= 0 {
		t.Errorf("expected positive size at zero depth, got %f", got)
	}
}

func TestSpriteDiscardBoundary(t *testing.T) {
	// Offset distance exactly 0.5 from center: discarded
	if SpriteVisible(1.0, 0.5) {
		t.Error("fragment at distance 0.5 should be discarded")
	}
	// 0.49: kept
	if !SpriteVisible(0.99, 0.5) {
		t.Error("fragment at distance 0.49 should be visible")
	}
	// Center: kept
	if !SpriteVisible(0.5, 0.5) {
		t.Error("center fragment should be visible")
	}
	// Corner of the square footprint: outside the circle
	if SpriteVisible(0, 0) {
		t.Error("corner fragment should be discarded")
	}
}

func TestAlphaShading(t *testing.T) {
	if got := Alpha(0); math.Abs(float64(got-0.8)) > 1e-6 {
		t.Errorf("expected alpha 0.8 at zero elevation, got %f", got)
	}
	if got := Alpha(1); math.Abs(float64(got-0.9)) > 1e-6 {
		t.Errorf("expected alpha 0.9 at elevation 1, got %f", got)
	}
	// Clamped at both ends
	if got := Alpha(5); got != 1.0 {
		t.Errorf("expected alpha clamped to 1, got %f", got)
	}
	if got := Alpha(-10); got != 0.0 {
		t.Errorf("expected alpha clamped to 0, got %f", got)
	}
}

func TestSnapshotProducesVisiblePoints(t *testing.T) {
	f := MustNew(testParams())
	f.Update(1.0)

	cam := camera.New(22, -math.Pi/2, 0.5, 1280.0/720.0)
	pts := f.Snapshot(cam, 1280, 720)

	if len(pts) == 0 {
		t.Fatal("expected visible points from a camera facing the plane")
	}
	// The whole lattice fits in front of the camera at this distance
	if len(pts) != len(f.Vertices()) {
		t.Errorf("expected all %d vertices visible, got %d", len(f.Vertices()), len(pts))
	}

	for _, p := range pts {
		if p.Size <= 0 {
			t.Fatalf("expected positive point size, got %f", p.Size)
		}
		if p.A < 0 || p.A > 1 {
			t.Fatalf("alpha out of [0,1]: %f", p.A)
		}
	}
}

func TestSnapshotRecomputedPerFrame(t *testing.T) {
	f := MustNew(testParams())
	cam := camera.New(22, -math.Pi/2, 0.5, 16.0/9.0)

	f.Update(0)
	a := f.Snapshot(cam, 1280, 720)
	f.Update(0.8)
	b := f.Snapshot(cam, 1280, 720)

	var moved bool
	for i := range a {
		if a[i].Elevation != b[i].Elevation {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("expected elevations to change as time advances")
	}
}
