package camera

import (
	"math"
	"testing"
)

func testCamera() *Camera {
	c := New(22, -math.Pi/2, 0.5, 1280.0/720.0)
	c.SetLimits(0.5, 0.15, 1.0)
	return c
}

func TestPositionOnOrbit(t *testing.T) {
	c := testCamera()

	p := c.Position()
	// Always at the configured distance from the target
	d := math.Sqrt(float64(p.X*p.X + p.Y*p.Y + p.Z*p.Z))
	if math.Abs(d-22) > 0.01 {
		t.Errorf("expected distance 22 from target, got %f", d)
	}
	// Pitch 0.5 raises the camera above the plane
	if p.Z <= 0 {
		t.Errorf("expected camera above the plane, got z=%f", p.Z)
	}
	// Yaw -pi/2 puts the camera on the -y side
	if p.Y >= 0 {
		t.Errorf("expected camera on -y side, got y=%f", p.Y)
	}
}

func TestViewDepthSign(t *testing.T) {
	c := testCamera()

	// The target is in front of the camera: negative view depth
	if d := c.ViewDepth(c.Target); d >= 0 {
		t.Errorf("expected negative depth for target, got %f", d)
	}

	// A point behind the camera has positive depth
	eye := c.Position()
	behind := Vec3{X: eye.X * 2, Y: eye.Y * 2, Z: eye.Z * 2}
	if d := c.ViewDepth(behind); d <= 0 {
		t.Errorf("expected positive depth behind camera, got %f", d)
	}
}

func TestViewDepthOfTarget(t *testing.T) {
	c := testCamera()

	// The target sits exactly at the orbit distance
	if d := c.ViewDepth(c.Target); math.Abs(float64(d)+22) > 0.01 {
		t.Errorf("expected target depth -22, got %f", d)
	}
}

func TestWorldToScreenCentered(t *testing.T) {
	c := testCamera()

	// The orbit target projects to the viewport center
	sx, sy, ok := c.WorldToScreen(c.Target, 1280, 720)
	if !ok {
		t.Fatal("target should be projectable")
	}
	if math.Abs(float64(sx-640)) > 0.5 || math.Abs(float64(sy-360)) > 0.5 {
		t.Errorf("expected screen center (640, 360), got (%f, %f)", sx, sy)
	}
}

func TestWorldToScreenBehindCamera(t *testing.T) {
	c := testCamera()

	eye := c.Position()
	behind := Vec3{X: eye.X * 2, Y: eye.Y * 2, Z: eye.Z * 2}
	if _, _, ok := c.WorldToScreen(behind, 1280, 720); ok {
		t.Error("expected projection failure behind camera")
	}
}

func TestPerspectiveAttenuationOrdering(t *testing.T) {
	c := testCamera()

	// A point off to the side is farther from the camera than the target
	near := c.ViewDepth(c.Target)
	far := c.ViewDepth(Vec3{X: 17.5, Y: 10, Z: 0})
	if far >= near {
		// depths are negative; farther means more negative
		t.Errorf("expected corner farther than target: corner %f, target %f", far, near)
	}
}

func TestOrbitClamped(t *testing.T) {
	c := testCamera()

	// Large deltas must pin to the configured limits
	c.Orbit(10, 10)
	if math.Abs(float64(c.Yaw-(-math.Pi/2+0.5))) > 1e-5 {
		t.Errorf("expected yaw clamped to %f, got %f", -math.Pi/2+0.5, c.Yaw)
	}
	if c.Pitch != 1.0 {
		t.Errorf("expected pitch clamped to 1.0, got %f", c.Pitch)
	}

	c.Orbit(-10, -10)
	if math.Abs(float64(c.Yaw-(-math.Pi/2-0.5))) > 1e-5 {
		t.Errorf("expected yaw clamped to %f, got %f", -math.Pi/2-0.5, c.Yaw)
	}
	if c.Pitch != 0.15 {
		t.Errorf("expected pitch clamped to 0.15, got %f", c.Pitch)
	}
}

func TestReset(t *testing.T) {
	c := testCamera()
	c.Orbit(0.3, 0.2)

	c.Reset()

	if math.Abs(float64(c.Yaw+math.Pi/2)) > 1e-6 {
		t.Errorf("expected yaw reset to -pi/2, got %f", c.Yaw)
	}
	if c.Pitch != 0.5 {
		t.Errorf("expected pitch reset to 0.5, got %f", c.Pitch)
	}
}

func TestResize(t *testing.T) {
	c := testCamera()
	c.Resize(1920, 1080)

	want := float32(1920.0 / 1080.0)
	if math.Abs(float64(c.Aspect-want)) > 1e-6 {
		t.Errorf("expected aspect %f, got %f", want, c.Aspect)
	}

	// Zero height must not divide by zero
	c.Resize(100, 0)
	if c.Aspect != want {
		t.Errorf("expected aspect unchanged on zero height, got %f", c.Aspect)
	}
}

func TestProjectionDepthMapping(t *testing.T) {
	c := testCamera()

	// Points between near and far project inside the NDC depth range
	view := c.View()
	proj := c.Projection()
	clip := proj.mul(view).transform(c.Target)
	if clip.w <= 0 {
		t.Fatal("expected positive clip w for visible point")
	}
	ndcZ := clip.z / clip.w
	if ndcZ < -1 || ndcZ > 1 {
		t.Errorf("expected NDC depth in [-1,1], got %f", ndcZ)
	}
}
