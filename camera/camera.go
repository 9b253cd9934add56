// Package camera provides a restricted orbit camera for viewing the particle
// field: view and projection transforms, view-space depth, and world-to-screen
// conversion.
package camera

import "math"

// Vec3 is a 3-component vector. The field's convention is z-up: the lattice
// lies in the x/y plane and elevation displaces z.
type Vec3 struct {
	X, Y, Z float32
}

// Mat4 is a column-major 4x4 matrix, indexed m[col*4+row].
type Mat4 [16]float32

// Camera orbits a target point at a fixed distance. Rotation is restricted:
// yaw is clamped to a band around its initial value and pitch to a fixed
// range, matching the curated viewing scenario.
type Camera struct {
	Target   Vec3
	Distance float32

	// Orbit angles in radians. Pitch is measured up from the target plane.
	Yaw, Pitch float32

	// Rotation constraints
	YawMin, YawMax     float32
	PitchMin, PitchMax float32

	// Projection parameters
	FovY   float32 // vertical field of view in degrees
	Aspect float32
	Near   float32
	Far    float32

	homeYaw, homePitch float32
}

// New creates a camera orbiting the origin.
func New(distance, yaw, pitch, aspect float32) *Camera {
	return &Camera{
		Distance:  distance,
		Yaw:       yaw,
		Pitch:     pitch,
		YawMin:    yaw,
		YawMax:    yaw,
		PitchMin:  pitch,
		PitchMax:  pitch,
		FovY:      60,
		Aspect:    aspect,
		Near:      0.1,
		Far:       500,
		homeYaw:   yaw,
		homePitch: pitch,
	}
}

// SetLimits configures the rotation restriction: yaw may deviate up to
// yawRange from the initial yaw in either direction, pitch is clamped to
// [pitchMin, pitchMax]. The current angles are re-clamped immediately.
func (c *Camera) SetLimits(yawRange, pitchMin, pitchMax float32) {
	c.YawMin = c.homeYaw - yawRange
	c.YawMax = c.homeYaw + yawRange
	c.PitchMin = pitchMin
	c.PitchMax = pitchMax
	c.Yaw = clamp(c.Yaw, c.YawMin, c.YawMax)
	c.Pitch = clamp(c.Pitch, c.PitchMin, c.PitchMax)
}

// Orbit rotates the camera by the given angle deltas, clamped to the
// configured limits.
func (c *Camera) Orbit(dyaw, dpitch float32) {
	c.Yaw = clamp(c.Yaw+dyaw, c.YawMin, c.YawMax)
	c.Pitch = clamp(c.Pitch+dpitch, c.PitchMin, c.PitchMax)
}

// Reset returns the camera to its initial orbit angles.
func (c *Camera) Reset() {
	c.Yaw = c.homeYaw
	c.Pitch = c.homePitch
}

// Resize updates the projection aspect ratio.
func (c *Camera) Resize(viewportW, viewportH float32) {
	if viewportH > 0 {
		c.Aspect = viewportW / viewportH
	}
}

// Position returns the camera's world position from its orbit angles.
func (c *Camera) Position() Vec3 {
	horiz := c.Distance * cosf(c.Pitch)
	return Vec3{
		X: c.Target.X + horiz*cosf(c.Yaw),
		Y: c.Target.Y + horiz*sinf(c.Yaw),
		Z: c.Target.Z + c.Distance*sinf(c.Pitch),
	}
}

// View returns the world-to-view transform. The camera looks down its local
// -z axis, so points in front of the camera have negative view-space z.
func (c *Camera) View() Mat4 {
	eye := c.Position()
	f := normalize(sub(c.Target, eye))
	s := normalize(cross(f, Vec3{0, 0, 1}))
	u := cross(s, f)

	var m Mat4
	m[0] = s.X
	m[4] = s.Y
	m[8] = s.Z
	m[1] = u.X
	m[5] = u.Y
	m[9] = u.Z
	m[2] = -f.X
	m[6] = -f.Y
	m[10] = -f.Z
	m[12] = -dot(s, eye)
	m[13] = -dot(u, eye)
	m[14] = dot(f, eye)
	m[15] = 1
	return m
}

// Projection returns the perspective projection transform.
func (c *Camera) Projection() Mat4 {
	fovRad := float64(c.FovY) * math.Pi / 180
	t := float32(math.Tan(fovRad / 2))

	var m Mat4
	m[0] = 1 / (c.Aspect * t)
	m[5] = 1 / t
	m[10] = -(c.Far + c.Near) / (c.Far - c.Near)
	m[11] = -1
	m[14] = -(2 * c.Far * c.Near) / (c.Far - c.Near)
	return m
}

// ViewDepth returns the view-space z of a world point: negative in front of
// the camera, positive behind it.
func (c *Camera) ViewDepth(p Vec3) float32 {
	eye := c.Position()
	f := normalize(sub(c.Target, eye))
	return -dot(f, sub(p, eye))
}

// WorldToScreen projects a world point to pixel coordinates in a viewport of
// the given size. ok is false for points at or behind the camera plane.
func (c *Camera) WorldToScreen(p Vec3, viewportW, viewportH float32) (sx, sy float32, ok bool) {
	clip := c.Projection().mul(c.View()).transform(p)
	if clip.w <= 0 {
		return 0, 0, false
	}
	ndcX := clip.x / clip.w
	ndcY := clip.y / clip.w
	sx = (ndcX*0.5 + 0.5) * viewportW
	sy = (1 - (ndcY*0.5 + 0.5)) * viewportH
	return sx, sy, true
}

type vec4 struct {
	x, y, z, w float32
}

// mul returns m * o.
func (m Mat4) mul(o Mat4) Mat4 {
	var r Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m[k*4+row] * o[col*4+k]
			}
			r[col*4+row] = sum
		}
	}
	return r
}

// transform applies the matrix to a point with implicit w = 1.
func (m Mat4) transform(p Vec3) vec4 {
	return vec4{
		x: m[0]*p.X + m[4]*p.Y + m[8]*p.Z + m[12],
		y: m[1]*p.X + m[5]*p.Y + m[9]*p.Z + m[13],
		z: m[2]*p.X + m[6]*p.Y + m[10]*p.Z + m[14],
		w: m[3]*p.X + m[7]*p.Y + m[11]*p.Z + m[15],
	}
}

func sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func cross(a, b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func normalize(v Vec3) Vec3 {
	l := float32(math.Sqrt(float64(dot(v, v))))
	if l == 0 {
		return v
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

func sinf(x float32) float32 {
	return float32(math.Sin(float64(x)))
}

func cosf(x float32) float32 {
	return float32(math.Cos(float64(x)))
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
