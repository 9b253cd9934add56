// Package renderer draws the particle curtain through the GPU shader path.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/PrashantSinghB22/Paricle-Wave/field"
)

// Curtain renders the lattice as a point cloud with the displacement and
// shading computed in shaders/particles.vs and particles.fs. The CPU field
// owns the authoritative state; this type only plumbs uniforms.
type Curtain struct {
	shader rl.Shader
	model  rl.Model

	timeLoc      int32
	colorLoc     int32
	speedLoc     int32
	frequencyLoc int32
	amplitudeLoc int32
	mouseLoc     int32
	hoverLoc     int32
	radiusLoc    int32
	rippleLoc    int32
	pointSizeLoc int32
	refDistLoc   int32
	planeHalfLoc int32

	width, height float32
	segX, segY    int

	initialized bool
}

// NewCurtain creates a curtain renderer for a plane of the given extents and
// subdivisions. GPU resources are created lazily on first Init.
func NewCurtain(width, height float32, segX, segY int) *Curtain {
	return &Curtain{
		width:  width,
		height: height,
		segX:   segX,
		segY:   segY,
	}
}

// Init creates the shader and mesh (must be called after the raylib window
// is created).
func (c *Curtain) Init() {
	if c.initialized {
		return
	}

	c.shader = rl.LoadShader("shaders/particles.vs", "shaders/particles.fs")
	c.timeLoc = rl.GetShaderLocation(c.shader, "uTime")
	c.colorLoc = rl.GetShaderLocation(c.shader, "uColor")
	c.speedLoc = rl.GetShaderLocation(c.shader, "uSpeed")
	c.frequencyLoc = rl.GetShaderLocation(c.shader, "uFrequency")
	c.amplitudeLoc = rl.GetShaderLocation(c.shader, "uAmplitude")
	c.mouseLoc = rl.GetShaderLocation(c.shader, "uMouse")
	c.hoverLoc = rl.GetShaderLocation(c.shader, "uHover")
	c.radiusLoc = rl.GetShaderLocation(c.shader, "uRadius")
	c.rippleLoc = rl.GetShaderLocation(c.shader, "uRipple")
	c.pointSizeLoc = rl.GetShaderLocation(c.shader, "uPointSize")
	c.refDistLoc = rl.GetShaderLocation(c.shader, "uRefDist")
	c.planeHalfLoc = rl.GetShaderLocation(c.shader, "uPlaneHalf")

	// raylib planes lie in xz with y up; the vertex shader treats (x, z)
	// as the field's (x, y) and displaces y.
	mesh := rl.GenMeshPlane(c.width, c.height, c.segX, c.segY)
	c.model = rl.LoadModelFromMesh(mesh)
	c.model.Materials.Shader = c.shader

	c.initialized = true
}

// Draw renders the curtain for the current frame's uniforms. Blending is
// additive and depth writes are off: overlapping points accumulate rather
// than occlude.
func (c *Curtain) Draw(cam rl.Camera3D, u field.Uniforms) {
	if !c.initialized {
		c.Init()
	}

	rl.SetShaderValue(c.shader, c.timeLoc, []float32{u.Time}, rl.ShaderUniformFloat)
	rl.SetShaderValue(c.shader, c.colorLoc, []float32{u.Color.R, u.Color.G, u.Color.B}, rl.ShaderUniformVec3)
	rl.SetShaderValue(c.shader, c.speedLoc, []float32{u.Speed}, rl.ShaderUniformFloat)
	rl.SetShaderValue(c.shader, c.frequencyLoc, []float32{u.Frequency}, rl.ShaderUniformFloat)
	rl.SetShaderValue(c.shader, c.amplitudeLoc, []float32{u.Amplitude}, rl.ShaderUniformFloat)
	rl.SetShaderValue(c.shader, c.mouseLoc, []float32{u.MouseX, u.MouseY}, rl.ShaderUniformVec2)
	rl.SetShaderValue(c.shader, c.hoverLoc, []float32{u.HoverIntensity}, rl.ShaderUniformFloat)
	rl.SetShaderValue(c.shader, c.radiusLoc, []float32{u.Radius}, rl.ShaderUniformFloat)
	rl.SetShaderValue(c.shader, c.rippleLoc, []float32{u.RippleFreq, u.RippleSpeed, u.RippleStrength}, rl.ShaderUniformVec3)
	rl.SetShaderValue(c.shader, c.pointSizeLoc, []float32{u.PointBaseSize}, rl.ShaderUniformFloat)
	rl.SetShaderValue(c.shader, c.refDistLoc, []float32{u.ReferenceDist}, rl.ShaderUniformFloat)
	rl.SetShaderValue(c.shader, c.planeHalfLoc, []float32{u.HalfWidth, u.HalfHeight}, rl.ShaderUniformVec2)

	rl.BeginMode3D(cam)
	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DisableDepthMask()

	rl.DrawModelPoints(c.model, rl.NewVector3(0, 0, 0), 1.0, rl.White)

	rl.EnableDepthMask()
	rl.EndBlendMode()
	rl.EndMode3D()
}

// Unload frees GPU resources.
func (c *Curtain) Unload() {
	if c.initialized {
		rl.UnloadModel(c.model)
		rl.UnloadShader(c.shader)
		c.initialized = false
	}
}
