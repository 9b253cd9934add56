// Package scene ties the field, camera, renderer, UI and telemetry together
// into the per-frame update/draw loop.
package scene

import (
	"fmt"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/PrashantSinghB22/Paricle-Wave/camera"
	"github.com/PrashantSinghB22/Paricle-Wave/config"
	"github.com/PrashantSinghB22/Paricle-Wave/field"
	"github.com/PrashantSinghB22/Paricle-Wave/renderer"
	"github.com/PrashantSinghB22/Paricle-Wave/telemetry"
	"github.com/PrashantSinghB22/Paricle-Wave/ui"
)

// headlessDT is the fixed time step used when running without graphics.
const headlessDT = 1.0 / 60.0

// Options configures scene construction.
type Options struct {
	Headless       bool
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
}

// Scene holds the complete application state for one run.
type Scene struct {
	cfg  *config.Config
	opts Options

	field   *field.Field
	cam     *camera.Camera
	curtain *renderer.Curtain
	panel   *ui.Panel

	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager

	frame   int64
	elapsed float32
	paused  bool
	debug   bool

	screenW, screenH float32

	// Pointer state for enter/leave edge detection
	pointerOn          bool
	lastPtrX, lastPtrY float32

	// Scratch buffer for elevation sampling
	elevBuf []float64
}

// New creates a scene from the loaded configuration.
func New(opts Options) (*Scene, error) {
	cfg := config.Cfg()

	f, err := field.New(field.FromConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	w := cfg.Derived.ScreenW32
	h := cfg.Derived.ScreenH32
	cam := camera.New(
		float32(cfg.Camera.Distance),
		float32(cfg.Camera.Yaw),
		float32(cfg.Camera.Pitch),
		w/h,
	)
	cam.FovY = float32(cfg.Camera.FovY)
	cam.SetLimits(
		float32(cfg.Camera.YawRange),
		float32(cfg.Camera.PitchMin),
		float32(cfg.Camera.PitchMax),
	)

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		statsWindow = opts.StatsWindowSec
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	if om != nil {
		if err := om.WriteConfig(cfg); err != nil {
			slog.Error("failed to write config snapshot", "error", err)
		}
		slog.Info("output enabled", "dir", om.Dir())
	}

	s := &Scene{
		cfg:           cfg,
		opts:          opts,
		field:         f,
		cam:           cam,
		curtain:       renderer.NewCurtain(float32(cfg.Plane.Width), float32(cfg.Plane.Height), cfg.Plane.SegmentsX, cfg.Plane.SegmentsY),
		panel:         ui.NewPanel(w-300, 20),
		collector:     telemetry.NewCollector(statsWindow, headlessDT),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		outputManager: om,
		screenW:       w,
		screenH:       h,
	}
	return s, nil
}

// MustNew is like New but panics on error.
func MustNew(opts Options) *Scene {
	s, err := New(opts)
	if err != nil {
		panic(err)
	}
	return s
}

// Update advances one graphical frame: input, time, interaction smoothing
// and telemetry. Call once per rendered frame before Draw.
func (s *Scene) Update() {
	s.perfCollector.StartFrame()
	s.perfCollector.RecordFrame()

	s.perfCollector.StartPhase(telemetry.PhaseInput)
	s.handleInput()

	s.perfCollector.StartPhase(telemetry.PhaseInteraction)
	if !s.paused {
		s.elapsed += rl.GetFrameTime()
		s.field.Update(s.elapsed)
		s.frame++
	}

	s.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	s.flushTelemetry()
}

// UpdateHeadless advances one fixed step without graphics. The curtain is
// never drawn; the CPU snapshot path feeds telemetry instead.
func (s *Scene) UpdateHeadless() {
	s.perfCollector.StartFrame()

	s.perfCollector.StartPhase(telemetry.PhaseDisplacement)
	s.elapsed += headlessDT
	s.field.Update(s.elapsed)
	s.frame++

	s.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	s.flushTelemetry()

	s.perfCollector.EndFrame()
}

// Draw renders the current frame.
func (s *Scene) Draw() {
	s.perfCollector.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	s.curtain.Draw(s.rlCamera(), s.field.Uniforms())

	s.drawHUD()
	s.panel.Draw(s.field)

	rl.EndDrawing()

	s.perfCollector.EndFrame()
}

// rlCamera converts the z-up orbit camera into raylib's y-up Camera3D.
func (s *Scene) rlCamera() rl.Camera3D {
	pos := s.cam.Position()
	tgt := s.cam.Target
	return rl.Camera3D{
		Position:   rl.NewVector3(pos.X, pos.Z, pos.Y),
		Target:     rl.NewVector3(tgt.X, tgt.Z, tgt.Y),
		Up:         rl.NewVector3(0, 1, 0),
		Fovy:       s.cam.FovY,
		Projection: rl.CameraPerspective,
	}
}

// drawHUD renders the text overlay.
func (s *Scene) drawHUD() {
	rl.DrawText(fmt.Sprintf("t: %.1fs", s.elapsed), 10, 10, 20, rl.White)
	rl.DrawText(fmt.Sprintf("hover: %.2f", s.field.HoverIntensity()), 10, 35, 20, rl.White)
	if s.paused {
		rl.DrawText("PAUSED", 10, 60, 20, rl.Yellow)
	}

	if s.debug {
		s.drawDebugOverlay()
	}
}

// drawDebugOverlay renders performance and interaction internals.
func (s *Scene) drawDebugOverlay() {
	perf := s.perfCollector.Stats()
	px, py := s.field.Pointer()

	y := int32(90)
	rl.DrawText(fmt.Sprintf("frame: %d", s.frame), 10, y, 16, rl.Green)
	y += 20
	rl.DrawText(fmt.Sprintf("fps: %.0f  avg: %s", perf.FPS, perf.AvgFrameDuration), 10, y, 16, rl.Green)
	y += 20
	rl.DrawText(fmt.Sprintf("pointer: %.2f, %.2f", px, py), 10, y, 16, rl.Green)
	y += 20
	rl.DrawText(fmt.Sprintf("yaw: %.2f  pitch: %.2f", s.cam.Yaw, s.cam.Pitch), 10, y, 16, rl.Green)
	y += 20
	rl.DrawText(fmt.Sprintf("verts: %d", s.cfg.Derived.VertexCount), 10, y, 16, rl.Green)
}

// flushTelemetry emits a stats window when due.
func (s *Scene) flushTelemetry() {
	if !s.collector.ShouldFlush(s.frame) {
		return
	}

	s.elevBuf = s.field.Elevations(s.elevBuf)

	// Evaluate the CPU render path for visibility stats. This runs once per
	// window, not per frame.
	pts := s.field.Snapshot(s.cam, s.screenW, s.screenH)
	var sizeSum float64
	for i := range pts {
		sizeSum += float64(pts[i].Size)
	}
	var meanSize float64
	if len(pts) > 0 {
		meanSize = sizeSum / float64(len(pts))
	}

	px, py := s.field.Pointer()
	stats := s.collector.Flush(s.frame, telemetry.FrameSample{
		TimeSec:        float64(s.elapsed),
		HoverIntensity: float64(s.field.HoverIntensity()),
		PointerX:       float64(px),
		PointerY:       float64(py),
		Hovering:       s.pointerOn,
		Elevations:     s.elevBuf,
		VisiblePoints:  len(pts),
		MeanPointSize:  meanSize,
	})
	perfStats := s.perfCollector.Stats()

	if s.opts.LogStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if s.outputManager != nil {
		if err := s.outputManager.WriteStats(stats); err != nil {
			slog.Error("failed to write stats", "error", err)
		}
		if err := s.outputManager.WritePerf(perfStats, stats.WindowEndFrame); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// Field returns the scene's field, for tests and tools.
func (s *Scene) Field() *field.Field {
	return s.field
}

// Camera returns the scene's orbit camera.
func (s *Scene) Camera() *camera.Camera {
	return s.cam
}

// Frame returns the number of frames advanced so far.
func (s *Scene) Frame() int64 {
	return s.frame
}

// Elapsed returns the scene time in seconds.
func (s *Scene) Elapsed() float32 {
	return s.elapsed
}

// Unload releases GPU resources and closes output files.
func (s *Scene) Unload() {
	if s.curtain != nil {
		s.curtain.Unload()
	}
	if s.outputManager != nil {
		if err := s.outputManager.Close(); err != nil {
			slog.Error("failed to close output", "error", err)
		}
	}
}
