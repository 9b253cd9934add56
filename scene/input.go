package scene

import rl "github.com/gen2brain/raylib-go/raylib"

// orbitSensitivity converts mouse pixels to radians while dragging.
const orbitSensitivity = 0.005

// handleInput processes keyboard, pointer and camera input.
func (s *Scene) handleInput() {
	s.handleResize()

	if rl.IsKeyPressed(rl.KeySpace) {
		s.paused = !s.paused
	}
	if rl.IsKeyPressed(rl.KeyD) {
		s.debug = !s.debug
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		s.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		s.cam.Reset()
	}

	s.handlePointer()
	s.handleCameraInput()
}

// handleResize propagates window resizes to the camera and panel anchor.
func (s *Scene) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == s.screenW && h == s.screenH {
		return
	}
	s.screenW = w
	s.screenH = h
	s.cam.Resize(w, h)
}

// handlePointer tracks cursor presence and position, feeding the field's
// interaction tracker. Positions are normalized to [-1, 1] per axis with +y
// pointing up, so screen y is flipped.
func (s *Scene) handlePointer() {
	on := rl.IsCursorOnScreen()

	if on && !s.pointerOn {
		s.field.Enter()
		s.collector.RecordEnter()
	}
	if !on && s.pointerOn {
		s.field.Leave()
		s.collector.RecordLeave()
	}
	s.pointerOn = on

	if !on {
		return
	}

	mouse := rl.GetMousePosition()
	nx := mouse.X/s.screenW*2 - 1
	ny := -(mouse.Y/s.screenH*2 - 1)
	if nx != s.lastPtrX || ny != s.lastPtrY {
		s.field.Move(nx, ny)
		s.collector.RecordMove()
		s.lastPtrX = nx
		s.lastPtrY = ny
	}
}

// handleCameraInput orbits the camera on left drag, within the configured
// yaw and pitch limits. Drags that start over the panel belong to its sliders.
func (s *Scene) handleCameraInput() {
	if !rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		return
	}
	mouse := rl.GetMousePosition()
	if s.panel.Contains(mouse.X, mouse.Y) {
		return
	}
	delta := rl.GetMouseDelta()
	s.cam.Orbit(-delta.X*orbitSensitivity, delta.Y*orbitSensitivity)
}
