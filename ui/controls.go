// Package ui provides the in-app tuning panel for wave and ripple parameters.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/PrashantSinghB22/Paricle-Wave/field"
)

const (
	panelWidth  = 280
	sliderWidth = panelWidth - 90
	rowHeight   = 35
)

// Panel is a collapsible slider panel that edits the live field parameters.
// Toggled with Tab; hidden by default.
type Panel struct {
	x, y    float32
	visible bool
}

// NewPanel creates a panel anchored at the given screen position.
func NewPanel(x, y float32) *Panel {
	return &Panel{x: x, y: y}
}

// Toggle flips panel visibility.
func (p *Panel) Toggle() {
	p.visible = !p.visible
}

// Visible reports whether the panel is currently shown.
func (p *Panel) Visible() bool {
	return p.visible
}

// Contains reports whether a screen point falls inside the panel area. Used
// to keep camera dragging from fighting the sliders.
func (p *Panel) Contains(sx, sy float32) bool {
	if !p.visible {
		return false
	}
	return sx >= p.x && sx <= p.x+panelWidth && sy >= p.y && sy <= p.y+11*rowHeight
}

// Draw renders the sliders and applies any changes back to the field.
func (p *Panel) Draw(f *field.Field) {
	if !p.visible {
		return
	}

	w := f.Wave()
	in := f.Interaction()

	y := p.y
	rl.DrawRectangle(int32(p.x)-10, int32(y)-10, panelWidth+20, 11*rowHeight+20, rl.NewColor(20, 20, 30, 220))

	rl.DrawText("Wave", int32(p.x), int32(y), 16, rl.RayWhite)
	y += 25

	w.Speed = p.slider(y, "speed", w.Speed, 0, 5)
	y += rowHeight
	w.Frequency = p.slider(y, "frequency", w.Frequency, 0.05, 2)
	y += rowHeight
	w.Amplitude = p.slider(y, "amplitude", w.Amplitude, 0, 4)
	y += rowHeight
	w.NoiseStrength = p.slider(y, "noise", w.NoiseStrength, 0, 2)
	y += rowHeight

	rl.DrawText("Ripple", int32(p.x), int32(y), 16, rl.RayWhite)
	y += 25

	in.Radius = p.slider(y, "radius", in.Radius, 0.5, 10)
	y += rowHeight
	in.RippleFreq = p.slider(y, "freq", in.RippleFreq, 0.5, 10)
	y += rowHeight
	in.RippleSpeed = p.slider(y, "speed", in.RippleSpeed, 0.5, 15)
	y += rowHeight
	in.RippleStrength = p.slider(y, "strength", in.RippleStrength, 0, 6)
	y += rowHeight
	in.Smoothing = p.slider(y, "smoothing", in.Smoothing, 0.01, 1)

	if w != f.Wave() {
		f.SetWave(w)
	}
	if in != f.Interaction() {
		f.SetInteraction(in)
	}
}

// slider draws one labeled slider row and returns the (possibly updated) value.
func (p *Panel) slider(y float32, label string, value, min, max float32) float32 {
	rl.DrawText(label, int32(p.x), int32(y), 14, rl.Gray)
	v := gui.SliderBar(
		rl.Rectangle{X: p.x, Y: y + 16, Width: sliderWidth, Height: 14},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf("%.2f", v), int32(p.x+sliderWidth+8), int32(y+16), 14, rl.LightGray)
	return v
}
