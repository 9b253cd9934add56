// Wave preview tool - interactive top-down heatmap of the displacement field
// with sliders for the wave and ripple parameters.
//
// Hovering the preview drives the pointer ripple exactly as in the main app.
//
// Usage: go run ./cmd/wavepreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/PrashantSinghB22/Paricle-Wave/config"
	"github.com/PrashantSinghB22/Paricle-Wave/field"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 512
	panelWidth   = windowWidth - previewSize - 30
	gridSize     = 256
)

func main() {
	config.MustInit("")
	f := field.MustNew(field.FromConfig(config.Cfg()))

	rl.InitWindow(windowWidth, windowHeight, "Wave Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	grid := make([]float32, gridSize*gridSize)
	img := rl.GenImageColor(gridSize, gridSize, rl.Black)
	texture := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	defer rl.UnloadTexture(texture)

	var time float32
	hovering := false

	for !rl.WindowShouldClose() {
		time += rl.GetFrameTime()

		// Pointer over the preview drives the ripple
		mouse := rl.GetMousePosition()
		over := mouse.X >= 10 && mouse.X < 10+previewSize && mouse.Y >= 10 && mouse.Y < 10+previewSize
		if over && !hovering {
			f.Enter()
		}
		if !over && hovering {
			f.Leave()
		}
		hovering = over
		if over {
			nx := (mouse.X-10)/previewSize*2 - 1
			ny := -((mouse.Y-10)/previewSize*2 - 1)
			f.Move(nx, ny)
		}

		f.Update(time)

		sampleField(grid, f, time)
		updateTexture(texture, grid, f.Wave().Amplitude+f.Interaction().RippleStrength)

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.DrawTexturePro(
			texture,
			rl.Rectangle{X: 0, Y: 0, Width: gridSize, Height: gridSize},
			rl.Rectangle{X: 10, Y: 10, Width: previewSize, Height: previewSize},
			rl.Vector2{X: 0, Y: 0},
			0,
			rl.White,
		)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Time: %.1f  Hover: %.2f", time, f.HoverIntensity()), 15, statsY, 16, rl.DarkGray)

		drawControls(f)

		rl.EndDrawing()
	}
}

// sampleField evaluates the displaced elevation over the plane into grid.
func sampleField(grid []float32, f *field.Field, t float32) {
	p := f.Params()
	for row := 0; row < gridSize; row++ {
		y := (float32(row)/float32(gridSize-1) - 0.5) * p.PlaneHeight
		for col := 0; col < gridSize; col++ {
			x := (float32(col)/float32(gridSize-1) - 0.5) * p.PlaneWidth
			grid[row*gridSize+col] = f.Displace(x, y, t)
		}
	}
}

// updateTexture maps elevations to a blue-white ramp centered on zero.
func updateTexture(texture rl.Texture2D, grid []float32, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	pixels := make([]rl.Color, len(grid))
	for i, e := range grid {
		v := e / scale // roughly [-1, 1]
		if v < -1 {
			v = -1
		}
		if v > 1 {
			v = 1
		}
		n := uint8((v*0.5 + 0.5) * 255)
		pixels[i] = rl.Color{R: n, G: n, B: 255 - n/2, A: 255}
	}
	rl.UpdateTexture(texture, pixels)
}

// drawControls renders the slider panel and applies changes to the field.
func drawControls(f *field.Field) {
	w := f.Wave()
	in := f.Interaction()

	panelX := float32(previewSize + 20)
	panelY := float32(10)

	rl.DrawText("Wave Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
	panelY += 35

	w.Speed = slider(panelX, &panelY, "Speed", w.Speed, 0, 5, "%.2f")
	w.Frequency = slider(panelX, &panelY, "Frequency", w.Frequency, 0.05, 2, "%.2f")
	w.Amplitude = slider(panelX, &panelY, "Amplitude", w.Amplitude, 0, 4, "%.2f")
	w.NoiseDensity = slider(panelX, &panelY, "Noise density", w.NoiseDensity, 0.05, 2, "%.2f")
	w.NoiseStrength = slider(panelX, &panelY, "Noise strength", w.NoiseStrength, 0, 2, "%.2f")

	rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
	panelY += 15

	rl.DrawText("Ripple Parameters", int32(panelX), int32(panelY), 16, rl.DarkGray)
	panelY += 25

	in.Radius = slider(panelX, &panelY, "Radius", in.Radius, 0.5, 10, "%.1f")
	in.RippleFreq = slider(panelX, &panelY, "Spatial freq", in.RippleFreq, 0.5, 10, "%.1f")
	in.RippleSpeed = slider(panelX, &panelY, "Temporal freq", in.RippleSpeed, 0.5, 15, "%.1f")
	in.RippleStrength = slider(panelX, &panelY, "Strength", in.RippleStrength, 0, 6, "%.1f")
	in.Smoothing = slider(panelX, &panelY, "Smoothing", in.Smoothing, 0.01, 1, "%.2f")

	if w != f.Wave() {
		f.SetWave(w)
	}
	if in != f.Interaction() {
		f.SetInteraction(in)
	}
}

// slider draws one labeled slider row, advancing panelY.
func slider(panelX float32, panelY *float32, label string, value, min, max float32, format string) float32 {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	v := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: float32(panelWidth - 80), Height: 20},
		"", "",
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(panelX+float32(panelWidth-70)), int32(*panelY+2), 16, rl.DarkGray)
	*panelY += 35
	return v
}
