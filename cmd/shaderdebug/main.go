// Shader debug tool - renders the point fragment shader to a PNG file for
// inspection of the circular sprite mask and elevation-driven alpha.
//
// Usage: go run ./cmd/shaderdebug -out debug.png -elevation 1.5
package main

import (
	"flag"
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	shaderPath := flag.String("shader", "shaders/particles.fs", "Path to fragment shader")
	outPath := flag.String("out", "debug.png", "Output PNG path")
	width := flag.Int("width", 512, "Render width")
	height := flag.Int("height", 512, "Render height")
	elevation := flag.Float64("elevation", 0, "Elevation fed to the alpha ramp")
	flag.Parse()

	// Initialize raylib with hidden window
	rl.SetConfigFlags(rl.FlagWindowHidden)
	rl.InitWindow(int32(*width), int32(*height), "Shader Debug")
	defer rl.CloseWindow()

	// Load the shader
	shader := rl.LoadShader("", *shaderPath)
	if shader.ID == 0 {
		fmt.Fprintf(os.Stderr, "Failed to load shader: %s\n", *shaderPath)
		os.Exit(1)
	}
	defer rl.UnloadShader(shader)

	colorLoc := rl.GetShaderLocation(shader, "uColor")
	rl.SetShaderValue(shader, colorLoc, []float32{1, 1, 1}, rl.ShaderUniformVec3)

	// The fragment shader reads fragElevation from the vertex stage; when
	// drawn over a plain rectangle that varying is undefined, so report the
	// intended alpha alongside the render for reference.
	fmt.Printf("alpha at elevation %.2f: %.3f\n", *elevation, clamp(0.8+*elevation*0.1, 0, 1))

	// Create render texture
	target := rl.LoadRenderTexture(int32(*width), int32(*height))
	defer rl.UnloadRenderTexture(target)

	// Render shader to texture
	rl.BeginTextureMode(target)
	rl.ClearBackground(rl.Black)
	rl.BeginShaderMode(shader)
	rl.DrawRectangle(0, 0, int32(*width), int32(*height), rl.White)
	rl.EndShaderMode()
	rl.EndTextureMode()

	// Get image from texture and flip it (OpenGL convention)
	img := rl.LoadImageFromTexture(target.Texture)
	rl.ImageFlipVertical(img)

	// Export to PNG
	success := rl.ExportImage(*img, *outPath)
	rl.UnloadImage(img)

	if success {
		fmt.Printf("Shader rendered to: %s (%dx%d)\n", *outPath, *width, *height)
	} else {
		fmt.Fprintf(os.Stderr, "Failed to export image\n")
		os.Exit(1)
	}
}

func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
