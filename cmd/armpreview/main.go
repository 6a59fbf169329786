// Arm structure preview tool - top-down 2D view of the generator with sliders.
//
// Usage: go run ./cmd/armpreview
package main

import (
	"fmt"
	"math/rand"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"galaxyviz/galaxy"
)

const (
	windowWidth  = 1000
	windowHeight = 720
	previewSize  = 640
	panelWidth   = windowWidth - previewSize - 30
)

func defaultParams() galaxy.Params {
	return galaxy.Params{
		ArmCount:      5,
		ArmWidth:      0.3,
		SpiralFactor:  1.5,
		ParticleCount: 20000,
		Size:          1000,
		Randomness:    0.2,
		ColorShift:    0.7,
		CoreColor:     galaxy.Color{R: 1, G: 0.85, B: 0.6},
		ArmColor:      galaxy.Color{R: 0.35, G: 0.55, B: 1},
	}
}

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Galaxy Arm Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := defaultParams()
	var seed int64 = 12345

	cloud := galaxy.Generate(params, rand.New(rand.NewSource(seed)))
	needsRegen := false

	for !rl.WindowShouldClose() {
		if needsRegen {
			cloud = galaxy.Generate(params, rand.New(rand.NewSource(seed)))
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Color{R: 4, G: 4, B: 10, A: 255})

		drawTopDown(cloud, params)
		rl.DrawRectangleLines(10, 10, previewSize, previewSize, rl.DarkGray)

		statsY := int32(previewSize + 25)
		rl.DrawText(fmt.Sprintf("Points: %d  Seed: %d", cloud.Len(), seed), 15, statsY, 16, rl.LightGray)
		rl.DrawText("Top-down projection (X right, Z down)", 15, statsY+20, 16, rl.Gray)

		panelX := float32(previewSize + 20)
		panelY := float32(10)

		rl.DrawText("Structure Parameters", int32(panelX), int32(panelY), 20, rl.RayWhite)
		panelY += 35

		// Arm count slider
		rl.DrawText("Arms", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newArms := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"2", "10",
			float32(params.ArmCount), 2, 10,
		)
		rl.DrawText(fmt.Sprintf("%d", params.ArmCount), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if int(newArms+0.5) != params.ArmCount {
			params.ArmCount = int(newArms + 0.5)
			needsRegen = true
		}
		panelY += 35

		// Arm width slider
		rl.DrawText("Arm width (scatter around arm)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newWidth := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "1",
			params.ArmWidth, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.ArmWidth), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if newWidth != params.ArmWidth {
			params.ArmWidth = newWidth
			needsRegen = true
		}
		panelY += 35

		// Spiral factor slider
		rl.DrawText("Spiral (winding per radius)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newSpiral := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0.1", "5.0",
			params.SpiralFactor, 0.1, 5,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.SpiralFactor), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if newSpiral != params.SpiralFactor {
			params.SpiralFactor = newSpiral
			needsRegen = true
		}
		panelY += 35

		// Randomness slider
		rl.DrawText("Randomness (positional jitter)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newRand := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "1",
			params.Randomness, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.Randomness), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if newRand != params.Randomness {
			params.Randomness = newRand
			needsRegen = true
		}
		panelY += 35

		// Color shift slider
		rl.DrawText("Color shift (core-to-arm gradient)", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newShift := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"0", "1",
			params.ColorShift, 0, 1,
		)
		rl.DrawText(fmt.Sprintf("%.2f", params.ColorShift), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if newShift != params.ColorShift {
			params.ColorShift = newShift
			needsRegen = true
		}
		panelY += 35

		// Particle count slider
		rl.DrawText("Particles", int32(panelX), int32(panelY), 14, rl.Gray)
		panelY += 18
		newCount := gui.SliderBar(
			rl.Rectangle{X: panelX, Y: panelY, Width: float32(panelWidth - 80), Height: 20},
			"1k", "100k",
			float32(params.ParticleCount), 1000, 100000,
		)
		rl.DrawText(fmt.Sprintf("%d", params.ParticleCount), int32(panelX+float32(panelWidth-70)), int32(panelY+2), 16, rl.LightGray)
		if roundTo(newCount, 1000) != params.ParticleCount {
			params.ParticleCount = roundTo(newCount, 1000)
			needsRegen = true
		}
		panelY += 45

		// Buttons
		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = int64(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}

		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = defaultParams()
			seed = 12345
			needsRegen = true
		}
		panelY += 55

		// Output YAML
		rl.DrawText("YAML Config:", int32(panelX), int32(panelY), 16, rl.RayWhite)
		panelY += 25
		for _, line := range yamlLines(params) {
			rl.DrawText(line, int32(panelX), int32(panelY), 14, rl.Gray)
			panelY += 16
		}

		rl.DrawText("Press C to copy YAML to clipboard", int32(panelX), int32(windowHeight-30), 12, rl.LightGray)

		if rl.IsKeyPressed(rl.KeyC) {
			yaml := ""
			for _, line := range yamlLines(params) {
				yaml += line + "\n"
			}
			rl.SetClipboardText(yaml)
		}

		rl.EndDrawing()
	}
}

// drawTopDown projects the disk onto the preview square, XZ plane seen
// from above.
func drawTopDown(cloud *galaxy.PointCloud, params galaxy.Params) {
	// Leave a small margin so the rim stays inside the frame.
	scale := float32(previewSize) / (2.2 * params.Size)
	cx := float32(10 + previewSize/2)
	cy := float32(10 + previewSize/2)

	for i, pos := range cloud.Positions {
		x := cx + pos.X*scale
		y := cy + pos.Z*scale
		if x < 10 || x >= 10+previewSize || y < 10 || y >= 10+previewSize {
			continue
		}
		c := cloud.Colors[i]
		rl.DrawPixelV(rl.Vector2{X: x, Y: y}, rl.Color{
			R: uint8(c.R * 255),
			G: uint8(c.G * 255),
			B: uint8(c.B * 255),
			A: 255,
		})
	}
}

func yamlLines(p galaxy.Params) []string {
	return []string{
		"galaxy:",
		fmt.Sprintf("  arm_count: %d", p.ArmCount),
		fmt.Sprintf("  arm_width: %.2f", p.ArmWidth),
		fmt.Sprintf("  spiral_factor: %.2f", p.SpiralFactor),
		fmt.Sprintf("  particle_count: %d", p.ParticleCount),
		fmt.Sprintf("  size: %.0f", p.Size),
		fmt.Sprintf("  randomness: %.2f", p.Randomness),
		fmt.Sprintf("  color_shift: %.2f", p.ColorShift),
	}
}

func roundTo(v float32, step int) int {
	n := (int(v) + step/2) / step * step
	if n < step {
		n = step
	}
	return n
}
