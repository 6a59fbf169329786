package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// HUDData holds everything the HUD displays for one frame.
type HUDData struct {
	Points         int
	FPS            int32
	AudioIntensity float64
	AudioConnected bool
	Paused         bool
	FreeCamera     bool
	ScreenWidth    int32
	ScreenHeight   int32
}

// HUD renders the status line and control legend.
type HUD struct{}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{}
}

// Draw renders the HUD overlay. Runs outside 3D mode.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText("Spiral Galaxy", 10, 10, 20, rl.RayWhite)
	rl.DrawText(
		fmt.Sprintf("Points: %d | FPS: %d", data.Points, data.FPS),
		10, 35, 16, rl.LightGray,
	)

	if data.Paused {
		rl.DrawText("PAUSED", 10, 55, 16, rl.Yellow)
	} else if data.FreeCamera {
		rl.DrawText("free camera", 10, 55, 16, rl.SkyBlue)
	}

	if data.AudioConnected {
		h.drawAudioBar(10, 78, data.AudioIntensity)
	} else {
		rl.DrawText("no audio source", 10, 78, 14, rl.Gray)
	}

	legend := "Space pause | R regenerate | H panel | C camera mode | X reset camera | F11 fullscreen"
	rl.DrawText(legend, 10, data.ScreenHeight-25, 14, rl.Gray)
}

// drawAudioBar renders the loudness meter.
func (h *HUD) drawAudioBar(x, y int32, intensity float64) {
	const w, ht = 140, 10
	rl.DrawRectangleLines(x, y, w, ht, rl.Gray)
	fill := int32(intensity * float64(w-2))
	if fill > 0 {
		rl.DrawRectangle(x+1, y+1, fill, ht-2, rl.Color{R: 120, G: 200, B: 255, A: 255})
	}
}
