// Package ui renders the parameter panel and HUD with raygui widgets.
package ui

import (
	"fmt"
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"galaxyviz/galaxy"
)

const (
	sliderHeight = 18
	rowHeight    = 38
	labelSize    = 13
	headerSize   = 16
)

// Panel is the live parameter editor. Sliders bind directly to the shared
// Params: structural changes are reported to the caller so it can
// regenerate the cloud synchronously; animation changes need no hook, the
// animator reads them on the next frame.
type Panel struct {
	x, y    int32
	width   int32
	visible bool
}

// NewPanel creates the panel at the given screen position.
func NewPanel(x, y, width int32) *Panel {
	return &Panel{x: x, y: y, width: width, visible: true}
}

// Toggle flips panel visibility and reports the new state.
func (pn *Panel) Toggle() bool {
	pn.visible = !pn.visible
	return pn.visible
}

// Visible reports whether the panel is shown.
func (pn *Panel) Visible() bool {
	return pn.visible
}

// Resize moves the panel after a window size change.
func (pn *Panel) Resize(x int32) {
	pn.x = x
}

// Draw renders the panel and applies slider edits to p in place. Returns
// true when a structural parameter changed this frame.
func (pn *Panel) Draw(p *galaxy.Params) bool {
	if !pn.visible {
		return false
	}

	before := p.Structural()
	y := pn.y

	height := int32(2*rowHeight) + int32(12*rowHeight) + 20
	rl.DrawRectangle(pn.x-10, pn.y-10, pn.width+20, height, rl.Color{R: 12, G: 14, B: 22, A: 210})

	rl.DrawText("Galaxy", pn.x, y, headerSize, rl.RayWhite)
	y += rowHeight / 2

	p.ArmCount = int(pn.slider(&y, fmt.Sprintf("Arms: %d", p.ArmCount), float32(p.ArmCount), 2, 10) + 0.5)
	p.ArmWidth = pn.slider(&y, fmt.Sprintf("Arm width: %.2f", p.ArmWidth), p.ArmWidth, 0, 1)
	p.SpiralFactor = pn.slider(&y, fmt.Sprintf("Spiral: %.2f", p.SpiralFactor), p.SpiralFactor, 0.1, 5)
	p.ParticleCount = roundTo(pn.slider(&y, fmt.Sprintf("Particles: %d", p.ParticleCount), float32(p.ParticleCount), 1000, 200000), 1000)
	p.Size = pn.slider(&y, fmt.Sprintf("Radius: %.0f", p.Size), p.Size, 100, 2000)
	p.Randomness = pn.slider(&y, fmt.Sprintf("Randomness: %.2f", p.Randomness), p.Randomness, 0, 1)
	p.ColorShift = pn.slider(&y, fmt.Sprintf("Color shift: %.2f", p.ColorShift), p.ColorShift, 0, 1)

	y += rowHeight / 3
	rl.DrawText("Animation", pn.x, y, headerSize, rl.RayWhite)
	y += rowHeight / 2

	p.RotationSpeed = pn.slider(&y, fmt.Sprintf("Rotation: %.3f", p.RotationSpeed), p.RotationSpeed, 0, 0.5)
	p.PulseIntensity = pn.slider(&y, fmt.Sprintf("Pulse: %.2f", p.PulseIntensity), p.PulseIntensity, 0, 2)
	p.AudioReactivity = pn.slider(&y, fmt.Sprintf("Audio gain: %.2f", p.AudioReactivity), p.AudioReactivity, 0, 2)
	p.CoreIntensity = pn.slider(&y, fmt.Sprintf("Core glow: %.2f", p.CoreIntensity), p.CoreIntensity, 0, 3)
	p.DustDensity = pn.slider(&y, fmt.Sprintf("Dust: %.2f", p.DustDensity), p.DustDensity, 0, 1)

	return p.Structural() != before
}

// slider draws one labeled slider row and returns the (possibly unchanged)
// value.
func (pn *Panel) slider(y *int32, label string, value, min, max float32) float32 {
	rl.DrawText(label, pn.x, *y, labelSize, rl.LightGray)
	*y += labelSize + 3
	v := gui.SliderBar(
		rl.Rectangle{X: float32(pn.x), Y: float32(*y), Width: float32(pn.width), Height: sliderHeight},
		"", "",
		value, min, max,
	)
	*y += rowHeight - labelSize - 3
	return v
}

func roundTo(v float32, step int) int {
	n := int(math.Round(float64(v)/float64(step))) * step
	if n < step {
		n = step
	}
	return n
}
