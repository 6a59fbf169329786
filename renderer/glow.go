package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"galaxyviz/galaxy"
)

// CoreGlow draws the pulsating central glow. Its brightness follows the
// core intensity envelope from the animator; it never moves.
type CoreGlow struct{}

// NewCoreGlow creates the glow renderer.
func NewCoreGlow() *CoreGlow {
	return &CoreGlow{}
}

// Draw renders the glow for scene time t. The caller must be inside
// BeginMode3D.
func (g *CoreGlow) Draw(p galaxy.Params, t float32) {
	if p.CoreSize <= 0 {
		return
	}
	intensity := galaxy.GlowIntensity(p, t)
	center := rl.Vector3{}
	bright := p.CoreColor.Scale(intensity)

	rl.BeginBlendMode(rl.BlendAdditive)
	rl.DrawSphereEx(center, p.CoreSize, 12, 12, toRGBA(bright, 230))
	// Halo: larger, dimmer shells fading outward.
	rl.DrawSphereEx(center, p.CoreSize*1.8, 10, 10, toRGBA(bright, 60))
	rl.DrawSphereEx(center, p.CoreSize*3, 8, 8, toRGBA(bright, 20))
	rl.EndBlendMode()
}
