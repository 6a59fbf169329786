// Package renderer draws the generated point cloud and the core glow with
// raylib. It owns everything the core does not: blending, billboarding and
// the perspective size attenuation the GPU applies to billboards.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"galaxyviz/galaxy"
)

const (
	// Every point is drawn as a single pixel; every billboardStride-th
	// point additionally gets a soft sprite so the arms read as volume
	// without paying the billboard cost for all 100k points.
	billboardStride = 16

	// Dust haze: sparse, large, faint sprites whose alpha follows the
	// dust density parameter.
	dustStride = 96
)

// PointRenderer draws the animated galaxy point cloud.
type PointRenderer struct {
	sprite rl.Texture2D
}

// NewPointRenderer creates the renderer and its shared radial-gradient
// sprite. Requires an open window.
func NewPointRenderer() *PointRenderer {
	img := rl.GenImageGradientRadial(64, 64, 0.3, rl.White, rl.Blank)
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return &PointRenderer{sprite: tex}
}

// Draw renders the cloud with the frame transform applied. The caller must
// be inside BeginMode3D with the same camera.
func (r *PointRenderer) Draw(cloud *galaxy.PointCloud, tr galaxy.Transform, p galaxy.Params, cam rl.Camera3D) {
	n := cloud.Len()

	// World size of a billboard per unit of point size, relative to the
	// disk radius so the look survives size changes.
	worldScale := p.Size / 300

	for i := 0; i < n; i++ {
		pos := tr.Apply(cloud.Positions[i], cloud.Radii[i])
		rl.DrawPoint3D(vec3(pos), toRGBA(cloud.Colors[i], 255))
	}

	rl.BeginBlendMode(rl.BlendAdditive)
	for i := 0; i < n; i += billboardStride {
		pos := tr.Apply(cloud.Positions[i], cloud.Radii[i])
		size := tr.PointSize(cloud.Sizes[i]) * worldScale
		rl.DrawBillboard(cam, r.sprite, vec3(pos), size, toRGBA(cloud.Colors[i], 110))
	}

	if p.DustDensity > 0 {
		alpha := uint8(p.DustDensity * 48)
		for i := dustStride / 2; i < n; i += dustStride {
			pos := tr.Apply(cloud.Positions[i], cloud.Radii[i])
			size := tr.PointSize(cloud.Sizes[i]) * worldScale * 6
			rl.DrawBillboard(cam, r.sprite, vec3(pos), size, toRGBA(cloud.Colors[i], alpha))
		}
	}
	rl.EndBlendMode()
}

// Unload releases the sprite texture.
func (r *PointRenderer) Unload() {
	rl.UnloadTexture(r.sprite)
}

func vec3(v galaxy.Vec3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: v.Y, Z: v.Z}
}

func toRGBA(c galaxy.Color, alpha uint8) rl.Color {
	return rl.Color{
		R: uint8(clamp01(c.R) * 255),
		G: uint8(clamp01(c.G) * 255),
		B: uint8(clamp01(c.B) * 255),
		A: alpha,
	}
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
