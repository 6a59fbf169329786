package galaxy

import (
	"math"
	"math/rand"
)

// Vec3 is a point in world space.
type Vec3 struct {
	X, Y, Z float32
}

// Len returns the distance from the origin.
func (v Vec3) Len() float32 {
	return float32(math.Sqrt(float64(v.X*v.X + v.Y*v.Y + v.Z*v.Z)))
}

// PointCloud is the generation artifact: parallel arrays where index i in
// every slice refers to the same logical point. The cloud is immutable once
// generated; the animator derives a transformed view each frame and never
// writes back. Regeneration replaces the whole cloud.
type PointCloud struct {
	Positions []Vec3
	Colors    []Color
	Sizes     []float32

	// Radii caches |Positions[i]| at generation time. It is an input to the
	// ripple phase term, not an animation output, so caching it cannot
	// introduce frame-to-frame drift.
	Radii []float32
}

// Len returns the number of points in the cloud.
func (c *PointCloud) Len() int {
	return len(c.Positions)
}

// Generate builds a point cloud from p using rng for all jitter.
//
// Arms are assigned by index modulo ArmCount so every arm receives an equal
// share of points. Radius is drawn uniform in [0, Size) — deliberately not
// density-compensated, so point density rises toward the center; that bias
// is part of the look and is kept on purpose. The disk thickens with radius:
// the vertical extent is 10% of each point's own radius.
//
// Generation is deterministic for a given rng state; callers that need
// reproducible clouds seed the source themselves.
func Generate(p Params, rng *rand.Rand) *PointCloud {
	n := p.ParticleCount
	cloud := &PointCloud{
		Positions: make([]Vec3, n),
		Colors:    make([]Color, n),
		Sizes:     make([]float32, n),
		Radii:     make([]float32, n),
	}

	armStep := 2 * math.Pi / float64(p.ArmCount)

	for i := 0; i < n; i++ {
		armAngle := float64(i%p.ArmCount) * armStep

		radius := rng.Float32() * p.Size
		armOffset := (rng.Float32() - 0.5) * p.ArmWidth * radius

		// Winding grows with radius, which is what produces the spiral.
		spiralAngle := float64(radius/p.Size) * float64(p.SpiralFactor) * 2 * math.Pi
		totalAngle := armAngle + spiralAngle

		randomOffset := (rng.Float32() - 0.5) * p.Randomness * radius

		sin, cos := math.Sincos(totalAngle)
		pos := Vec3{
			X: float32(cos)*(radius+armOffset) + randomOffset,
			Y: (rng.Float32() - 0.5) * radius * 0.1,
			Z: float32(sin)*(radius+armOffset) + randomOffset,
		}

		d := radius / p.Size // in [0,1)

		cloud.Positions[i] = pos
		cloud.Colors[i] = Lerp(p.CoreColor, p.ArmColor, d*p.ColorShift)

		size := (1 - d) * 4
		if size < 2 {
			size = 2
		}
		cloud.Sizes[i] = size
		cloud.Radii[i] = pos.Len()
	}

	return cloud
}
