package galaxy

import "math"

// State tracks the per-session animation inputs. Created at scene start,
// advanced every frame, never persisted.
type State struct {
	// Elapsed is the running scene time in seconds.
	Elapsed float32

	// AudioIntensity is the most recent loudness reading in [0,1]. It stays
	// 0 for the whole session when no audio source is connected.
	AudioIntensity float32
}

// Advance moves scene time forward by dt seconds.
func (s *State) Advance(dt float32) {
	s.Elapsed += dt
}

// Transform holds the per-frame scalars shared by every point. It is a pure
// function of (params, state): evaluating it twice for the same inputs gives
// identical output, and applying it reads only generation-time data, so no
// drift can accumulate across frames.
type Transform struct {
	SinA, CosA float32 // rigid rotation about the vertical axis
	Scale      float32 // synchronized breathing factor
	Time       float32
	Audio      float32 // loudness after reactivity gain
	SizeScale  float32 // point size multiplier
}

// FrameTransform evaluates the shared animation terms for one frame.
func FrameTransform(p Params, s State) Transform {
	angle := s.Elapsed * p.RotationSpeed
	sin, cos := math.Sincos(float64(angle))

	pulse := float32(math.Sin(float64(s.Elapsed*2))) * p.PulseIntensity
	audio := s.AudioIntensity * p.AudioReactivity

	return Transform{
		SinA:      float32(sin),
		CosA:      float32(cos),
		Scale:     1 + pulse*0.1,
		Time:      s.Elapsed,
		Audio:     audio,
		SizeScale: 1 + audio*0.5,
	}
}

// Apply animates a single generated point. pos is the stored generation-time
// position and radius its cached distance from the center.
//
// The whole disk rotates rigidly in the horizontal plane, then breathes
// uniformly, then ripples outward along each point's own direction with a
// phase that grows with distance from the center. Rotation and breathing
// preserve the point's direction from the origin; only the ripple moves it
// radially.
func (tr Transform) Apply(pos Vec3, radius float32) Vec3 {
	x := pos.X*tr.CosA - pos.Z*tr.SinA
	z := pos.X*tr.SinA + pos.Z*tr.CosA
	y := pos.Y

	x *= tr.Scale
	y *= tr.Scale
	z *= tr.Scale

	if tr.Audio != 0 && radius > 0 {
		disp := float32(math.Sin(float64(tr.Time+radius*0.02))) * tr.Audio * 10
		k := disp / radius // displacement along normalize(pos)
		x += pos.X * k
		y += pos.Y * k
		z += pos.Z * k
	}

	return Vec3{X: x, Y: y, Z: z}
}

// PointSize returns the pre-perspective render size for a point with the
// given stored size. Perspective attenuation is the renderer's job.
func (tr Transform) PointSize(stored float32) float32 {
	return stored * tr.SizeScale
}

// GlowIntensity returns the emissive brightness of the central core glow at
// scene time t. The glow pulses on its own; it has no positional effect.
func GlowIntensity(p Params, t float32) float32 {
	return p.CoreIntensity * (1 + float32(math.Sin(float64(t*2)))*p.PulseIntensity)
}
