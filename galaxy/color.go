package galaxy

// Color is an RGB triple with channels in [0,1].
type Color struct {
	R, G, B float32
}

// Lerp interpolates per channel between a and b. Callers keep t inside
// [0,1]; the generator guarantees this because distanceFromCenter*colorShift
// never leaves [0,1).
func Lerp(a, b Color, t float32) Color {
	return Color{
		R: a.R + (b.R-a.R)*t,
		G: a.G + (b.G-a.G)*t,
		B: a.B + (b.B-a.B)*t,
	}
}

// Scale multiplies every channel by f, clamping to [0,1].
func (c Color) Scale(f float32) Color {
	return Color{
		R: clamp01(c.R * f),
		G: clamp01(c.G * f),
		B: clamp01(c.B * f),
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
