// Package galaxy implements procedural spiral galaxy generation and the
// per-frame animation math applied to the generated point cloud.
//
// The package is renderer-agnostic: it produces plain position/color/size
// arrays and pure per-frame transforms, and never imports a graphics
// library, so everything here runs headless.
package galaxy

// Params holds every knob that shapes the galaxy and its animation.
//
// Structural fields invalidate the generated point cloud when changed and
// require a full Generate call. Animation fields are read live each frame by
// the animator and never trigger regeneration. The two groups are mutually
// independent.
type Params struct {
	// Structural
	ArmCount      int     // number of spiral arms, >= 2
	ArmWidth      float32 // fractional radial jitter per arm, [0,1]
	SpiralFactor  float32 // total winding (turns) from center to edge, > 0
	ParticleCount int     // points generated, > 0
	Size          float32 // outer radius of the disk, > 0
	Randomness    float32 // structure-independent positional jitter, [0,1]
	ColorShift    float32 // how far the gradient progresses with radius, [0,1]
	CoreColor     Color   // gradient start (center)
	ArmColor      Color   // gradient end (rim)

	// Animation
	RotationSpeed   float32 // rigid disk rotation, radians per second
	PulseIntensity  float32 // breathing amplitude
	AudioReactivity float32 // gain applied to the loudness intensity feed
	CoreSize        float32 // central glow radius, world units
	CoreIntensity   float32 // central glow base brightness
	DustDensity     float32 // dust haze alpha scale, [0,1]
}

// Structural is the comparable projection of the fields whose change
// requires regeneration. The UI panel snapshots it before and after drawing
// its sliders to decide whether the cloud is stale.
type Structural struct {
	ArmCount      int
	ArmWidth      float32
	SpiralFactor  float32
	ParticleCount int
	Size          float32
	Randomness    float32
	ColorShift    float32
	CoreColor     Color
	ArmColor      Color
}

// Structural returns the regeneration-relevant projection of p.
func (p Params) Structural() Structural {
	return Structural{
		ArmCount:      p.ArmCount,
		ArmWidth:      p.ArmWidth,
		SpiralFactor:  p.SpiralFactor,
		ParticleCount: p.ParticleCount,
		Size:          p.Size,
		Randomness:    p.Randomness,
		ColorShift:    p.ColorShift,
		CoreColor:     p.CoreColor,
		ArmColor:      p.ArmColor,
	}
}
