package galaxy

import (
	"math"
	"math/rand"
	"testing"
)

func animParams() Params {
	p := testParams()
	p.RotationSpeed = 0.1
	p.PulseIntensity = 0
	p.AudioReactivity = 1
	p.CoreIntensity = 1
	return p
}

func TestFrameTransformIsPure(t *testing.T) {
	p := animParams()
	s := State{Elapsed: 12.5, AudioIntensity: 0.4}

	a := FrameTransform(p, s)
	b := FrameTransform(p, s)
	if a != b {
		t.Fatalf("identical inputs produced different transforms: %+v vs %+v", a, b)
	}

	pos := Vec3{X: 100, Y: 5, Z: -40}
	radius := pos.Len()
	if a.Apply(pos, radius) != a.Apply(pos, radius) {
		t.Fatal("Apply is not deterministic for identical inputs")
	}
}

// rotationSpeed=0.1 at t=10 is a rigid 1-radian rotation applied identically
// to every point's horizontal coordinates.
func TestRigidRotationAngle(t *testing.T) {
	p := animParams()
	s := State{Elapsed: 10}
	tr := FrameTransform(p, s)

	angle := float64(s.Elapsed * p.RotationSpeed)
	if math.Abs(float64(tr.CosA)-math.Cos(angle)) > 1e-6 ||
		math.Abs(float64(tr.SinA)-math.Sin(angle)) > 1e-6 {
		t.Fatalf("rotation terms (%v, %v) do not match angle %v", tr.CosA, tr.SinA, angle)
	}

	pos := Vec3{X: 200, Y: 0, Z: 0}
	got := tr.Apply(pos, pos.Len())
	wantX := 200 * math.Cos(angle)
	wantZ := 200 * math.Sin(angle)
	if math.Abs(float64(got.X)-wantX) > 1e-2 || math.Abs(float64(got.Z)-wantZ) > 1e-2 {
		t.Fatalf("rotated point (%v, %v), want (%v, %v)", got.X, got.Z, wantX, wantZ)
	}
}

func TestRotationPreservesPlanarRadius(t *testing.T) {
	p := animParams()
	tr := FrameTransform(p, State{Elapsed: 37.25})

	points := []Vec3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 12, Z: -500},
		{X: 333.3, Y: -4, Z: 721.9},
		{X: -0.01, Y: 0.5, Z: 0.02},
	}
	for _, pos := range points {
		got := tr.Apply(pos, pos.Len())
		before := math.Hypot(float64(pos.X), float64(pos.Z))
		after := math.Hypot(float64(got.X), float64(got.Z))
		if math.Abs(after-before) > before*1e-5+1e-5 {
			t.Errorf("point %+v: planar radius %v -> %v", pos, before, after)
		}
		if got.Y != pos.Y {
			t.Errorf("point %+v: rotation changed vertical coordinate to %v", pos, got.Y)
		}
	}
}

// With no audio source the intensity stays 0 and the ripple term vanishes:
// a session with zero rotation and pulse leaves every point untouched.
func TestZeroAudioZeroDisplacement(t *testing.T) {
	p := animParams()
	p.RotationSpeed = 0
	cloud := Generate(p, rand.New(rand.NewSource(9)))

	for _, elapsed := range []float32{0, 1, 60, 3600} {
		tr := FrameTransform(p, State{Elapsed: elapsed, AudioIntensity: 0})
		for i := 0; i < 100; i++ {
			pos := cloud.Positions[i]
			if got := tr.Apply(pos, cloud.Radii[i]); got != pos {
				t.Fatalf("t=%v point %d moved from %+v to %+v without audio", elapsed, i, pos, got)
			}
		}
	}
}

func TestAudioRipple(t *testing.T) {
	p := animParams()
	p.RotationSpeed = 0
	tr := FrameTransform(p, State{Elapsed: 3, AudioIntensity: 0.8})

	pos := Vec3{X: 300, Y: 0, Z: 400} // radius 500
	radius := pos.Len()
	got := tr.Apply(pos, radius)

	disp := math.Sin(float64(tr.Time+radius*0.02)) * float64(tr.Audio) * 10
	want := float64(radius) + disp
	after := math.Sqrt(float64(got.X*got.X + got.Y*got.Y + got.Z*got.Z))
	if math.Abs(after-want) > 1e-2 {
		t.Fatalf("rippled radius %v, want %v", after, want)
	}
}

func TestPulseScale(t *testing.T) {
	p := animParams()
	p.PulseIntensity = 0.5
	s := State{Elapsed: 2.2}
	tr := FrameTransform(p, s)

	want := 1 + float32(math.Sin(float64(s.Elapsed*2)))*p.PulseIntensity*0.1
	if math.Abs(float64(tr.Scale-want)) > 1e-6 {
		t.Fatalf("pulse scale %v, want %v", tr.Scale, want)
	}
}

func TestPointSizeAudioBoost(t *testing.T) {
	tests := []struct {
		name   string
		audio  float32
		stored float32
		want   float32
	}{
		{"silent", 0, 2, 2},
		{"half loudness", 0.5, 2, 2.5},
		{"full loudness", 1, 4, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := animParams()
			tr := FrameTransform(p, State{AudioIntensity: tt.audio})
			if got := tr.PointSize(tt.stored); math.Abs(float64(got-tt.want)) > 1e-6 {
				t.Errorf("PointSize(%v) = %v, want %v", tt.stored, got, tt.want)
			}
		})
	}
}

func TestGlowIntensity(t *testing.T) {
	p := animParams()
	p.CoreIntensity = 2
	p.PulseIntensity = 0.5

	for _, elapsed := range []float32{0, 0.5, 1.7, 10} {
		want := p.CoreIntensity * (1 + float32(math.Sin(float64(elapsed*2)))*p.PulseIntensity)
		if got := GlowIntensity(p, elapsed); math.Abs(float64(got-want)) > 1e-6 {
			t.Errorf("t=%v: glow %v, want %v", elapsed, got, want)
		}
	}
}
