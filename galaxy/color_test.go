package galaxy

import "testing"

func TestLerp(t *testing.T) {
	core := Color{R: 1, G: 0.8, B: 0.6}
	arm := Color{R: 0.3, G: 0.5, B: 1}

	tests := []struct {
		name string
		t    float32
		want Color
	}{
		{"start", 0, core},
		{"end", 1, arm},
		{"midpoint", 0.5, Color{R: 0.65, G: 0.65, B: 0.8}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Lerp(core, arm, tt.t)
			if got != tt.want {
				t.Errorf("Lerp(t=%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestColorScale(t *testing.T) {
	tests := []struct {
		name string
		c    Color
		f    float32
		want Color
	}{
		{"identity", Color{R: 0.2, G: 0.4, B: 0.6}, 1, Color{R: 0.2, G: 0.4, B: 0.6}},
		{"dim", Color{R: 1, G: 1, B: 1}, 0.5, Color{R: 0.5, G: 0.5, B: 0.5}},
		{"clamped high", Color{R: 0.8, G: 0.9, B: 1}, 2, Color{R: 1, G: 1, B: 1}},
		{"clamped low", Color{R: 0.5, G: 0.5, B: 0.5}, -1, Color{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Scale(tt.f); got != tt.want {
				t.Errorf("Scale(%v) = %+v, want %+v", tt.f, got, tt.want)
			}
		})
	}
}

func TestStructuralProjection(t *testing.T) {
	p := testParams()
	p.RotationSpeed = 0.05

	before := p.Structural()

	// Animation fields never show up in the structural projection.
	p.RotationSpeed = 0.9
	p.PulseIntensity = 2
	p.DustDensity = 1
	if p.Structural() != before {
		t.Fatal("animation field change altered the structural projection")
	}

	p.ArmCount = 7
	if p.Structural() == before {
		t.Fatal("structural field change not visible in projection")
	}
}
