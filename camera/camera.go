// Package camera wraps raylib's 3D camera with orbit-style controls.
//
// The visualization positions the camera once at startup and otherwise
// cedes control: raylib's orbital mode spins slowly around the target and
// the mouse wheel zooms, while free mode hands pan/rotate to the user.
package camera

import rl "github.com/gen2brain/raylib-go/raylib"

// Orbit is a camera circling the galaxy center.
type Orbit struct {
	cam      rl.Camera3D
	distance float32
	free     bool
}

// New creates a camera at the fixed startup position: above the disk plane,
// pulled back far enough to frame a disk of the given radius, looking at
// the origin.
func New(diskRadius float32) *Orbit {
	o := &Orbit{distance: diskRadius * 1.8}
	o.Reset()
	return o
}

// Reset returns the camera to the startup position and orbital mode.
func (o *Orbit) Reset() {
	o.cam = rl.Camera3D{
		Position:   rl.Vector3{X: 0, Y: o.distance * 0.55, Z: o.distance},
		Target:     rl.Vector3{},
		Up:         rl.Vector3{Y: 1},
		Fovy:       60,
		Projection: rl.CameraPerspective,
	}
	o.free = false
}

// ToggleFree switches between the slow automatic orbit and free-look
// control. Returns true when free mode is now active.
func (o *Orbit) ToggleFree() bool {
	o.free = !o.free
	return o.free
}

// Tick advances the camera controller. Must run once per frame before the
// scene is submitted.
func (o *Orbit) Tick() {
	if o.free {
		rl.UpdateCamera(&o.cam, rl.CameraFree)
	} else {
		rl.UpdateCamera(&o.cam, rl.CameraOrbital)
	}
}

// Raylib returns the underlying camera for BeginMode3D and billboards.
func (o *Orbit) Raylib() rl.Camera3D {
	return o.cam
}
