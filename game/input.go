package game

import rl "github.com/gen2brain/raylib-go/raylib"

// handleInput processes keyboard input for one frame.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}

	// Force a fresh cloud with the same parameters; an unseeded session
	// gives a visually distinct galaxy every time.
	if rl.IsKeyPressed(rl.KeyR) {
		g.regenerate()
	}

	if rl.IsKeyPressed(rl.KeyH) {
		g.panel.Toggle()
	}

	if rl.IsKeyPressed(rl.KeyC) {
		g.freeCam = g.cam.ToggleFree()
	}
	if rl.IsKeyPressed(rl.KeyX) {
		g.cam.Reset()
		g.freeCam = false
	}
}

// handleResize propagates window size changes to the UI layout.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.screenWidth = int32(rl.GetScreenWidth())
	g.screenHeight = int32(rl.GetScreenHeight())
	g.panel.Resize(g.screenWidth - 270)
}
