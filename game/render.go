package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"galaxyviz/galaxy"
	"galaxyviz/telemetry"
	"galaxyviz/ui"
)

// Draw renders one frame and closes out its timing.
func (g *Game) Draw() {
	g.perf.StartPhase(telemetry.PhaseAnimate)
	g.cam.Tick()
	tr := galaxy.FrameTransform(g.params, g.state)

	g.perf.StartPhase(telemetry.PhaseDraw)
	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 4, G: 4, B: 10, A: 255})

	cam := g.cam.Raylib()
	rl.BeginMode3D(cam)
	g.points.Draw(g.cloud, tr, g.params, cam)
	g.glow.Draw(g.params, g.state.Elapsed)
	rl.EndMode3D()

	g.perf.StartPhase(telemetry.PhaseUI)
	// Structural slider edits invalidate the cloud; regeneration happens
	// right here, synchronously, before the next frame reads it.
	if g.panel.Draw(&g.params) {
		g.perf.StartPhase(telemetry.PhaseGenerate)
		g.regenerate()
		g.perf.StartPhase(telemetry.PhaseUI)
	}

	g.hud.Draw(ui.HUDData{
		Points:         g.cloud.Len(),
		FPS:            rl.GetFPS(),
		AudioIntensity: float64(g.state.AudioIntensity),
		AudioConnected: g.player != nil,
		Paused:         g.paused,
		FreeCamera:     g.freeCam,
		ScreenWidth:    g.screenWidth,
		ScreenHeight:   g.screenHeight,
	})

	rl.EndDrawing()
	g.endFrame()
}
