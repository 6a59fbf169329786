package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"galaxyviz/galaxy"
	"galaxyviz/telemetry"
)

// headlessDT is the fixed step used when no display drives the loop.
const headlessDT = 1.0 / 60.0

// Update advances one windowed frame: input, audio sampling and scene time.
// Drawing happens separately in Draw.
func (g *Game) Update() {
	g.perf.StartFrame()
	g.frameStart = time.Now()

	g.handleInput()

	g.perf.StartPhase(telemetry.PhaseAudio)
	g.sampleAudio()

	if !g.paused {
		g.state.Advance(rl.GetFrameTime())
	}
}

// UpdateHeadless advances one fixed-step frame without a window: the full
// animator still runs over every point so headless runs exercise and time
// the same math the renderer would consume.
func (g *Game) UpdateHeadless() {
	g.perf.StartFrame()
	g.frameStart = time.Now()

	g.perf.StartPhase(telemetry.PhaseAudio)
	g.sampleAudio()

	if !g.paused {
		g.state.Advance(headlessDT)
	}

	g.perf.StartPhase(telemetry.PhaseAnimate)
	tr := galaxy.FrameTransform(g.params, g.state)
	if len(g.scratch) != g.cloud.Len() {
		g.scratch = make([]galaxy.Vec3, g.cloud.Len())
	}
	for i := range g.scratch {
		g.scratch[i] = tr.Apply(g.cloud.Positions[i], g.cloud.Radii[i])
	}

	g.endFrame()
}

// sampleAudio refreshes the loudness intensity from the player's tap. With
// no player connected the intensity keeps its zero value.
func (g *Game) sampleAudio() {
	if g.player == nil {
		return
	}
	g.state.AudioIntensity = float32(g.player.Intensity())
}

// endFrame closes perf timing and feeds the stats collector.
func (g *Game) endFrame() {
	g.perf.EndFrame()
	g.tick++
	g.collector.RecordFrame(time.Since(g.frameStart), float64(g.state.AudioIntensity))
}
