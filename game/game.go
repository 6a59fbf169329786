// Package game wires the galaxy core, audio feed, renderers and UI into
// one frame loop.
package game

import (
	"log/slog"
	"math/rand"
	"time"

	"galaxyviz/audio"
	"galaxyviz/camera"
	"galaxyviz/config"
	"galaxyviz/galaxy"
	"galaxyviz/renderer"
	"galaxyviz/telemetry"
	"galaxyviz/ui"
)

// Options configures a Game instance.
type Options struct {
	Seed           int64
	Headless       bool
	AudioPath      string
	OutputDir      string
	LogStats       bool
	StatsWindowSec float64
}

// Game holds the complete scene state. Everything is owned by the single
// frame-loop goroutine; the only concurrent part is the audio tap, which
// synchronizes internally.
type Game struct {
	params galaxy.Params
	cloud  *galaxy.PointCloud
	state  galaxy.State
	rng    *rand.Rand

	// player is nil when no audio source is connected; the intensity then
	// stays 0 for the whole session.
	player *audio.Player

	cam    *camera.Orbit
	points *renderer.PointRenderer
	glow   *renderer.CoreGlow
	panel  *ui.Panel
	hud    *ui.HUD

	perf      *telemetry.PerfCollector
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	tick       int64
	paused     bool
	freeCam    bool
	frameStart time.Time

	// scratch receives animated positions in headless mode, where there is
	// no renderer to consume them.
	scratch []galaxy.Vec3

	screenWidth, screenHeight int32
}

// New creates a game from the loaded configuration. In windowed mode the
// caller must have opened the raylib window first.
func New(opts Options) *Game {
	cfg := config.Cfg()

	g := &Game{
		params:       paramsFromConfig(cfg),
		rng:          rand.New(rand.NewSource(opts.Seed)),
		screenWidth:  int32(cfg.Screen.Width),
		screenHeight: int32(cfg.Screen.Height),
		perf:         telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
	}

	output, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("telemetry output disabled", "error", err)
	} else if output != nil {
		if err := output.WriteConfig(cfg); err != nil {
			slog.Error("writing config snapshot", "error", err)
		}
		g.output = output
	}

	windowSec := cfg.Telemetry.StatsWindow
	if opts.StatsWindowSec > 0 {
		windowSec = opts.StatsWindowSec
	}
	g.collector = telemetry.NewCollector(windowSec, g.output, opts.LogStats)

	g.regenerate()

	if opts.AudioPath != "" {
		player, err := audio.Open(opts.AudioPath, cfg.Audio.RingSize, cfg.Audio.WindowSize, cfg.Audio.Smoothing)
		if err != nil {
			// Degrade, never halt: the scene runs with intensity 0.
			slog.Warn("audio unavailable, continuing silent", "path", opts.AudioPath, "error", err)
		} else {
			slog.Info("audio connected", "path", opts.AudioPath)
			g.player = player
		}
	}

	if !opts.Headless {
		g.cam = camera.New(g.params.Size)
		g.points = renderer.NewPointRenderer()
		g.glow = renderer.NewCoreGlow()
		g.panel = ui.NewPanel(g.screenWidth-270, 20, 250)
		g.hud = ui.NewHUD()
	}

	return g
}

// Tick returns the number of completed frames.
func (g *Game) Tick() int64 {
	return g.tick
}

// regenerate replaces the point cloud wholesale from the current structural
// parameters. Runs synchronously on the frame loop; a later call simply
// overwrites an earlier result.
func (g *Game) regenerate() {
	start := time.Now()
	g.cloud = galaxy.Generate(g.params, g.rng)
	g.collector.RecordGeneration(time.Since(start), g.cloud.Len())
}

// Unload releases audio and GPU resources.
func (g *Game) Unload() {
	if g.player != nil {
		if err := g.player.Close(); err != nil {
			slog.Error("closing audio player", "error", err)
		}
	}
	if g.points != nil {
		g.points.Unload()
	}
	if err := g.output.Close(); err != nil {
		slog.Error("closing telemetry output", "error", err)
	}
}
