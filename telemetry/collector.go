package telemetry

import (
	"log/slog"
	"time"
)

// Collector accumulates per-frame readings within wall-clock windows and
// flushes a WindowStats record when each window closes.
type Collector struct {
	windowSec float64
	output    *OutputManager // may be nil (output disabled)
	logStats  bool

	windowStart  time.Time
	sessionStart time.Time
	frameMs      []float64
	audioSum     float64
	regens       int
	totalFrames  int64
}

// NewCollector creates a stats collector. output may be nil; logStats
// controls whether closed windows are also logged via slog.
func NewCollector(windowSec float64, output *OutputManager, logStats bool) *Collector {
	if windowSec <= 0 {
		windowSec = 5
	}
	now := time.Now()
	return &Collector{
		windowSec:    windowSec,
		output:       output,
		logStats:     logStats,
		windowStart:  now,
		sessionStart: now,
	}
}

// RecordFrame records one frame's duration and the audio intensity it used,
// flushing the window if it has elapsed.
func (c *Collector) RecordFrame(d time.Duration, audioIntensity float64) {
	c.totalFrames++
	c.frameMs = append(c.frameMs, float64(d)/float64(time.Millisecond))
	c.audioSum += audioIntensity

	if time.Since(c.windowStart).Seconds() >= c.windowSec {
		c.flush()
	}
}

// RecordGeneration records one point-cloud regeneration.
func (c *Collector) RecordGeneration(d time.Duration, points int) {
	c.regens++
	rec := GenerationRecord{
		Frame:      c.totalFrames,
		Points:     points,
		DurationMs: float64(d) / float64(time.Millisecond),
	}
	slog.Info("galaxy regenerated", "points", points, "duration", d.Round(time.Microsecond))
	if c.output != nil {
		if err := c.output.WriteGeneration(rec); err != nil {
			slog.Error("writing generation record", "error", err)
		}
	}
}

// flush closes the current window.
func (c *Collector) flush() {
	frames := len(c.frameMs)
	if frames == 0 {
		c.windowStart = time.Now()
		return
	}

	mean, std, p50, p95, max := ComputeFrameStats(c.frameMs)
	wall := time.Since(c.windowStart).Seconds()

	stats := WindowStats{
		WindowEndFrame: c.totalFrames,
		WallTimeSec:    time.Since(c.sessionStart).Seconds(),
		Frames:         frames,
		FPS:            float64(frames) / wall,
		FrameMean:      mean,
		FrameStd:       std,
		FrameP50:       p50,
		FrameP95:       p95,
		FrameMax:       max,
		AudioMean:      c.audioSum / float64(frames),
		Regens:         c.regens,
	}

	if c.logStats {
		slog.Info("window stats",
			"frame", stats.WindowEndFrame,
			"fps", stats.FPS,
			"frame_ms_mean", stats.FrameMean,
			"frame_ms_p95", stats.FrameP95,
			"audio_mean", stats.AudioMean,
			"regens", stats.Regens,
		)
	}
	if c.output != nil {
		if err := c.output.WriteWindow(stats); err != nil {
			slog.Error("writing window stats", "error", err)
		}
	}

	c.frameMs = c.frameMs[:0]
	c.audioSum = 0
	c.regens = 0
	c.windowStart = time.Now()
}
