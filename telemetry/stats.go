package telemetry

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// WindowStats aggregates frame timings and audio readings over one stats
// window. Durations are milliseconds.
type WindowStats struct {
	WindowEndFrame int64   `csv:"window_end_frame"`
	WallTimeSec    float64 `csv:"wall_time"`
	Frames         int     `csv:"frames"`
	FPS            float64 `csv:"fps"`
	FrameMean      float64 `csv:"frame_ms_mean"`
	FrameStd       float64 `csv:"frame_ms_std"`
	FrameP50       float64 `csv:"frame_ms_p50"`
	FrameP95       float64 `csv:"frame_ms_p95"`
	FrameMax       float64 `csv:"frame_ms_max"`
	AudioMean      float64 `csv:"audio_intensity_mean"`
	Regens         int     `csv:"regens"`
}

// GenerationRecord captures one point-cloud regeneration.
type GenerationRecord struct {
	Frame      int64   `csv:"frame"`
	Points     int     `csv:"points"`
	DurationMs float64 `csv:"duration_ms"`
}

// ComputeFrameStats reduces a window of frame durations (milliseconds) to
// summary statistics. Returns zeros for an empty window.
func ComputeFrameStats(ms []float64) (mean, std, p50, p95, max float64) {
	n := len(ms)
	if n == 0 {
		return 0, 0, 0, 0, 0
	}

	sorted := make([]float64, n)
	copy(sorted, ms)
	sort.Float64s(sorted)

	mean = stat.Mean(sorted, nil)
	if n > 1 {
		std = stat.StdDev(sorted, nil)
	}
	p50 = stat.Quantile(0.50, stat.Empirical, sorted, nil)
	p95 = stat.Quantile(0.95, stat.Empirical, sorted, nil)
	max = sorted[n-1]
	return mean, std, p50, p95, max
}
