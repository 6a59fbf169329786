package telemetry

import (
	"math"
	"testing"
)

func TestComputeFrameStats(t *testing.T) {
	values := []float64{10, 12, 11, 13, 14, 15, 16, 17, 18, 19}
	mean, std, p50, p95, max := ComputeFrameStats(values)

	if math.Abs(mean-14.5) > 0.001 {
		t.Errorf("mean = %v, want 14.5", mean)
	}
	if std <= 0 {
		t.Errorf("std = %v, want > 0", std)
	}
	if p50 < 13 || p50 > 16 {
		t.Errorf("p50 = %v, want within the middle of the window", p50)
	}
	if p95 < p50 {
		t.Errorf("p95 = %v below p50 = %v", p95, p50)
	}
	if max != 19 {
		t.Errorf("max = %v, want 19", max)
	}
}

func TestComputeFrameStatsEmpty(t *testing.T) {
	mean, std, p50, p95, max := ComputeFrameStats(nil)
	if mean != 0 || std != 0 || p50 != 0 || p95 != 0 || max != 0 {
		t.Error("empty window should return all zeros")
	}
}

func TestComputeFrameStatsSingle(t *testing.T) {
	mean, std, p50, p95, max := ComputeFrameStats([]float64{16.6})
	if mean != 16.6 || p50 != 16.6 || p95 != 16.6 || max != 16.6 {
		t.Errorf("single sample: got mean=%v p50=%v p95=%v max=%v, want all 16.6", mean, p50, p95, max)
	}
	if std != 0 {
		t.Errorf("single sample std = %v, want 0", std)
	}
}
