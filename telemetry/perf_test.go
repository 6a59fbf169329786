package telemetry

import (
	"testing"
	"time"
)

func TestPerfCollectorEmpty(t *testing.T) {
	p := NewPerfCollector(10)
	stats := p.Stats()
	if stats.AvgFrame != 0 || stats.FPS != 0 {
		t.Errorf("empty collector: avg=%v fps=%v, want zeros", stats.AvgFrame, stats.FPS)
	}
}

func TestPerfCollectorRecordsPhases(t *testing.T) {
	p := NewPerfCollector(4)

	for i := 0; i < 3; i++ {
		p.StartFrame()
		p.StartPhase(PhaseAnimate)
		time.Sleep(time.Millisecond)
		p.StartPhase(PhaseDraw)
		time.Sleep(time.Millisecond)
		p.EndFrame()
	}

	stats := p.Stats()
	if stats.AvgFrame < 2*time.Millisecond {
		t.Errorf("avg frame %v, want >= 2ms", stats.AvgFrame)
	}
	if stats.PhaseAvg[PhaseAnimate] <= 0 {
		t.Error("animate phase not recorded")
	}
	if stats.PhaseAvg[PhaseDraw] <= 0 {
		t.Error("draw phase not recorded")
	}
	if stats.MaxFrame < stats.MinFrame {
		t.Errorf("max %v below min %v", stats.MaxFrame, stats.MinFrame)
	}
}

func TestPerfCollectorRollingWindow(t *testing.T) {
	p := NewPerfCollector(2)
	for i := 0; i < 5; i++ {
		p.StartFrame()
		p.EndFrame()
	}
	// Window caps the sample count, old samples are overwritten in place.
	if p.sampleCount != 2 {
		t.Errorf("sampleCount = %d, want 2", p.sampleCount)
	}
}
