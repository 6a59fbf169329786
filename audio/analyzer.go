package audio

import "math"

// NumBands is how many coarse frequency-band bins the analyzer produces per
// frame. The loudness sampler only needs their aggregate, so the exact band
// count matters little; 64 matches the window comfortably.
const NumBands = 64

// Analyzer converts the tap's recent samples into the byte bins the
// loudness sampler consumes. Each band is the RMS of one window segment,
// power-compressed so quiet passages still register, then smoothed against
// the previous frame to keep the intensity from flickering.
type Analyzer struct {
	tap       *Tap
	window    []float64
	smoothed  []float64
	bins      []byte
	smoothing float64
}

// NewAnalyzer creates an analyzer reading windowSize samples per frame from
// tap. smoothing in [0,1) is the weight of the previous frame's bands.
func NewAnalyzer(tap *Tap, windowSize int, smoothing float64) *Analyzer {
	if windowSize < NumBands {
		windowSize = NumBands
	}
	return &Analyzer{
		tap:       tap,
		window:    make([]float64, windowSize),
		smoothed:  make([]float64, NumBands),
		bins:      make([]byte, NumBands),
		smoothing: smoothing,
	}
}

// SampleBins computes the current frame's byte bins. The returned slice is
// reused between calls. A silent or empty tap yields all-zero bins.
func (a *Analyzer) SampleBins() []byte {
	n := a.tap.Snapshot(a.window)
	if n == 0 {
		for i := range a.bins {
			a.bins[i] = 0
		}
		return a.bins
	}

	seg := n / NumBands
	if seg < 1 {
		seg = 1
	}

	for i := 0; i < NumBands; i++ {
		start := i * seg
		end := start + seg
		if start >= n {
			a.smoothed[i] *= a.smoothing
			a.bins[i] = byte(clampUnit(a.smoothed[i]) * 255)
			continue
		}
		if end > n {
			end = n
		}

		var sumSq float64
		for s := start; s < end; s++ {
			sumSq += a.window[s] * a.window[s]
		}
		rms := math.Sqrt(sumSq / float64(end-start))
		mag := math.Pow(rms, 0.3)

		a.smoothed[i] = a.smoothing*a.smoothed[i] + (1-a.smoothing)*mag
		a.bins[i] = byte(clampUnit(a.smoothed[i]) * 255)
	}
	return a.bins
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
