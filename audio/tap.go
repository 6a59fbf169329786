package audio

import (
	"sync"

	"github.com/gopxl/beep"
)

// Tap sits in the playback chain and keeps a mono ring buffer of the most
// recently played samples, so the frame loop can derive a loudness reading
// from what is actually audible right now.
//
// Stream runs on the speaker goroutine; Snapshot runs on the frame loop.
// The mutex is the only coordination between them.
type Tap struct {
	src  beep.Streamer
	mu   sync.RWMutex
	ring []float64
	next int
	n    int // samples written so far, saturates at len(ring)
}

// NewTap wraps src, recording the last ringSize mono samples.
func NewTap(src beep.Streamer, ringSize int) *Tap {
	if ringSize < 1 {
		ringSize = 1
	}
	return &Tap{
		src:  src,
		ring: make([]float64, ringSize),
	}
}

// Stream implements beep.Streamer, folding stereo down to mono as it copies
// into the ring.
func (t *Tap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.src.Stream(samples)
	if n > 0 {
		t.mu.Lock()
		for i := 0; i < n; i++ {
			t.ring[t.next] = (samples[i][0] + samples[i][1]) * 0.5
			t.next++
			if t.next == len(t.ring) {
				t.next = 0
			}
		}
		if t.n < len(t.ring) {
			t.n += n
			if t.n > len(t.ring) {
				t.n = len(t.ring)
			}
		}
		t.mu.Unlock()
	}
	return n, ok
}

// Err implements beep.Streamer.
func (t *Tap) Err() error {
	return t.src.Err()
}

// Snapshot copies up to len(dst) of the most recent samples into dst in
// chronological order and returns how many were written.
func (t *Tap) Snapshot(dst []float64) int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	n := len(dst)
	if n > t.n {
		n = t.n
	}

	// Oldest of the n requested samples sits n slots behind the write head.
	idx := t.next - n
	if idx < 0 {
		idx += len(t.ring)
	}
	for i := 0; i < n; i++ {
		dst[i] = t.ring[idx]
		idx++
		if idx == len(t.ring) {
			idx = 0
		}
	}
	return n
}
