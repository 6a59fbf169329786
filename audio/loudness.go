// Package audio provides audio file playback and the loudness intensity
// feed consumed by the galaxy animator.
//
// The playback chain is decoder -> tap -> speaker: the tap records the most
// recently played samples into a ring buffer, an analyzer reduces a
// snapshot of the ring to coarse frequency-band bytes each frame, and
// Intensity collapses those bytes to the single scalar the animator wants.
// When no audio source is available the rest of the system simply reads a
// constant 0.
package audio

// Intensity reduces a frequency-bin snapshot to one loudness scalar in
// [0,1]: the mean bin value over the full byte range. Empty input reads as
// silence.
func Intensity(bins []byte) float64 {
	if len(bins) == 0 {
		return 0
	}
	var sum int
	for _, b := range bins {
		sum += int(b)
	}
	return float64(sum) / (float64(len(bins)) * 255)
}
