package audio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/flac"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/wav"
)

// Player decodes one audio file, plays it through the system speaker and
// exposes a per-frame loudness intensity derived from the playback tap.
//
// Open failing is not fatal to the caller: the visualization logs the error
// and runs with intensity pinned at 0.
type Player struct {
	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	tap      *Tap
	analyzer *Analyzer
	done     atomic.Bool
}

// Open decodes path (wav, mp3 or flac), initializes the speaker and starts
// playback. ringSize is the tap buffer length in samples and smoothing the
// analyzer's band smoothing factor.
func Open(path string, ringSize, windowSize int, smoothing float64) (*Player, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening audio file: %w", err)
	}

	var (
		streamer beep.StreamSeekCloser
		format   beep.Format
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".mp3":
		streamer, format, err = mp3.Decode(f)
	case ".flac":
		streamer, format, err = flac.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported audio format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("decoding %s: %w", filepath.Base(path), err)
	}

	p := &Player{
		file:     f,
		streamer: streamer,
		format:   format,
	}
	p.tap = NewTap(streamer, ringSize)
	p.analyzer = NewAnalyzer(p.tap, windowSize, smoothing)

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/20)); err != nil {
		streamer.Close()
		f.Close()
		return nil, fmt.Errorf("initializing speaker: %w", err)
	}

	speaker.Play(beep.Seq(p.tap, beep.Callback(func() {
		p.done.Store(true)
	})))

	return p, nil
}

// Intensity returns the current loudness in [0,1]. After playback finishes
// it reports silence rather than the stale tail of the ring buffer.
func (p *Player) Intensity() float64 {
	if p.done.Load() {
		return 0
	}
	return Intensity(p.analyzer.SampleBins())
}

// Close stops playback and releases the decoder and file.
func (p *Player) Close() error {
	speaker.Clear()
	err := p.streamer.Close()
	if cerr := p.file.Close(); err == nil {
		err = cerr
	}
	return err
}
