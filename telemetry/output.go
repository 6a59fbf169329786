package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"galaxyviz/config"
)

// OutputManager handles structured run output with CSV logging.
type OutputManager struct {
	dir            string
	framesFile     *os.File
	generationFile *os.File

	framesHeaderWritten     bool
	generationHeaderWritten bool
}

// NewOutputManager creates an output manager rooted at dir. Returns nil if
// dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	om := &OutputManager{dir: dir}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	om.framesFile = f

	f, err = os.Create(filepath.Join(dir, "generation.csv"))
	if err != nil {
		om.framesFile.Close()
		return nil, fmt.Errorf("creating generation.csv: %w", err)
	}
	om.generationFile = f

	return om, nil
}

// WriteConfig saves the active configuration next to the CSV logs.
func (om *OutputManager) WriteConfig(cfg *config.Config) error {
	if om == nil {
		return nil
	}
	return cfg.WriteYAML(filepath.Join(om.dir, "config.yaml"))
}

// WriteWindow appends a window stats record to frames.csv.
func (om *OutputManager) WriteWindow(stats WindowStats) error {
	if om == nil {
		return nil
	}
	records := []WindowStats{stats}
	if !om.framesHeaderWritten {
		om.framesHeaderWritten = true
		return gocsv.Marshal(records, om.framesFile)
	}
	return gocsv.MarshalWithoutHeaders(records, om.framesFile)
}

// WriteGeneration appends a regeneration record to generation.csv.
func (om *OutputManager) WriteGeneration(rec GenerationRecord) error {
	if om == nil {
		return nil
	}
	records := []GenerationRecord{rec}
	if !om.generationHeaderWritten {
		om.generationHeaderWritten = true
		return gocsv.Marshal(records, om.generationFile)
	}
	return gocsv.MarshalWithoutHeaders(records, om.generationFile)
}

// Close flushes and closes all output files.
func (om *OutputManager) Close() error {
	if om == nil {
		return nil
	}
	var firstErr error
	if err := om.framesFile.Close(); err != nil {
		firstErr = err
	}
	if err := om.generationFile.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}
