package telemetry

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"
)

// OutputManager writes frame windows to frames.csv in its directory.
type OutputManager struct {
	dir           string
	framesFile    *os.File
	headerWritten bool
}

// NewOutputManager creates the output directory and opens frames.csv.
// Returns nil if dir is empty (output disabled).
func NewOutputManager(dir string) (*OutputManager, error) {
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	f, err := os.Create(filepath.Join(dir, "frames.csv"))
	if err != nil {
		return nil, fmt.Errorf("creating frames.csv: %w", err)
	}
	return &OutputManager{dir: dir, framesFile: f}, nil
}

// Dir returns the output directory.
func (om *OutputManager) Dir() string {
	if om == nil {
		return ""
	}
	return om.dir
}

// WriteFrames appends one window to frames.csv.
func (om *OutputManager) WriteFrames(stats WindowStats) error {
	if om == nil {
		return nil
	}
	records := []WindowStats{stats}

	if !om.headerWritten {
		if err := gocsv.Marshal(records, om.framesFile); err != nil {
			return fmt.Errorf("writing frames: %w", err)
		}
		om.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(records, om.framesFile); err != nil {
		return fmt.Errorf("writing frames: %w", err)
	}
	return nil
}

// Close closes the CSV file.
func (om *OutputManager) Close() error {
	if om == nil || om.framesFile == nil {
		return nil
	}
	err := om.framesFile.Close()
	om.framesFile = nil
	return err
}
