package store

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/candidly-dev/candidly/internal/analysis"
)

const sidecarSuffix = ".analysis.json"

// Sidecar is the per-recording analysis record written next to the audio
// file, so a recording stays interpretable without the session database.
type Sidecar struct {
	AudioFile  string           `json:"audio_file"`
	Transcript string           `json:"transcript"`
	Metrics    analysis.Metrics `json:"metrics"`
	AnalyzedAt time.Time        `json:"analyzed_at"`
}

// SidecarPath returns the sidecar location for a recording.
func SidecarPath(recordingPath string) string {
	return recordingPath + sidecarSuffix
}

// WriteSidecar writes the analysis record next to the recording.
func WriteSidecar(recordingPath, transcript string, m analysis.Metrics) error {
	sc := Sidecar{
		AudioFile:  recordingPath,
		Transcript: transcript,
		Metrics:    m,
		AnalyzedAt: time.Now().UTC(),
	}

	encoded, err := json.MarshalIndent(sc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode sidecar: %w", err)
	}
	if err := os.WriteFile(SidecarPath(recordingPath), encoded, 0o644); err != nil {
		return fmt.Errorf("failed to write sidecar: %w", err)
	}
	return nil
}

// ReadSidecar loads a previously written analysis record.
func ReadSidecar(recordingPath string) (Sidecar, error) {
	data, err := os.ReadFile(SidecarPath(recordingPath))
	if err != nil {
		return Sidecar{}, fmt.Errorf("failed to read sidecar: %w", err)
	}
	var sc Sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return Sidecar{}, fmt.Errorf("failed to decode sidecar: %w", err)
	}
	return sc, nil
}
