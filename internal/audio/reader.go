// Package audio provides WAV file decoding for the analysis pipeline.
package audio

import (
	"fmt"
	"os"

	"github.com/go-audio/wav"
)

// bytesPerSecondEstimate is the assumed data rate for duration estimation when
// a file is not a readable WAV container. Typical speech recordings (16 kHz
// mono 16-bit) run close to 32 kB/s.
const bytesPerSecondEstimate = 32000

// Clip holds a decoded waveform ready for analysis.
// Samples are mono (channels averaged) and normalised to [-1, 1].
type Clip struct {
	Samples    []float64
	SampleRate int
	Channels   int
	Duration   float64 // seconds
}

// Decode reads and decodes a WAV file into a Clip.
// Returns an error for missing, empty, or undecodable files; callers fall
// back to heuristic analysis on any failure here.
func Decode(path string) (*Clip, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("audio file not found: %s", path)
	}
	if info.Size() == 0 {
		return nil, fmt.Errorf("audio file is empty: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, fmt.Errorf("not a decodable WAV file: %s", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to decode PCM data: %w", err)
	}
	if buf == nil || len(buf.Data) == 0 {
		return nil, fmt.Errorf("no audio samples in file: %s", path)
	}

	channels := buf.Format.NumChannels
	if channels < 1 {
		channels = 1
	}
	sampleRate := buf.Format.SampleRate
	if sampleRate <= 0 {
		return nil, fmt.Errorf("invalid sample rate in file: %s", path)
	}

	// Normalisation factor from the source bit depth
	bitDepth := int(dec.BitDepth)
	if buf.SourceBitDepth > 0 {
		bitDepth = buf.SourceBitDepth
	}
	if bitDepth <= 0 {
		bitDepth = 16
	}
	scale := float64(int(1) << (bitDepth - 1))

	// Downmix interleaved channels by averaging
	frames := len(buf.Data) / channels
	samples := make([]float64, frames)
	for i := 0; i < frames; i++ {
		sum := 0.0
		for c := 0; c < channels; c++ {
			sum += float64(buf.Data[i*channels+c])
		}
		samples[i] = sum / float64(channels) / scale
	}

	return &Clip{
		Samples:    samples,
		SampleRate: sampleRate,
		Channels:   channels,
		Duration:   float64(frames) / float64(sampleRate),
	}, nil
}

// ProbeDuration estimates a recording's duration without decoding samples.
// Reads the WAV header when possible, otherwise estimates from file size.
// Returns 0 for missing or empty files. Never fails.
func ProbeDuration(path string) float64 {
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		return 0
	}

	if f, err := os.Open(path); err == nil {
		defer f.Close()
		dec := wav.NewDecoder(f)
		if dec.IsValidFile() {
			if d, err := dec.Duration(); err == nil && d > 0 {
				return d.Seconds()
			}
		}
	}

	return float64(info.Size()) / bytesPerSecondEstimate
}
