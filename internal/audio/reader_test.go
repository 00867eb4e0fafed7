package audio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// writeWAV encodes 16-bit PCM samples in [-1, 1] to a WAV file.
func writeWAV(t *testing.T, path string, samples []float64, rate, channels int) {
	t.Helper()

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	data := make([]int, len(samples))
	for i, s := range samples {
		data[i] = int(s * 32767)
	}

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Data:           data,
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatal(err)
	}
	if err := enc.Close(); err != nil {
		t.Fatal(err)
	}
}

func TestDecodeMono(t *testing.T) {
	const rate = 16000
	samples := make([]float64, rate) // one second
	for i := range samples {
		samples[i] = 0.5 * math.Sin(2*math.Pi*440*float64(i)/rate)
	}

	path := filepath.Join(t.TempDir(), "mono.wav")
	writeWAV(t, path, samples, rate, 1)

	clip, err := Decode(path)
	if err != nil {
		t.Fatal(err)
	}

	if clip.SampleRate != rate {
		t.Errorf("SampleRate = %d, want %d", clip.SampleRate, rate)
	}
	if clip.Channels != 1 {
		t.Errorf("Channels = %d, want 1", clip.Channels)
	}
	if len(clip.Samples) != rate {
		t.Errorf("len(Samples) = %d, want %d", len(clip.Samples), rate)
	}
	if math.Abs(clip.Duration-1.0) > 0.001 {
		t.Errorf("Duration = %v, want 1.0", clip.Duration)
	}

	// Peak should sit near the encoded amplitude
	peak := 0.0
	for _, s := range clip.Samples {
		if a := math.Abs(s); a > peak {
			peak = a
		}
	}
	if peak < 0.45 || peak > 0.55 {
		t.Errorf("peak amplitude = %v, want ~0.5", peak)
	}
}

func TestDecodeStereoDownmix(t *testing.T) {
	const rate = 16000
	const frames = rate / 2

	// Interleaved stereo with opposite-sign constant channels averages to a
	// small positive value.
	samples := make([]float64, frames*2)
	for i := 0; i < frames; i++ {
		samples[i*2] = 0.5
		samples[i*2+1] = -0.3
	}

	path := filepath.Join(t.TempDir(), "stereo.wav")
	writeWAV(t, path, samples, rate, 2)

	clip, err := Decode(path)
	if err != nil {
		t.Fatal(err)
	}

	if clip.Channels != 2 {
		t.Errorf("Channels = %d, want 2", clip.Channels)
	}
	if len(clip.Samples) != frames {
		t.Fatalf("len(Samples) = %d, want %d downmixed frames", len(clip.Samples), frames)
	}
	if got := clip.Samples[frames/2]; math.Abs(got-0.1) > 0.01 {
		t.Errorf("downmixed sample = %v, want ~0.1", got)
	}
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()

	empty := filepath.Join(dir, "empty.wav")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatal(err)
	}

	garbage := filepath.Join(dir, "garbage.wav")
	if err := os.WriteFile(garbage, []byte("not a wav container"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
	}{
		{"missing file", filepath.Join(dir, "missing.wav")},
		{"empty file", empty},
		{"not a wav", garbage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode(tt.path); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestProbeDuration(t *testing.T) {
	dir := t.TempDir()

	wavPath := filepath.Join(dir, "clip.wav")
	writeWAV(t, wavPath, make([]float64, 32000), 16000, 1) // two seconds

	rawPath := filepath.Join(dir, "raw.bin")
	if err := os.WriteFile(rawPath, make([]byte, 96000), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		path string
		want float64
	}{
		{"valid wav header", wavPath, 2.0},
		{"size estimate", rawPath, 3.0},
		{"missing file", filepath.Join(dir, "missing.wav"), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProbeDuration(tt.path)
			if math.Abs(got-tt.want) > 0.01 {
				t.Errorf("ProbeDuration = %v, want %v", got, tt.want)
			}
		})
	}
}
