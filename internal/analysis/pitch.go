package analysis

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// Pitch tracking constants. The voiced band spans roughly the fundamental
// range of human speech plus its first harmonics.
const (
	pitchMinHz = 50.0
	pitchMaxHz = 1600.0

	// Frames whose dominant spectral peak falls below this magnitude are
	// treated as unvoiced and excluded from pitch statistics.
	voicedMagnitudeThreshold = 0.1
)

// trackPitch returns the dominant frequency of each voiced frame, in Hz.
// Each frameLength window is Hann-weighted and transformed; the strongest
// spectral peak inside the speech band decides the frame's pitch. Unvoiced
// frames (peak magnitude at or below the threshold) are skipped, so silence
// contributes nothing.
func trackPitch(samples []float64, sampleRate int) []float64 {
	if len(samples) < frameLength || sampleRate <= 0 {
		return nil
	}

	fft := fourier.NewFFT(frameLength)
	window := hannWindow(frameLength)
	frame := make([]float64, frameLength)

	var pitches []float64
	for start := 0; start+frameLength <= len(samples); start += hopLength {
		for i := 0; i < frameLength; i++ {
			frame[i] = samples[start+i] * window[i]
		}
		coeffs := fft.Coefficients(nil, frame)

		// Strongest peak inside the speech band
		bestMag := 0.0
		bestBin := -1
		for bin := 1; bin < len(coeffs); bin++ {
			freq := fft.Freq(bin) * float64(sampleRate)
			if freq < pitchMinHz || freq > pitchMaxHz {
				continue
			}
			// Normalise so magnitude is comparable across frame sizes
			mag := cmplx.Abs(coeffs[bin]) * 2 / frameLength
			if mag > bestMag {
				bestMag = mag
				bestBin = bin
			}
		}

		if bestBin < 0 || bestMag <= voicedMagnitudeThreshold {
			continue
		}
		pitches = append(pitches, fft.Freq(bestBin)*float64(sampleRate))
	}
	return pitches
}

// hannWindow builds a Hann taper of length n.
func hannWindow(n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.5 * (1 - math.Cos(2*math.Pi*float64(i)/float64(n-1)))
	}
	return w
}
