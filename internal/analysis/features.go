package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/candidly-dev/candidly/internal/audio"
)

// Framing and segmentation constants for waveform feature extraction.
const (
	frameLength = 2048 // samples per analysis frame
	hopLength   = 512  // samples between frame starts

	// Energy thresholds relative to the mean frame energy
	speechEnergyFactor  = 0.3 // frames above this fraction of mean energy carry speech
	silenceEnergyFactor = 0.2 // frames below this fraction of mean energy are pauses

	// Speaking-rate estimation. The syllable rate is a rough proxy derived
	// from voiced time, not a linguistic count: ~4 syllables per second of
	// speech, ~2 syllables per word.
	syllablesPerSpeechSecond = 4.0
	syllablesPerWord         = 2.0

	// Stabiliser added to mean energy in the volume consistency ratio
	volumeEpsilon = 0.01
)

// FeatureSet is the intermediate feature bundle extracted from a decoded
// waveform. Mapping features to scores happens in scoreFeatures.
type FeatureSet struct {
	Duration          float64 // seconds
	WordsPerMinute    float64
	VolumeConsistency float64 // 1/(1+σ/μ), bounded in (0,1]
	AveragePitch      float64 // Hz, 0 if no voiced frames
	PitchRange        float64 // Hz
	PitchVariation    float64 // Hz
	PauseRatio        float64 // fraction of total duration spent silent
}

// extractFeatures computes the low-level acoustic features for a decoded clip:
// short-time energy envelope, speech/silence segmentation, a syllable-proxy
// speaking rate, volume consistency, and the pitch track.
func extractFeatures(clip *audio.Clip) FeatureSet {
	fs := FeatureSet{Duration: clip.Duration}
	if len(clip.Samples) == 0 || clip.SampleRate <= 0 {
		return fs
	}

	energy := rmsEnergy(clip.Samples)
	if len(energy) == 0 {
		return fs
	}

	meanEnergy := stat.Mean(energy, nil)
	frameSeconds := float64(hopLength) / float64(clip.SampleRate)

	// Speech/silence segmentation against the mean energy
	speechFrames := 0
	silentFrames := 0
	for _, e := range energy {
		if e > meanEnergy*speechEnergyFactor {
			speechFrames++
		}
		if e < meanEnergy*silenceEnergyFactor {
			silentFrames++
		}
	}
	speechDuration := float64(speechFrames) * frameSeconds
	pauseDuration := float64(silentFrames) * frameSeconds

	if clip.Duration > 0 {
		fs.PauseRatio = pauseDuration / clip.Duration
	}

	// Speaking-rate estimate from voiced time
	if speechDuration > 0 && clip.Duration > 0 {
		syllables := speechDuration * syllablesPerSpeechSecond
		fs.WordsPerMinute = (syllables / syllablesPerWord) * (60 / clip.Duration)
	}

	// Volume consistency: steadier energy approaches 1
	energyStd := stat.StdDev(energy, nil)
	fs.VolumeConsistency = 1 / (1 + energyStd/(meanEnergy+volumeEpsilon))

	// Pitch statistics over voiced frames only
	pitches := trackPitch(clip.Samples, clip.SampleRate)
	if len(pitches) > 0 {
		fs.AveragePitch = stat.Mean(pitches, nil)
		minP, maxP := pitches[0], pitches[0]
		for _, p := range pitches[1:] {
			if p < minP {
				minP = p
			}
			if p > maxP {
				maxP = p
			}
		}
		fs.PitchRange = maxP - minP
		if len(pitches) > 1 {
			fs.PitchVariation = stat.StdDev(pitches, nil)
		}
	}

	return fs
}

// rmsEnergy computes the short-time root-mean-square energy envelope over
// overlapping frames of frameLength samples with hopLength spacing.
// The trailing partial frame is included.
func rmsEnergy(samples []float64) []float64 {
	if len(samples) == 0 {
		return nil
	}

	var energy []float64
	for start := 0; start < len(samples); start += hopLength {
		end := start + frameLength
		if end > len(samples) {
			end = len(samples)
		}
		sum := 0.0
		for _, s := range samples[start:end] {
			sum += s * s
		}
		n := end - start
		energy = append(energy, math.Sqrt(sum/float64(n)))
	}
	return energy
}
