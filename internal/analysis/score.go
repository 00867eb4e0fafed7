package analysis

import (
	"math"
	"strings"
)

// Score mapping constants for the signal path.
const (
	// Words-per-minute rate that maps to a full pace score
	targetPaceWPM = 150.0

	// Pitch variation (Hz std dev) considered ideal for an engaging tone
	idealPitchVariation = 50.0
	pitchVariationSlope = 2.0
)

// scoreFeatures maps an extracted FeatureSet to the final Metrics record for
// the signal path. All three scores land in [0, 100].
func scoreFeatures(fs FeatureSet) Metrics {
	pace := clamp(fs.WordsPerMinute/targetPaceWPM*100, 0, 100)
	confidence := clamp(fs.VolumeConsistency*100, 0, 100)
	tone := clamp(100-math.Abs(fs.PitchVariation-idealPitchVariation)*pitchVariationSlope, 0, 100)

	m := Metrics{
		Duration:          round2(fs.Duration),
		WordsPerMinute:    round1(fs.WordsPerMinute),
		PaceScore:         round1(pace),
		ConfidenceScore:   round1(confidence),
		ToneScore:         round1(tone),
		AveragePitch:      round2(fs.AveragePitch),
		PitchRange:        round2(fs.PitchRange),
		PitchVariation:    round2(fs.PitchVariation),
		PauseRatio:        round1(fs.PauseRatio * 100),
		VolumeConsistency: round2(fs.VolumeConsistency),
		Method:            MethodSignal,
	}
	m.Summary = signalSummary(m)
	return m
}

// signalSummary assembles the human-readable summary for a signal-path
// record: a pace phrase, a confidence phrase, and an optional pause note,
// joined with commas.
func signalSummary(m Metrics) string {
	parts := []string{
		interpretPace(m.PaceScore),
		interpretConfidence(m.ConfidenceScore),
	}
	if note := interpretPauses(m.PauseRatio); note != "" {
		parts = append(parts, note)
	}
	return strings.Join(parts, ", ") + "."
}

func interpretPace(score float64) string {
	switch {
	case score > 80:
		return "Great speaking pace"
	case score > 60:
		return "Good speaking pace"
	case score > 40:
		return "Consider adjusting your speaking speed"
	default:
		return "Speaking pace needs improvement"
	}
}

func interpretConfidence(score float64) string {
	switch {
	case score > 80:
		return "confident delivery"
	case score > 60:
		return "fairly confident"
	default:
		return "work on speaking with more confidence"
	}
}

// interpretPauses flags only the extremes of the silence percentage; a
// healthy pause share adds nothing to the summary.
func interpretPauses(percent float64) string {
	switch {
	case percent > 30:
		return "reduce excessive pauses"
	case percent < 5:
		return "add strategic pauses for clarity"
	default:
		return ""
	}
}
