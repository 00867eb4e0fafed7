// Package analysis derives vocal-delivery metrics from recorded interview answers.
//
// Two extraction backends feed a common Metrics record: the signal backend
// works on the decoded waveform, the heuristic backend works on file metadata
// and the transcript alone. The selection contract (try signal, fall back to
// heuristic) lives in Analyzer.
package analysis

import "math"

// Method identifies which extraction backend produced a Metrics record.
type Method string

const (
	// MethodSignal means the full waveform analysis ran (extended pitch and
	// pause fields are populated).
	MethodSignal Method = "signal_analysis"

	// MethodHeuristic means the metadata/transcript fallback ran (extended
	// fields are zero and WordCount is populated).
	MethodHeuristic Method = "simple_analysis"
)

// Metrics holds the derived vocal-delivery scores for one recorded answer.
// Produced once per turn and never mutated. When Err is non-empty all scores
// are meaningless and downstream consumers must treat the record as "no data",
// not as zeros.
type Metrics struct {
	Duration       float64 `json:"duration"`
	WordsPerMinute float64 `json:"words_per_minute"`

	PaceScore       float64 `json:"pace_score"`
	ConfidenceScore float64 `json:"confidence_score"`
	ToneScore       float64 `json:"tone_score"`

	// Extended fields, populated only by the signal backend
	AveragePitch      float64 `json:"average_pitch,omitempty"`
	PitchRange        float64 `json:"pitch_range,omitempty"`
	PitchVariation    float64 `json:"pitch_variation,omitempty"`
	PauseRatio        float64 `json:"pause_ratio,omitempty"`        // percentage of total duration
	VolumeConsistency float64 `json:"volume_consistency,omitempty"` // ratio in (0,1]

	// WordCount is populated only by the heuristic backend
	WordCount int `json:"word_count,omitempty"`

	Summary string `json:"analysis_summary"`
	Method  Method `json:"method"`

	// Err is set when extraction failed terminally. Carried as data rather
	// than returned as an error so aggregation can treat "no data" uniformly.
	Err string `json:"error,omitempty"`
}

// Failed reports whether this record carries no usable scores.
func (m Metrics) Failed() bool {
	return m.Err != ""
}

// failedMetrics builds the terminal "no signal" record: all scores zero,
// error message set.
func failedMetrics(reason string) Metrics {
	return Metrics{
		Summary: "Audio analysis failed",
		Err:     reason,
	}
}

// clamp restricts val to the range [min, max]
func clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// round1 rounds to one decimal place, matching the precision of all
// reported scores.
func round1(val float64) float64 {
	return math.Round(val*10) / 10
}

// round2 rounds to two decimal places, used for durations and pitch values.
func round2(val float64) float64 {
	return math.Round(val*100) / 100
}
