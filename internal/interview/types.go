// Package interview defines the session data model shared by the runner,
// the aggregator, and the store.
package interview

import (
	"strings"
	"time"

	"github.com/candidly-dev/candidly/internal/analysis"
)

// Provenance records how an answer entered the session.
type Provenance string

const (
	AnsweredByRecording Provenance = "human_recorded"
	AnsweredByUpload    Provenance = "human_uploaded"
	AnsweredByGenerated Provenance = "generated"
)

// Turn is one question/answer exchange. Audio is nil when the answer was
// typed rather than spoken; a non-nil Audio with Err set means analysis
// failed and the turn carries no usable delivery scores.
type Turn struct {
	Question   string            `json:"question"`
	Answer     string            `json:"answer"`
	Audio      *analysis.Metrics `json:"audio_metrics,omitempty"`
	AnsweredBy Provenance        `json:"answered_by"`
	Timestamp  time.Time         `json:"timestamp"`
}

// WordCount counts whitespace-separated words in the answer text.
func (t Turn) WordCount() int {
	return len(strings.Fields(t.Answer))
}

// HasAudioScores reports whether this turn carries usable delivery metrics.
func (t Turn) HasAudioScores() bool {
	return t.Audio != nil && !t.Audio.Failed()
}

// History is the ordered list of completed turns in a session.
type History []Turn
