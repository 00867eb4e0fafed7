package ui

import (
	"github.com/candidly-dev/candidly/internal/adaptive"
	"github.com/candidly-dev/candidly/internal/analysis"
)

// QuestionMsg carries the question asked for a turn.
type QuestionMsg struct {
	TurnIndex  int
	Question   string
	Difficulty adaptive.Difficulty
}

// TurnStartMsg indicates analysis of a turn's recorded answer has started.
type TurnStartMsg struct {
	TurnIndex int
	AudioPath string
}

// TurnScoredMsg carries the analysis result and the updated session scores
// after a turn completes.
type TurnScoredMsg struct {
	TurnIndex  int
	Metrics    analysis.Metrics
	Transcript string
	Scores     adaptive.PerformanceScores
}

// SessionCompleteMsg indicates the whole session has finished.
type SessionCompleteMsg struct {
	Scores     adaptive.PerformanceScores
	FocusAreas []adaptive.FocusArea
	Evaluation string
	ReportPath string
}
