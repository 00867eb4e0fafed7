// Package adaptive aggregates session performance and steers question
// difficulty and focus from it.
package adaptive

import (
	"math"

	"github.com/candidly-dev/candidly/internal/interview"
)

// Aggregation constants. Communication weighs delivery, technical weighs
// answer substance; the overall score leans toward substance.
const (
	communicationWeight = 0.4
	technicalWeight     = 0.6

	// Substituted for a component average when no turn produced data for it
	neutralScore = 50.0
)

// Content ladder: answer length stands in for answer depth.
const (
	contentWordsStrong  = 50
	contentWordsGood    = 20
	contentWordsMinimal = 5
	contentScoreStrong  = 85.0
	contentScoreGood    = 70.0
	contentScoreMinimal = 50.0
	contentScoreSparse  = 20.0
)

// PerformanceScores is the aggregated view of a session so far. All values
// sit in [0, 100] with one decimal of precision.
type PerformanceScores struct {
	Overall       float64 `json:"overall_score"`
	Communication float64 `json:"communication_score"`
	Technical     float64 `json:"technical_score"`

	AveragePace       float64 `json:"average_pace"`
	AverageConfidence float64 `json:"average_confidence"`
	AverageTone       float64 `json:"average_tone"`
	AverageContent    float64 `json:"average_content"`
}

// CalculatePerformance aggregates the history into session scores. It is a
// pure function of the passed history: same turns in, same scores out.
//
// Turns whose audio analysis failed are excluded from the delivery averages
// rather than counted as zeros. When no turn carries usable delivery
// metrics, each delivery average falls back to a neutral 50. An empty
// history scores zero across the board.
func CalculatePerformance(history interview.History) PerformanceScores {
	if len(history) == 0 {
		return PerformanceScores{}
	}

	var paces, confidences, tones []float64
	for _, turn := range history {
		if !turn.HasAudioScores() {
			continue
		}
		paces = append(paces, turn.Audio.PaceScore)
		confidences = append(confidences, turn.Audio.ConfidenceScore)
		tones = append(tones, turn.Audio.ToneScore)
	}

	var contents []float64
	for _, turn := range history {
		contents = append(contents, contentScore(turn.WordCount()))
	}

	avgPace := meanOrNeutral(paces)
	avgConfidence := meanOrNeutral(confidences)
	avgTone := meanOrNeutral(tones)
	avgContent := meanOrNeutral(contents)

	communication := (avgPace + avgConfidence + avgTone) / 3
	technical := avgContent
	overall := communicationWeight*communication + technicalWeight*technical

	return PerformanceScores{
		Overall:           round1(overall),
		Communication:     round1(communication),
		Technical:         round1(technical),
		AveragePace:       round1(avgPace),
		AverageConfidence: round1(avgConfidence),
		AverageTone:       round1(avgTone),
		AverageContent:    round1(avgContent),
	}
}

// contentScore maps answer length onto the depth ladder.
func contentScore(wordCount int) float64 {
	switch {
	case wordCount > contentWordsStrong:
		return contentScoreStrong
	case wordCount > contentWordsGood:
		return contentScoreGood
	case wordCount > contentWordsMinimal:
		return contentScoreMinimal
	default:
		return contentScoreSparse
	}
}

func meanOrNeutral(values []float64) float64 {
	if len(values) == 0 {
		return neutralScore
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func round1(val float64) float64 {
	return math.Round(val*10) / 10
}
