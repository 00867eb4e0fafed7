package adaptive

import (
	"fmt"
	"strings"
)

// Difficulty steers how challenging the next generated question should be.
type Difficulty string

const (
	DifficultyHarder     Difficulty = "harder"
	DifficultyModerate   Difficulty = "moderate"
	DifficultyEasier     Difficulty = "easier"
	DifficultySupportive Difficulty = "supportive"
)

// FocusArea names a weakness the next questions should probe.
type FocusArea string

const (
	FocusCommunication FocusArea = "communication_skills"
	FocusConfidence    FocusArea = "confidence_building"
	FocusPacing        FocusArea = "pacing"
	FocusTechnical     FocusArea = "technical_depth"
	FocusLeadership    FocusArea = "leadership"
)

// Difficulty bands over the overall session score.
const (
	warmUpQuestions = 2 // question indexes 0 and 1 always get moderate difficulty

	harderThreshold   = 80.0
	moderateThreshold = 60.0
	easierThreshold   = 40.0
)

// Focus-area thresholds over the aggregated component scores.
const (
	communicationFocusBelow = 60.0
	confidenceFocusBelow    = 50.0
	pacingFocusBelow        = 40.0
	technicalFocusBelow     = 60.0
)

// DetermineDifficulty picks the difficulty for the question at questionIndex
// (zero-based). The first two questions are always moderate so early jitter
// in the scores cannot whipsaw the candidate; from the third question on the
// overall score decides.
func DetermineDifficulty(scores PerformanceScores, questionIndex int) Difficulty {
	if questionIndex < warmUpQuestions {
		return DifficultyModerate
	}
	switch {
	case scores.Overall > harderThreshold:
		return DifficultyHarder
	case scores.Overall > moderateThreshold:
		return DifficultyModerate
	case scores.Overall > easierThreshold:
		return DifficultyEasier
	default:
		return DifficultySupportive
	}
}

// IdentifyFocusAreas derives the focus areas for upcoming questions from the
// component scores and the job title. Leadership focus depends on the title
// alone; technical depth requires both a weak technical score and an
// engineering title.
func IdentifyFocusAreas(scores PerformanceScores, jobTitle string) []FocusArea {
	var areas []FocusArea

	if scores.Communication < communicationFocusBelow {
		areas = append(areas, FocusCommunication)
	}
	if scores.AverageConfidence < confidenceFocusBelow {
		areas = append(areas, FocusConfidence)
	}
	if scores.AveragePace < pacingFocusBelow {
		areas = append(areas, FocusPacing)
	}

	title := strings.ToLower(jobTitle)
	if scores.Technical < technicalFocusBelow &&
		(strings.Contains(title, "engineer") || strings.Contains(title, "developer")) {
		areas = append(areas, FocusTechnical)
	}
	if strings.Contains(title, "manager") {
		areas = append(areas, FocusLeadership)
	}

	return areas
}

// QuestionContext renders the performance picture as a short prose block for
// the question-generation prompt.
func QuestionContext(scores PerformanceScores, areas []FocusArea) string {
	var b strings.Builder

	switch {
	case scores.Overall > 75:
		b.WriteString("The candidate is performing very well.")
	case scores.Overall > 50:
		b.WriteString("The candidate is performing adequately.")
	default:
		b.WriteString("The candidate needs more support.")
	}

	if scores.Communication < 50 {
		b.WriteString(" Their communication could be clearer.")
	} else if scores.Communication > 80 {
		b.WriteString(" They communicate very effectively.")
	}

	if len(areas) > 0 {
		names := make([]string, len(areas))
		for i, a := range areas {
			names[i] = string(a)
		}
		fmt.Fprintf(&b, " Focus on: %s.", strings.Join(names, ", "))
	}

	return b.String()
}
