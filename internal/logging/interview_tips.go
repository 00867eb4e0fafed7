package logging

import (
	"sort"
	"strings"

	"github.com/candidly-dev/candidly/internal/analysis"
)

// InterviewTip represents a single piece of actionable interview advice
// derived from the delivery metrics of one answer.
type InterviewTip struct {
	Priority int    // Higher = more important (1-10)
	Message  string // Human-readable advice (1-2 sentences)
	RuleID   string // Identifier for testing/logging (e.g., "pace_rushed")
}

// MaxInterviewTips is the maximum number of tips to return.
const MaxInterviewTips = 5

// GenerateInterviewTips analyses answer metrics and returns prioritised
// delivery improvement suggestions.
func GenerateInterviewTips(m analysis.Metrics) []InterviewTip {
	if m.Failed() {
		return nil
	}

	var tips []InterviewTip
	firedRules := make(map[string]bool)

	rules := []func(analysis.Metrics) *InterviewTip{
		tipRushedPace,
		tipSlowPace,
		tipHeavyPausing,
		tipNoPausing,
		tipUnevenVolume,
		tipMonotone,
		tipShortAnswer,
		tipLowConfidence,
		tipFlatTone,
	}

	for _, rule := range rules {
		if tip := rule(m); tip != nil {
			tips = append(tips, *tip)
			firedRules[tip.RuleID] = true
		}
	}

	tips = applyExclusions(tips, firedRules)

	// Sort by priority (descending)
	sort.Slice(tips, func(i, j int) bool {
		return tips[i].Priority > tips[j].Priority
	})

	if len(tips) > MaxInterviewTips {
		tips = tips[:MaxInterviewTips]
	}

	return tips
}

// applyExclusions removes tips that are redundant when a more specific tip
// has already fired. For example, "no_pausing" is suppressed when
// "pace_rushed" fires because rushing already implies skipped pauses.
func applyExclusions(tips []InterviewTip, fired map[string]bool) []InterviewTip {
	var result []InterviewTip
	for _, tip := range tips {
		switch tip.RuleID {
		case "no_pausing":
			if fired["pace_rushed"] {
				continue
			}
		case "low_confidence":
			if fired["short_answer"] {
				continue
			}
		}
		result = append(result, tip)
	}
	return result
}

// tipRushedPace fires when the speaking rate is well above conversational.
func tipRushedPace(m analysis.Metrics) *InterviewTip {
	if m.WordsPerMinute <= 200 {
		return nil
	}
	return &InterviewTip{
		Priority: 8,
		RuleID:   "pace_rushed",
		Message: "You are speaking very quickly. Slow down and let each point " +
			"land before moving to the next.",
	}
}

// tipSlowPace fires when speech is measurable but well below conversational.
func tipSlowPace(m analysis.Metrics) *InterviewTip {
	if m.WordsPerMinute == 0 || m.WordsPerMinute >= 100 {
		return nil
	}
	return &InterviewTip{
		Priority: 7,
		RuleID:   "pace_slow",
		Message: "Your pace is quite slow. Aim for a conversational rate " +
			"around 150 words per minute to keep the interviewer engaged.",
	}
}

// tipHeavyPausing fires when more than 30% of the answer is silence.
// Signal-path answers only; the heuristic path has no pause measurement.
func tipHeavyPausing(m analysis.Metrics) *InterviewTip {
	if m.Method != analysis.MethodSignal || m.PauseRatio <= 30 {
		return nil
	}
	return &InterviewTip{
		Priority: 6,
		RuleID:   "heavy_pausing",
		Message: "Long silences make up a large part of your answer. Prepare " +
			"a structure before you start speaking to reduce dead air.",
	}
}

// tipNoPausing fires when the answer is nearly continuous speech.
func tipNoPausing(m analysis.Metrics) *InterviewTip {
	if m.Method != analysis.MethodSignal || m.PauseRatio >= 5 || m.Duration == 0 {
		return nil
	}
	return &InterviewTip{
		Priority: 4,
		RuleID:   "no_pausing",
		Message: "You barely pause. A short pause after each key point gives " +
			"the interviewer time to absorb what you said.",
	}
}

// tipUnevenVolume fires when the energy envelope is erratic.
func tipUnevenVolume(m analysis.Metrics) *InterviewTip {
	if m.Method != analysis.MethodSignal || m.VolumeConsistency == 0 || m.VolumeConsistency >= 0.4 {
		return nil
	}
	return &InterviewTip{
		Priority: 6,
		RuleID:   "uneven_volume",
		Message: "Your volume varies a lot. Keep a steady distance from the " +
			"microphone and an even speaking level.",
	}
}

// tipMonotone fires when voiced speech shows almost no pitch movement.
func tipMonotone(m analysis.Metrics) *InterviewTip {
	if m.Method != analysis.MethodSignal || m.AveragePitch == 0 || m.PitchVariation >= 10 {
		return nil
	}
	return &InterviewTip{
		Priority: 5,
		RuleID:   "monotone",
		Message: "Your delivery is close to monotone. Vary your intonation to " +
			"signal what matters most in your answer.",
	}
}

// tipShortAnswer fires for very brief transcribed answers.
func tipShortAnswer(m analysis.Metrics) *InterviewTip {
	if m.Method != analysis.MethodHeuristic || m.WordCount == 0 || m.WordCount > 15 {
		return nil
	}
	return &InterviewTip{
		Priority: 7,
		RuleID:   "short_answer",
		Message: "Your answer was very brief. Use a structure like " +
			"situation, action, result to develop it further.",
	}
}

// tipLowConfidence fires on a weak confidence score.
func tipLowConfidence(m analysis.Metrics) *InterviewTip {
	if m.ConfidenceScore == 0 || m.ConfidenceScore >= 45 {
		return nil
	}
	return &InterviewTip{
		Priority: 5,
		RuleID:   "low_confidence",
		Message: "Your delivery sounds hesitant. Rehearse your opening lines " +
			"out loud so you can start each answer with certainty.",
	}
}

// tipFlatTone fires on a weak tone score.
func tipFlatTone(m analysis.Metrics) *InterviewTip {
	if m.ToneScore == 0 || m.ToneScore >= 45 {
		return nil
	}
	return &InterviewTip{
		Priority: 4,
		RuleID:   "flat_tone",
		Message: "Your tone reads as flat. Bring some energy and positive " +
			"framing into how you describe your work.",
	}
}

// wrapText wraps text at word boundaries to fit within maxWidth columns.
// Continuation lines are prefixed with indent.
func wrapText(text string, maxWidth int, indent string) string {
	words := strings.Fields(text)
	var lines []string
	currentLine := ""

	for _, word := range words {
		if currentLine == "" {
			currentLine = word
		} else if len(currentLine)+1+len(word) <= maxWidth {
			currentLine += " " + word
		} else {
			lines = append(lines, currentLine)
			currentLine = word
		}
	}
	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n"+indent)
}
