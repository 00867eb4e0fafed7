package logging

import (
	"testing"

	"github.com/candidly-dev/candidly/internal/analysis"
)

// signalMetrics builds a healthy signal-path record that fires no rules;
// tests override individual fields to trigger specific tips.
func signalMetrics() analysis.Metrics {
	return analysis.Metrics{
		Duration:          45,
		WordsPerMinute:    155,
		PaceScore:         95,
		ConfidenceScore:   80,
		ToneScore:         75,
		AveragePitch:      180,
		PitchRange:        120,
		PitchVariation:    40,
		PauseRatio:        15,
		VolumeConsistency: 0.75,
		Method:            analysis.MethodSignal,
	}
}

func ruleIDs(tips []InterviewTip) []string {
	ids := make([]string, len(tips))
	for i, tip := range tips {
		ids[i] = tip.RuleID
	}
	return ids
}

func hasRule(tips []InterviewTip, id string) bool {
	for _, tip := range tips {
		if tip.RuleID == id {
			return true
		}
	}
	return false
}

func TestGenerateInterviewTipsHealthyDelivery(t *testing.T) {
	tips := GenerateInterviewTips(signalMetrics())
	if len(tips) != 0 {
		t.Errorf("healthy delivery should fire no tips, got %v", ruleIDs(tips))
	}
}

func TestGenerateInterviewTipsFailedRecord(t *testing.T) {
	m := analysis.Metrics{Err: "no usable signal", Summary: "Audio analysis failed"}
	if tips := GenerateInterviewTips(m); tips != nil {
		t.Errorf("failed record should yield no tips, got %v", ruleIDs(tips))
	}
}

func TestGenerateInterviewTipsSingleRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*analysis.Metrics)
		want   string
	}{
		{"rushed", func(m *analysis.Metrics) { m.WordsPerMinute = 230 }, "pace_rushed"},
		{"slow", func(m *analysis.Metrics) { m.WordsPerMinute = 85 }, "pace_slow"},
		{"heavy pausing", func(m *analysis.Metrics) { m.PauseRatio = 42 }, "heavy_pausing"},
		{"no pausing", func(m *analysis.Metrics) { m.PauseRatio = 1 }, "no_pausing"},
		{"uneven volume", func(m *analysis.Metrics) { m.VolumeConsistency = 0.3 }, "uneven_volume"},
		{"monotone", func(m *analysis.Metrics) { m.PitchVariation = 4 }, "monotone"},
		{"low confidence", func(m *analysis.Metrics) { m.ConfidenceScore = 35 }, "low_confidence"},
		{"flat tone", func(m *analysis.Metrics) { m.ToneScore = 30 }, "flat_tone"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := signalMetrics()
			tt.mutate(&m)
			tips := GenerateInterviewTips(m)
			if !hasRule(tips, tt.want) {
				t.Errorf("expected rule %q to fire, got %v", tt.want, ruleIDs(tips))
			}
		})
	}
}

func TestGenerateInterviewTipsShortAnswerHeuristicOnly(t *testing.T) {
	m := analysis.Metrics{
		Duration:        8,
		WordsPerMinute:  90,
		PaceScore:       55,
		ConfidenceScore: 30,
		ToneScore:       60,
		WordCount:       12,
		Method:          analysis.MethodHeuristic,
	}

	tips := GenerateInterviewTips(m)
	if !hasRule(tips, "short_answer") {
		t.Errorf("expected short_answer to fire, got %v", ruleIDs(tips))
	}

	// low_confidence is redundant once short_answer has fired
	if hasRule(tips, "low_confidence") {
		t.Errorf("low_confidence should be excluded by short_answer, got %v", ruleIDs(tips))
	}
}

func TestGenerateInterviewTipsExcludesNoPausingWhenRushed(t *testing.T) {
	m := signalMetrics()
	m.WordsPerMinute = 240
	m.PauseRatio = 1

	tips := GenerateInterviewTips(m)
	if !hasRule(tips, "pace_rushed") {
		t.Fatalf("expected pace_rushed, got %v", ruleIDs(tips))
	}
	if hasRule(tips, "no_pausing") {
		t.Errorf("no_pausing should be excluded when pace_rushed fires, got %v", ruleIDs(tips))
	}
}

func TestGenerateInterviewTipsPriorityOrderAndCap(t *testing.T) {
	// Fire many rules at once
	m := signalMetrics()
	m.WordsPerMinute = 60
	m.PauseRatio = 50
	m.VolumeConsistency = 0.2
	m.PitchVariation = 3
	m.ConfidenceScore = 20
	m.ToneScore = 25

	tips := GenerateInterviewTips(m)
	if len(tips) > MaxInterviewTips {
		t.Errorf("got %d tips, cap is %d", len(tips), MaxInterviewTips)
	}
	for i := 1; i < len(tips); i++ {
		if tips[i].Priority > tips[i-1].Priority {
			t.Errorf("tips not sorted by priority: %v", ruleIDs(tips))
		}
	}
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four five", 9, "  ")
	want := "one two\n  three\n  four five"
	if got != want {
		t.Errorf("wrapText = %q, want %q", got, want)
	}
}
