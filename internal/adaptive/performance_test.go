package adaptive

import (
	"reflect"
	"strings"
	"testing"

	"github.com/candidly-dev/candidly/internal/analysis"
	"github.com/candidly-dev/candidly/internal/interview"
)

// makeTurn builds a history turn with an answer of the given word count.
func makeTurn(words int, audio *analysis.Metrics) interview.Turn {
	return interview.Turn{
		Question: "Tell me about yourself.",
		Answer:   strings.TrimSpace(strings.Repeat("word ", words)),
		Audio:    audio,
	}
}

func scored(pace, confidence, tone float64) *analysis.Metrics {
	return &analysis.Metrics{
		PaceScore:       pace,
		ConfidenceScore: confidence,
		ToneScore:       tone,
		Method:          analysis.MethodSignal,
	}
}

func failed() *analysis.Metrics {
	m := &analysis.Metrics{
		Summary: "Audio analysis failed",
		Err:     "no usable signal",
	}
	return m
}

func TestCalculatePerformanceEmptyHistory(t *testing.T) {
	got := CalculatePerformance(nil)

	if got.Overall != 0 || got.Communication != 0 || got.Technical != 0 {
		t.Errorf("empty history should score zero, got %+v", got)
	}
}

func TestCalculatePerformanceSingleTurn(t *testing.T) {
	history := interview.History{
		makeTurn(60, scored(80, 70, 60)),
	}

	got := CalculatePerformance(history)

	if got.AveragePace != 80 || got.AverageConfidence != 70 || got.AverageTone != 60 {
		t.Errorf("delivery averages = %v/%v/%v, want 80/70/60",
			got.AveragePace, got.AverageConfidence, got.AverageTone)
	}
	if got.Communication != 70 {
		t.Errorf("Communication = %v, want 70", got.Communication)
	}

	// 60 words lands on the strong content rung
	if got.Technical != 85 {
		t.Errorf("Technical = %v, want 85", got.Technical)
	}

	// 0.4*70 + 0.6*85
	if got.Overall != 79 {
		t.Errorf("Overall = %v, want 79", got.Overall)
	}
}

func TestCalculatePerformanceExcludesFailedTurns(t *testing.T) {
	history := interview.History{
		makeTurn(30, scored(80, 80, 80)),
		makeTurn(30, failed()),
	}

	got := CalculatePerformance(history)

	// The failed turn must be excluded from the average, not counted as zero
	if got.AveragePace != 80 {
		t.Errorf("AveragePace = %v, want 80 (failed turn excluded)", got.AveragePace)
	}

	// Content is still counted for every turn, failed audio or not
	if got.AverageContent != 70 {
		t.Errorf("AverageContent = %v, want 70", got.AverageContent)
	}
}

func TestCalculatePerformanceNeutralDefaults(t *testing.T) {
	// Typed answers only: no audio metrics anywhere
	history := interview.History{
		makeTurn(10, nil),
	}

	got := CalculatePerformance(history)

	if got.AveragePace != 50 || got.AverageConfidence != 50 || got.AverageTone != 50 {
		t.Errorf("delivery averages = %v/%v/%v, want neutral 50s",
			got.AveragePace, got.AverageConfidence, got.AverageTone)
	}
	if got.Communication != 50 {
		t.Errorf("Communication = %v, want 50", got.Communication)
	}
}

func TestContentScoreLadder(t *testing.T) {
	tests := []struct {
		words int
		want  float64
	}{
		{60, 85},
		{51, 85},
		{50, 70},
		{21, 70},
		{20, 50},
		{6, 50},
		{5, 20},
		{0, 20},
	}

	for _, tt := range tests {
		if got := contentScore(tt.words); got != tt.want {
			t.Errorf("contentScore(%d) = %v, want %v", tt.words, got, tt.want)
		}
	}
}

func TestCalculatePerformanceIsPure(t *testing.T) {
	history := interview.History{
		makeTurn(25, scored(72.5, 64.2, 58.9)),
		makeTurn(8, failed()),
		makeTurn(55, scored(91, 88, 77)),
	}

	first := CalculatePerformance(history)
	second := CalculatePerformance(history)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("same history produced different scores:\n%+v\n%+v", first, second)
	}
}

func TestCalculatePerformanceScoresInRange(t *testing.T) {
	histories := []interview.History{
		nil,
		{makeTurn(0, nil)},
		{makeTurn(100, scored(100, 100, 100))},
		{makeTurn(1, scored(0, 0, 0)), makeTurn(2, failed())},
	}

	for _, h := range histories {
		got := CalculatePerformance(h)
		for name, score := range map[string]float64{
			"overall":       got.Overall,
			"communication": got.Communication,
			"technical":     got.Technical,
		} {
			if score < 0 || score > 100 {
				t.Errorf("%s = %v out of [0,100] for history %+v", name, score, h)
			}
		}
	}
}
