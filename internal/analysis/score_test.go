package analysis

import (
	"strings"
	"testing"
)

func TestScoreFeaturesPace(t *testing.T) {
	tests := []struct {
		name string
		wpm  float64
		want float64
	}{
		{"ideal rate", 150, 100},
		{"half rate", 75, 50},
		{"silence", 0, 0},
		{"rapid speech clamps", 300, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := scoreFeatures(FeatureSet{WordsPerMinute: tt.wpm})
			if m.PaceScore != tt.want {
				t.Errorf("PaceScore = %v, want %v", m.PaceScore, tt.want)
			}
		})
	}
}

func TestScoreFeaturesConfidence(t *testing.T) {
	tests := []struct {
		name        string
		consistency float64
		want        float64
	}{
		{"perfectly steady", 1.0, 100},
		{"moderately steady", 0.85, 85},
		{"erratic", 0.2, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := scoreFeatures(FeatureSet{VolumeConsistency: tt.consistency})
			if m.ConfidenceScore != tt.want {
				t.Errorf("ConfidenceScore = %v, want %v", m.ConfidenceScore, tt.want)
			}
		})
	}
}

func TestScoreFeaturesTone(t *testing.T) {
	tests := []struct {
		name      string
		variation float64
		want      float64
	}{
		{"ideal variation", 50, 100},
		{"monotone", 0, 0},
		{"wildly varying", 100, 0},
		{"somewhat flat", 30, 60},
		{"beyond range clamps", 200, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := scoreFeatures(FeatureSet{PitchVariation: tt.variation})
			if m.ToneScore != tt.want {
				t.Errorf("ToneScore = %v, want %v", m.ToneScore, tt.want)
			}
		})
	}
}

func TestScoreFeaturesScoresStayInRange(t *testing.T) {
	extremes := []FeatureSet{
		{},
		{WordsPerMinute: 1000, VolumeConsistency: 5, PitchVariation: 500},
		{WordsPerMinute: -10, VolumeConsistency: -1, PitchVariation: -50},
	}

	for _, fs := range extremes {
		m := scoreFeatures(fs)
		for name, score := range map[string]float64{
			"pace":       m.PaceScore,
			"confidence": m.ConfidenceScore,
			"tone":       m.ToneScore,
		} {
			if score < 0 || score > 100 {
				t.Errorf("%s score %v out of [0,100] for features %+v", name, score, fs)
			}
		}
	}
}

func TestScoreFeaturesPauseRatioStoredAsPercentage(t *testing.T) {
	m := scoreFeatures(FeatureSet{PauseRatio: 0.184})
	if m.PauseRatio != 18.4 {
		t.Errorf("PauseRatio = %v, want 18.4", m.PauseRatio)
	}
}

func TestSignalSummary(t *testing.T) {
	tests := []struct {
		name         string
		metrics      Metrics
		wantContains []string
		wantAbsent   []string
	}{
		{
			name:         "strong delivery with healthy pauses",
			metrics:      Metrics{PaceScore: 90, ConfidenceScore: 85, PauseRatio: 15},
			wantContains: []string{"Great speaking pace", "confident delivery"},
			wantAbsent:   []string{"pauses"},
		},
		{
			name:         "slow and hesitant",
			metrics:      Metrics{PaceScore: 30, ConfidenceScore: 40, PauseRatio: 45},
			wantContains: []string{"Speaking pace needs improvement", "more confidence", "reduce excessive pauses"},
		},
		{
			name:         "no pauses at all",
			metrics:      Metrics{PaceScore: 70, ConfidenceScore: 70, PauseRatio: 1},
			wantContains: []string{"Good speaking pace", "fairly confident", "add strategic pauses"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := signalSummary(tt.metrics)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("summary %q missing %q", got, want)
				}
			}
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("summary %q should not contain %q", got, absent)
				}
			}
			if !strings.HasSuffix(got, ".") {
				t.Errorf("summary %q should end with a period", got)
			}
		})
	}
}
