package analysis

import (
	"math"
	"strings"
)

// Word lists for transcript-based scoring. Matching is substring-based on the
// lowercased transcript, which deliberately catches inflections ("skilled"
// matches "skill" entries and vice versa).
var (
	fillerWords = []string{"um", "uh", "like", "you know", "sort of", "kind of"}

	positiveWords = []string{
		"excited", "passionate", "confident",
		"experienced", "skilled", "accomplished",
	}

	professionalWords = []string{
		"experience", "skills", "team", "project",
		"challenge", "solution", "result",
	}

	enthusiasticWords = []string{"love", "passionate", "excited", "enjoy", "amazing", "great"}

	negativeWords = []string{"difficult", "hard", "problem", "can't", "unable", "confused"}
)

// Heuristic scoring constants.
const (
	heuristicIdealWPM = 160.0

	confidenceBase = 50.0
	toneBase       = 60.0
)

// heuristicMetrics derives Metrics from file metadata and the transcript
// alone, for recordings the signal path could not decode. Never fails: any
// input, including a missing file and an empty transcript, yields a scored
// record.
func heuristicMetrics(duration float64, transcript string) Metrics {
	words := strings.Fields(transcript)
	wordCount := len(words)

	wpm := 0.0
	if duration > 0 {
		wpm = float64(wordCount) / (duration / 60)
	}

	pace := heuristicPaceScore(wpm)
	confidence := heuristicConfidenceScore(transcript, wordCount, duration)
	tone := heuristicToneScore(transcript)

	m := Metrics{
		Duration:        round2(duration),
		WordsPerMinute:  round1(wpm),
		PaceScore:       round1(pace),
		ConfidenceScore: round1(confidence),
		ToneScore:       round1(tone),
		WordCount:       wordCount,
		Method:          MethodHeuristic,
	}
	m.Summary = heuristicSummary(m)
	return m
}

// heuristicPaceScore scores speaking rate on a ladder of widening bands
// around the ideal rate. Peaks at 100 for exactly 160 wpm, floors at 20,
// and treats an unmeasurable rate as a weak 30.
func heuristicPaceScore(wpm float64) float64 {
	if wpm == 0 {
		return 30
	}
	dist := math.Abs(wpm - heuristicIdealWPM)
	switch {
	case wpm >= 140 && wpm <= 180:
		return 90 + 10*(1-dist/20)
	case wpm >= 100 && wpm <= 200:
		return 70 + 20*(1-dist/40)
	case wpm >= 80 && wpm <= 220:
		return 50 + 20*(1-dist/60)
	default:
		return math.Max(20, 50-dist/4)
	}
}

// heuristicConfidenceScore starts from a neutral base and adjusts for answer
// length, filler-word density, and assertive vocabulary.
func heuristicConfidenceScore(transcript string, wordCount int, duration float64) float64 {
	if strings.TrimSpace(transcript) == "" || duration == 0 {
		return 30
	}

	score := confidenceBase

	switch {
	case wordCount > 30:
		score += 20
	case wordCount > 15:
		score += 10
	case wordCount < 5:
		score -= 20
	}

	lower := strings.ToLower(transcript)
	fillers := countOccurrences(lower, fillerWords)
	if wordCount > 0 {
		ratio := float64(fillers) / float64(wordCount)
		switch {
		case ratio > 0.10:
			score -= 15
		case ratio > 0.05:
			score -= 8
		}
	}

	if countOccurrences(lower, positiveWords) > 0 {
		score += 10
	}

	return clamp(score, 10, 100)
}

// heuristicToneScore rewards professional and enthusiastic vocabulary and
// penalises negative framing.
func heuristicToneScore(transcript string) float64 {
	if strings.TrimSpace(transcript) == "" {
		return 40
	}

	score := toneBase
	lower := strings.ToLower(transcript)

	switch professional := countPresent(lower, professionalWords); {
	case professional > 2:
		score += 15
	case professional > 0:
		score += 8
	}

	if countOccurrences(lower, enthusiasticWords) > 0 {
		score += 10
	}
	if countOccurrences(lower, negativeWords) > 0 {
		score -= 10
	}

	return clamp(score, 20, 100)
}

// heuristicSummary assembles the summary for a heuristic-path record. The
// tone phrase is dropped entirely when the tone score is unremarkable.
func heuristicSummary(m Metrics) string {
	var parts []string

	switch {
	case m.PaceScore > 80:
		parts = append(parts, "excellent pacing")
	case m.PaceScore > 60:
		parts = append(parts, "good pacing")
	default:
		parts = append(parts, "work on pacing")
	}

	switch {
	case m.ConfidenceScore > 75:
		parts = append(parts, "confident delivery")
	case m.ConfidenceScore > 60:
		parts = append(parts, "fairly confident")
	default:
		parts = append(parts, "build more confidence")
	}

	switch {
	case m.ToneScore > 75:
		parts = append(parts, "professional tone")
	case m.ToneScore > 60:
		parts = append(parts, "good tone")
	}

	return strings.Join(parts, ", ") + "."
}

// countOccurrences sums substring occurrences of each phrase in text.
func countOccurrences(text string, phrases []string) int {
	total := 0
	for _, p := range phrases {
		total += strings.Count(text, p)
	}
	return total
}

// countPresent counts how many distinct phrases from the list appear in text
// at least once. Repeating one word does not raise the count.
func countPresent(text string, phrases []string) int {
	present := 0
	for _, p := range phrases {
		if strings.Contains(text, p) {
			present++
		}
	}
	return present
}
