// Package logging handles generation of interview session reports.

package logging

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/candidly-dev/candidly/internal/adaptive"
	"github.com/candidly-dev/candidly/internal/interview"
)

// ============================================================================
// Score Interpretation Functions
// ============================================================================
// These functions interpret aggregated session scores and return
// human-readable descriptions for the report.

// interpretOverall describes the blended session score.
// Bands match the difficulty bands of the adaptive controller, so the
// description and the question difficulty always agree.
func interpretOverall(score float64) string {
	switch {
	case score > 80:
		return "strong performance, ready for harder questions"
	case score > 60:
		return "solid performance, holding steady"
	case score > 40:
		return "uneven performance, room to grow"
	default:
		return "struggling, needs supportive questions"
	}
}

// interpretCommunicationScore describes the delivery average across pace,
// confidence, and tone.
func interpretCommunicationScore(score float64) string {
	switch {
	case score > 80:
		return "clear, engaging delivery"
	case score > 60:
		return "generally clear delivery"
	case score > 40:
		return "delivery distracts from the content"
	default:
		return "delivery needs sustained work"
	}
}

// interpretTechnicalScore describes answer substance, which the aggregator
// derives from answer depth.
func interpretTechnicalScore(score float64) string {
	switch {
	case score > 80:
		return "thorough, well-developed answers"
	case score > 60:
		return "adequately developed answers"
	case score > 40:
		return "answers too brief to assess depth"
	default:
		return "answers lack substance"
	}
}

// interpretWPM describes a raw speaking rate. Conversational interview
// speech sits around 140-170 wpm.
func interpretWPM(wpm float64) string {
	switch {
	case wpm == 0:
		return "no speech detected"
	case wpm < 100:
		return "slow, deliberate"
	case wpm < 140:
		return "measured"
	case wpm < 180:
		return "conversational"
	case wpm < 220:
		return "brisk"
	default:
		return "rushed"
	}
}

// interpretPauseRatio describes the percentage of the answer spent silent.
func interpretPauseRatio(percent float64) string {
	switch {
	case percent > 30:
		return "heavy pausing, possibly hesitant"
	case percent > 15:
		return "natural pausing"
	case percent > 5:
		return "fluent, few pauses"
	default:
		return "continuous, no room to breathe"
	}
}

// interpretVolumeConsistency describes delivery steadiness (0-1 scale).
func interpretVolumeConsistency(ratio float64) string {
	switch {
	case ratio > 0.8:
		return "very steady"
	case ratio > 0.6:
		return "steady"
	case ratio > 0.4:
		return "somewhat uneven"
	default:
		return "erratic"
	}
}

// writeSection writes a section header with title and dashed underline.
func writeSection(f *os.File, title string) {
	fmt.Fprintf(f, "\n%s\n%s\n", title, strings.Repeat("-", len(title)))
}

// ReportData contains all the information needed to generate a session report
type ReportData struct {
	SessionID  string
	JobTitle   string
	StartTime  time.Time
	EndTime    time.Time
	History    interview.History
	Scores     adaptive.PerformanceScores
	FocusAreas []adaptive.FocusArea
	Evaluation string // final evaluation text, empty when none was generated
	OutputPath string // where to write the report
}

// GenerateReport creates a detailed session report at data.OutputPath.
func GenerateReport(data ReportData) error {
	if data.OutputPath == "" {
		data.OutputPath = fmt.Sprintf("candidly-session-%s.log", data.SessionID)
	}
	if dir := filepath.Dir(data.OutputPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
	}

	f, err := os.Create(data.OutputPath)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer f.Close()

	writeReportHeader(f, data)
	writeSessionSummary(f, data)
	writeDeliveryTable(f, data.History)
	writeTurnTranscripts(f, data.History)

	if data.Evaluation != "" {
		writeSection(f, "Final Evaluation")
		fmt.Fprintln(f, data.Evaluation)
	}

	return nil
}

func writeReportHeader(f *os.File, data ReportData) {
	fmt.Fprintln(f, strings.Repeat("=", 70))
	fmt.Fprintf(f, "CANDIDLY SESSION REPORT: %s\n", data.JobTitle)
	fmt.Fprintln(f, strings.Repeat("=", 70))
	fmt.Fprintf(f, "Session:  %s\n", data.SessionID)
	fmt.Fprintf(f, "Started:  %s\n", data.StartTime.Format(time.RFC1123))
	if !data.EndTime.IsZero() {
		fmt.Fprintf(f, "Duration: %s\n", formatDuration(data.EndTime.Sub(data.StartTime)))
	}
	fmt.Fprintf(f, "Turns:    %d\n", len(data.History))
}

func writeSessionSummary(f *os.File, data ReportData) {
	writeSection(f, "Session Scores")

	s := data.Scores
	fmt.Fprintf(f, "Overall:       %5.1f  %s\n", s.Overall, interpretOverall(s.Overall))
	fmt.Fprintf(f, "Communication: %5.1f  %s\n", s.Communication, interpretCommunicationScore(s.Communication))
	fmt.Fprintf(f, "Technical:     %5.1f  %s\n", s.Technical, interpretTechnicalScore(s.Technical))
	fmt.Fprintf(f, "Avg Pace:      %5.1f\n", s.AveragePace)
	fmt.Fprintf(f, "Avg Confidence:%5.1f\n", s.AverageConfidence)
	fmt.Fprintf(f, "Avg Tone:      %5.1f\n", s.AverageTone)

	if len(data.FocusAreas) > 0 {
		names := make([]string, len(data.FocusAreas))
		for i, a := range data.FocusAreas {
			names[i] = string(a)
		}
		fmt.Fprintf(f, "Focus Areas:   %s\n", strings.Join(names, ", "))
	}
}

// writeDeliveryTable renders the per-turn metric comparison table. Turns
// without usable audio metrics show as missing values rather than zeros.
func writeDeliveryTable(f *os.File, history interview.History) {
	if len(history) == 0 {
		return
	}

	writeSection(f, "Delivery by Turn")

	table := NewTurnTable(len(history))

	row := func(label, unit string, decimals int, pick func(t interview.Turn) float64) {
		values := make([]string, len(history))
		for i, turn := range history {
			if !turn.HasAudioScores() {
				values[i] = MissingValue
				continue
			}
			values[i] = formatMetric(pick(turn), decimals)
		}
		table.AddRow(label, values, unit, "")
	}

	row("Pace Score", "", 1, func(t interview.Turn) float64 { return t.Audio.PaceScore })
	row("Confidence Score", "", 1, func(t interview.Turn) float64 { return t.Audio.ConfidenceScore })
	row("Tone Score", "", 1, func(t interview.Turn) float64 { return t.Audio.ToneScore })
	row("Speaking Rate", "wpm", 0, func(t interview.Turn) float64 { return t.Audio.WordsPerMinute })
	row("Duration", "s", 1, func(t interview.Turn) float64 { return t.Audio.Duration })

	// Extended rows only when at least one turn ran the signal path
	if anySignalTurn(history) {
		row("Pause Ratio", "%", 1, func(t interview.Turn) float64 { return t.Audio.PauseRatio })
		row("Volume Consistency", "", 2, func(t interview.Turn) float64 { return t.Audio.VolumeConsistency })
		row("Average Pitch", "Hz", 0, func(t interview.Turn) float64 { return t.Audio.AveragePitch })
	}

	fmt.Fprint(f, table.String())

	// Per-turn interpretation lines under the table
	fmt.Fprintln(f)
	for i, turn := range history {
		if !turn.HasAudioScores() {
			fmt.Fprintf(f, "Turn %d: no delivery data\n", i+1)
			continue
		}
		fmt.Fprintf(f, "Turn %d: %s (%s)\n", i+1,
			turn.Audio.Summary, interpretWPM(turn.Audio.WordsPerMinute))
	}
}

func anySignalTurn(history interview.History) bool {
	for _, turn := range history {
		if turn.HasAudioScores() && turn.Audio.VolumeConsistency > 0 {
			return true
		}
	}
	return false
}

func writeTurnTranscripts(f *os.File, history interview.History) {
	if len(history) == 0 {
		return
	}

	writeSection(f, "Transcript")
	for i, turn := range history {
		fmt.Fprintf(f, "Q%d: %s\n", i+1, turn.Question)
		answer := turn.Answer
		if answer == "" {
			answer = "(no transcript)"
		}
		fmt.Fprintf(f, "A%d: %s\n\n", i+1, answer)
	}
}

// formatDuration formats elapsed time as "Xm Ys" or "Z.Xs".
func formatDuration(d time.Duration) string {
	seconds := d.Seconds()
	if seconds < 60 {
		return fmt.Sprintf("%.1fs", seconds)
	}

	minutes := int(seconds) / 60
	secs := math.Mod(seconds, 60)
	if minutes >= 60 {
		hours := minutes / 60
		minutes = minutes % 60
		return fmt.Sprintf("%dh %dm %.0fs", hours, minutes, secs)
	}
	return fmt.Sprintf("%dm %.0fs", minutes, secs)
}
