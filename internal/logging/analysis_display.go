// Package logging handles generation of interview analysis reports.
// This file provides console display for single-recording analysis.

package logging

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/candidly-dev/candidly/internal/analysis"
)

// DisplayAnalysisResults outputs the metrics for one recording to the
// console. Used by the analyze command for rapid inspection without running
// a full practice session.
func DisplayAnalysisResults(w io.Writer, inputPath string, m analysis.Metrics, transcript string) {
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "ANALYSIS: %s\n", filepath.Base(inputPath))
	fmt.Fprintln(w, strings.Repeat("=", 70))

	if m.Failed() {
		fmt.Fprintf(w, "Analysis failed: %s\n", m.Err)
		return
	}

	fmt.Fprintf(w, "Duration: %.1fs\n", m.Duration)
	fmt.Fprintf(w, "Method:   %s\n", m.Method)
	fmt.Fprintln(w)

	writeDisplaySection(w, "SCORES")
	fmt.Fprintf(w, "  Pace:       %5.1f\n", m.PaceScore)
	fmt.Fprintf(w, "  Confidence: %5.1f\n", m.ConfidenceScore)
	fmt.Fprintf(w, "  Tone:       %5.1f\n", m.ToneScore)
	fmt.Fprintln(w)

	writeDisplaySection(w, "DELIVERY")
	fmt.Fprintf(w, "  Speaking Rate: %.0f wpm (%s)\n", m.WordsPerMinute, interpretWPM(m.WordsPerMinute))

	switch m.Method {
	case analysis.MethodSignal:
		fmt.Fprintf(w, "  Pause Ratio:   %.1f%% (%s)\n", m.PauseRatio, interpretPauseRatio(m.PauseRatio))
		fmt.Fprintf(w, "  Volume:        %.2f (%s)\n", m.VolumeConsistency, interpretVolumeConsistency(m.VolumeConsistency))
		if m.AveragePitch > 0 {
			fmt.Fprintf(w, "  Pitch:         %.0f Hz avg, %.0f Hz range\n", m.AveragePitch, m.PitchRange)
		}
	case analysis.MethodHeuristic:
		fmt.Fprintf(w, "  Word Count:    %d\n", m.WordCount)
	}
	fmt.Fprintln(w)

	writeDisplaySection(w, "SUMMARY")
	fmt.Fprintf(w, "  %s\n", m.Summary)

	if tips := GenerateInterviewTips(m); len(tips) > 0 {
		fmt.Fprintln(w)
		writeDisplaySection(w, "TIPS")
		for _, tip := range tips {
			fmt.Fprintf(w, "  • %s\n", wrapText(tip.Message, 64, "    "))
		}
	}

	if transcript != "" {
		fmt.Fprintln(w)
		writeDisplaySection(w, "TRANSCRIPT")
		fmt.Fprintf(w, "  %s\n", wrapText(transcript, 64, "  "))
	}
}

// writeDisplaySection writes a section header for console output.
func writeDisplaySection(w io.Writer, title string) {
	fmt.Fprintln(w, title)
}
