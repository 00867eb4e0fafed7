package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderSessionView renders the main practice session view
func renderSessionView(m Model) string {
	var b strings.Builder

	// Header
	b.WriteString(renderHeader(m))
	b.WriteString("\n\n")

	// Turn queue
	b.WriteString(renderTurnQueue(m))
	b.WriteString("\n")

	// Session progress footer
	b.WriteString(renderSessionProgress(m))

	return b.String()
}

// renderHeader renders the application header
func renderHeader(m Model) string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#005F87")).
		Render("Candidly 🎤 - Interview Practice")

	subtitle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Italic(true).
		Render(fmt.Sprintf("%s - %d question(s)", m.JobTitle, m.TotalTurns))

	return title + "\n" + subtitle
}

// renderTurnQueue renders the list of turns with their status
func renderTurnQueue(m Model) string {
	var b strings.Builder

	for i, turn := range m.Turns {
		b.WriteString(renderTurnEntry(turn, i))
		b.WriteString("\n")
	}

	return b.String()
}

// renderTurnEntry renders a single turn in the queue
func renderTurnEntry(turn TurnProgress, index int) string {
	fileName := filepath.Base(turn.AudioPath)

	switch turn.Status {
	case StatusScored:
		// ✓ scored turn with its delivery summary
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		summary := fmt.Sprintf("Pace: %.0f | Confidence: %.0f | Tone: %.0f",
			turn.Metrics.PaceScore, turn.Metrics.ConfidenceScore, turn.Metrics.ToneScore)
		return fmt.Sprintf(" %s Q%d: %s\n   %s", icon, index+1, truncate(turn.Question, 60), summary)

	case StatusAsking, StatusAnalyzing:
		// ⚙ active turn with a detail box
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#FFA500")).Render("⚙")
		return fmt.Sprintf(" %s Q%d: %s\n%s",
			icon, index+1, truncate(turn.Question, 60), renderTurnDetails(turn))

	case StatusError:
		// ✗ turn whose analysis failed
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#A40000")).Render("✗")
		return fmt.Sprintf(" %s Q%d: %s\n   %s", icon, index+1, truncate(turn.Question, 60),
			turn.Metrics.Err)

	default:
		// ○ queued turn
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#888888")).Render("○")
		return fmt.Sprintf(" %s %s\n   Queued...", icon, fileName)
	}
}

// renderTurnDetails renders the detail box for the active turn
func renderTurnDetails(turn TurnProgress) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#005F87")).
		Padding(0, 1).
		Width(60)

	var content strings.Builder

	phase := "Asking question"
	if turn.Status == StatusAnalyzing {
		phase = "Analyzing answer"
	}
	content.WriteString(fmt.Sprintf("%s: %s\n", phase, filepath.Base(turn.AudioPath)))

	if turn.Difficulty != "" {
		content.WriteString(fmt.Sprintf("Difficulty: %s", turn.Difficulty))
	}

	return box.Render(content.String())
}

// renderSessionProgress renders the running-score footer
func renderSessionProgress(m Model) string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#888888")).
		Padding(0, 1).
		Width(60)

	var content string
	if m.CurrentIndex >= 0 && m.CurrentIndex < len(m.Turns) {
		content = fmt.Sprintf("Turn %d of %d (%d scored)\nOverall: %.1f | Communication: %.1f | Technical: %.1f",
			m.CurrentIndex+1, m.TotalTurns, m.CompletedTurns,
			m.Scores.Overall, m.Scores.Communication, m.Scores.Technical)
	} else {
		content = fmt.Sprintf("Session Progress: %d/%d scored", m.CompletedTurns, m.TotalTurns)
	}

	return box.Render(content)
}

// renderCompletionSummary renders the final session summary
func renderCompletionSummary(m Model) string {
	var b strings.Builder

	header := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00AA00")).
		Render("✨ Session Complete!")
	b.WriteString(header)
	b.WriteString("\n\n")

	// Summary for each scored turn
	for i, turn := range m.Turns {
		if turn.Status != StatusScored {
			continue
		}
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color("#00AA00")).Render("✓")
		b.WriteString(fmt.Sprintf(" %s Q%d: %s\n", icon, i+1, truncate(turn.Question, 60)))
		b.WriteString(fmt.Sprintf("   %s\n", turn.Metrics.Summary))
	}

	// Session scores
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", 60))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Overall: %.1f | Communication: %.1f | Technical: %.1f\n",
		m.Scores.Overall, m.Scores.Communication, m.Scores.Technical))

	if len(m.FocusAreas) > 0 {
		names := make([]string, len(m.FocusAreas))
		for i, a := range m.FocusAreas {
			names[i] = string(a)
		}
		b.WriteString(fmt.Sprintf("Focus areas for next time: %s\n", strings.Join(names, ", ")))
	}

	if m.Evaluation != "" {
		b.WriteString("\n")
		b.WriteString(m.Evaluation)
		b.WriteString("\n")
	}

	if m.ReportPath != "" {
		b.WriteString(fmt.Sprintf("\nDetailed report: %s\n", m.ReportPath))
	}

	return b.String()
}

// truncate shortens a string to max runes with an ellipsis
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
