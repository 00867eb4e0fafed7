package generate

import (
	"fmt"
	"strings"

	"github.com/candidly-dev/candidly/internal/adaptive"
	"github.com/candidly-dev/candidly/internal/interview"
)

// BuildQuestionPrompt assembles the prompt for the next interview question.
// The first question always covers motivation and background; later
// questions carry the full Q/A history plus the adaptive performance
// context so the model can steer difficulty and focus.
func BuildQuestionPrompt(jobTitle string, history interview.History,
	difficulty adaptive.Difficulty, performanceContext string) string {

	var b strings.Builder
	fmt.Fprintf(&b, "You are a professional interviewer conducting a job interview for a %s position.\n", jobTitle)

	if len(history) == 0 {
		b.WriteString("Ask the opening question. It should invite the candidate to introduce themselves and explain their motivation and background for this role.\n")
		b.WriteString("Reply with the question text only.")
		return b.String()
	}

	fmt.Fprintf(&b, "You are about to ask question %d.\n\n", len(history)+1)

	b.WriteString("Interview so far:\n")
	for i, turn := range history {
		fmt.Fprintf(&b, "Q%d: %s\n", i+1, turn.Question)
		fmt.Fprintf(&b, "A%d: %s\n", i+1, turn.Answer)
	}

	if performanceContext != "" {
		b.WriteString("\n")
		b.WriteString(performanceContext)
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\nAsk the next question at %s difficulty. Do not repeat earlier questions.\n", difficulty)
	b.WriteString("Reply with the question text only.")
	return b.String()
}

// BuildEvaluationPrompt assembles the prompt for the final session
// evaluation: a pass/fail verdict, a numeric score, and concrete feedback.
func BuildEvaluationPrompt(jobTitle string, history interview.History,
	scores adaptive.PerformanceScores) string {

	var b strings.Builder
	fmt.Fprintf(&b, "You are evaluating a completed job interview for a %s position.\n\n", jobTitle)

	b.WriteString("Transcript:\n")
	for i, turn := range history {
		fmt.Fprintf(&b, "Q%d: %s\n", i+1, turn.Question)
		fmt.Fprintf(&b, "A%d: %s\n", i+1, turn.Answer)
	}

	fmt.Fprintf(&b, "\nMeasured delivery scores (0-100): overall %.1f, communication %.1f, technical %.1f.\n",
		scores.Overall, scores.Communication, scores.Technical)

	b.WriteString("\nProvide:\n")
	b.WriteString("1. Verdict: PASS or FAIL\n")
	b.WriteString("2. Score: 0-100\n")
	b.WriteString("3. Strengths: what the candidate did well\n")
	b.WriteString("4. Improvements: what held the candidate back\n")
	b.WriteString("5. Tips: concrete advice for the next interview\n")
	return b.String()
}
