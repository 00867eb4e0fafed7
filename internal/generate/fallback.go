package generate

import "fmt"

// fallbackQuestions is the canned question list used when no API key is
// configured. The first entry covers motivation and background, matching
// the opening-question rule of the generated path.
var fallbackQuestions = []string{
	"Tell me about yourself and what draws you to this role.",
	"Describe a recent project you are proud of. What was your contribution?",
	"Tell me about a time you faced a difficult challenge at work. How did you handle it?",
	"How do you prioritise when everything seems urgent?",
	"Describe a situation where you disagreed with a colleague. What happened?",
	"What is a skill you are currently working to improve, and how?",
	"Where do you see yourself developing over the next few years?",
	"Why should we hire you for this position?",
}

// FallbackQuestion returns the canned question for the given zero-based
// index, wrapping around when the session outlasts the list.
func FallbackQuestion(index int, jobTitle string) string {
	q := fallbackQuestions[index%len(fallbackQuestions)]
	if index == 0 && jobTitle != "" {
		return fmt.Sprintf("Tell me about yourself and what draws you to the %s role.", jobTitle)
	}
	return q
}
