// Package ui provides the Bubbletea terminal user interface for candidly
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/candidly-dev/candidly/internal/adaptive"
	"github.com/candidly-dev/candidly/internal/analysis"
)

// TurnStatus represents the state of a single interview turn
type TurnStatus int

const (
	StatusQueued TurnStatus = iota
	StatusAsking
	StatusAnalyzing
	StatusScored
	StatusError
)

// TurnProgress tracks one question/answer exchange through the session
type TurnProgress struct {
	AudioPath  string
	Question   string
	Difficulty adaptive.Difficulty
	Status     TurnStatus

	StartTime   time.Time
	ElapsedTime time.Duration

	// Results once the turn is scored
	Metrics    analysis.Metrics
	Transcript string
}

// Model is the Bubbletea model for the practice session UI
type Model struct {
	JobTitle string

	// Turn queue
	Turns          []TurnProgress
	CurrentIndex   int
	TotalTurns     int
	CompletedTurns int
	FailedTurns    int

	// Session scores so far
	Scores adaptive.PerformanceScores

	// Completion state
	FocusAreas []adaptive.FocusArea
	Evaluation string
	ReportPath string

	// Global state
	StartTime time.Time
	Done      bool

	// Channel for receiving progress updates from the session runner
	ProgressChan chan tea.Msg

	// Terminal dimensions
	Width  int
	Height int
}

// NewModel creates a new UI model for a session over the given answer files
func NewModel(jobTitle string, answerFiles []string) Model {
	turns := make([]TurnProgress, len(answerFiles))
	for i, path := range answerFiles {
		turns[i] = TurnProgress{
			AudioPath: path,
			Status:    StatusQueued,
		}
	}

	return Model{
		JobTitle:     jobTitle,
		Turns:        turns,
		CurrentIndex: -1, // No turn running yet
		TotalTurns:   len(answerFiles),
		StartTime:    time.Now(),
		ProgressChan: make(chan tea.Msg, 100), // Buffered channel
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return waitForProgress(m.ProgressChan)
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height

	case QuestionMsg:
		if msg.TurnIndex >= 0 && msg.TurnIndex < len(m.Turns) {
			m.CurrentIndex = msg.TurnIndex
			turn := &m.Turns[msg.TurnIndex]
			turn.Question = msg.Question
			turn.Difficulty = msg.Difficulty
			turn.Status = StatusAsking
			turn.StartTime = time.Now()
		}
		return m, waitForProgress(m.ProgressChan)

	case TurnStartMsg:
		if msg.TurnIndex >= 0 && msg.TurnIndex < len(m.Turns) {
			m.CurrentIndex = msg.TurnIndex
			turn := &m.Turns[msg.TurnIndex]
			turn.Status = StatusAnalyzing
			if turn.StartTime.IsZero() {
				turn.StartTime = time.Now()
			}
		}
		return m, waitForProgress(m.ProgressChan)

	case TurnScoredMsg:
		if msg.TurnIndex >= 0 && msg.TurnIndex < len(m.Turns) {
			turn := &m.Turns[msg.TurnIndex]
			turn.Metrics = msg.Metrics
			turn.Transcript = msg.Transcript
			turn.ElapsedTime = time.Since(turn.StartTime)

			if msg.Metrics.Failed() {
				turn.Status = StatusError
				m.FailedTurns++
			} else {
				turn.Status = StatusScored
				m.CompletedTurns++
			}
			m.Scores = msg.Scores
		}
		return m, waitForProgress(m.ProgressChan)

	case SessionCompleteMsg:
		m.Scores = msg.Scores
		m.FocusAreas = msg.FocusAreas
		m.Evaluation = msg.Evaluation
		m.ReportPath = msg.ReportPath
		m.Done = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the UI
func (m Model) View() string {
	if m.Width == 0 {
		return "Initializing...\n"
	}

	if m.Done {
		return renderCompletionSummary(m)
	}

	return renderSessionView(m)
}

// waitForProgress creates a command that waits for progress messages
func waitForProgress(progressChan chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-progressChan
	}
}
