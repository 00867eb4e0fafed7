package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/candidly-dev/candidly/internal/adaptive"
	"github.com/candidly-dev/candidly/internal/analysis"
	"github.com/candidly-dev/candidly/internal/cli"
	"github.com/candidly-dev/candidly/internal/config"
	"github.com/candidly-dev/candidly/internal/generate"
	"github.com/candidly-dev/candidly/internal/interview"
	"github.com/candidly-dev/candidly/internal/logging"
	"github.com/candidly-dev/candidly/internal/store"
	"github.com/candidly-dev/candidly/internal/transcribe"
	"github.com/candidly-dev/candidly/internal/ui"
)

var (
	version = "0.1.0"
)

// apiCallTimeout bounds each transcription or generation request.
const apiCallTimeout = 2 * time.Minute

// CLI defines the command-line interface
type CLI struct {
	Config string `short:"c" type:"path" help:"Path to TOML config file (optional)"`

	Version  VersionCmd  `cmd:"" help:"Show version information"`
	Analyze  AnalyzeCmd  `cmd:"" help:"Analyze one recorded answer"`
	Practice PracticeCmd `cmd:"" help:"Run a practice interview over recorded answers"`
	Report   ReportCmd   `cmd:"" help:"Render the report for a stored session"`
}

// app carries the loaded configuration into command Run methods
type app struct {
	cfg config.Config
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("candidly"),
		kong.Description("Interview practice with spoken-answer analysis"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.Help(cli.StyledHelpPrinter(kong.HelpOptions{Compact: true})),
	)

	cfg, err := config.Load(cliArgs.Config)
	if err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}

	if err := ctx.Run(&app{cfg: cfg}); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

// VersionCmd prints version information
type VersionCmd struct{}

func (v *VersionCmd) Run(_ *app) error {
	cli.PrintVersion(version)
	return nil
}

// AnalyzeCmd analyzes a single recorded answer
type AnalyzeCmd struct {
	File       string `arg:"" name:"file" help:"Recorded answer to analyze" type:"existingfile"`
	Transcript string `short:"t" type:"existingfile" help:"Plain-text transcript of the answer"`
	Logs       bool   `help:"Save a detailed analysis report"`
}

func (a *AnalyzeCmd) Run(app *app) error {
	transcript := ""
	if a.Transcript != "" {
		raw, err := os.ReadFile(a.Transcript)
		if err != nil {
			return fmt.Errorf("failed to read transcript: %w", err)
		}
		transcript = strings.TrimSpace(string(raw))
	}

	metrics := analysis.NewAnalyzer().Analyze(a.File, transcript)
	logging.DisplayAnalysisResults(os.Stdout, a.File, metrics, transcript)

	if app.cfg.Storage.WriteSidecars && !metrics.Failed() {
		if err := store.WriteSidecar(a.File, transcript, metrics); err != nil {
			cli.PrintError(err.Error())
		}
	}

	if a.Logs {
		data := logging.ReportData{
			SessionID: "analyze",
			JobTitle:  "Single Recording",
			StartTime: time.Now(),
			History: interview.History{{
				Question:   "(standalone analysis)",
				Answer:     transcript,
				Audio:      &metrics,
				AnsweredBy: interview.AnsweredByUpload,
				Timestamp:  time.Now().UTC(),
			}},
			Scores:     adaptive.CalculatePerformance(interview.History{{Answer: transcript, Audio: &metrics}}),
			OutputPath: a.File + ".report.log",
		}
		if err := logging.GenerateReport(data); err != nil {
			return err
		}
		fmt.Printf("\nDetailed report: %s\n", data.OutputPath)
	}

	return nil
}

// PracticeCmd runs a full practice session over pre-recorded answers
type PracticeCmd struct {
	Job     string   `short:"j" help:"Job title to interview for" default:""`
	Answers []string `arg:"" name:"answers" help:"Recorded answer files, one per question" type:"existingfile"`
	Logs    bool     `help:"Save a detailed session report"`
}

func (p *PracticeCmd) Run(app *app) error {
	jobTitle := p.Job
	if jobTitle == "" {
		jobTitle = app.cfg.Interview.JobTitle
	}

	sessions, err := store.Open(app.cfg.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer sessions.Close()

	sess, err := sessions.CreateSession(context.Background(), jobTitle)
	if err != nil {
		return err
	}

	model := ui.NewModel(jobTitle, p.Answers)
	progress := model.ProgressChan
	program := tea.NewProgram(model, tea.WithAltScreen())

	runner := &sessionRunner{
		app:      app,
		jobTitle: jobTitle,
		session:  sess,
		store:    sessions,
		analyzer: analysis.NewAnalyzer(),
		logs:     p.Logs,
	}
	if app.cfg.OpenAI.APIKey != "" {
		runner.transcriber = transcribe.NewClient(app.cfg.OpenAI.APIKey)
		runner.generator = generate.NewClient(app.cfg.OpenAI.APIKey, app.cfg.OpenAI.Model)
	}

	go runner.run(p.Answers, progress)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}

// sessionRunner drives the interview loop in the background, feeding
// progress messages to the UI.
type sessionRunner struct {
	app         *app
	jobTitle    string
	session     store.Session
	store       *store.Store
	analyzer    *analysis.Analyzer
	transcriber *transcribe.Client
	generator   *generate.Client
	logs        bool
}

func (r *sessionRunner) run(answers []string, progress chan tea.Msg) {
	ctx := context.Background()
	var history interview.History
	var scores adaptive.PerformanceScores

	for i, audioPath := range answers {
		difficulty := adaptive.DetermineDifficulty(scores, i)
		focus := adaptive.IdentifyFocusAreas(scores, r.jobTitle)

		question := r.nextQuestion(ctx, i, history, difficulty, focus, scores)
		progress <- ui.QuestionMsg{TurnIndex: i, Question: question, Difficulty: difficulty}

		progress <- ui.TurnStartMsg{TurnIndex: i, AudioPath: audioPath}

		transcript := r.transcribeAnswer(ctx, audioPath)
		metrics := r.analyzer.Analyze(audioPath, transcript)

		turn := interview.Turn{
			Question:   question,
			Answer:     transcript,
			Audio:      &metrics,
			AnsweredBy: interview.AnsweredByUpload,
			Timestamp:  time.Now().UTC(),
		}
		history = append(history, turn)
		scores = adaptive.CalculatePerformance(history)

		// Persistence failures degrade to an unsaved session; the interview
		// itself continues
		if err := r.store.AppendTurn(ctx, r.session.ID, i, turn); err != nil {
			cli.PrintError(err.Error())
		}
		if r.app.cfg.Storage.WriteSidecars && !metrics.Failed() {
			if err := store.WriteSidecar(audioPath, transcript, metrics); err != nil {
				cli.PrintError(err.Error())
			}
		}

		progress <- ui.TurnScoredMsg{
			TurnIndex:  i,
			Metrics:    metrics,
			Transcript: transcript,
			Scores:     scores,
		}
	}

	focusAreas := adaptive.IdentifyFocusAreas(scores, r.jobTitle)
	evaluation := r.evaluate(ctx, history, scores)

	if err := r.store.CompleteSession(ctx, r.session.ID, scores, evaluation); err != nil {
		cli.PrintError(err.Error())
	}

	reportPath := ""
	if r.logs {
		data := logging.ReportData{
			SessionID:  r.session.ID,
			JobTitle:   r.jobTitle,
			StartTime:  r.session.StartedAt,
			EndTime:    time.Now().UTC(),
			History:    history,
			Scores:     scores,
			FocusAreas: focusAreas,
			Evaluation: evaluation,
		}
		data.OutputPath = fmt.Sprintf("candidly-session-%s.log", r.session.ID)
		if err := logging.GenerateReport(data); err != nil {
			cli.PrintError(err.Error())
		} else {
			reportPath = data.OutputPath
		}
	}

	progress <- ui.SessionCompleteMsg{
		Scores:     scores,
		FocusAreas: focusAreas,
		Evaluation: evaluation,
		ReportPath: reportPath,
	}
}

// nextQuestion generates the question for turn i, falling back to the
// canned list when no generator is configured or the request fails.
func (r *sessionRunner) nextQuestion(ctx context.Context, i int, history interview.History,
	difficulty adaptive.Difficulty, focus []adaptive.FocusArea,
	scores adaptive.PerformanceScores) string {

	if r.generator == nil || !r.generator.Available() {
		return generate.FallbackQuestion(i, r.jobTitle)
	}

	perfContext := ""
	if len(history) > 0 {
		perfContext = adaptive.QuestionContext(scores, focus)
	}
	prompt := generate.BuildQuestionPrompt(r.jobTitle, history, difficulty, perfContext)

	callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
	defer cancel()

	question, err := r.generator.NextQuestion(callCtx, prompt)
	if err != nil || question == "" {
		return generate.FallbackQuestion(i, r.jobTitle)
	}
	return question
}

// transcribeAnswer returns the transcript for a recording, or "" when no
// transcriber is configured or the request fails.
func (r *sessionRunner) transcribeAnswer(ctx context.Context, audioPath string) string {
	if r.transcriber == nil {
		return ""
	}

	callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
	defer cancel()

	transcript, err := r.transcriber.Transcribe(callCtx, audioPath)
	if err != nil {
		return ""
	}
	return transcript
}

// evaluate produces the final evaluation text, or "" without a generator.
func (r *sessionRunner) evaluate(ctx context.Context, history interview.History,
	scores adaptive.PerformanceScores) string {

	if r.generator == nil || !r.generator.Available() || len(history) == 0 {
		return ""
	}

	callCtx, cancel := context.WithTimeout(ctx, apiCallTimeout)
	defer cancel()

	evaluation, err := r.generator.Evaluate(callCtx,
		generate.BuildEvaluationPrompt(r.jobTitle, history, scores))
	if err != nil {
		return ""
	}
	return evaluation
}

// ReportCmd renders the report for a stored session
type ReportCmd struct {
	Session string `arg:"" optional:"" help:"Session ID (omit to list sessions)"`
	Output  string `short:"o" type:"path" help:"Report file path"`
}

func (rc *ReportCmd) Run(app *app) error {
	sessions, err := store.Open(app.cfg.Storage.DatabasePath)
	if err != nil {
		return err
	}
	defer sessions.Close()

	ctx := context.Background()

	if rc.Session == "" {
		return listSessions(ctx, sessions)
	}

	sess, history, err := sessions.GetSession(ctx, rc.Session)
	if err != nil {
		return err
	}

	endTime := time.Time{}
	if sess.CompletedAt != nil {
		endTime = *sess.CompletedAt
	}

	data := logging.ReportData{
		SessionID:  sess.ID,
		JobTitle:   sess.JobTitle,
		StartTime:  sess.StartedAt,
		EndTime:    endTime,
		History:    history,
		Scores:     sess.Scores,
		FocusAreas: adaptive.IdentifyFocusAreas(sess.Scores, sess.JobTitle),
		Evaluation: sess.Evaluation,
		OutputPath: rc.Output,
	}
	if err := logging.GenerateReport(data); err != nil {
		return err
	}

	path := data.OutputPath
	if path == "" {
		path = fmt.Sprintf("candidly-session-%s.log", sess.ID)
	}
	fmt.Printf("Report written: %s\n", path)
	return nil
}

func listSessions(ctx context.Context, sessions *store.Store) error {
	all, err := sessions.ListSessions(ctx)
	if err != nil {
		return err
	}
	if len(all) == 0 {
		fmt.Println("No stored sessions.")
		return nil
	}

	for _, sess := range all {
		status := "in progress"
		if sess.CompletedAt != nil {
			status = fmt.Sprintf("overall %.1f", sess.Scores.Overall)
		}
		fmt.Printf("%s  %s  %-30s %s\n",
			sess.ID, sess.StartedAt.Format("2006-01-02 15:04"), sess.JobTitle, status)
	}
	return nil
}
