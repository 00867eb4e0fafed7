package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/candidly-dev/candidly/internal/adaptive"
	"github.com/candidly-dev/candidly/internal/analysis"
	"github.com/candidly-dev/candidly/internal/interview"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sess, err := s.CreateSession(ctx, "Backend Engineer")
	if err != nil {
		t.Fatal(err)
	}
	if sess.ID == "" {
		t.Fatal("session ID should not be empty")
	}

	metrics := analysis.Metrics{
		Duration:        12.5,
		PaceScore:       88,
		ConfidenceScore: 72,
		ToneScore:       64,
		Method:          analysis.MethodSignal,
		Summary:         "Great speaking pace, fairly confident.",
	}
	turns := interview.History{
		{
			Question:   "Tell me about yourself.",
			Answer:     "I build backend services.",
			Audio:      &metrics,
			AnsweredBy: interview.AnsweredByRecording,
			Timestamp:  time.Now().UTC(),
		},
		{
			Question:   "Why this company?",
			Answer:     "I like the mission.",
			AnsweredBy: interview.AnsweredByUpload,
		},
	}
	for i, turn := range turns {
		if err := s.AppendTurn(ctx, sess.ID, i, turn); err != nil {
			t.Fatal(err)
		}
	}

	scores := adaptive.PerformanceScores{Overall: 74.6, Communication: 74.7, Technical: 74.5}
	if err := s.CompleteSession(ctx, sess.ID, scores, "PASS: solid interview"); err != nil {
		t.Fatal(err)
	}

	loaded, history, err := s.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatal(err)
	}

	if loaded.JobTitle != "Backend Engineer" {
		t.Errorf("JobTitle = %q, want %q", loaded.JobTitle, "Backend Engineer")
	}
	if loaded.CompletedAt == nil {
		t.Error("CompletedAt should be set after completion")
	}
	if loaded.Scores.Overall != 74.6 {
		t.Errorf("Overall = %v, want 74.6", loaded.Scores.Overall)
	}
	if loaded.Evaluation != "PASS: solid interview" {
		t.Errorf("Evaluation = %q", loaded.Evaluation)
	}

	if len(history) != 2 {
		t.Fatalf("len(history) = %d, want 2", len(history))
	}
	if history[0].Audio == nil {
		t.Fatal("first turn should carry audio metrics")
	}
	if history[0].Audio.PaceScore != 88 {
		t.Errorf("PaceScore = %v, want 88", history[0].Audio.PaceScore)
	}
	if history[1].Audio != nil {
		t.Error("second turn should carry no audio metrics")
	}
	if history[1].AnsweredBy != interview.AnsweredByUpload {
		t.Errorf("AnsweredBy = %q, want %q", history[1].AnsweredBy, interview.AnsweredByUpload)
	}
}

func TestGetSessionUnknownID(t *testing.T) {
	s := openTestStore(t)

	if _, _, err := s.GetSession(context.Background(), "does-not-exist"); err == nil {
		t.Error("expected an error for an unknown session")
	}
}

func TestCompleteSessionUnknownID(t *testing.T) {
	s := openTestStore(t)

	err := s.CompleteSession(context.Background(), "does-not-exist",
		adaptive.PerformanceScores{}, "")
	if err == nil {
		t.Error("expected an error for an unknown session")
	}
}

func TestListSessionsOrder(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if _, err := s.CreateSession(ctx, "First"); err != nil {
		t.Fatal(err)
	}
	// RFC3339 ordering is per second; make the second session clearly later
	time.Sleep(1100 * time.Millisecond)
	second, err := s.CreateSession(ctx, "Second")
	if err != nil {
		t.Fatal(err)
	}

	sessions, err := s.ListSessions(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(sessions) != 2 {
		t.Fatalf("len(sessions) = %d, want 2", len(sessions))
	}
	if sessions[0].ID != second.ID {
		t.Error("most recent session should come first")
	}
}

func TestSidecarRoundTrip(t *testing.T) {
	recording := filepath.Join(t.TempDir(), "answer.wav")

	m := analysis.Metrics{
		PaceScore: 91,
		Method:    analysis.MethodHeuristic,
		WordCount: 42,
	}
	if err := WriteSidecar(recording, "hello there", m); err != nil {
		t.Fatal(err)
	}

	sc, err := ReadSidecar(recording)
	if err != nil {
		t.Fatal(err)
	}
	if sc.Transcript != "hello there" {
		t.Errorf("Transcript = %q", sc.Transcript)
	}
	if sc.Metrics.PaceScore != 91 || sc.Metrics.WordCount != 42 {
		t.Errorf("metrics did not survive the round trip: %+v", sc.Metrics)
	}
	if sc.AudioFile != recording {
		t.Errorf("AudioFile = %q, want %q", sc.AudioFile, recording)
	}
}
