// Package store persists interview sessions in a local SQLite database and
// writes per-recording analysis sidecars.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/candidly-dev/candidly/internal/adaptive"
	"github.com/candidly-dev/candidly/internal/analysis"
	"github.com/candidly-dev/candidly/internal/interview"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id                  TEXT PRIMARY KEY,
	job_title           TEXT NOT NULL,
	started_at          TEXT NOT NULL,
	completed_at        TEXT,
	overall_score       REAL NOT NULL DEFAULT 0,
	communication_score REAL NOT NULL DEFAULT 0,
	technical_score     REAL NOT NULL DEFAULT 0,
	evaluation          TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS turns (
	session_id    TEXT NOT NULL REFERENCES sessions(id),
	turn_index    INTEGER NOT NULL,
	question      TEXT NOT NULL,
	answer        TEXT NOT NULL,
	answered_by   TEXT NOT NULL,
	audio_metrics TEXT,
	created_at    TEXT NOT NULL,
	PRIMARY KEY (session_id, turn_index)
);
`

// Session is the stored header of one practice session. CompletedAt is nil
// while the session is still running.
type Session struct {
	ID          string
	JobTitle    string
	StartedAt   time.Time
	CompletedAt *time.Time
	Scores      adaptive.PerformanceScores
	Evaluation  string
}

// Store wraps the session database. Safe for use from one process; the
// connection pool is pinned to a single connection as SQLite prefers.
type Store struct {
	db *sql.DB
}

// Open creates or opens the session database at path, creating parent
// directories and the schema as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// CreateSession starts a new session record and returns it.
func (s *Store) CreateSession(ctx context.Context, jobTitle string) (Session, error) {
	sess := Session{
		ID:        uuid.NewString(),
		JobTitle:  jobTitle,
		StartedAt: time.Now().UTC(),
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, job_title, started_at) VALUES (?, ?, ?)`,
		sess.ID, sess.JobTitle, sess.StartedAt.Format(time.RFC3339))
	if err != nil {
		return Session{}, fmt.Errorf("failed to create session: %w", err)
	}
	return sess, nil
}

// AppendTurn stores a completed turn at the given zero-based index.
func (s *Store) AppendTurn(ctx context.Context, sessionID string, index int, turn interview.Turn) error {
	var metricsJSON sql.NullString
	if turn.Audio != nil {
		encoded, err := json.Marshal(turn.Audio)
		if err != nil {
			return fmt.Errorf("failed to encode audio metrics: %w", err)
		}
		metricsJSON = sql.NullString{String: string(encoded), Valid: true}
	}

	ts := turn.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO turns (session_id, turn_index, question, answer, answered_by, audio_metrics, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		sessionID, index, turn.Question, turn.Answer, string(turn.AnsweredBy),
		metricsJSON, ts.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store turn %d: %w", index, err)
	}
	return nil
}

// CompleteSession records the final scores and evaluation text.
func (s *Store) CompleteSession(ctx context.Context, sessionID string,
	scores adaptive.PerformanceScores, evaluation string) error {

	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions
		 SET completed_at = ?, overall_score = ?, communication_score = ?,
		     technical_score = ?, evaluation = ?
		 WHERE id = ?`,
		time.Now().UTC().Format(time.RFC3339),
		scores.Overall, scores.Communication, scores.Technical,
		evaluation, sessionID)
	if err != nil {
		return fmt.Errorf("failed to complete session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("no session with id %s", sessionID)
	}
	return nil
}

// GetSession loads a session header and its full turn history.
func (s *Store) GetSession(ctx context.Context, id string) (Session, interview.History, error) {
	var (
		sess        Session
		startedAt   string
		completedAt sql.NullString
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, job_title, started_at, completed_at,
		        overall_score, communication_score, technical_score, evaluation
		 FROM sessions WHERE id = ?`, id).
		Scan(&sess.ID, &sess.JobTitle, &startedAt, &completedAt,
			&sess.Scores.Overall, &sess.Scores.Communication,
			&sess.Scores.Technical, &sess.Evaluation)
	if err == sql.ErrNoRows {
		return Session{}, nil, fmt.Errorf("no session with id %s", id)
	}
	if err != nil {
		return Session{}, nil, fmt.Errorf("failed to load session: %w", err)
	}

	sess.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
	if completedAt.Valid {
		t, err := time.Parse(time.RFC3339, completedAt.String)
		if err == nil {
			sess.CompletedAt = &t
		}
	}

	history, err := s.loadHistory(ctx, id)
	if err != nil {
		return Session{}, nil, err
	}
	return sess, history, nil
}

// ListSessions returns all session headers, most recent first.
func (s *Store) ListSessions(ctx context.Context) ([]Session, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, job_title, started_at, completed_at,
		        overall_score, communication_score, technical_score, evaluation
		 FROM sessions ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			sess        Session
			startedAt   string
			completedAt sql.NullString
		)
		if err := rows.Scan(&sess.ID, &sess.JobTitle, &startedAt, &completedAt,
			&sess.Scores.Overall, &sess.Scores.Communication,
			&sess.Scores.Technical, &sess.Evaluation); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		sess.StartedAt, _ = time.Parse(time.RFC3339, startedAt)
		if completedAt.Valid {
			if t, err := time.Parse(time.RFC3339, completedAt.String); err == nil {
				sess.CompletedAt = &t
			}
		}
		sessions = append(sessions, sess)
	}
	return sessions, rows.Err()
}

func (s *Store) loadHistory(ctx context.Context, sessionID string) (interview.History, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT question, answer, answered_by, audio_metrics, created_at
		 FROM turns WHERE session_id = ? ORDER BY turn_index`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load turns: %w", err)
	}
	defer rows.Close()

	var history interview.History
	for rows.Next() {
		var (
			turn        interview.Turn
			answeredBy  string
			metricsJSON sql.NullString
			createdAt   string
		)
		if err := rows.Scan(&turn.Question, &turn.Answer, &answeredBy,
			&metricsJSON, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan turn: %w", err)
		}
		turn.AnsweredBy = interview.Provenance(answeredBy)
		turn.Timestamp, _ = time.Parse(time.RFC3339, createdAt)

		if metricsJSON.Valid {
			var m analysis.Metrics
			if err := json.Unmarshal([]byte(metricsJSON.String), &m); err != nil {
				return nil, fmt.Errorf("failed to decode audio metrics: %w", err)
			}
			turn.Audio = &m
		}
		history = append(history, turn)
	}
	return history, rows.Err()
}
