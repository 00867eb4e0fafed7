package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Interview.Questions != 5 {
		t.Errorf("Questions = %d, want default 5", cfg.Interview.Questions)
	}
	if cfg.OpenAI.Model == "" {
		t.Error("default model should not be empty")
	}
	if !cfg.Storage.WriteSidecars {
		t.Error("sidecar writing should default on")
	}
}

func TestLoadMissingFileIsNotAnError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.toml")); err != nil {
		t.Fatalf("missing config file should fall back to defaults, got %v", err)
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "candidly.toml")
	content := `
[interview]
job_title = "Data Engineer"
questions = 8

[openai]
model = "gpt-4o"

[storage]
write_sidecars = false
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Interview.JobTitle != "Data Engineer" {
		t.Errorf("JobTitle = %q, want %q", cfg.Interview.JobTitle, "Data Engineer")
	}
	if cfg.Interview.Questions != 8 {
		t.Errorf("Questions = %d, want 8", cfg.Interview.Questions)
	}
	if cfg.OpenAI.Model != "gpt-4o" {
		t.Errorf("Model = %q, want %q", cfg.OpenAI.Model, "gpt-4o")
	}
	if cfg.Storage.WriteSidecars {
		t.Error("write_sidecars = false in the file should override the default")
	}

	// Unset sections keep their defaults
	if cfg.OpenAI.TranscriptionModel != "whisper-1" {
		t.Errorf("TranscriptionModel = %q, want default", cfg.OpenAI.TranscriptionModel)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[interview\njob_title = "), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("malformed config file should be an error")
	}
}

func TestLoadAPIKeyFromEnvironment(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test-123")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OpenAI.APIKey != "sk-test-123" {
		t.Errorf("APIKey = %q, want the environment value", cfg.OpenAI.APIKey)
	}
}
