// Package config loads the candidly configuration file and environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const apiKeyEnvVar = "OPENAI_API_KEY"

// Config is the full runtime configuration. Zero values are filled with
// defaults by Load.
type Config struct {
	Interview InterviewConfig `toml:"interview"`
	OpenAI    OpenAIConfig    `toml:"openai"`
	Storage   StorageConfig   `toml:"storage"`
}

// InterviewConfig controls the practice session shape.
type InterviewConfig struct {
	JobTitle  string `toml:"job_title"`
	Questions int    `toml:"questions"`
}

// OpenAIConfig selects models for generation and transcription. The API key
// itself never lives in the file; it comes from the environment.
type OpenAIConfig struct {
	Model              string `toml:"model"`
	TranscriptionModel string `toml:"transcription_model"`

	// APIKey is resolved from the environment during Load
	APIKey string `toml:"-"`
}

// StorageConfig controls session persistence.
type StorageConfig struct {
	DatabasePath  string `toml:"database_path"`
	WriteSidecars bool   `toml:"write_sidecars"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Interview: InterviewConfig{
			JobTitle:  "Software Engineer",
			Questions: 5,
		},
		OpenAI: OpenAIConfig{
			Model:              "gpt-4o-mini",
			TranscriptionModel: "whisper-1",
		},
		Storage: StorageConfig{
			DatabasePath:  defaultDatabasePath(),
			WriteSidecars: true,
		},
	}
}

// Load builds the configuration from defaults, the optional TOML file at
// path, and the environment. A missing file is not an error; a malformed
// one is. A .env file in the working directory is honoured when present.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if _, err := toml.DecodeFile(path, &cfg); err != nil {
				return Config{}, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	// Best effort: absence of a .env file is the common case
	_ = godotenv.Load()
	cfg.OpenAI.APIKey = os.Getenv(apiKeyEnvVar)

	return cfg, nil
}

func defaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "candidly.db"
	}
	return filepath.Join(home, ".candidly", "sessions.db")
}
