// Package transcribe converts recorded answers to text through the OpenAI
// transcription API.
package transcribe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "whisper-1"

	requestTimeout = 120 * time.Second
)

// Client talks to the transcription endpoint. The zero value is not usable;
// construct with NewClient.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// NewClient builds a transcription client. An empty apiKey is allowed; the
// first Transcribe call will fail and callers fall back to working without
// a transcript.
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   defaultModel,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

type transcriptionResponse struct {
	Text string `json:"text"`
}

// Transcribe uploads the audio file and returns the recognised text.
// Callers treat any error as "no transcript available": a failed
// transcription degrades the analysis, it never aborts the turn.
func (c *Client) Transcribe(ctx context.Context, path string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open recording: %w", err)
	}
	defer f.Close()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	part, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return "", fmt.Errorf("failed to read recording: %w", err)
	}
	if err := mw.WriteField("model", c.model); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("failed to build upload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/audio/transcriptions", &body)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("transcription request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("transcription API returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var parsed transcriptionResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}
	return strings.TrimSpace(parsed.Text), nil
}
