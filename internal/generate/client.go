// Package generate produces interview questions and the final evaluation
// through the OpenAI chat-completions API, with a canned question list for
// offline use.
package generate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://api.openai.com/v1"
	defaultModel   = "gpt-4o-mini"

	requestTimeout = 120 * time.Second

	questionTemperature   = 0.7
	evaluationTemperature = 0.3
	maxCompletionTokens   = 1024
)

// Client talks to the chat-completions endpoint.
type Client struct {
	apiKey  string
	baseURL string
	model   string
	http    *http.Client
}

// NewClient builds a generation client for the given model. An empty model
// selects the default.
func NewClient(apiKey, model string) *Client {
	if model == "" {
		model = defaultModel
	}
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		model:   model,
		http:    &http.Client{Timeout: requestTimeout},
	}
}

// Available reports whether the client can reach the API at all.
func (c *Client) Available() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// NextQuestion generates the interview question described by the prompt.
func (c *Client) NextQuestion(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt, questionTemperature)
}

// Evaluate generates the final session evaluation described by the prompt.
func (c *Client) Evaluate(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, prompt, evaluationTemperature)
}

func (c *Client) complete(ctx context.Context, prompt string, temperature float64) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("no API key configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model:       c.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: temperature,
		MaxTokens:   maxCompletionTokens,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("completion request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", fmt.Errorf("completion API returned %d: %s",
			resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var parsed chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("failed to decode completion response: %w", err)
	}
	if parsed.Error != nil {
		return "", fmt.Errorf("completion API error: %s", parsed.Error.Message)
	}
	if len(parsed.Choices) == 0 {
		return "", fmt.Errorf("completion response carried no choices")
	}
	return strings.TrimSpace(parsed.Choices[0].Message.Content), nil
}
