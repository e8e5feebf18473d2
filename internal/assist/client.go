// Package assist wraps the external text-improvement service behind a single
// Improve operation. When no API URL is configured the capability is disabled
// and every call fails with assist_unavailable.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/glowstudio/landing-builder/internal/httperr"
)

type Improver interface {
	Improve(ctx context.Context, prompt string) (string, error)
	Enabled() bool
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type completionRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

type completionResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}

// Client talks to an OpenAI-style chat-completions endpoint.
type Client struct {
	apiURL string
	apiKey string
	model  string
	client *http.Client
}

// New returns a working client, or a disabled improver when apiURL is empty.
func New(apiURL, apiKey, model string) Improver {
	if apiURL == "" {
		return Disabled{}
	}

	return &Client{
		apiURL: strings.TrimRight(apiURL, "/"),
		apiKey: apiKey,
		model:  model,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) Enabled() bool { return true }

func (c *Client) Improve(ctx context.Context, prompt string) (string, error) {
	reqBody := completionRequest{
		Model: c.model,
		Messages: []message{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
		MaxTokens:   1000,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshal request body: %w", err)
	}

	endpoint := fmt.Sprintf("%s/chat/completions", c.apiURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("assist request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("assist returned status %d: %s", resp.StatusCode, body)
	}

	var out completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode assist response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", fmt.Errorf("assist returned no choices")
	}

	return strings.TrimSpace(out.Choices[0].Message.Content), nil
}

// Disabled is the no-op improver used when the capability is not configured.
type Disabled struct{}

func (Disabled) Enabled() bool { return false }

func (Disabled) Improve(ctx context.Context, prompt string) (string, error) {
	return "", httperr.ErrBusiness(httperr.CodeAssistUnavailable)
}
