// Package gemini adapts the Gemini generative-AI SDK to the build generator.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"pcbuilder/internal/buildgen"
)

// DefaultModel is used when no model name is configured.
const DefaultModel = "gemini-2.0-flash"

// Config holds the Gemini client settings.
type Config struct {
	APIKey string
	Model  string
	// Options are appended to the client options, e.g. a custom endpoint.
	Options []option.ClientOption
}

// Client implements buildgen.Completer on top of a Gemini model.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
	name   string
}

// NewClient creates a Gemini client. The API key is required.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("gemini: API key is required")
	}
	name := cfg.Model
	if name == "" {
		name = DefaultModel
	}

	opts := append([]option.ClientOption{option.WithAPIKey(cfg.APIKey)}, cfg.Options...)
	client, err := genai.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	zap.L().Info("Gemini client initialized", zap.String("model", name))
	return &Client{
		client: client,
		model:  client.GenerativeModel(name),
		name:   name,
	}, nil
}

// Complete sends prompt to the model and returns the concatenated text of
// the first candidate.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", Classify(err)
	}
	return ResponseText(resp)
}

// Close releases the underlying connection.
func (c *Client) Close() error {
	if c.client == nil {
		return nil
	}
	return c.client.Close()
}

// ResponseText joins the text parts of the first candidate.
func ResponseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("no response from Gemini API")
	}
	content := resp.Candidates[0].Content
	if content == nil || len(content.Parts) == 0 {
		return "", errors.New("empty candidate in Gemini response")
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if text, ok := part.(genai.Text); ok {
			b.WriteString(string(text))
		}
	}
	if b.Len() == 0 {
		return "", errors.New("Gemini response contained no text")
	}
	return b.String(), nil
}

// Classify maps SDK errors onto the generator's error kinds. Errors it does
// not recognize are wrapped unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case strings.Contains(msg, "API_KEY_INVALID"), strings.Contains(msg, "API key not valid"),
		strings.Contains(msg, "API key expired"):
		return fmt.Errorf("%w: %v", buildgen.ErrInvalidAPIKey, err)
	case strings.Contains(msg, "RESOURCE_EXHAUSTED"), strings.Contains(msg, "Error 429"),
		strings.Contains(strings.ToLower(msg), "quota"):
		return fmt.Errorf("%w: %v", buildgen.ErrQuota, err)
	default:
		return fmt.Errorf("Gemini API error: %w", err)
	}
}
