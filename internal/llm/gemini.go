package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"draftsmith/internal/config"
)

// GeminiClient is the alternate backend using the Gemini API.
type GeminiClient struct {
	client       *genai.Client
	model        string
	timeout      time.Duration
	probeTimeout time.Duration
}

// NewGeminiClient builds a Gemini-backed client from service configuration.
func NewGeminiClient(cfg config.Service) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini provider requires service.api_key")
	}
	model := cfg.Model
	if model == "" {
		model = "gemini-flash-lite-latest"
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("creating gemini client: %w", err)
	}

	return &GeminiClient{
		client:       client,
		model:        model,
		timeout:      cfg.TimeoutDuration(),
		probeTimeout: cfg.ProbeTimeoutDuration(),
	}, nil
}

// Complete sends one generation request and returns the concatenated text parts.
func (c *GeminiClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	model := c.client.GenerativeModel(c.model)
	model.SetTemperature(opts.Temperature)
	model.SetMaxOutputTokens(opts.MaxTokens)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("generate content: no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			sb.WriteString(string(text))
		}
	}
	if sb.Len() == 0 {
		return "", errors.New("generate content: empty response")
	}
	return sb.String(), nil
}

// Probe lists models to confirm the API is reachable.
func (c *GeminiClient) Probe(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	status := Status{Model: c.model}
	it := c.client.ListModels(ctx)
	info, err := it.Next()
	if err != nil && err != iterator.Done {
		return status
	}

	status.Available = true
	if info != nil {
		status.Backend = info.Name
	}
	return status
}

// Close releases the underlying connection.
func (c *GeminiClient) Close() error {
	return c.client.Close()
}
