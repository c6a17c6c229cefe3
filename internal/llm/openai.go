package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"draftsmith/internal/config"
)

// OpenAIClient talks to an OpenAI-compatible chat-completions endpoint.
// Local servers (LM Studio, Ollama) expose this API; base_url points at them.
type OpenAIClient struct {
	client       openai.Client
	model        string
	timeout      time.Duration
	probeTimeout time.Duration
}

// NewOpenAIClient builds a client from service configuration.
func NewOpenAIClient(cfg config.Service) *OpenAIClient {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAIClient{
		client:       openai.NewClient(opts...),
		model:        cfg.Model,
		timeout:      cfg.TimeoutDuration(),
		probeTimeout: cfg.ProbeTimeoutDuration(),
	}
}

// Complete sends one chat-completion request and returns the response text.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string, opts Options) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature: openai.Float(float64(opts.Temperature)),
		MaxTokens:   openai.Int(int64(opts.MaxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion: empty choices")
	}
	return resp.Choices[0].Message.Content, nil
}

// Probe checks whether the endpoint answers a model listing and reports the
// identity of the first model the backend exposes.
func (c *OpenAIClient) Probe(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	status := Status{Model: c.model}
	page, err := c.client.Models.List(ctx)
	if err != nil {
		return status
	}

	status.Available = true
	if len(page.Data) > 0 {
		status.Backend = page.Data[0].ID
	}
	return status
}
