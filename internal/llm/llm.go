// Package llm is the boundary to the external text-generation service.
//
// A Client performs exactly one blocking request per call and never retries.
// The pipeline on top of it treats any error as an absent response and falls
// back to local defaults; callers that want cancellation impose it here, at
// the channel boundary, via the configured timeouts.
package llm

import (
	"context"
	"fmt"

	"draftsmith/internal/config"
)

// Options carries the two sampling controls of the service channel.
type Options struct {
	Temperature float32 // Randomness in [0,1]
	MaxTokens   int32   // Maximum output length in tokens
}

// Status reports the result of an availability probe.
type Status struct {
	Available bool   // Whether the service answered the probe
	Backend   string // Identity the backend exposes (e.g. loaded model ID)
	Model     string // Model the client is configured to request
}

// Client sends a single prompt to the text-generation service and returns
// the raw response text. Implementations must not retry.
type Client interface {
	Complete(ctx context.Context, prompt string, opts Options) (string, error)
	Probe(ctx context.Context) Status
}

// New builds a Client for the configured provider.
func New(cfg config.Service) (Client, error) {
	switch cfg.Provider {
	case "openai":
		return NewOpenAIClient(cfg), nil
	case "gemini":
		return NewGeminiClient(cfg)
	}
	return nil, fmt.Errorf("unknown service provider %q", cfg.Provider)
}
