// Package llm wraps the generative language model behind a single-call interface.
package llm

import (
	"context"
	"errors"
)

var ErrModelUnavailable = errors.New("language model is not configured")

// Model sends one prompt and returns the raw text answer. Implementations
// make a single attempt and never retry.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
