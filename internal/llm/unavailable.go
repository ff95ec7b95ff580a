package llm

import "context"

// Unavailable is used when no API key is configured. Every call fails, which
// keeps the rest of the service usable.
type Unavailable struct{}

func (Unavailable) Generate(ctx context.Context, prompt string) (string, error) {
	return "", ErrModelUnavailable
}
