package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGemini_RequiresAPIKey(t *testing.T) {
	g, err := NewGemini(context.Background(), "", "")

	require.ErrorIs(t, err, ErrModelUnavailable)
	assert.Nil(t, g)
}

func TestUnavailable(t *testing.T) {
	var m Model = Unavailable{}

	out, err := m.Generate(context.Background(), "prompt")

	assert.ErrorIs(t, err, ErrModelUnavailable)
	assert.Empty(t, out)
}
