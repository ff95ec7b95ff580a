package feedback

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_Deterministic(t *testing.T) {
	content := "今日は天気が良かった。"

	first := BuildPrompt(content, "敬語を確認して")
	second := BuildPrompt(content, "敬語を確認して")

	assert.Equal(t, first, second)
}

func TestBuildPrompt_DefaultInstruction(t *testing.T) {
	for _, msg := range []string{"", "   ", "\n\t"} {
		prompt := BuildPrompt("本文", msg)
		assert.Contains(t, prompt, DefaultUserMessage)
	}
}

func TestBuildPrompt_UserInstructionReplacesDefault(t *testing.T) {
	prompt := BuildPrompt("本文", "  助詞の使い方を見てください  ")

	assert.Contains(t, prompt, "[ユーザーの相談] 助詞の使い方を見てください\n")
	assert.NotContains(t, prompt, DefaultUserMessage)
}

func TestBuildPrompt_Order(t *testing.T) {
	content := "一行目\n  二行目 <b>&amp;</b>  \n"
	prompt := BuildPrompt(content, "流れを見て")

	rulesAt := strings.Index(prompt, Rules())
	msgAt := strings.Index(prompt, "流れを見て")
	contentAt := strings.Index(prompt, content)

	require.Equal(t, 0, rulesAt)
	require.Greater(t, msgAt, rulesAt)
	require.Greater(t, contentAt, msgAt)
	assert.True(t, strings.HasSuffix(prompt, content))
}

func TestRules_Constant(t *testing.T) {
	a := BuildPrompt("a", "x")
	b := BuildPrompt("b", "y")

	assert.True(t, strings.HasPrefix(a, Rules()))
	assert.True(t, strings.HasPrefix(b, Rules()))
	assert.Contains(t, Rules(), "最大6つ")
	assert.Contains(t, Rules(), "今日の学習ポイント")
}
