// Package feedback builds the coaching prompt sent to the language model and
// turns its answer into a numbered feedback entry.
package feedback

import "strings"

// DefaultUserMessage is sent when the writer gives no instruction of their own.
const DefaultUserMessage = "現在の日記下書きを確認し、日本語の言い回しと文の流れについて改善点を提案してください。"

var rules = []string{
	"あなたは日本語で日記を書く学習者のための作文コーチです。",
	"ルール:",
	"1) 日記全体を書き直さないこと。",
	"2) 改善の提案、表現の修正、文の流れへの助言だけを行うこと。",
	"3) 指摘は最大6つまでに絞ること。",
	"4) 各指摘は『課題 -> 提案 -> 短い例文（日本語）』の形で書くこと。",
	"5) 文法、自然さ、ニュアンスを優先して指摘すること。",
	"6) 最後に『今日の学習ポイント』を1行でまとめること。",
	"7) 見出しと箇条書きを使ったMarkdownで構造化して答えること。",
}

// Rules returns the constant rule preamble.
func Rules() string {
	return strings.Join(rules, "\n")
}

// ResolveUserMessage returns the trimmed message, or DefaultUserMessage when it is blank.
func ResolveUserMessage(userMessage string) string {
	trimmed := strings.TrimSpace(userMessage)
	if trimmed == "" {
		return DefaultUserMessage
	}
	return trimmed
}

// BuildPrompt composes the rule preamble, the resolved instruction and the
// draft, in that order. content is embedded as is.
func BuildPrompt(content string, userMessage string) string {
	var b strings.Builder
	b.WriteString(Rules())
	b.WriteString("\n\n[ユーザーの相談] ")
	b.WriteString(ResolveUserMessage(userMessage))
	b.WriteString("\n\n[執筆中の日記本文]\n")
	b.WriteString(content)
	return b.String()
}
