package parsing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagParserExtract(t *testing.T) {
	p := NewResponseParser()

	t.Run("extracts inner content of each block", func(t *testing.T) {
		text := "<think>step by step</think><answer>Banks must validate models.</answer><citations>[SR11-7]</citations>"

		assert.Equal(t, "step by step", p.Extract(FieldThink, text))
		assert.Equal(t, "Banks must validate models.", p.Extract(FieldAnswer, text))
		assert.Equal(t, "[SR11-7]", p.Extract(FieldCitations, text))
	})

	t.Run("matching is case-insensitive", func(t *testing.T) {
		text := "<ANSWER>upper</ANSWER>"
		assert.Equal(t, "upper", p.Extract(FieldAnswer, text))
	})

	t.Run("content spans newlines", func(t *testing.T) {
		text := "<answer>line one\nline two\n</answer>"
		assert.Equal(t, "line one\nline two\n", p.Extract(FieldAnswer, text))
	})

	t.Run("first occurrence wins", func(t *testing.T) {
		text := "<answer>first</answer><answer>second</answer>"
		assert.Equal(t, "first", p.Extract(FieldAnswer, text))
	})

	t.Run("absent block is empty string, not an error", func(t *testing.T) {
		assert.Empty(t, p.Extract(FieldCitations, "no markup at all"))
		assert.Empty(t, p.Extract(FieldCitations, "<citations>unclosed"))
	})

	t.Run("unknown field is empty string", func(t *testing.T) {
		assert.Empty(t, p.Extract("verdict", "<verdict>x</verdict>"))
	})
}

func TestTagParserAnswerOrWhole(t *testing.T) {
	p := NewResponseParser()

	t.Run("prefers answer block", func(t *testing.T) {
		assert.Equal(t, "inner", p.AnswerOrWhole("prefix <answer>inner</answer> suffix"))
	})

	t.Run("falls back to whole text", func(t *testing.T) {
		assert.Equal(t, "bare response", p.AnswerOrWhole("bare response"))
	})
}

func TestTagParserFormatReward(t *testing.T) {
	p := NewResponseParser()

	t.Run("all blocks present and ordered scores 1", func(t *testing.T) {
		text := "<think>t</think><answer>a</answer><citations>[SR11-7]</citations>"
		assert.InDelta(t, 1.0, p.FormatReward(text), 1e-9)
	})

	t.Run("each present block earns an equal share", func(t *testing.T) {
		text := "<answer>a</answer><citations>[SR11-7]</citations>"
		assert.InDelta(t, 2.0/3.0, p.FormatReward(text), 1e-9)

		assert.InDelta(t, 1.0/3.0, p.FormatReward("<answer>a</answer>"), 1e-9)
	})

	t.Run("no markup scores 0", func(t *testing.T) {
		assert.Zero(t, p.FormatReward("plain prose"))
	})

	t.Run("out-of-order blocks keep half credit", func(t *testing.T) {
		text := "<citations>[SR11-7]</citations><answer>a</answer><think>t</think>"
		assert.InDelta(t, 0.5, p.FormatReward(text), 1e-9)
	})
}

func TestWordCount(t *testing.T) {
	assert.Zero(t, WordCount(""))
	assert.Equal(t, 1, WordCount("Short."))
	assert.Equal(t, 4, WordCount("model risk management 101"))
	assert.Equal(t, 2, WordCount("  spaced\n\nout  "))
}

func TestBracketTokens(t *testing.T) {
	tokens := BracketTokens("see [SR11-7] and [OCC-Handbook], not (parens)")
	require.Len(t, tokens, 2)
	assert.Equal(t, []string{"[SR11-7]", "[OCC-Handbook]"}, tokens)

	assert.Empty(t, BracketTokens("no brackets here"))
	assert.Empty(t, BracketTokens("[]"))
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("cites [sr11-7] inline", "[SR11-7]"))
	assert.False(t, ContainsFold("cites [occ-handbook]", "[SR11-7]"))
}
