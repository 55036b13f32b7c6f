// Package parsing implements the tag-markup contract for completions.
// Responses are required to carry <think>, <answer>, and <citations>
// blocks, in that order, each allowing multi-line content. The parser
// extracts block contents for scoring and supplies the format-compliance
// score consumed by the rubric.
//
// Absence of a tag is a valid, scoreable state, never an error: scorers
// decide what a missing block is worth.
package parsing

import (
	"fmt"
	"regexp"
	"strings"
)

// Canonical field names for the response markup.
const (
	FieldThink     = "think"
	FieldAnswer    = "answer"
	FieldCitations = "citations"
)

// orderPenalty scales the format score when all blocks are present but
// appear out of the required order.
const orderPenalty = 0.5

// TagParser extracts delimited sections from free-form completion text.
// Matching is case-insensitive with '.' spanning newlines, and only the
// first non-overlapping occurrence of each block is used. The zero value
// is not usable; construct with NewTagParser.
type TagParser struct {
	fields   []string
	patterns map[string]*regexp.Regexp
}

// NewTagParser builds a parser for the given ordered field names.
// Field names must be plain tag identifiers such as "answer".
func NewTagParser(fields ...string) *TagParser {
	patterns := make(map[string]*regexp.Regexp, len(fields))
	for _, f := range fields {
		patterns[f] = regexp.MustCompile(fmt.Sprintf(`(?is)<%s>(.*?)</%s>`, regexp.QuoteMeta(f), regexp.QuoteMeta(f)))
	}
	return &TagParser{fields: append([]string(nil), fields...), patterns: patterns}
}

// NewResponseParser returns the parser for the required response markup:
// think, answer, citations.
func NewResponseParser() *TagParser {
	return NewTagParser(FieldThink, FieldAnswer, FieldCitations)
}

// Fields returns the ordered field names this parser recognizes.
func (p *TagParser) Fields() []string { return append([]string(nil), p.fields...) }

// Extract returns the inner content of the first occurrence of the named
// block, or the empty string if the block is absent or the field unknown.
func (p *TagParser) Extract(field, text string) string {
	pat, ok := p.patterns[field]
	if !ok {
		return ""
	}
	m := pat.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	return m[1]
}

// Has reports whether the named block occurs in the text.
func (p *TagParser) Has(field, text string) bool {
	pat, ok := p.patterns[field]
	if !ok {
		return false
	}
	return pat.MatchString(text)
}

// AnswerOrWhole returns the <answer> block content when present, else the
// whole text. Scorers that target the answer body use this fallback so an
// untagged response is still scoreable.
func (p *TagParser) AnswerOrWhole(text string) string {
	if m, ok := p.patterns[FieldAnswer]; ok {
		if sub := m.FindStringSubmatch(text); sub != nil {
			return sub[1]
		}
	}
	return text
}

// FormatReward scores structural compliance of a completion in [0,1].
// Each well-formed block contributes an equal share; when every block is
// present the required ordering is enforced, and an out-of-order response
// keeps only half credit. A response with no markup at all scores 0.
func (p *TagParser) FormatReward(text string) float64 {
	if len(p.fields) == 0 {
		return 0
	}

	var present int
	positions := make([]int, 0, len(p.fields))
	for _, f := range p.fields {
		loc := p.patterns[f].FindStringIndex(text)
		if loc == nil {
			continue
		}
		present++
		positions = append(positions, loc[0])
	}

	score := float64(present) / float64(len(p.fields))
	if present == len(p.fields) && !ordered(positions) {
		score *= orderPenalty
	}
	return score
}

// ordered reports whether block start offsets are strictly increasing.
func ordered(positions []int) bool {
	for i := 1; i < len(positions); i++ {
		if positions[i] <= positions[i-1] {
			return false
		}
	}
	return true
}

// WordCount counts word tokens in the text using a word-boundary
// tokenizer, matching runs of letters, digits, and underscores.
func WordCount(text string) int {
	return len(wordPattern.FindAllString(text, -1))
}

var wordPattern = regexp.MustCompile(`\w+`)

// BracketTokens returns every bracket-delimited token in the text, in
// order of appearance, brackets included (e.g. "[SR11-7]").
func BracketTokens(text string) []string {
	return bracketPattern.FindAllString(text, -1)
}

var bracketPattern = regexp.MustCompile(`\[[^\]]+\]`)

// ContainsFold reports whether substr occurs in s case-insensitively.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
