package scoring

import (
	"context"

	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/internal/parsing"
)

// FormatScorer adapts the parser's structural compliance check to the
// Scorer contract. The rubric treats it as an opaque scorer.
type FormatScorer struct {
	parser *parsing.TagParser
}

// NewFormatScorer builds the format scorer over the given parser.
func NewFormatScorer(parser *parsing.TagParser) *FormatScorer {
	return &FormatScorer{parser: parser}
}

// Name implements Scorer.
func (s *FormatScorer) Name() string { return NameFormat }

// Score implements Scorer.
func (s *FormatScorer) Score(_ context.Context, completion domain.Completion, _ domain.Sample) float64 {
	return s.parser.FormatReward(completion.LastContent())
}
