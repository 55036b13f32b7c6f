package scoring

import (
	"context"

	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/internal/parsing"
)

// Length scorer band boundaries, in words. The target band [60,220]
// scores 1.0 with linear ramps down to 0 at 20 words below and 280 words
// above; a soft target, not a hard cutoff.
const (
	lengthRampFloor  = 20
	lengthBandLow    = 60
	lengthBandHigh   = 220
	lengthDecayCeil  = 280
	lengthRampWidth  = lengthBandLow - lengthRampFloor
	lengthDecayWidth = lengthDecayCeil - lengthBandHigh
)

// LengthScorer rewards conciseness of the <answer> block. When the block
// is absent the whole completion text is measured instead.
type LengthScorer struct {
	parser *parsing.TagParser
}

// NewLengthScorer builds a length scorer over the given parser.
func NewLengthScorer(parser *parsing.TagParser) *LengthScorer {
	return &LengthScorer{parser: parser}
}

// Name implements Scorer.
func (s *LengthScorer) Name() string { return NameLength }

// Score implements Scorer.
func (s *LengthScorer) Score(_ context.Context, completion domain.Completion, _ domain.Sample) float64 {
	text := s.parser.AnswerOrWhole(completion.LastContent())
	words := parsing.WordCount(text)

	switch {
	case words < lengthBandLow:
		return domain.ClampScore(float64(words-lengthRampFloor) / float64(lengthRampWidth))
	case words > lengthBandHigh:
		return domain.ClampScore(float64(lengthDecayCeil-words) / float64(lengthDecayWidth))
	default:
		return 1.0
	}
}
