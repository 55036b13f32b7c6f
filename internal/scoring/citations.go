package scoring

import (
	"context"

	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/internal/parsing"
)

// extraTokenPenalty is subtracted from the coverage score for every
// bracketed token cited beyond the required set when strict mode is on.
// It discourages spraying citations to game coverage.
const extraTokenPenalty = 0.1

// CoverageScorer rewards the fraction of required citation tokens found
// inside the <citations> block.
//
// A required token counts as a hit when it occurs as a case-insensitive
// substring of the block, so a short token matching inside an unrelated
// longer bracketed token still counts. That looseness is intentional and
// load-bearing; see the coverage tests before changing it.
type CoverageScorer struct {
	parser *parsing.TagParser

	// Strict enables the extra-token penalty.
	Strict bool
}

// NewCoverageScorer builds a coverage scorer over the given parser with
// strict mode enabled, matching the production rubric.
func NewCoverageScorer(parser *parsing.TagParser) *CoverageScorer {
	return &CoverageScorer{parser: parser, Strict: true}
}

// Name implements Scorer.
func (s *CoverageScorer) Name() string { return NameCoverage }

// Score implements Scorer.
//
// With an empty required set and no citations block the score is 1.0:
// there was nothing to cite and nothing was cited. Otherwise the score is
// hits/max(1,|required|), with the strict penalty applied afterwards and
// the result floored at 0.
func (s *CoverageScorer) Score(_ context.Context, completion domain.Completion, sample domain.Sample) float64 {
	text := completion.LastContent()
	block := s.parser.Extract(parsing.FieldCitations, text)
	required := sample.Info.RequiredCitations

	if len(required) == 0 && block == "" {
		return 1.0
	}

	hits := 0
	for _, tok := range required {
		if parsing.ContainsFold(block, tok) {
			hits++
		}
	}

	denom := len(required)
	if denom < 1 {
		denom = 1
	}
	score := float64(hits) / float64(denom)

	if s.Strict {
		requiredSet := make(map[string]struct{}, len(required))
		for _, tok := range required {
			requiredSet[tok] = struct{}{}
		}
		seen := make(map[string]struct{})
		extras := 0
		for _, tok := range parsing.BracketTokens(block) {
			if _, dup := seen[tok]; dup {
				continue
			}
			seen[tok] = struct{}{}
			if _, ok := requiredSet[tok]; !ok {
				extras++
			}
		}
		score -= extraTokenPenalty * float64(extras)
		if score < 0 {
			score = 0
		}
	}

	return domain.ClampScore(score)
}

// AllowedOnlyScorer is the binary allowlist check: 1.0 when the
// <citations> block cites at least one token and every cited token is in
// the approved set, otherwise 0.0. No block or an empty block is 0.0.
// There is no partial credit.
type AllowedOnlyScorer struct {
	parser  *parsing.TagParser
	allowed domain.AllowedCitations
}

// NewAllowedOnlyScorer builds the allowlist scorer with an explicitly
// injected allowed set. An empty set rejects everything cited.
func NewAllowedOnlyScorer(parser *parsing.TagParser, allowed domain.AllowedCitations) *AllowedOnlyScorer {
	return &AllowedOnlyScorer{parser: parser, allowed: allowed}
}

// Name implements Scorer.
func (s *AllowedOnlyScorer) Name() string { return NameAllowedOnly }

// Score implements Scorer.
func (s *AllowedOnlyScorer) Score(_ context.Context, completion domain.Completion, _ domain.Sample) float64 {
	text := completion.LastContent()
	if !s.parser.Has(parsing.FieldCitations, text) {
		return 0.0
	}

	cited := parsing.BracketTokens(s.parser.Extract(parsing.FieldCitations, text))
	if len(cited) == 0 {
		return 0.0
	}

	for _, tok := range cited {
		if !s.allowed.Contains(tok) {
			return 0.0
		}
	}
	return 1.0
}
