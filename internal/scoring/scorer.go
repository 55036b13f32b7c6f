// Package scoring implements the deterministic reward functions for the
// MRM answer-grading rubric and the normalizer that converts free-form
// judge output into a score.
//
// Every scorer here is a pure function of (completion, sample metadata)
// with no shared mutable state and a result in [0,1]. Scorers never fail:
// malformed or missing markup is a scoreable state that degrades the
// score, it is never an error. The only impure scorer in the system is
// the judge wrapper in the judge package, which satisfies the same
// contract and maps its failures to 0.
package scoring

import (
	"context"

	"github.com/modelrisk/mrmeval/internal/domain"
)

// Canonical scorer names used in reward breakdowns.
const (
	NameFormat      = "format"
	NameCoverage    = "citation_coverage"
	NameAllowedOnly = "allowed_citations_only"
	NameLength      = "length"
	NameJudge       = "llm_judge"
)

// Scorer evaluates one completion against one sample's metadata and
// returns a score in [0,1]. Implementations must tolerate any input and
// must not retain references to the completion or sample.
type Scorer interface {
	// Name identifies the scorer in reward breakdowns.
	Name() string

	// Score evaluates the completion. The context is plumbed through for
	// the judge scorer; deterministic scorers ignore it.
	Score(ctx context.Context, completion domain.Completion, sample domain.Sample) float64
}

// Func adapts a plain function into a named Scorer.
type Func struct {
	ScorerName string
	Fn         func(ctx context.Context, completion domain.Completion, sample domain.Sample) float64
}

// Name implements Scorer.
func (f Func) Name() string { return f.ScorerName }

// Score implements Scorer.
func (f Func) Score(ctx context.Context, completion domain.Completion, sample domain.Sample) float64 {
	return f.Fn(ctx, completion, sample)
}
