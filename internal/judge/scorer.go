package judge

import (
	"context"
	"log/slog"

	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/internal/scoring"
)

// Scorer adapts a Judge to the scoring contract. It is the one impure
// scorer in the pipeline: it performs an external call per completion.
// Any failure, whether network, timeout, or malformed response, becomes a
// score of 0.0 so that judge trouble never surfaces to the aggregator.
type Scorer struct {
	judge  Judge
	logger *slog.Logger

	// State is forwarded opaquely on every request.
	State map[string]any
}

// NewScorer wraps a judge for use inside a rubric.
func NewScorer(j Judge, logger *slog.Logger) *Scorer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scorer{judge: j, logger: logger}
}

// Name implements scoring.Scorer.
func (s *Scorer) Name() string { return scoring.NameJudge }

// Score implements scoring.Scorer. The judge's raw text is normalized to
// [0,1]; a failed call scores 0.0 and is logged, not propagated.
func (s *Scorer) Score(ctx context.Context, completion domain.Completion, sample domain.Sample) float64 {
	resp, err := s.judge.Judge(ctx, Request{
		Question:   sample.Question(),
		Completion: completion,
		Answer:     sample.Answer,
		State:      s.State,
	})
	if err != nil {
		s.logger.Warn("judge scorer degraded to zero", "error", err)
		return 0.0
	}
	return scoring.NormalizeJudgeText(resp)
}
