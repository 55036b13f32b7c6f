// Package rubric combines scorer outputs into a single reward. A Rubric
// is an ordered list of (scorer, weight) pairs; a Group is an ordered
// list of rubrics whose outputs sum into the final reward.
//
// Aggregation is a weighted sum with no renormalization by weight total:
// callers own the weight scale, and the reward for any recipe is bounded
// by the sum of its configured weights. Apart from the judge scorer the
// whole computation is a deterministic function of scorer outputs and
// weights.
package rubric

import (
	"context"

	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/internal/scoring"
)

// Entry pairs a scorer with its non-negative weight. Weights are not
// required to sum to 1.
type Entry struct {
	Scorer scoring.Scorer
	Weight float64
}

// Rubric is a named, weighted collection of scorers.
type Rubric struct {
	Name    string
	Entries []Entry
}

// New builds a rubric from entries.
func New(name string, entries ...Entry) *Rubric {
	return &Rubric{Name: name, Entries: entries}
}

// Score evaluates every entry against the completion and returns the
// rubric's weighted sum along with the per-scorer records.
func (r *Rubric) Score(ctx context.Context, completion domain.Completion, sample domain.Sample) (float64, []domain.ScorerScore) {
	var sum float64
	records := make([]domain.ScorerScore, 0, len(r.Entries))
	for _, e := range r.Entries {
		raw := domain.ClampScore(e.Scorer.Score(ctx, completion, sample))
		weighted := raw * e.Weight
		sum += weighted
		records = append(records, domain.ScorerScore{
			Name:     e.Scorer.Name(),
			Score:    raw,
			Weight:   e.Weight,
			Weighted: weighted,
		})
	}
	return sum, records
}

// Group is an ordered sequence of rubrics scored together. The final
// reward is the sum of the member rubric outputs.
type Group struct {
	Recipe  domain.Recipe
	Rubrics []*Rubric
}

// Evaluate scores the completion under every rubric in order and returns
// the full breakdown with the final reward.
func (g *Group) Evaluate(ctx context.Context, completion domain.Completion, sample domain.Sample) domain.RewardBreakdown {
	var reward float64
	var scores []domain.ScorerScore
	for _, r := range g.Rubrics {
		sum, records := r.Score(ctx, completion, sample)
		reward += sum
		scores = append(scores, records...)
	}
	return domain.RewardBreakdown{
		Recipe: g.Recipe,
		Scores: scores,
		Reward: reward,
	}
}
