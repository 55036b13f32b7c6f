package domain

// A Score is a float constrained to [0.0, 1.0], produced independently by
// each scorer and never mutated after creation. ClampScore is the single
// place where out-of-range values are forced back into bounds.

// ClampScore forces a value into the valid score range [0, 1].
func ClampScore(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// ScorerScore records one scorer's contribution to a reward: the raw
// score in [0,1], the configured weight, and the resulting weighted value.
type ScorerScore struct {
	Name     string  `json:"name"`
	Score    float64 `json:"score" validate:"min=0,max=1"`
	Weight   float64 `json:"weight" validate:"min=0"`
	Weighted float64 `json:"weighted"`
}

// RewardBreakdown is the full audit record for one scored completion:
// every scorer's raw and weighted score plus the final reward. The final
// reward is the sum of the weighted values with no renormalization, so it
// ranges over [0, sum of weights] rather than [0, 1].
type RewardBreakdown struct {
	// Recipe names the composition strategy that produced this reward.
	Recipe Recipe `json:"recipe" validate:"required"`

	// Scores lists per-scorer results in rubric order.
	Scores []ScorerScore `json:"scores" validate:"required,dive"`

	// Reward is the final weighted sum across all rubrics.
	Reward float64 `json:"reward" validate:"min=0"`
}

// Validate checks if the breakdown meets all structural requirements.
func (b *RewardBreakdown) Validate() error { return validate.Struct(b) }

// Get returns the raw score recorded for a named scorer and whether it
// was present in the breakdown.
func (b *RewardBreakdown) Get(name string) (float64, bool) {
	for _, s := range b.Scores {
		if s.Name == name {
			return s.Score, true
		}
	}
	return 0, false
}

// WeightTotal returns the sum of configured weights, the upper bound of
// the reward for this breakdown.
func (b *RewardBreakdown) WeightTotal() float64 {
	var total float64
	for _, s := range b.Scores {
		total += s.Weight
	}
	return total
}
