package domain

import (
	"time"

	"github.com/google/uuid"
)

// EvaluationItem pairs one sample with the completion a policy produced
// for it. Items are the unit of scoring.
type EvaluationItem struct {
	Sample     Sample     `json:"sample" validate:"required"`
	Completion Completion `json:"completion"`
}

// EvaluationRequest asks the harness to score a batch of completions
// under the configured recipe. Requests are immutable once created.
type EvaluationRequest struct {
	// ID uniquely identifies this evaluation run.
	ID string `json:"id" validate:"required,uuid"`

	// Items are the sample/completion pairs to score, in order.
	Items []EvaluationItem `json:"items" validate:"required,min=1,dive"`

	// RequestedAt records when the run was created.
	RequestedAt time.Time `json:"requested_at" validate:"required"`
}

// NewEvaluationRequest creates a request with a generated ID and the
// current time. Not safe inside deterministic workflow code; there, use
// MakeEvaluationRequest with workflow-supplied values.
func NewEvaluationRequest(items []EvaluationItem) (*EvaluationRequest, error) {
	return MakeEvaluationRequest(uuid.New().String(), time.Now(), items)
}

// MakeEvaluationRequest creates a request from explicit ID and timestamp
// for deterministic construction.
func MakeEvaluationRequest(id string, requestedAt time.Time, items []EvaluationItem) (*EvaluationRequest, error) {
	req := &EvaluationRequest{
		ID:          id,
		Items:       items,
		RequestedAt: requestedAt,
	}
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	return req, nil
}

// Validate checks if the request meets all operation contract requirements.
func (r *EvaluationRequest) Validate() error { return validate.Struct(r) }

// EvaluationResult is the outcome of one evaluation run: a breakdown per
// item in input order plus the mean reward across items.
type EvaluationResult struct {
	// ID echoes the request ID.
	ID string `json:"id" validate:"required,uuid"`

	// Breakdowns holds one reward breakdown per scored item.
	Breakdowns []RewardBreakdown `json:"breakdowns" validate:"required,min=1,dive"`

	// MeanReward is the arithmetic mean of item rewards.
	MeanReward float64 `json:"mean_reward" validate:"min=0"`
}

// Validate checks if the result meets all operation contract requirements.
func (r *EvaluationResult) Validate() error { return validate.Struct(r) }

// MeanReward computes the arithmetic mean of the breakdown rewards.
// Returns 0 for an empty slice.
func MeanReward(breakdowns []RewardBreakdown) float64 {
	if len(breakdowns) == 0 {
		return 0
	}
	var sum float64
	for _, b := range breakdowns {
		sum += b.Reward
	}
	return sum / float64(len(breakdowns))
}
