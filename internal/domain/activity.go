package domain

// Operation contracts for the scoring activity. Inputs and outputs are
// validated at the activity boundary so malformed payloads fail fast as
// non-retryable errors instead of producing silent garbage rewards.

// ScoreCompletionInput is the input for the ScoreCompletion operation:
// one sample/completion pair scored under the environment's recipe.
type ScoreCompletionInput struct {
	// EvaluationID identifies the evaluation run this item belongs to.
	EvaluationID string `json:"evaluation_id" validate:"required,uuid"`

	// ItemIndex is the item's position in the evaluation request.
	ItemIndex int `json:"item_index" validate:"min=0"`

	// Item is the sample/completion pair to score.
	Item EvaluationItem `json:"item" validate:"required"`
}

// Validate checks if the input meets the operation contract.
func (i *ScoreCompletionInput) Validate() error { return validate.Struct(i) }

// ScoreCompletionOutput is the output of the ScoreCompletion operation.
type ScoreCompletionOutput struct {
	// Breakdown is the full per-scorer reward record for the item.
	Breakdown RewardBreakdown `json:"breakdown" validate:"required"`
}

// Validate checks if the output meets the operation contract.
func (o *ScoreCompletionOutput) Validate() error { return validate.Struct(o) }
