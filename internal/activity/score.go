// Package activity implements the Temporal activities of the evaluation
// harness. The single scoring activity wraps the assembled environment:
// validate input, evaluate, validate output, emit the scored event.
package activity

import (
	"context"

	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/internal/env"
	"github.com/modelrisk/mrmeval/pkg/activity"
)

// Activities bundles the scoring activity with shared base
// infrastructure for event emission and safe logging.
type Activities struct {
	activity.BaseActivities

	environment *env.Environment
}

// NewActivities creates the activity set over an assembled environment.
func NewActivities(base activity.BaseActivities, environment *env.Environment) *Activities {
	return &Activities{BaseActivities: base, environment: environment}
}

// ScoreCompletion scores one completion against its sample under the
// environment's recipe. Judge failures never surface here: the judge
// scorer degrades to zero inside the rubric, so the activity only fails
// on contract violations.
func (a *Activities) ScoreCompletion(
	ctx context.Context,
	input domain.ScoreCompletionInput,
) (*domain.ScoreCompletionOutput, error) {
	if a.environment == nil {
		return nil, nonRetryable("ScoreCompletion", ErrEnvironmentMissing, "missing environment")
	}
	if err := input.Validate(); err != nil {
		return nil, nonRetryable("ScoreCompletion", err, "invalid input")
	}

	a.RecordHeartbeat(ctx, input.EvaluationID, input.ItemIndex)

	breakdown := a.environment.Evaluate(ctx, input.Item.Sample, input.Item.Completion)

	output := &domain.ScoreCompletionOutput{Breakdown: breakdown}
	if err := output.Validate(); err != nil {
		return nil, nonRetryable("ScoreCompletion", err, "invalid output")
	}

	a.emitCompletionScored(ctx, input, breakdown)

	return output, nil
}
