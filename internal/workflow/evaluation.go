// Package workflow orchestrates completion scoring using Temporal
// workflows. The harness owns everything the scoring core does not:
// retry policy, timeouts for the judge call, and fan-out across items.
package workflow

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"

	"github.com/modelrisk/mrmeval/internal/domain"
)

// ScoreCompletionActivity is the registered name of the scoring activity.
const ScoreCompletionActivity = "ScoreCompletion"

// Activity timing defaults. The start-to-close timeout bounds a single
// judge call plus deterministic scoring; a hung judge is cut off here,
// not inside the scoring core.
const (
	activityTimeout   = 2 * time.Minute
	heartbeatTimeout  = 30 * time.Second
	retryInitialDelay = time.Second
	retryMaxDelay     = time.Minute
	retryMaxAttempts  = 3
)

// EvaluationWorkflow scores every item of the request in order and
// returns the per-item breakdowns with the mean reward. All workflow
// code uses workflow-safe APIs only; items are scored sequentially to
// keep replay deterministic and the reward audit trail ordered.
func EvaluationWorkflow(
	ctx workflow.Context,
	req domain.EvaluationRequest,
) (*domain.EvaluationResult, error) {
	// Version gate enables safe evolution and backward compatibility.
	const currentVersion = 1
	_ = workflow.GetVersion(ctx, "evaluation.v", workflow.DefaultVersion, currentVersion)

	if err := req.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid evaluation request",
			"Validation",
			err,
		)
	}

	ao := workflow.ActivityOptions{
		StartToCloseTimeout: activityTimeout,
		HeartbeatTimeout:    heartbeatTimeout,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    retryInitialDelay,
			BackoffCoefficient: 2.0,
			MaximumInterval:    retryMaxDelay,
			MaximumAttempts:    retryMaxAttempts,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, ao)

	breakdowns := make([]domain.RewardBreakdown, 0, len(req.Items))
	for i, item := range req.Items {
		input := domain.ScoreCompletionInput{
			EvaluationID: req.ID,
			ItemIndex:    i,
			Item:         item,
		}

		var output domain.ScoreCompletionOutput
		if err := workflow.ExecuteActivity(ctx, ScoreCompletionActivity, input).Get(ctx, &output); err != nil {
			return nil, err
		}
		breakdowns = append(breakdowns, output.Breakdown)
	}

	result := &domain.EvaluationResult{
		ID:         req.ID,
		Breakdowns: breakdowns,
		MeanReward: domain.MeanReward(breakdowns),
	}
	if err := result.Validate(); err != nil {
		return nil, temporal.NewNonRetryableApplicationError(
			"invalid evaluation result",
			"Validation",
			err,
		)
	}
	return result, nil
}
