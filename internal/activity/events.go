package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/pkg/activity"
	"github.com/modelrisk/mrmeval/pkg/events"
)

// Event metadata for scoring events.
const (
	// EventTypeCompletionScored is emitted once per scored completion.
	EventTypeCompletionScored = "scoring.completion_scored"

	eventSource  = "scoring-activity"
	eventVersion = "1.0.0"
)

// completionScoredPayload is the event payload for a scored completion.
type completionScoredPayload struct {
	EvaluationID string                 `json:"evaluation_id"`
	ItemIndex    int                    `json:"item_index"`
	Breakdown    domain.RewardBreakdown `json:"breakdown"`
}

// emitCompletionScored emits the scored event with a deterministic
// idempotency key so workflow retries dedupe downstream.
func (a *Activities) emitCompletionScored(
	ctx context.Context,
	input domain.ScoreCompletionInput,
	breakdown domain.RewardBreakdown,
) {
	wfCtx := a.GetWorkflowContext(ctx)

	payload, err := json.Marshal(completionScoredPayload{
		EvaluationID: input.EvaluationID,
		ItemIndex:    input.ItemIndex,
		Breakdown:    breakdown,
	})
	if err != nil {
		activity.SafeLogError(ctx, "Failed to marshal completion scored payload",
			"evaluation_id", input.EvaluationID, "error", err)
		return
	}

	envelope := events.Envelope{
		ID:        uuid.New().String(),
		Type:      EventTypeCompletionScored,
		Source:    eventSource,
		Version:   eventVersion,
		Timestamp: time.Now(),
		IdempotencyKey: fmt.Sprintf("%s:%s:%d",
			wfCtx.WorkflowID, input.EvaluationID, input.ItemIndex),
		WorkflowID: wfCtx.WorkflowID,
		RunID:      wfCtx.RunID,
		Payload:    payload,
	}

	a.EmitEventSafe(ctx, envelope, "completion scored")
}
