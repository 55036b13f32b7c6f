// Package worker exposes helpers to register the evaluation workflow and
// activities with a Temporal worker.
package worker

import (
	sdkworker "go.temporal.io/sdk/worker"

	scoringactivity "github.com/modelrisk/mrmeval/internal/activity"
	"github.com/modelrisk/mrmeval/internal/env"
	"github.com/modelrisk/mrmeval/internal/workflow"
	"github.com/modelrisk/mrmeval/pkg/activity"
	"github.com/modelrisk/mrmeval/pkg/events"
)

// RegisterAll registers the evaluation workflow and scoring activity
// with the Temporal worker. Call once during worker initialization
// before starting the worker; registration is not thread-safe.
func RegisterAll(w sdkworker.Worker, environment *env.Environment) {
	eventSink := events.NewNoOpEventSink()
	base := activity.NewBaseActivities(eventSink)

	activities := scoringactivity.NewActivities(base, environment)

	w.RegisterWorkflow(workflow.EvaluationWorkflow)
	w.RegisterActivity(activities.ScoreCompletion)
}
