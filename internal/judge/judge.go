// Package judge wraps the external LLM call used as a holistic
// correctness scorer. It issues one call per scored completion and maps
// every failure mode to a score of zero: a hung or broken judge degrades
// the reward signal, it never aborts an evaluation run.
package judge

import (
	"context"
	"errors"

	"github.com/modelrisk/mrmeval/internal/domain"
)

// Judge errors. These stay inside the package boundary: the scorer
// wrapper converts them to a zero score.
var (
	// ErrEmptyResponse indicates the provider returned no content.
	ErrEmptyResponse = errors.New("judge returned empty response")

	// ErrNoChoices indicates the provider response carried no choices.
	ErrNoChoices = errors.New("judge response has no choices")
)

// Request carries everything the judge needs to grade one completion:
// the question, the policy's completion, the canonical answer, and any
// running evaluation state the harness threads through. State is opaque
// to the core; it is forwarded, never read.
type Request struct {
	Question   string            `json:"question"`
	Completion domain.Completion `json:"completion"`
	Answer     string            `json:"answer"`
	State      map[string]any    `json:"state,omitempty"`
}

// Judge issues a single external grading call and returns the raw
// response text. The response is expected to begin with a numeric or
// yes/no signal; parsing is the normalizer's job, not the judge's.
type Judge interface {
	Judge(ctx context.Context, req Request) (string, error)
}

// JudgeFunc adapts a function to the Judge interface.
type JudgeFunc func(ctx context.Context, req Request) (string, error)

// Judge implements Judge.
func (f JudgeFunc) Judge(ctx context.Context, req Request) (string, error) {
	return f(ctx, req)
}
