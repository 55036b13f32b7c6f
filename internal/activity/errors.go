package activity

import (
	"errors"
	"fmt"

	"go.temporal.io/sdk/temporal"
)

// ErrEnvironmentMissing indicates the activities were constructed
// without an assembled environment. Non-retryable: retrying cannot
// conjure an environment.
var ErrEnvironmentMissing = errors.New("evaluation environment not initialized")

// nonRetryable wraps an error as a non-retryable Temporal application
// error with operation context.
func nonRetryable(op string, err error, msg string) error {
	return temporal.NewNonRetryableApplicationError(
		fmt.Sprintf("%s: %s", op, msg),
		"NonRetryable",
		err,
	)
}
