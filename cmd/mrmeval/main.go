// Command mrmeval runs the MRM answer-evaluation pipeline: either as a
// Temporal worker serving the evaluation workflow, or as an offline
// scorer for a file of completions.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
