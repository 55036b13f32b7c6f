package scoring

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/modelrisk/mrmeval/internal/parsing"
)

func TestFormatScorer(t *testing.T) {
	ctx := context.Background()
	scorer := NewFormatScorer(parsing.NewResponseParser())
	sample := sampleRequiring("[SR11-7]")

	t.Run("fully tagged response scores one", func(t *testing.T) {
		text := "<think>t</think><answer>a</answer><citations>[SR11-7]</citations>"
		assert.InDelta(t, 1.0, scorer.Score(ctx, completionWith(text), sample), 1e-9)
	})

	t.Run("untagged response scores zero", func(t *testing.T) {
		assert.Zero(t, scorer.Score(ctx, completionWith("prose"), sample))
	})
}
