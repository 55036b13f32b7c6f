package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeJudgeText(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"digit-free yes", "yes", 1.0},
		{"digit-free yes in prose", "Yes, this is fully supported.", 1.0},
		{"digit-free no", "no, missing citations", 0.0},
		{"yes and no together falls through to numeric", "yes and no", 0.0},
		{"plain unit-scale decimal", "0.42", 0.42},
		{"ten-point scale with prose", "Score: 8.5 — mostly correct", 0.85},
		{"integer on ten-point scale", "7", 0.7},
		{"boundary value ten", "10", 1.0},
		{"above ten clamps", "15", 1.0},
		{"exactly one stays one", "1", 1.0},
		{"exponent notation", "5e-1", 0.5},
		{"negative clamps to zero", "-3", 0.0},
		{"leading sign", "+0.9", 0.9},
		{"no signal at all", "", 0.0},
		{"pure prose without verdict", "the answer discusses governance", 0.0},
		{"first numeric token wins", "0.2 then 0.9", 0.2},
		{"yes with digits defers to the number", "yes, 0.6 overall", 0.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NormalizeJudgeText(tt.text), 1e-9)
		})
	}
}

func TestNormalizeJudgeTextBounds(t *testing.T) {
	// The normalizer's output must stay in [0,1] for arbitrary text.
	inputs := []string{
		"9999999", "-9999999", "1e300", "-1e300", "0.0", "1.0", "10.0001",
		"score -0.5", "NO  ", "  YES", "nonsense [SR11-7]",
	}
	for _, text := range inputs {
		got := NormalizeJudgeText(text)
		assert.GreaterOrEqual(t, got, 0.0, "input %q", text)
		assert.LessOrEqual(t, got, 1.0, "input %q", text)
	}
}
