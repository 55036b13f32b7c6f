package scoring

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/modelrisk/mrmeval/internal/domain"
)

// tenPointScale is the upper bound of the judge's assumed 0-10 scale.
// Values in (1, 10] are divided by it; values above it clamp to 1.
const tenPointScale = 10.0

var (
	digitPattern   = regexp.MustCompile(`\d`)
	numericPattern = regexp.MustCompile(`[-+]?\d*\.?\d+(?:[eE][-+]?\d+)?`)
)

// NormalizeJudgeText maps raw judge response text to a score in [0,1].
// Judges answer in free prose, on a 0-1 scale, or on a 0-10 scale; this
// heuristic tolerates all three:
//
//   - digit-free "yes" (without "no") is 1.0, digit-free "no" (without
//     "yes") is 0.0;
//   - otherwise the first numeric token (sign, decimal, and exponent
//     notation supported) is taken, values in (1,10] are treated as a
//     ten-point scale, values above 10 clamp to 1;
//   - no parsable signal at all is 0.0, never an error.
func NormalizeJudgeText(text string) float64 {
	t := strings.ToLower(strings.TrimSpace(text))

	if !digitPattern.MatchString(t) {
		hasYes := strings.Contains(t, "yes")
		hasNo := strings.Contains(t, "no")
		if hasYes && !hasNo {
			return 1.0
		}
		if hasNo && !hasYes {
			return 0.0
		}
	}

	m := numericPattern.FindString(t)
	if m == "" {
		return 0.0
	}

	val, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0.0
	}

	if val > 1.0 {
		if val <= tenPointScale {
			val /= tenPointScale
		} else {
			val = 1.0
		}
	}
	return domain.ClampScore(val)
}
