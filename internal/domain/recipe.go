package domain

import (
	"fmt"
	"strings"
)

// Recipe selects how scorer rubrics are composed into one reward.
// The set is closed: each variant has an explicit composition in the
// rubric package rather than a runtime string switch.
type Recipe string

const (
	// RecipeDeterministic combines the format, citation-coverage,
	// allowed-citations-only, and length scorers with fixed weights,
	// optionally appending the judge scorer.
	RecipeDeterministic Recipe = "deterministic"

	// RecipeJudgeOnly scores with the LLM judge alone.
	RecipeJudgeOnly Recipe = "judge_only"

	// RecipeHybrid pairs a light format-compliance rubric with a
	// dominant judge rubric.
	RecipeHybrid Recipe = "hybrid"
)

// String returns the string representation of the recipe.
func (r Recipe) String() string { return string(r) }

// ParseRecipe converts a configuration string into a Recipe.
// Unknown names are an error at the configuration boundary rather than a
// silent default.
func ParseRecipe(s string) (Recipe, error) {
	switch Recipe(strings.ToLower(strings.TrimSpace(s))) {
	case RecipeDeterministic:
		return RecipeDeterministic, nil
	case RecipeJudgeOnly:
		return RecipeJudgeOnly, nil
	case RecipeHybrid:
		return RecipeHybrid, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownRecipe, s)
	}
}
