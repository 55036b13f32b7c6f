package rubric

import (
	"errors"
	"fmt"

	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/internal/parsing"
	"github.com/modelrisk/mrmeval/internal/scoring"
)

// ErrJudgeRequired indicates a judge-bearing recipe was requested
// without a judge scorer.
var ErrJudgeRequired = errors.New("recipe requires a judge scorer")

// Weights of the deterministic base rubric.
const (
	// FormatWeight scales the tag-structure compliance scorer.
	FormatWeight = 0.2

	// CoverageWeight scales the required-citation coverage scorer.
	// Coverage dominates: citing the right sources is the task.
	CoverageWeight = 0.5

	// AllowedOnlyWeight scales the binary allowlist scorer.
	AllowedOnlyWeight = 0.2

	// LengthWeight scales the conciseness scorer.
	LengthWeight = 0.1

	// LightComplianceWeight is the format scorer's weight in the hybrid
	// recipe, where the judge dominates.
	LightComplianceWeight = 0.1

	// DefaultJudgeWeight applies when no judge weight is configured.
	DefaultJudgeWeight = 1.0
)

// Deps supplies the collaborators a recipe composes: the tag-parsing
// contract, the injected citation allowlist, and optionally a judge
// scorer with its weight.
type Deps struct {
	Parser  *parsing.TagParser
	Allowed domain.AllowedCitations

	// Judge is the impure judge scorer; nil disables judging where a
	// recipe allows that.
	Judge scoring.Scorer

	// JudgeWeight is the judge scorer's rubric weight; values <= 0 fall
	// back to DefaultJudgeWeight.
	JudgeWeight float64
}

// Build composes the rubric group for a recipe. Each recipe variant has
// an explicit shape:
//
//   - RecipeDeterministic: format 0.2, coverage 0.5, allowed-only 0.2,
//     length 0.1; a judge rubric is appended when Deps.Judge is set.
//   - RecipeJudgeOnly: a single judge rubric.
//   - RecipeHybrid: light compliance (format 0.1) plus the judge rubric.
//
// Judge-bearing recipes return ErrJudgeRequired when Deps.Judge is nil.
func Build(recipe domain.Recipe, deps Deps) (*Group, error) {
	weight := deps.JudgeWeight
	if weight <= 0 {
		weight = DefaultJudgeWeight
	}

	switch recipe {
	case domain.RecipeDeterministic:
		rubrics := []*Rubric{baseRubric(deps)}
		if deps.Judge != nil {
			rubrics = append(rubrics, judgeRubric(deps.Judge, weight))
		}
		return &Group{Recipe: recipe, Rubrics: rubrics}, nil

	case domain.RecipeJudgeOnly:
		if deps.Judge == nil {
			return nil, fmt.Errorf("%w: %s", ErrJudgeRequired, recipe)
		}
		return &Group{Recipe: recipe, Rubrics: []*Rubric{judgeRubric(deps.Judge, weight)}}, nil

	case domain.RecipeHybrid:
		if deps.Judge == nil {
			return nil, fmt.Errorf("%w: %s", ErrJudgeRequired, recipe)
		}
		light := New("light_compliance",
			Entry{Scorer: scoring.NewFormatScorer(deps.Parser), Weight: LightComplianceWeight},
		)
		return &Group{Recipe: recipe, Rubrics: []*Rubric{light, judgeRubric(deps.Judge, weight)}}, nil

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownRecipe, recipe)
	}
}

// baseRubric builds the deterministic compliance rubric.
func baseRubric(deps Deps) *Rubric {
	return New("base",
		Entry{Scorer: scoring.NewFormatScorer(deps.Parser), Weight: FormatWeight},
		Entry{Scorer: scoring.NewCoverageScorer(deps.Parser), Weight: CoverageWeight},
		Entry{Scorer: scoring.NewAllowedOnlyScorer(deps.Parser, deps.Allowed), Weight: AllowedOnlyWeight},
		Entry{Scorer: scoring.NewLengthScorer(deps.Parser), Weight: LengthWeight},
	)
}

// judgeRubric wraps the judge scorer in its own rubric.
func judgeRubric(j scoring.Scorer, weight float64) *Rubric {
	return New("judge", Entry{Scorer: j, Weight: weight})
}
