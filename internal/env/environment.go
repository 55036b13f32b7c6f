// Package env assembles the runnable evaluation unit: dataset samples,
// the tag-parsing contract, the citation allowlist, and the recipe's
// rubric group, wired together behind a single Evaluate entry point.
package env

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/modelrisk/mrmeval/internal/configuration"
	"github.com/modelrisk/mrmeval/internal/dataset"
	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/internal/judge"
	"github.com/modelrisk/mrmeval/internal/parsing"
	"github.com/modelrisk/mrmeval/internal/rubric"
	"github.com/modelrisk/mrmeval/internal/scoring"
)

// fallbackTokens seeds the system prompt when the source registry is
// empty, so the instruction still names the canonical MRM sources.
const fallbackTokens = "[SR11-7], [OCC-Handbook]"

// Options configures environment assembly.
type Options struct {
	// Config supplies dataset paths, recipe, and judge settings.
	// Nil uses configuration.DefaultConfig.
	Config *configuration.Config

	// Judge overrides the configured judge, mainly for tests. When nil
	// and the recipe needs a judge, an OpenAI judge is built from config.
	Judge judge.Judge

	// Logger receives structured environment and judge logs.
	Logger *slog.Logger
}

// Environment is the assembled evaluation unit. It is read-only after
// Load and safe for concurrent Evaluate calls: scorers share no mutable
// state and the allowlist is immutable.
type Environment struct {
	samples      []domain.Sample
	parser       *parsing.TagParser
	group        *rubric.Group
	allowed      domain.AllowedCitations
	systemPrompt string
	logger       *slog.Logger
}

// Load builds an environment from configuration: loads the allowlist and
// dataset, embeds the system prompt into each sample's message sequence,
// and composes the recipe's rubric group.
func Load(opts Options) (*Environment, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = configuration.DefaultConfig()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	recipe, err := domain.ParseRecipe(cfg.Recipe)
	if err != nil {
		return nil, err
	}

	split, err := dataset.ParseSplit(cfg.Dataset.Split)
	if err != nil {
		return nil, err
	}

	allowed := dataset.LoadAllowedCitations(cfg.Dataset.SourcesPath, logger)

	records, err := dataset.Load(cfg.Dataset.Path, split, cfg.Dataset.Limit)
	if err != nil {
		return nil, err
	}

	systemPrompt := buildSystemPrompt(allowed)
	samples := make([]domain.Sample, 0, len(records))
	for _, rec := range records {
		samples = append(samples, domain.Sample{
			Prompt: []domain.Message{
				{Role: domain.RoleSystem, Content: systemPrompt},
				{Role: domain.RoleUser, Content: rec.Prompt},
			},
			Answer: rec.Answer,
			Info:   rec.Info,
		})
	}

	judgeScorer, err := buildJudgeScorer(recipe, cfg.Judge, opts.Judge, logger)
	if err != nil {
		return nil, err
	}

	parser := parsing.NewResponseParser()
	group, err := rubric.Build(recipe, rubric.Deps{
		Parser:      parser,
		Allowed:     allowed,
		Judge:       judgeScorer,
		JudgeWeight: cfg.Judge.Weight,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("environment loaded",
		"samples", len(samples),
		"split", string(split),
		"recipe", recipe.String(),
		"allowed_tokens", allowed.Len(),
		"judge", judgeScorer != nil)

	return &Environment{
		samples:      samples,
		parser:       parser,
		group:        group,
		allowed:      allowed,
		systemPrompt: systemPrompt,
		logger:       logger,
	}, nil
}

// buildJudgeScorer decides whether a judge scorer is needed and builds
// one. Deterministic runs only judge when enabled; judge_only and hybrid
// always need one.
func buildJudgeScorer(recipe domain.Recipe, cfg configuration.JudgeConfig, override judge.Judge, logger *slog.Logger) (scoring.Scorer, error) {
	needed := recipe != domain.RecipeDeterministic || cfg.Enabled
	if !needed {
		return nil, nil
	}

	j := override
	if j == nil {
		oj, err := judge.NewOpenAIJudge(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("build judge for recipe %s: %w", recipe, err)
		}
		j = oj
	}
	return judge.NewScorer(j, logger), nil
}

// buildSystemPrompt renders the analyst instruction with the approved
// citation tokens.
func buildSystemPrompt(allowed domain.AllowedCitations) string {
	tokens := fallbackTokens
	if allowed.Len() > 0 {
		tokens = strings.Join(allowed.Tokens(), ", ")
	}
	return "Answer as a bank supervision analyst. Always use <think>..</think>," +
		" then <answer>..</answer>, then <citations>..</citations>. Only cite\n" +
		"approved tokens: " + tokens + "."
}

// Samples returns the loaded samples in dataset order.
func (e *Environment) Samples() []domain.Sample { return e.samples }

// Allowed returns the citation allowlist in effect.
func (e *Environment) Allowed() domain.AllowedCitations { return e.allowed }

// SystemPrompt returns the instruction embedded into every sample.
func (e *Environment) SystemPrompt() string { return e.systemPrompt }

// Recipe returns the composition strategy in effect.
func (e *Environment) Recipe() domain.Recipe { return e.group.Recipe }

// Evaluate scores one completion against one sample and returns the full
// reward breakdown. Deterministic except for the judge scorer, whose
// failures degrade to zero inside its wrapper.
func (e *Environment) Evaluate(ctx context.Context, sample domain.Sample, completion domain.Completion) domain.RewardBreakdown {
	return e.group.Evaluate(ctx, completion, sample)
}
