package env

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/modelrisk/mrmeval/internal/configuration"
	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/internal/judge"
	"github.com/modelrisk/mrmeval/internal/scoring"
)

const testDataset = `{"prompt":"What is effective challenge?","answer":"Critical analysis by objective, informed parties.","info":{"required_citations":["[SR11-7]"],"difficulty":"easy"}}
{"prompt":"Who owns model risk?","answer":"The board and senior management.","info":{"required_citations":["[SR11-7]","[OCC-Handbook]"],"difficulty":"medium"}}
`

const testSources = `{
	"[SR11-7]": {"title": "Supervisory Guidance on Model Risk Management", "org": "FRB/OCC", "year": 2011},
	"[OCC-Handbook]": {"title": "Model Risk Management", "org": "OCC", "year": 2021}
}`

// writeFixtures lays the dataset and source registry into a temp dir and
// returns a config pointing at them.
func writeFixtures(t *testing.T) *configuration.Config {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dataset.jsonl"), []byte(testDataset), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sources.json"), []byte(testSources), 0o600))

	cfg := configuration.DefaultConfig()
	cfg.Dataset.Path = filepath.Join(dir, "dataset.jsonl")
	cfg.Dataset.SourcesPath = filepath.Join(dir, "sources.json")
	return cfg
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLoadDeterministic(t *testing.T) {
	cfg := writeFixtures(t)
	environment, err := Load(Options{Config: cfg, Logger: quietLogger()})
	require.NoError(t, err)

	t.Run("samples carry the system prompt and question", func(t *testing.T) {
		samples := environment.Samples()
		require.Len(t, samples, 2)

		first := samples[0]
		require.Len(t, first.Prompt, 2)
		assert.Equal(t, domain.RoleSystem, first.Prompt[0].Role)
		assert.Equal(t, environment.SystemPrompt(), first.Prompt[0].Content)
		assert.Equal(t, domain.RoleUser, first.Prompt[1].Role)
		assert.Equal(t, "What is effective challenge?", first.Question())
		assert.NoError(t, first.Validate())
	})

	t.Run("system prompt names the approved tokens", func(t *testing.T) {
		prompt := environment.SystemPrompt()
		assert.Contains(t, prompt, "bank supervision analyst")
		assert.Contains(t, prompt, "<think>")
		assert.Contains(t, prompt, "[SR11-7]")
		assert.Contains(t, prompt, "[OCC-Handbook]")
	})

	t.Run("allowlist comes from the registry keys", func(t *testing.T) {
		assert.Equal(t, 2, environment.Allowed().Len())
		assert.True(t, environment.Allowed().Contains("[SR11-7]"))
	})

	t.Run("recipe defaults to deterministic", func(t *testing.T) {
		assert.Equal(t, domain.RecipeDeterministic, environment.Recipe())
	})
}

func TestEvaluateDeterministic(t *testing.T) {
	ctx := context.Background()
	cfg := writeFixtures(t)
	environment, err := Load(Options{Config: cfg, Logger: quietLogger()})
	require.NoError(t, err)
	sample := environment.Samples()[0]

	t.Run("short cited answer earns coverage but not length", func(t *testing.T) {
		completion := domain.Completion{{
			Role:    domain.RoleAssistant,
			Content: "<answer>Short.</answer><citations>[SR11-7]</citations>",
		}}

		breakdown := environment.Evaluate(ctx, sample, completion)

		coverage, ok := breakdown.Get(scoring.NameCoverage)
		require.True(t, ok)
		assert.InDelta(t, 1.0, coverage, 1e-9)

		allowedOnly, ok := breakdown.Get(scoring.NameAllowedOnly)
		require.True(t, ok)
		assert.InDelta(t, 1.0, allowedOnly, 1e-9)

		length, ok := breakdown.Get(scoring.NameLength)
		require.True(t, ok)
		assert.Zero(t, length)

		assert.Equal(t, domain.RecipeDeterministic, breakdown.Recipe)
		require.NoError(t, breakdown.Validate())
	})

	t.Run("empty completion scores zero", func(t *testing.T) {
		breakdown := environment.Evaluate(ctx, sample, domain.Completion{})
		assert.Zero(t, breakdown.Reward)
	})
}

func TestLoadJudgeRecipes(t *testing.T) {
	ctx := context.Background()

	t.Run("judge_only uses the injected judge", func(t *testing.T) {
		cfg := writeFixtures(t)
		cfg.Recipe = "judge_only"
		cfg.Judge.Weight = 0.5

		environment, err := Load(Options{
			Config: cfg,
			Judge: judge.JudgeFunc(func(context.Context, judge.Request) (string, error) {
				return "8", nil
			}),
			Logger: quietLogger(),
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RecipeJudgeOnly, environment.Recipe())

		breakdown := environment.Evaluate(ctx, environment.Samples()[0], domain.Completion{
			{Role: domain.RoleAssistant, Content: "<answer>anything</answer>"},
		})
		require.Len(t, breakdown.Scores, 1)
		assert.InDelta(t, 0.4, breakdown.Reward, 1e-9)
	})

	t.Run("judge failure degrades the reward to zero", func(t *testing.T) {
		cfg := writeFixtures(t)
		cfg.Recipe = "judge_only"

		environment, err := Load(Options{
			Config: cfg,
			Judge: judge.JudgeFunc(func(context.Context, judge.Request) (string, error) {
				return "", errors.New("provider unavailable")
			}),
			Logger: quietLogger(),
		})
		require.NoError(t, err)

		breakdown := environment.Evaluate(ctx, environment.Samples()[0], domain.Completion{
			{Role: domain.RoleAssistant, Content: "<answer>anything</answer>"},
		})
		assert.Zero(t, breakdown.Reward)
	})

	t.Run("hybrid combines light compliance with the judge", func(t *testing.T) {
		cfg := writeFixtures(t)
		cfg.Recipe = "hybrid"

		environment, err := Load(Options{
			Config: cfg,
			Judge: judge.JudgeFunc(func(context.Context, judge.Request) (string, error) {
				return "yes", nil
			}),
			Logger: quietLogger(),
		})
		require.NoError(t, err)

		breakdown := environment.Evaluate(ctx, environment.Samples()[0], domain.Completion{
			{Role: domain.RoleAssistant, Content: "<think>t</think><answer>a</answer><citations>[SR11-7]</citations>"},
		})
		require.Len(t, breakdown.Scores, 2)
		assert.InDelta(t, 1.1, breakdown.Reward, 1e-9)
	})

	t.Run("judge recipe without a resolvable API key fails to load", func(t *testing.T) {
		cfg := writeFixtures(t)
		cfg.Recipe = "judge_only"
		cfg.Judge.APIKey = ""
		cfg.Judge.APIKeyEnv = "MRMEVAL_TEST_UNSET_KEY"

		_, err := Load(Options{Config: cfg, Logger: quietLogger()})
		assert.ErrorIs(t, err, configuration.ErrMissingAPIKey)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("unknown recipe", func(t *testing.T) {
		cfg := writeFixtures(t)
		cfg.Recipe = "ensemble"
		_, err := Load(Options{Config: cfg, Logger: quietLogger()})
		assert.ErrorIs(t, err, domain.ErrUnknownRecipe)
	})

	t.Run("unknown split", func(t *testing.T) {
		cfg := writeFixtures(t)
		cfg.Dataset.Split = "validation"
		_, err := Load(Options{Config: cfg, Logger: quietLogger()})
		assert.Error(t, err)
	})

	t.Run("missing dataset", func(t *testing.T) {
		cfg := writeFixtures(t)
		cfg.Dataset.Path = filepath.Join(t.TempDir(), "absent.jsonl")
		_, err := Load(Options{Config: cfg, Logger: quietLogger()})
		assert.Error(t, err)
	})

	t.Run("missing registry still loads with the fallback prompt", func(t *testing.T) {
		cfg := writeFixtures(t)
		cfg.Dataset.SourcesPath = filepath.Join(t.TempDir(), "absent.json")

		environment, err := Load(Options{Config: cfg, Logger: quietLogger()})
		require.NoError(t, err)
		assert.Zero(t, environment.Allowed().Len())
		assert.Contains(t, environment.SystemPrompt(), "[SR11-7], [OCC-Handbook]")
	})
}
