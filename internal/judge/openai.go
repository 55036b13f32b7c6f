package judge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"github.com/modelrisk/mrmeval/internal/configuration"
)

// judgeTemperature keeps grading as close to deterministic as the
// provider allows.
const judgeTemperature = 0.0

// chatCompleter is the slice of the OpenAI client the judge uses,
// extracted for test substitution.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIJudge grades completions through an OpenAI-compatible
// chat-completions endpoint.
type OpenAIJudge struct {
	client  chatCompleter
	model   string
	timeout time.Duration
	logger  *slog.Logger
}

// NewOpenAIJudge builds a judge from configuration. The API key is
// resolved from config or environment; BaseURL may point the client at
// any OpenAI-compatible endpoint.
func NewOpenAIJudge(cfg configuration.JudgeConfig, logger *slog.Logger) (*OpenAIJudge, error) {
	key, err := cfg.ResolveAPIKey()
	if err != nil {
		return nil, err
	}

	clientCfg := openai.DefaultConfig(key)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &OpenAIJudge{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		timeout: cfg.Timeout,
		logger:  logger,
	}, nil
}

// Judge implements Judge with a single chat-completion call. Each call is
// independent; concurrent invocations by the harness share no state.
func (j *OpenAIJudge) Judge(ctx context.Context, req Request) (string, error) {
	logger := j.logger
	if logger == nil {
		logger = slog.Default()
	}

	prompt, err := RenderPrompt(req)
	if err != nil {
		return "", fmt.Errorf("render grading prompt: %w", err)
	}

	if j.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := j.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       j.model,
		Temperature: judgeTemperature,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	duration := time.Since(start)

	if err != nil {
		logger.Error("judge call failed",
			"model", j.model,
			"duration_ms", duration.Milliseconds(),
			"error", err)
		return "", fmt.Errorf("judge chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", ErrNoChoices
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", ErrEmptyResponse
	}

	logger.Info("judge call completed",
		"model", j.model,
		"duration_ms", duration.Milliseconds(),
		"prompt_tokens", resp.Usage.PromptTokens,
		"completion_tokens", resp.Usage.CompletionTokens)

	return content, nil
}
