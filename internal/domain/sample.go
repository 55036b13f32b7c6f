// Package domain provides the core types for the model-risk-management
// answer scoring pipeline. It defines samples, completions, scores,
// rubric recipes, and the allowed-citation set used throughout the system.
// The types are designed for deterministic, auditable per-completion
// scoring: everything is immutable once loaded and every score is a pure
// function of a completion and its sample metadata.
package domain

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Common errors returned by domain operations.
var (
	// ErrInvalidSample indicates that a dataset sample contains invalid data.
	ErrInvalidSample = errors.New("invalid sample")

	// ErrInvalidCompletion indicates that a completion has no scoreable content.
	ErrInvalidCompletion = errors.New("invalid completion")

	// ErrUnknownDifficulty indicates an unrecognized difficulty label.
	ErrUnknownDifficulty = errors.New("unknown difficulty")

	// ErrUnknownRecipe indicates an unrecognized scoring recipe name.
	ErrUnknownRecipe = errors.New("unknown scoring recipe")
)

// validate is the package-level validator instance used for struct validation.
var validate = validator.New(validator.WithRequiredStructEnabled())

// Role identifies the author of a chat message.
type Role string

const (
	// RoleSystem marks instructions injected by the environment.
	RoleSystem Role = "system"

	// RoleUser marks the question being asked.
	RoleUser Role = "user"

	// RoleAssistant marks policy output; only assistant content is scored.
	RoleAssistant Role = "assistant"
)

// Message is a single role/content pair in a prompt or completion.
type Message struct {
	Role    Role   `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content"`
}

// Completion is the ordered message sequence produced by a policy under
// test. Only the final message's content is scored; earlier messages are
// carried for context and audit.
type Completion []Message

// LastContent returns the content of the final message, which is the only
// part of a completion that scorers examine. An empty completion yields
// the empty string, which is a valid, scoreable state.
func (c Completion) LastContent() string {
	if len(c) == 0 {
		return ""
	}
	return c[len(c)-1].Content
}

// Difficulty labels how hard a sample is considered to be.
// The dataset currently uses only easy and medium.
type Difficulty string

const (
	// DifficultyEasy marks definitional, single-source questions.
	DifficultyEasy Difficulty = "easy"

	// DifficultyMedium marks questions requiring synthesis across sources.
	DifficultyMedium Difficulty = "medium"
)

// String returns the string representation of the difficulty.
func (d Difficulty) String() string { return string(d) }

// ParseDifficulty converts a dataset label into a Difficulty.
// Returns ErrUnknownDifficulty for labels outside the closed set.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(strings.ToLower(strings.TrimSpace(s))) {
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyMedium:
		return DifficultyMedium, nil
	default:
		return "", ErrUnknownDifficulty
	}
}

// SampleInfo carries the grading metadata attached to a sample.
// RequiredCitations lists the bracketed source tokens a correct answer
// must cite, e.g. "[SR11-7]".
type SampleInfo struct {
	RequiredCitations []string   `json:"required_citations"`
	Tags              []string   `json:"tags,omitempty"`
	Difficulty        Difficulty `json:"difficulty" validate:"omitempty,oneof=easy medium"`
}

// Sample is one question/answer pair from the dataset. Prompt holds the
// full message sequence presented to the policy (system prompt included),
// Answer is the canonical reference answer used by the judge, and Info
// carries the grading metadata. Samples are immutable once loaded.
type Sample struct {
	Prompt []Message  `json:"prompt" validate:"required,min=1,dive"`
	Answer string     `json:"answer" validate:"required"`
	Info   SampleInfo `json:"info"`
}

// Validate checks if the sample meets all structural requirements.
// Returns nil if valid, or a validation error describing the first
// constraint violation.
func (s *Sample) Validate() error { return validate.Struct(s) }

// Question returns the content of the last user message in the prompt,
// which is the question the sample asks. Empty if the prompt carries no
// user message.
func (s *Sample) Question() string {
	for i := len(s.Prompt) - 1; i >= 0; i-- {
		if s.Prompt[i].Role == RoleUser {
			return s.Prompt[i].Content
		}
	}
	return ""
}
