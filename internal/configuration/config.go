// Package configuration holds runtime configuration for the evaluation
// pipeline: dataset locations, recipe selection, judge settings, and the
// Temporal worker connection. Defaults are production-sensible; the CLI
// binds file and environment overrides on top of them.
package configuration

import (
	"errors"
	"os"
	"time"
)

// ErrMissingAPIKey indicates judging is enabled but no API key was
// resolvable from configuration or environment.
var ErrMissingAPIKey = errors.New("judge API key not configured")

// Default configuration values.
const (
	defaultDatasetPath = "data/dataset.jsonl"
	defaultSourcesPath = "data/sources.json"
	defaultRecipe      = "deterministic"

	defaultJudgeModel   = "gpt-4.1-nano"
	defaultJudgeTimeout = 60 * time.Second
	defaultJudgeWeight  = 1.0
	defaultAPIKeyEnv    = "OPENAI_API_KEY"

	defaultTaskQueue = "mrmeval"
	defaultHostPort  = "localhost:7233"
	defaultNamespace = "default"
)

// DatasetConfig locates the flat-file inputs and selects the slice of the
// dataset to evaluate.
type DatasetConfig struct {
	// Path is the JSONL dataset of samples.
	Path string `json:"path" mapstructure:"path"`

	// SourcesPath is the JSON source registry whose keys define the
	// allowed citation tokens. A missing file degrades to an empty
	// allowlist rather than failing startup.
	SourcesPath string `json:"sources_path" mapstructure:"sources_path"`

	// Split selects train, dev, test, or "" for all samples.
	Split string `json:"split" mapstructure:"split"`

	// Limit caps the number of samples; 0 means no cap.
	Limit int `json:"limit" mapstructure:"limit"`
}

// JudgeConfig controls the external LLM judge.
type JudgeConfig struct {
	// Enabled appends the judge scorer to the deterministic recipe.
	// The judge_only and hybrid recipes always use the judge.
	Enabled bool `json:"enabled" mapstructure:"enabled"`

	// Model is the judge model name.
	Model string `json:"model" mapstructure:"model"`

	// BaseURL overrides the provider endpoint, e.g. for a proxy.
	BaseURL string `json:"base_url" mapstructure:"base_url"`

	// APIKey authenticates the provider call. Sensitive, not serialized.
	APIKey string `json:"-" mapstructure:"api_key"`

	// APIKeyEnv names the environment variable consulted when APIKey is
	// empty.
	APIKeyEnv string `json:"api_key_env" mapstructure:"api_key_env"`

	// Timeout bounds a single judge call.
	Timeout time.Duration `json:"timeout" mapstructure:"timeout"`

	// Weight is the judge scorer's rubric weight.
	Weight float64 `json:"weight" mapstructure:"weight"`
}

// ResolveAPIKey returns the configured key, falling back to the
// environment variable named by APIKeyEnv.
func (j JudgeConfig) ResolveAPIKey() (string, error) {
	if j.APIKey != "" {
		return j.APIKey, nil
	}
	if j.APIKeyEnv != "" {
		if key := os.Getenv(j.APIKeyEnv); key != "" {
			return key, nil
		}
	}
	return "", ErrMissingAPIKey
}

// TemporalConfig holds the worker connection settings.
type TemporalConfig struct {
	HostPort  string `json:"host_port" mapstructure:"host_port"`
	Namespace string `json:"namespace" mapstructure:"namespace"`
	TaskQueue string `json:"task_queue" mapstructure:"task_queue"`
}

// Config is the top-level runtime configuration.
type Config struct {
	Dataset  DatasetConfig  `json:"dataset" mapstructure:"dataset"`
	Judge    JudgeConfig    `json:"judge" mapstructure:"judge"`
	Temporal TemporalConfig `json:"temporal" mapstructure:"temporal"`

	// Recipe names the scoring recipe; parsed into the closed domain
	// enum at the environment boundary.
	Recipe string `json:"recipe" mapstructure:"recipe"`
}

// DefaultConfig returns the configuration used when no overrides are
// provided: deterministic recipe, judge disabled, packaged data paths.
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:        defaultDatasetPath,
			SourcesPath: defaultSourcesPath,
		},
		Judge: JudgeConfig{
			Enabled:   false,
			Model:     defaultJudgeModel,
			APIKeyEnv: defaultAPIKeyEnv,
			Timeout:   defaultJudgeTimeout,
			Weight:    defaultJudgeWeight,
		},
		Temporal: TemporalConfig{
			HostPort:  defaultHostPort,
			Namespace: defaultNamespace,
			TaskQueue: defaultTaskQueue,
		},
		Recipe: defaultRecipe,
	}
}
