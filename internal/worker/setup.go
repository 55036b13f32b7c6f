package worker

import (
	"fmt"
	"log/slog"

	"github.com/modelrisk/mrmeval/internal/configuration"
	"github.com/modelrisk/mrmeval/internal/env"
)

// InitializeEnvironment assembles the evaluation environment from
// configuration. Returns the environment for dependency injection rather
// than setting global state.
func InitializeEnvironment(cfg *configuration.Config, logger *slog.Logger) (*env.Environment, error) {
	if cfg == nil {
		cfg = configuration.DefaultConfig()
	}

	environment, err := env.Load(env.Options{Config: cfg, Logger: logger})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize environment: %w", err)
	}
	return environment, nil
}
