package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/modelrisk/mrmeval/internal/configuration"
)

// envPrefix namespaces environment overrides, e.g. MRMEVAL_RECIPE.
const envPrefix = "MRMEVAL"

func newRootCmd() *cobra.Command {
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "mrmeval",
		Short: "Reward pipeline for bank model-risk-management Q&A",
		Long: "mrmeval scores short free-text answers about model risk management\n" +
			"against a fixed rubric: tag-format compliance, citation coverage,\n" +
			"citation allowlisting, conciseness, and an optional LLM judge.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default searches ./mrmeval.yaml)")

	cmd.AddCommand(newWorkerCmd(&cfgFile))
	cmd.AddCommand(newScoreCmd(&cfgFile))
	return cmd
}

// loadConfig merges defaults, an optional config file, and environment
// overrides into the runtime configuration.
func loadConfig(cfgFile string) (*configuration.Config, error) {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("mrmeval")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := configuration.DefaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
