package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modelrisk/mrmeval/internal/domain"
	"github.com/modelrisk/mrmeval/internal/env"
)

// completionLine is one line of the completions file: the message
// sequence a policy produced for the dataset sample at the same line
// position in the selected split.
type completionLine struct {
	Completion domain.Completion `json:"completion"`
}

// scoreOutput is one line of score output.
type scoreOutput struct {
	Index     int                    `json:"index"`
	Question  string                 `json:"question"`
	Breakdown domain.RewardBreakdown `json:"breakdown"`
}

// scoreSummary closes the output stream.
type scoreSummary struct {
	Scored     int     `json:"scored"`
	MeanReward float64 `json:"mean_reward"`
}

func newScoreCmd(cfgFile *string) *cobra.Command {
	var completionsPath string

	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a completions file offline",
		Long: "Scores a JSONL file of completions against the configured dataset\n" +
			"split, one line per sample in order, and prints a JSON breakdown per\n" +
			"item followed by a summary line.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

			environment, err := env.Load(env.Options{Config: cfg, Logger: logger})
			if err != nil {
				return err
			}

			completions, err := readCompletions(completionsPath)
			if err != nil {
				return err
			}

			samples := environment.Samples()
			if len(completions) != len(samples) {
				return fmt.Errorf("completions/samples mismatch: %d completions for %d samples",
					len(completions), len(samples))
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			breakdowns := make([]domain.RewardBreakdown, 0, len(samples))
			for i, sample := range samples {
				breakdown := environment.Evaluate(cmd.Context(), sample, completions[i])
				breakdowns = append(breakdowns, breakdown)
				if err := enc.Encode(scoreOutput{
					Index:     i,
					Question:  sample.Question(),
					Breakdown: breakdown,
				}); err != nil {
					return err
				}
			}

			return enc.Encode(scoreSummary{
				Scored:     len(breakdowns),
				MeanReward: domain.MeanReward(breakdowns),
			})
		},
	}

	cmd.Flags().StringVar(&completionsPath, "completions", "", "JSONL completions file (required)")
	_ = cmd.MarkFlagRequired("completions")
	return cmd
}

// readCompletions parses the completions JSONL file. Blank lines are
// skipped; line order must match the dataset slice being scored.
func readCompletions(path string) ([]domain.Completion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open completions %s: %w", path, err)
	}
	defer f.Close()

	var completions []domain.Completion
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var cl completionLine
		if err := json.Unmarshal([]byte(text), &cl); err != nil {
			return nil, fmt.Errorf("completions line %d: %w", line, err)
		}
		completions = append(completions, cl.Completion)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return completions, nil
}
