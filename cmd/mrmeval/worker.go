package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"go.temporal.io/sdk/client"
	sdkworker "go.temporal.io/sdk/worker"

	"github.com/modelrisk/mrmeval/internal/worker"
)

func newWorkerCmd(cfgFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "worker",
		Short: "Run the Temporal evaluation worker",
		Long: "Connects to Temporal, registers the evaluation workflow and the\n" +
			"scoring activity over the assembled environment, and serves the\n" +
			"configured task queue until interrupted.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(*cfgFile)
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

			environment, err := worker.InitializeEnvironment(cfg, logger)
			if err != nil {
				return err
			}

			c, err := client.Dial(client.Options{
				HostPort:  cfg.Temporal.HostPort,
				Namespace: cfg.Temporal.Namespace,
			})
			if err != nil {
				return fmt.Errorf("dial temporal: %w", err)
			}
			defer c.Close()

			w := sdkworker.New(c, cfg.Temporal.TaskQueue, sdkworker.Options{})
			worker.RegisterAll(w, environment)

			logger.Info("worker starting",
				"task_queue", cfg.Temporal.TaskQueue,
				"namespace", cfg.Temporal.Namespace)
			return w.Run(sdkworker.InterruptCh())
		},
	}
}
