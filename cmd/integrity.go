package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"trusted-api/core/config"
	"trusted-api/core/database"
	"trusted-api/core/logger"
	"trusted-api/core/storage"
	"trusted-api/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Run integrity checks against the results store",
	Long:  `Checks the database schema and the submission archive bucket. Without a subcommand both checks run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, true)
	},
}

// schemaCmd represents the integrity schema command
var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Compare models with the live tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), true, false)
	},
}

// archiveCmd represents the integrity archive command
var archiveCmd = &cobra.Command{
	Use:   "archive",
	Short: "Check the submission archive bucket",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runIntegrityChecks(cmd.Context(), false, true)
	},
}

func init() {
	integrityCmd.AddCommand(schemaCmd)
	integrityCmd.AddCommand(archiveCmd)
	RootCmd.AddCommand(integrityCmd)
}

func runIntegrityChecks(ctx context.Context, schema, archive bool) error {
	startTime := time.Now()

	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logg.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return fmt.Errorf("database connection required: %w", err)
	}

	var client storage.Client
	if cfg.Storage.Enabled {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
	}

	svc := integrity.NewService(db, persistedModels(), client, cfg.Storage.Bucket, logg)
	out := make(map[string]any)
	healthy := true

	if schema {
		report, err := svc.CheckSchema()
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}
		out["schema"] = report
		healthy = healthy && report.Matched
	}

	if archive {
		checkCtx, cancel := context.WithTimeout(ctx, cfg.Storage.Timeout())
		report := svc.CheckArchive(checkCtx)
		cancel()
		out["archive"] = report
		healthy = healthy && report.Healthy()
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return err
	}

	logg.Info("Integrity checks completed",
		zap.Bool("healthy", healthy),
		zap.Duration("execution_time", time.Since(startTime)),
	)
	if !healthy {
		return fmt.Errorf("integrity checks reported problems")
	}
	return nil
}
