package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"trusted-api/core/config"
	"trusted-api/core/database"
	"trusted-api/core/logger"
	"trusted-api/feature/credentials"
	"trusted-api/feature/integrity/checks"
	"trusted-api/feature/trusted/models"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// persistedModels lists every model owned by this service.
func persistedModels() []any {
	return append(models.All(), &credentials.Credential{})
}

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the results schema",
	Long:  `Runs AutoMigrate for every persisted model, then verifies the live tables against the models.`,
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if err := db.WithContext(cmd.Context()).AutoMigrate(persistedModels()...); err != nil {
			return fmt.Errorf("auto migrate failed: %w", err)
		}
		logg.Info("Schema migrated", zap.String("driver", cfg.Database.Driver))

		report, err := checks.CheckSchema(db, persistedModels()...)
		if err != nil {
			return fmt.Errorf("schema check failed: %w", err)
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return err
		}

		if !report.Matched {
			return fmt.Errorf("schema drift after migration: tables=%v errors=%d", report.Drifted(), len(report.Errors))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(migrateCmd)
}
