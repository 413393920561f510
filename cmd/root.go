package cmd

import (
	"fmt"
	"os"

	"trusted-api/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configDir is where the optional .env file is read from.
var configDir string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "trusted-api",
	Short: "Trusted Results Write API",
	Long: `Trusted API accepts signed result submissions from event scoring systems
and reconciles them into the results store.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := RootCmd.Execute()
	if err == nil {
		return
	}

	// CLI errors go to the console encoder; the debug preset gives ISO8601 timestamps.
	l, logErr := logger.New(&logger.Config{Level: "debug", Format: "console"})
	if logErr != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	l.Error("command failed", zap.String("command", commandName()), zap.Error(err))
	_ = l.Sync()
	os.Exit(1)
}

// commandName returns the subcommand named on the command line, or the root name.
func commandName() string {
	if c, _, err := RootCmd.Find(os.Args[1:]); err == nil && c != nil {
		return c.Name()
	}
	return RootCmd.Name()
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configDir, "config-dir", ".", "directory holding the optional .env file")
}
