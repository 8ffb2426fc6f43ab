package cmd

import (
	"fmt"
	"os"

	"grail-tracker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// configPath is the directory holding the .env file.
var configPath string

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "grail-tracker",
	Short: "Holy Grail progress tracker",
	Long: `grail-tracker records which unique items, set items and runes you have found.

It runs the catalog and progress API ("start"), and talks to it from the
command line ("grail") to show statistics and to import or export progress
in the backup, ToD2 and d2-holy-grail formats.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console encoding with development timestamps reads best on a terminal.
		cfg := &logger.Config{
			Level:  "debug",
			Format: "console",
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&configPath, "config", ".", "Directory containing the .env file")
}
