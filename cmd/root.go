package cmd

import (
	"fmt"
	"os"

	"line-checker/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "line-checker",
	Short: "Line Marker Checker",
	Long: `Line Checker validates the L{n} line markers of DOCX scripts.
It reports missing and duplicate lines and can rewrite documents with
placeholders and renumbered duplicates, locally, over HTTP or in a storage bucket.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Console format with the development config keeps CLI errors readable
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
