package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"line-checker/core/config"
	"line-checker/core/logger"
	"line-checker/core/utils"
	"line-checker/core/watcher"
	"line-checker/feature/lines"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchDebounce time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <dir>",
	Short: "Re-check documents whenever they are saved",
	Long:  `Watches a directory and checks each document as soon as it settles after a write.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		svc := lines.NewService(nil, "", cfg.Lines, logg)

		w, err := watcher.New(dir, cfg.Lines.Extension, watchDebounce, func(ctx context.Context, path string) {
			data, err := os.ReadFile(path)
			if err != nil {
				logg.Warn("Failed to read document", zap.String("file", path), zap.Error(err))
				return
			}

			report, err := svc.CheckDocument(filepath.Base(path), data)
			if err != nil {
				logg.Warn("Document check failed", zap.String("file", path), zap.Error(err))
				return
			}

			logg.Info("Document checked",
				zap.String("file", path),
				zap.String("status", report.Status),
				zap.Int("total_lines", report.TotalLines),
				zap.String("missing", utils.FormatMarkers(report.Missing)),
				zap.String("duplicates", utils.FormatMarkers(report.Duplicates)),
			)
		}, logg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logg.Info("Watching for changes", zap.String("dir", dir), zap.Duration("debounce", watchDebounce))
		return w.Run(ctx)
	},
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watcher.DefaultDebounce, "Quiet period before a changed file is checked")
	RootCmd.AddCommand(watchCmd)
}
