package cmd

import (
	"fmt"

	"line-checker/core/config"
	"line-checker/core/logger"
	"line-checker/core/storage"
	"line-checker/feature/integrity"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var fixStructure bool

// integrityCmd represents the integrity command
var integrityCmd = &cobra.Command{
	Use:   "integrity",
	Short: "Check the storage folder structure",
	Long:  `Checks that the bucket holds the document and output folders used by the bucket mode.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		client, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}

		svc := integrity.NewService(client, cfg.Storage.Bucket, []string{cfg.Lines.InputPrefix, cfg.Lines.OutputPrefix}, logg)

		missing, err := svc.CheckStructure(ctx)
		if err != nil {
			return fmt.Errorf("structure check failed: %w", err)
		}
		if len(missing) == 0 {
			logg.Info("Structure is intact", zap.String("bucket", cfg.Storage.Bucket))
			return nil
		}

		logg.Warn("Missing folders detected", zap.Strings("missing", missing))
		if !fixStructure {
			logg.Info("Use --fix to create the missing folders.")
			return nil
		}

		if err := svc.FixStructure(ctx, missing); err != nil {
			return fmt.Errorf("failed to fix structure: %w", err)
		}
		logg.Info("Structure fixed", zap.Strings("created", missing))
		return nil
	},
}

func init() {
	integrityCmd.Flags().BoolVar(&fixStructure, "fix", false, "Create missing folders")
	RootCmd.AddCommand(integrityCmd)
}
