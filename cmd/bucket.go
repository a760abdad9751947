package cmd

import (
	"fmt"

	"line-checker/core/config"
	"line-checker/core/logger"
	"line-checker/core/reconcile"
	"line-checker/core/storage"
	"line-checker/feature/lines"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	bucketPrefix     string
	bucketFix        bool
	bucketMissing    bool
	bucketDuplicates bool
)

// bucketCmd represents the bucket command
var bucketCmd = &cobra.Command{
	Use:   "bucket",
	Short: "Check the documents stored in the storage bucket",
	Long: `Checks every document under a prefix of the configured bucket.
With --fix, rewritten copies are uploaded under the configured output prefix.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		jsonOutput, _ := cmd.Flags().GetBool("json")

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

		svc := lines.NewService(client, cfg.Storage.Bucket, cfg.Lines, logg)

		logg.Info("Checking bucket documents",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", bucketPrefix),
			zap.Bool("fix", bucketFix),
		)

		var items []lines.BatchItem
		if bucketFix {
			items, err = svc.FixBucket(ctx, bucketPrefix, reconcile.Options{FixMissing: bucketMissing, FixDuplicates: bucketDuplicates})
		} else {
			items, err = svc.CheckBucket(ctx, bucketPrefix)
		}
		if err != nil {
			return fmt.Errorf("bucket check failed: %w", err)
		}

		return renderSummary(cmd.OutOrStdout(), items, jsonOutput)
	},
}

func init() {
	bucketCmd.Flags().StringVar(&bucketPrefix, "prefix", "", "Only check objects under this prefix")
	bucketCmd.Flags().BoolVar(&bucketFix, "fix", false, "Upload fixed copies of the documents")
	bucketCmd.Flags().BoolVar(&bucketMissing, "missing", true, "Insert placeholders for missing lines")
	bucketCmd.Flags().BoolVar(&bucketDuplicates, "duplicates", true, "Renumber duplicate lines")
	bucketCmd.Flags().Bool("json", false, "Print the summary as JSON")

	RootCmd.AddCommand(bucketCmd)
}
