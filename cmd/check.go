package cmd

import (
	"fmt"

	"line-checker/core/config"
	"line-checker/core/logger"
	"line-checker/feature/lines"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check <files...>",
	Short: "Check documents for missing and duplicate line markers",
	Long: `Checks every given document independently and prints a summary table
with the total number of lines and the missing and duplicate markers of each file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
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

		svc := lines.NewService(nil, "", cfg.Lines, logg)

		uploads := make([]lines.Upload, len(args))
		for i, path := range args {
			uploads[i] = lines.FileUpload(path)
		}

		items := svc.CheckBatch(cmd.Context(), uploads)

		failed := 0
		for _, item := range items {
			if item.Error != "" {
				failed++
			}
		}
		logg.Debug("Check completed", zap.Int("files", len(items)), zap.Int("failed", failed))

		return renderSummary(cmd.OutOrStdout(), items, jsonOutput)
	},
}

func init() {
	checkCmd.Flags().Bool("json", false, "Print the summary as JSON")
	RootCmd.AddCommand(checkCmd)
}
