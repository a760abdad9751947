package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"line-checker/core/config"
	"line-checker/core/logger"
	"line-checker/core/reconcile"
	"line-checker/feature/lines"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	fixMissing    bool
	fixDuplicates bool
	fixOut        string
	fixDryRun     bool
	fixYes        bool
)

// fixCmd represents the fix command
var fixCmd = &cobra.Command{
	Use:   "fix <file>",
	Short: "Rewrite a document with missing lines and duplicates fixed",
	Long: `Plans the fix of a document and writes the rewritten copy.

Missing lines get a "<< Missing Line >>" placeholder, later duplicates take the
next free number. The rewritten copy only holds the line entries.

Examples:
  # Show what would change
  fix script.docx --dry-run

  # Only fill gaps, write next to the input as fixed_script.docx
  fix script.docx --duplicates=false

  # Overwrite an existing output without asking
  fix script.docx --out clean.docx --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().BoolVar(&fixMissing, "missing", true, "Insert placeholders for missing lines")
	fixCmd.Flags().BoolVar(&fixDuplicates, "duplicates", true, "Renumber duplicate lines")
	fixCmd.Flags().StringVarP(&fixOut, "out", "o", "", "Output path (default fixed_<name> next to the input)")
	fixCmd.Flags().BoolVar(&fixDryRun, "dry-run", false, "Print the plan without writing")
	fixCmd.Flags().BoolVar(&fixYes, "yes", false, "Overwrite an existing output without confirmation")

	RootCmd.AddCommand(fixCmd)
}

func runFix(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	data, err := os.ReadFile(input)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", input, err)
	}

	svc := lines.NewService(nil, "", cfg.Lines, l)
	opts := reconcile.Options{FixMissing: fixMissing, FixDuplicates: fixDuplicates}
	name := filepath.Base(input)

	result, err := svc.FixDocument(name, data, opts)
	if err != nil {
		return err
	}

	printPlan(l, name, result.Plan)

	if fixDryRun {
		l.Info("Dry-run mode: No changes were made.")
		return nil
	}
	if !result.Plan.HasChanges() {
		l.Info("Sequence already clean, writing an unchanged copy")
	}

	out := fixOut
	if out == "" {
		out = filepath.Join(filepath.Dir(input), result.OutputName)
	}
	if _, err := os.Stat(out); err == nil && !confirmOverwrite(out) {
		l.Warn("Operation cancelled by user. No changes were made.")
		return nil
	}

	if err := os.WriteFile(out, result.Document, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	l.Info("Fixed document written", zap.String("file", out))
	return nil
}

// confirmOverwrite prompts the user before replacing path, unless --yes is set.
func confirmOverwrite(path string) bool {
	if fixYes {
		return true
	}

	fmt.Printf("\n%s already exists. Type 'yes' to overwrite: ", path)
	reader := bufio.NewReader(os.Stdin)
	response, err := reader.ReadString('\n')
	if err != nil {
		return false
	}

	return strings.TrimSpace(response) == "yes"
}
