package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"line-checker/core/reconcile"
	"line-checker/feature/lines"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	issueStyle  = cellStyle.Foreground(lipgloss.Color("203"))
)

// renderSummary writes the batch summary as a table, or as JSON when asJSON is set.
func renderSummary(w io.Writer, items []lines.BatchItem, asJSON bool) error {
	rows := lines.Summarize(items)

	if asJSON {
		data, err := json.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Filename, strconv.Itoa(r.TotalLines), r.Missing, r.Duplicates, r.Error}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Filename", "Total Lines", "Missing", "Duplicates", "Error").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col >= 2 && row < len(cells) {
				if v := cells[row][col]; v != "None" && v != "" {
					return issueStyle
				}
			}
			return cellStyle
		}).
		Rows(cells...)

	_, err := fmt.Fprintln(w, t)
	return err
}

// printPlan logs the plan summary and a sample of its actions.
func printPlan(l *zap.Logger, name string, plan *reconcile.ReconcilePlan) {
	s := plan.Summary

	l.Info("Fix plan",
		zap.String("file", name),
		zap.Int("total_lines", s.TotalLines),
		zap.Int("missing", s.Missing),
		zap.Int("duplicates", s.Duplicates),
		zap.Int("placeholders", s.PlaceholdersInserted),
		zap.Int("renumbered", s.Renumbered),
	)

	maxShow := min(len(plan.Actions), 10)
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Planned action",
			zap.String("type", string(action.Type)),
			zap.Int("from", action.From),
			zap.Int("to", action.To),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}
