package lines

import "line-checker/core/utils"

// Summarize builds the per-document summary table of a batch.
func Summarize(items []BatchItem) []SummaryRow {
	rows := make([]SummaryRow, 0, len(items))
	for _, item := range items {
		row := SummaryRow{
			Filename:   item.Filename,
			Missing:    "None",
			Duplicates: "None",
			Error:      item.Error,
		}
		if item.Report != nil {
			row.TotalLines = item.Report.TotalLines
			row.Missing = utils.FormatMarkers(item.Report.Missing)
			row.Duplicates = utils.FormatMarkers(item.Report.Duplicates)
		}
		rows = append(rows, row)
	}
	return rows
}
