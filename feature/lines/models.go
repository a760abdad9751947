package lines

import (
	"context"
	"os"
	"path/filepath"

	"line-checker/core/reconcile"
)

// Report statuses.
const (
	StatusClean  = "clean"
	StatusIssues = "issues"
	StatusEmpty  = "no sequence detected"
)

// DocumentReport is the analysis of one document.
type DocumentReport struct {
	Filename   string                `json:"filename"`
	Status     string                `json:"status"`
	TotalLines int                   `json:"total_lines"`
	Missing    []int                 `json:"missing"`
	Duplicates []int                 `json:"duplicates"`
	Entries    []reconcile.LineEntry `json:"-"`
}

// FixResult is a rewritten document and the plan that produced it.
type FixResult struct {
	Filename   string                   `json:"filename"`
	OutputName string                   `json:"output_name"`
	Plan       *reconcile.ReconcilePlan `json:"plan"`
	Document   []byte                   `json:"-"`
}

// Upload is a document waiting to be processed. Load runs on a batch worker.
type Upload struct {
	Name string
	Load func(ctx context.Context) ([]byte, error)
}

// BytesUpload wraps an in-memory document.
func BytesUpload(name string, data []byte) Upload {
	return Upload{
		Name: name,
		Load: func(context.Context) ([]byte, error) { return data, nil },
	}
}

// FileUpload reads a document from the local filesystem.
func FileUpload(path string) Upload {
	return Upload{
		Name: filepath.Base(path),
		Load: func(context.Context) ([]byte, error) { return os.ReadFile(path) },
	}
}

// BatchItem is the outcome for one document of a batch.
type BatchItem struct {
	Filename string          `json:"filename"`
	Report   *DocumentReport `json:"report,omitempty"`
	Fix      *FixResult      `json:"fix,omitempty"`
	Output   string          `json:"output,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// SummaryRow is one line of the batch summary table.
type SummaryRow struct {
	Filename   string `json:"filename"`
	TotalLines int    `json:"total_lines"`
	Missing    string `json:"missing"`
	Duplicates string `json:"duplicates"`
	Error      string `json:"error,omitempty"`
}
