package lines

import (
	"fmt"

	"line-checker/core/document"
	"line-checker/core/reconcile"
	"line-checker/core/storage"

	"go.uber.org/zap"
)

// Service handles line marker checks.
type Service struct {
	client storage.Client
	bucket string
	cfg    Config
	logger *zap.Logger
}

// NewService creates a new line check service. client may be nil, which disables the bucket mode.
func NewService(client storage.Client, bucket string, cfg Config, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		cfg:    cfg,
		logger: logger,
	}
}

// StorageEnabled reports whether the bucket operations are available.
func (s *Service) StorageEnabled() bool {
	return s.client != nil
}

// CheckDocument extracts and analyses the line markers of a document.
func (s *Service) CheckDocument(name string, data []byte) (*DocumentReport, error) {
	entries, err := s.extract(name, data)
	if err != nil {
		return nil, err
	}
	return newReport(name, entries, reconcile.Analyze(entries)), nil
}

func newReport(name string, entries []reconcile.LineEntry, report reconcile.SequenceReport) *DocumentReport {
	status := StatusIssues
	switch {
	case len(entries) == 0:
		status = StatusEmpty
	case report.IsClean():
		status = StatusClean
	}

	return &DocumentReport{
		Filename:   name,
		Status:     status,
		TotalLines: len(entries),
		Missing:    report.Missing,
		Duplicates: report.Duplicates,
		Entries:    entries,
	}
}

// PlanDocument returns what fixing the document with opts would change.
func (s *Service) PlanDocument(name string, data []byte, opts reconcile.Options) (*reconcile.ReconcilePlan, error) {
	entries, err := s.extract(name, data)
	if err != nil {
		return nil, err
	}
	return reconcile.Plan(entries, opts), nil
}

// FixDocument reconciles the document and renders the result as a new document.
// The new document holds only the rendered line entries.
func (s *Service) FixDocument(name string, data []byte, opts reconcile.Options) (*FixResult, error) {
	entries, err := s.extract(name, data)
	if err != nil {
		return nil, err
	}
	return s.fixEntries(name, entries, opts)
}

func (s *Service) fixEntries(name string, entries []reconcile.LineEntry, opts reconcile.Options) (*FixResult, error) {
	plan := reconcile.Plan(entries, opts)

	out, err := document.WriteParagraphs(plan.Sequence.Lines())
	if err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", name, err)
	}

	s.logger.Debug("Document fixed",
		zap.String("file", name),
		zap.Int("placeholders", plan.Summary.PlaceholdersInserted),
		zap.Int("renumbered", plan.Summary.Renumbered),
	)

	return &FixResult{
		Filename:   name,
		OutputName: OutputName(name),
		Plan:       plan,
		Document:   out,
	}, nil
}

// OutputName is the file name given to the rewritten copy of name.
func OutputName(name string) string {
	return "fixed_" + name
}

func (s *Service) extract(name string, data []byte) ([]reconcile.LineEntry, error) {
	paragraphs, err := document.ReadParagraphsBytes(data)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return reconcile.Extract(paragraphs), nil
}
