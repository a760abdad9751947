package lines

import (
	"context"

	"line-checker/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CheckBatch checks every upload independently. Results keep the input order;
// a document that cannot be loaded or read only sets its own Error.
func (s *Service) CheckBatch(ctx context.Context, uploads []Upload) []BatchItem {
	return s.runBatch(ctx, uploads, func(u Upload, data []byte) BatchItem {
		report, err := s.CheckDocument(u.Name, data)
		if err != nil {
			return BatchItem{Filename: u.Name, Error: err.Error()}
		}
		return BatchItem{Filename: u.Name, Report: report}
	})
}

// FixBatch checks and fixes every upload independently.
func (s *Service) FixBatch(ctx context.Context, uploads []Upload, opts reconcile.Options) []BatchItem {
	return s.runBatch(ctx, uploads, func(u Upload, data []byte) BatchItem {
		return s.fixItem(u.Name, data, opts)
	})
}

func (s *Service) fixItem(name string, data []byte, opts reconcile.Options) BatchItem {
	entries, err := s.extract(name, data)
	if err != nil {
		return BatchItem{Filename: name, Error: err.Error()}
	}
	fix, err := s.fixEntries(name, entries, opts)
	if err != nil {
		return BatchItem{Filename: name, Report: newReport(name, entries, reconcile.Analyze(entries)), Error: err.Error()}
	}
	return BatchItem{Filename: name, Report: newReport(name, entries, fix.Plan.Report), Fix: fix}
}

// runBatch loads and processes uploads on at most cfg.Workers goroutines.
// Workers always return nil so one failure never cancels the rest.
func (s *Service) runBatch(ctx context.Context, uploads []Upload, process func(Upload, []byte) BatchItem) []BatchItem {
	items := make([]BatchItem, len(uploads))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.workers())

	for i, u := range uploads {
		i, u := i, u
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				items[i] = BatchItem{Filename: u.Name, Error: err.Error()}
				return nil
			}

			data, err := u.Load(gctx)
			if err != nil {
				s.logger.Warn("Failed to load document", zap.String("file", u.Name), zap.Error(err))
				items[i] = BatchItem{Filename: u.Name, Error: err.Error()}
				return nil
			}

			items[i] = process(u, data)
			if items[i].Error != "" {
				s.logger.Warn("Document check failed", zap.String("file", u.Name), zap.String("error", items[i].Error))
			}
			return nil
		})
	}
	_ = g.Wait()

	return items
}
