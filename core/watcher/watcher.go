package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the quiet period a file must see before its handler runs.
const DefaultDebounce = 500 * time.Millisecond

// Handler is called once per settled change with the changed file's path.
type Handler func(ctx context.Context, path string)

// Watcher reports settled changes to files with a given extension in one directory.
type Watcher struct {
	dir      string
	ext      string
	debounce time.Duration
	handle   Handler
	logger   *zap.Logger

	fsw     *fsnotify.Watcher
	mu      sync.Mutex
	pending map[string]time.Time
}

// New creates a watcher over dir. Only files ending in ext (case-insensitive) are reported.
func New(dir, ext string, debounce time.Duration, handle Handler, logger *zap.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:      dir,
		ext:      strings.ToLower(ext),
		debounce: debounce,
		handle:   handle,
		logger:   logger,
		fsw:      fsw,
		pending:  make(map[string]time.Time),
	}, nil
}

// Run blocks until ctx is cancelled, dispatching settled changes to the handler.
// Handlers run sequentially on the calling goroutine.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			w.record(event)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("Watcher error", zap.String("dir", w.dir), zap.Error(err))

		case <-ticker.C:
			for _, path := range w.settled(time.Now()) {
				w.handle(ctx, path)
			}
		}
	}
}

func (w *Watcher) record(event fsnotify.Event) {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return
	}
	if !w.matches(event.Name) {
		return
	}

	w.mu.Lock()
	w.pending[event.Name] = time.Now()
	w.mu.Unlock()
}

// matches skips other extensions and editor lock files such as "~$script.docx".
func (w *Watcher) matches(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, "~$") || strings.HasPrefix(base, ".") {
		return false
	}
	return strings.HasSuffix(strings.ToLower(base), w.ext)
}

// settled removes and returns the paths whose last event is older than the debounce window.
func (w *Watcher) settled(now time.Time) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	var ready []string
	for path, at := range w.pending {
		if now.Sub(at) >= w.debounce {
			ready = append(ready, path)
			delete(w.pending, path)
		}
	}
	return ready
}
