package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestWatcher_Run(t *testing.T) {
	dir := t.TempDir()

	var (
		mu   sync.Mutex
		seen []string
	)
	handle := func(_ context.Context, path string) {
		mu.Lock()
		seen = append(seen, filepath.Base(path))
		mu.Unlock()
	}

	w, err := New(dir, ".docx", 50*time.Millisecond, handle, zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "~$script.docx"), []byte("x"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "script.DOCX"), []byte("x"), 0o644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(seen) == 1
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	require.NoError(t, <-done)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"script.DOCX"}, seen)
}

func TestWatcher_Settled(t *testing.T) {
	w := &Watcher{debounce: time.Second, pending: map[string]time.Time{}}
	now := time.Now()
	w.pending["old.docx"] = now.Add(-2 * time.Second)
	w.pending["fresh.docx"] = now

	assert.Equal(t, []string{"old.docx"}, w.settled(now))
	assert.Len(t, w.pending, 1)
}

func TestNew_MissingDir(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "absent"), ".docx", 0, func(context.Context, string) {}, zap.NewNop())
	assert.Error(t, err)
}
