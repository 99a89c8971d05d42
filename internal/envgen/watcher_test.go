package envgen

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-appenv/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startWatcher(t *testing.T, w *Watcher) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case err := <-done:
			assert.NoError(t, err)
		case <-time.After(5 * time.Second):
			t.Error("watcher did not stop")
		}
	})

	// give fsnotify time to register the directory
	time.Sleep(100 * time.Millisecond)
}

func TestWatcher_CallsOnChange(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32

	w := NewWatcher(dir, []string{".env", ".env.local"}, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop()).WithDebounce(50 * time.Millisecond)
	startWatcher(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("A=1\n"), 0o600))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32

	w := NewWatcher(dir, []string{".env"}, func(context.Context) error {
		calls.Add(1)
		return nil
	}, logger.Nop()).WithDebounce(20 * time.Millisecond)
	startWatcher(t, w)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0o600))

	assert.Never(t, func() bool { return calls.Load() > 0 }, 300*time.Millisecond, 20*time.Millisecond)
}

func TestWatcher_KeepsRunningAfterError(t *testing.T) {
	dir := t.TempDir()
	var calls atomic.Int32

	w := NewWatcher(dir, []string{".env"}, func(context.Context) error {
		calls.Add(1)
		return errors.New("regeneration failed")
	}, logger.Nop()).WithDebounce(20 * time.Millisecond)
	startWatcher(t, w)

	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("A=1\n"), 0o600))
	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 5*time.Second, 20*time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte("A=2\n"), 0o600))
	assert.Eventually(t, func() bool { return calls.Load() >= 2 }, 5*time.Second, 20*time.Millisecond)
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w := NewWatcher(filepath.Join(t.TempDir(), "missing"), []string{".env"}, func(context.Context) error {
		return nil
	}, logger.Nop())

	assert.Error(t, w.Run(context.Background()))
}
