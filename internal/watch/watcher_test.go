package watch

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileWatcher_DebouncesWrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.yaml")
	require.NoError(t, os.WriteFile(path, []byte("path: a/\n"), 0o600))

	var calls atomic.Int32
	fw, err := New(path, 50*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()

	// give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(path, []byte("path: b/\n"), 0o600))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.yaml"), []byte("x"), 0o600))

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, 2*time.Second, 10*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestFileWatcher_HandlerErrorsDoNotStop(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tree.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))

	var calls atomic.Int32
	fw, err := New(path, 20*time.Millisecond, func(context.Context) error {
		calls.Add(1)
		return errors.New("lint failed")
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fw.Run(ctx) }()
	time.Sleep(100 * time.Millisecond)

	require.NoError(t, os.WriteFile(path, []byte(`{"path":"a"}`), 0o600))
	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	before := calls.Load()
	require.NoError(t, os.WriteFile(path, []byte(`{"path":"b"}`), 0o600))
	assert.Eventually(t, func() bool { return calls.Load() > before }, 2*time.Second, 10*time.Millisecond)
}

func TestNew_Defaults(t *testing.T) {
	fw, err := New("tree.yaml", 0, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(fw.Path()))
	assert.Equal(t, DefaultDebounce, fw.debounce)
}

func TestRun_MissingDirectory(t *testing.T) {
	fw, err := New(filepath.Join(t.TempDir(), "nope", "tree.yaml"), 0, func(context.Context) error { return nil })
	require.NoError(t, err)
	assert.Error(t, fw.Run(context.Background()))
}
