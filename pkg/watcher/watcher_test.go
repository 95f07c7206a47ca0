package watcher

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30*time.Millisecond, func() { calls.Add(1) })
	for i := 0; i < 5; i++ {
		d.Trigger()
	}
	assert.True(t, d.Pending())
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_StopDropsPending(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { calls.Add(1) })
	d.Trigger()
	d.Stop()
	time.Sleep(60 * time.Millisecond)
	assert.Zero(t, calls.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_StopWaitsForRunningReload(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool
	d := NewDebouncer(time.Millisecond, func() {
		close(started)
		<-release
		finished.Store(true)
	})
	d.Trigger()
	<-started

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(release)
	}()
	d.Stop()
	assert.True(t, finished.Load(), "Stop returned while the reload was still running")
}

func TestDebouncer_DefaultWindow(t *testing.T) {
	assert.Equal(t, DefaultReloadWindow, NewDebouncer(0, func() {}).Window())
}

func TestWatcher_FiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.jsonl")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))

	var calls atomic.Int32
	w, err := New(path, func() { calls.Add(1) }, WithReloadWindow(20*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("{}\n{}\n"), 0644))

	assert.Eventually(t, func() bool { return calls.Load() >= 1 }, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "products.jsonl")

	var calls atomic.Int32
	w, err := New(path, func() { calls.Add(1) }, WithReloadWindow(10*time.Millisecond))
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.md"), []byte("x"), 0644))
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, w.Close())
	assert.Zero(t, calls.Load())
}

func TestWatcher_StopsWithContext(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	w, err := New(filepath.Join(dir, "products.jsonl"), func() {})
	require.NoError(t, err)
	require.NoError(t, w.Start(ctx))

	cancel()
	require.NoError(t, w.Close())
	require.NoError(t, w.Close(), "Close is idempotent")
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := New(filepath.Join(t.TempDir(), "gone", "products.jsonl"), func() {})
	require.NoError(t, err)
	assert.Error(t, w.Start(context.Background()))
}
