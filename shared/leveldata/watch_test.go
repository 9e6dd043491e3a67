package leveldata

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher_ReportsLevelWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644))
	level := filepath.Join(dir, "pete.tmx")
	require.NoError(t, os.WriteFile(level, []byte(testTMX), 0o644))

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Drain()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	for _, p := range got {
		assert.Equal(t, level, p)
	}
}

func TestWatcher_ReportsAfterLastWrite(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	require.NoError(t, err)
	defer w.Close()

	level := filepath.Join(dir, "pete.tmx")
	require.NoError(t, os.WriteFile(level, []byte(testTMX[:len(testTMX)/2]), 0o644))
	time.Sleep(watchDebounce / 4)
	require.NoError(t, os.WriteFile(level, []byte(testTMX), 0o644))
	written := time.Now()

	var got []string
	require.Eventually(t, func() bool {
		got = append(got, w.Drain()...)
		return len(got) > 0
	}, 2*time.Second, 10*time.Millisecond)

	assert.GreaterOrEqual(t, time.Since(written), watchDebounce)
	assert.Equal(t, level, got[len(got)-1])

	lvl, err := LoadLevel(os.DirFS(dir), "pete.tmx", DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, lvl.Acorns, 2)
}

func TestWatcher_CloseTwice(t *testing.T) {
	w, err := NewWatcher(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, w.Close())
	require.NoError(t, w.Close())
	assert.Empty(t, w.Drain())
	assert.Empty(t, w.DrainErrors())
}

func TestWatcher_MissingDir(t *testing.T) {
	_, err := NewWatcher(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)
}
