package fsutil_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/prettydoc/pkg/fsutil"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("hello"), 0))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
	})

	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")
		writeFile(t, path, "original")

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0o600))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "out.txt")
		require.ErrorIs(t, fsutil.WriteAtomic(ctx, path, []byte("x"), 0), context.Canceled)
		assert.NoFileExists(t, path)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.txt")
		assert.Error(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0))
	})
}

func TestWriteIfChanged(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "out.txt")

	written, err := fsutil.WriteIfChanged(ctx, path, []byte("a"), 0)
	require.NoError(t, err)
	assert.True(t, written, "missing file is created")

	written, err = fsutil.WriteIfChanged(ctx, path, []byte("a"), 0)
	require.NoError(t, err)
	assert.False(t, written, "same content is not rewritten")

	written, err = fsutil.WriteIfChanged(ctx, path, []byte("b"), 0)
	require.NoError(t, err)
	assert.True(t, written)
}

func TestReadFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "in.md")
	writeFile(t, path, "content")

	content, snap, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)
	assert.Equal(t, "content", string(content))
	assert.Equal(t, int64(7), snap.Size)

	_, _, err = fsutil.ReadFile(ctx, filepath.Join(dir, "missing.md"))
	require.ErrorIs(t, err, fsutil.ErrNotFound)

	_, _, err = fsutil.ReadFile(ctx, dir)
	require.ErrorIs(t, err, fsutil.ErrIsDirectory)
}

func TestSnapshot_Changed(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "in.md")
	writeFile(t, path, "one")

	_, snap, err := fsutil.ReadFile(ctx, path)
	require.NoError(t, err)

	changed, err := snap.Changed()
	require.NoError(t, err)
	assert.False(t, changed)

	// Same size, same mod time, different content: only the hash notices.
	writeFile(t, path, "two")
	require.NoError(t, os.Chtimes(path, snap.ModTime, snap.ModTime))
	changed, err = snap.Changed()
	require.NoError(t, err)
	assert.True(t, changed)

	require.NoError(t, os.Remove(path))
	changed, err = snap.Changed()
	require.NoError(t, err)
	assert.True(t, changed, "deleted file counts as changed")
}

func TestReplace(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("rewrites with backup", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "in.md")
		writeFile(t, path, "old")
		_, snap, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		written, err := fsutil.Replace(ctx, snap, []byte("new"), true)
		require.NoError(t, err)
		assert.True(t, written)

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(got))

		backup, err := os.ReadFile(fsutil.BackupPath(path))
		require.NoError(t, err)
		assert.Equal(t, "old", string(backup))
	})

	t.Run("unchanged content is not written", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "in.md")
		writeFile(t, path, "same")
		_, snap, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		written, err := fsutil.Replace(ctx, snap, []byte("same"), true)
		require.NoError(t, err)
		assert.False(t, written)
		assert.NoFileExists(t, fsutil.BackupPath(path))
	})

	t.Run("refuses concurrent modification", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "in.md")
		writeFile(t, path, "old")
		_, snap, err := fsutil.ReadFile(ctx, path)
		require.NoError(t, err)

		writeFile(t, path, "someone else")
		_, err = fsutil.Replace(ctx, snap, []byte("new"), false)
		require.ErrorIs(t, err, fsutil.ErrModified)
	})
}

func TestCreateBackup_KeepsOldest(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "in.md")
	writeFile(t, path, "first")

	created, err := fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.True(t, created)

	writeFile(t, path, "second")
	created, err = fsutil.CreateBackup(ctx, path)
	require.NoError(t, err)
	assert.False(t, created)

	backup, err := os.ReadFile(fsutil.BackupPath(path))
	require.NoError(t, err)
	assert.Equal(t, "first", string(backup))

	created, err = fsutil.CreateBackup(ctx, path+".missing")
	require.NoError(t, err)
	assert.False(t, created)
}

