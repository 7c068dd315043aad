package fsutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/kernelforge/internal/fsutil"
)

func TestFindFilesByExtension_Recursive(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nested"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.hcl"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nested", "b.hcl"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.txt"), nil, 0o644))

	files, err := fsutil.FindFilesByExtension(dir, ".hcl")
	require.NoError(t, err)
	require.Len(t, files, 2)
}

func TestFindFilesByExtension_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.hcl")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	files, err := fsutil.FindFilesByExtension(path, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{path}, files)
}

func TestCopyFile_CreatesParentDirs(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "deep", "nested", "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("payload"), 0o644))

	require.NoError(t, fsutil.CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "payload", string(got))
}

func TestCopyFile_Overwrites(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	require.NoError(t, os.WriteFile(src, []byte("new"), 0o644))
	require.NoError(t, os.WriteFile(dst, []byte("old"), 0o644))

	require.NoError(t, fsutil.CopyFile(src, dst))

	got, err := os.ReadFile(dst)
	require.NoError(t, err)
	require.Equal(t, "new", string(got))
}
