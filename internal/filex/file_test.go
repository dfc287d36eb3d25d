package filex

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) func() {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	return func() { _ = os.Chdir(old) }
}

func TestEnsureParentDir_CreatesNestedDirectories(t *testing.T) {
	tmp := t.TempDir()

	got, err := EnsureParentDir(filepath.Join(tmp, "data", "v1", "heartrisk.db"))
	require.NoError(t, err)

	want := filepath.Join(tmp, "data", "v1")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		require.Equal(t, os.FileMode(0o700), fi.Mode().Perm()&0o700)
	}
}

func TestEnsureParentDir_RelativeToCWD(t *testing.T) {
	tmp := t.TempDir()
	defer chdir(t, tmp)()

	got, err := EnsureParentDir(filepath.Join("store", "heartrisk.db"))
	require.NoError(t, err)

	// TempDir may sit behind a symlink (macOS /var -> /private/var).
	wantDir, err := filepath.EvalSymlinks(filepath.Join(tmp, "store"))
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(got)
	require.NoError(t, err)
	require.Equal(t, wantDir, gotDir)
}

func TestEnsureParentDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "db", "app.db")

	first, err := EnsureParentDir(path)
	require.NoError(t, err)
	second, err := EnsureParentDir(path)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestEnsureParentDir_FailsIfFileWithSameNameExists(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "db"), []byte("x"), 0o600))

	_, err := EnsureParentDir(filepath.Join(tmp, "db", "app.db"))
	require.Error(t, err, "should fail when a file exists with the parent's name")
}

func TestIsMemoryPath(t *testing.T) {
	require.True(t, IsMemoryPath(":memory:"))
	require.True(t, IsMemoryPath("file::memory:?cache=shared"))
	require.False(t, IsMemoryPath("heartrisk.db"))
	require.False(t, IsMemoryPath(""))
}
