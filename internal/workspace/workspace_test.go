package workspace

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManager_CreateAndCleanup(t *testing.T) {
	mgr := NewManager(t.TempDir())
	require.Empty(t, mgr.Path())

	require.NoError(t, mgr.Create())
	ws := mgr.Path()
	require.True(t, strings.HasPrefix(filepath.Base(ws), dirPrefix), ws)

	info, err := os.Stat(ws)
	require.NoError(t, err)
	require.True(t, info.IsDir())

	require.NoError(t, os.WriteFile(filepath.Join(ws, "index.html"), []byte("x"), 0o600))

	require.NoError(t, mgr.Cleanup())
	_, err = os.Stat(ws)
	require.True(t, os.IsNotExist(err))
	require.Empty(t, mgr.Path())

	// Second cleanup is a no-op.
	require.NoError(t, mgr.Cleanup())
}

func TestManager_UniqueDirectories(t *testing.T) {
	base := t.TempDir()
	a, b := NewManager(base), NewManager(base)
	require.NoError(t, a.Create())
	require.NoError(t, b.Create())
	require.NotEqual(t, a.Path(), b.Path())
}
