package site

import (
	"context"
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuild_StaticFollowsSymlinks(t *testing.T) {
	cfg := testProject(t)
	shared := t.TempDir()
	writeFile(t, shared, "img/logo.svg", "<svg/>")
	writeFile(t, shared, "robots.txt", "User-agent: *")

	static := filepath.Join(cfg.Root, "static")
	require.NoError(t, os.Symlink(filepath.Join(shared, "img"), filepath.Join(static, "img")))
	require.NoError(t, os.Symlink(filepath.Join(shared, "robots.txt"), filepath.Join(static, "robots.txt")))

	build(t, cfg)

	require.Equal(t, "<svg/>", readOutput(t, cfg, "static/img/logo.svg"))
	require.Equal(t, "User-agent: *", readOutput(t, cfg, "static/robots.txt"))
	require.Equal(t, "body{}", readOutput(t, cfg, "static/css/site.css"))

	info, err := os.Lstat(filepath.Join(cfg.OutputDir(), "static", "img"))
	require.NoError(t, err)
	require.True(t, info.IsDir(), "linked directory should be copied, not linked")
}

func TestBuild_StaticSymlinkCycleFails(t *testing.T) {
	cfg := testProject(t)
	static := filepath.Join(cfg.Root, "static")
	require.NoError(t, os.Symlink(static, filepath.Join(static, "css", "loop")))

	_, err := NewGenerator(cfg).Build(context.Background())
	require.Error(t, err)

	var se *StageError
	require.True(t, stderrors.As(err, &se))
	require.Equal(t, StageCopyStatic, se.Stage)
}

func TestBuild_StaticDanglingSymlinkFails(t *testing.T) {
	cfg := testProject(t)
	static := filepath.Join(cfg.Root, "static")
	require.NoError(t, os.Symlink(filepath.Join(static, "missing.css"), filepath.Join(static, "dangling.css")))

	_, err := NewGenerator(cfg).Build(context.Background())
	require.Error(t, err)
}
