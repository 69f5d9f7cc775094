package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/cpawithai/sitebuild/internal/errors"
)

func newProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"templates/base.html":    "<title>{{title}}</title>{{content}}",
		"templates/post.html":    "<h1>{{title}}</h1>{{content}}",
		"templates/index.html":   "{{posts}}",
		"templates/404.html":     "gone",
		"static/site.css":        "body{}",
		"content/posts/hello.md": "---\ntitle: Hello\ndate: 2024-06-01\n---\nHi\n",
	}
	for rel, body := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return root
}

func TestParseLogLevel(t *testing.T) {
	t.Setenv(LogLevelEnv, "")
	require.Equal(t, slog.LevelWarn, parseLogLevel(false))
	require.Equal(t, slog.LevelDebug, parseLogLevel(true))

	t.Setenv(LogLevelEnv, "ERROR")
	require.Equal(t, slog.LevelError, parseLogLevel(true))

	t.Setenv(LogLevelEnv, "bogus")
	require.Equal(t, slog.LevelWarn, parseLogLevel(false))
}

func TestCLI_DefaultCommandIsBuild(t *testing.T) {
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Vars{"version": "test"}, kong.Exit(func(int) { t.Fatal("unexpected exit") }))
	require.NoError(t, err)

	ctx, err := parser.Parse([]string{})
	require.NoError(t, err)
	require.Equal(t, "build", ctx.Command())

	ctx, err = parser.Parse([]string{"-o", "public"})
	require.NoError(t, err)
	require.Equal(t, "build", ctx.Command())
	require.Equal(t, "public", cli.Build.Output)
}

func TestRunBuild_WritesSiteAndReport(t *testing.T) {
	root := newProject(t)
	var stdout bytes.Buffer
	reportPath := filepath.Join(t.TempDir(), "report.json")

	err := RunBuild(context.Background(), &Global{Stdout: &stdout}, root, "", reportPath)
	require.NoError(t, err)

	require.FileExists(t, filepath.Join(root, "out", "posts", "hello", "index.html"))
	require.True(t, strings.HasSuffix(stdout.String(), "\n🦀 Built 1 posts → out/\n"), stdout.String())

	data, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	var report map[string]any
	require.NoError(t, json.Unmarshal(data, &report))
	require.Equal(t, "success", report["outcome"])
}

func TestRunBuild_FailureMapsToBuildExitCode(t *testing.T) {
	root := newProject(t)
	require.NoError(t, os.Remove(filepath.Join(root, "templates", "index.html")))

	err := RunBuild(context.Background(), &Global{Stdout: &bytes.Buffer{}}, root, "", "")
	require.Error(t, err)
	require.Equal(t, 11, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestRunBuild_InvalidConfigMapsToConfigExitCode(t *testing.T) {
	root := newProject(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "site.yaml"), []byte("site: [\n"), 0o644))

	err := RunBuild(context.Background(), &Global{Stdout: &bytes.Buffer{}}, root, "", "")
	require.Error(t, err)
	require.Equal(t, 7, errors.NewCLIErrorAdapter(false, nil).ExitCodeFor(err))
}

func TestInitCmd(t *testing.T) {
	root := t.TempDir()
	var stdout bytes.Buffer
	cmd := &InitCmd{}
	require.NoError(t, cmd.Run(&Global{Stdout: &stdout}, &CLI{Dir: root}))
	require.FileExists(t, filepath.Join(root, "site.yaml"))
	require.Contains(t, stdout.String(), "site.yaml")

	require.Error(t, cmd.Run(&Global{Stdout: &stdout}, &CLI{Dir: root}))
}
