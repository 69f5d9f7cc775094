package site

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cpawithai/sitebuild/internal/config"
)

const (
	testBase  = `<html><head><title>{{title}}</title><meta name="description" content="{{description}}"><link rel="canonical" href="{{url}}"><script>var key="{{posthog_key}}";</script></head><body>{{content}}</body></html>`
	testPost  = `<article><h1>{{title}}</h1><time>{{date}}</time><span class="rt">{{reading_time}}</span><div class="tags">{{tags}}</div><p>{{description}}</p>{{content}}</article>`
	testIndex = `<main class="posts">{{posts}}</main>`
	test404   = `<h1>Not here</h1>`
)

// testProject lays out a minimal project under a temp dir and returns its config.
func testProject(t *testing.T) *config.Config {
	t.Helper()
	return testProjectAt(t, t.TempDir())
}

// testProjectAt lays out the same project under root, creating it if needed.
func testProjectAt(t *testing.T, root string) *config.Config {
	t.Helper()
	writeFile(t, root, "templates/base.html", testBase)
	writeFile(t, root, "templates/post.html", testPost)
	writeFile(t, root, "templates/index.html", testIndex)
	writeFile(t, root, "templates/404.html", test404)
	writeFile(t, root, "static/css/site.css", "body{}")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "content", "posts"), 0o755))
	return config.Default(root)
}

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	path := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func addPost(t *testing.T, cfg *config.Config, name, body string) {
	t.Helper()
	writeFile(t, cfg.Root, "content/posts/"+name, body)
}

func readOutput(t *testing.T, cfg *config.Config, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.OutputDir(), filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}

func build(t *testing.T, cfg *config.Config) *BuildReport {
	t.Helper()
	report, err := NewGenerator(cfg).Build(context.Background())
	require.NoError(t, err)
	return report
}

// snapshotTree reads every file under dir keyed by slash-separated relative path.
func snapshotTree(t *testing.T, dir string) map[string]string {
	t.Helper()
	out := map[string]string{}
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, _ := filepath.Rel(dir, path)
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		out[filepath.ToSlash(rel)] = string(data)
		return nil
	})
	require.NoError(t, err)
	return out
}
