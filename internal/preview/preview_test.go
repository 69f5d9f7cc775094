package preview

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cpawithai/sitebuild/internal/config"
)

func TestShouldIgnoreEvent(t *testing.T) {
	require.True(t, shouldIgnoreEvent("/tmp/.hidden.md"))
	require.True(t, shouldIgnoreEvent("/tmp/#foo#"))
	require.True(t, shouldIgnoreEvent("/tmp/foo.swp"))
	require.True(t, shouldIgnoreEvent("/tmp/foo.md~"))
	require.True(t, shouldIgnoreEvent("/tmp/.DS_Store"))
	require.True(t, shouldIgnoreEvent("/tmp/Thumbs.db"))
	require.False(t, shouldIgnoreEvent("/tmp/visible.md"))
}

func TestWatchSet_Relevant(t *testing.T) {
	root := t.TempDir()
	ws := newWatchSet(config.Default(root))

	require.True(t, ws.relevant(filepath.Join(root, "site.yaml")))
	require.True(t, ws.relevant(filepath.Join(root, ".env")))
	require.False(t, ws.relevant(filepath.Join(root, "out")))
	require.False(t, ws.relevant(filepath.Join(root, "README.md")))
	require.True(t, ws.relevant(filepath.Join(root, "content", "posts", "a.md")))
	require.False(t, ws.relevant(filepath.Join(root, "content", "posts", ".a.md.swp")))
}

func TestDebouncer_CoalescesBursts(t *testing.T) {
	d := newDebouncer(20 * time.Millisecond)
	defer d.stop()

	for range 5 {
		d.trigger()
	}

	select {
	case <-d.out:
	case <-time.After(time.Second):
		t.Fatal("debounced request never fired")
	}
	select {
	case <-d.out:
		t.Fatal("burst produced more than one request")
	case <-time.After(100 * time.Millisecond):
	}
}

func writeSite(t *testing.T, dir string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "posts", "hello"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte("home"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "404.html"), []byte("custom 404"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "posts", "hello", "index.html"), []byte("hello post"), 0o644))
}

func get(t *testing.T, srv *httptest.Server, path string) (int, string) {
	t.Helper()
	resp, err := http.Get(srv.URL + path)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestHandler_ServesSiteWithNotFoundFallback(t *testing.T) {
	dir := t.TempDir()
	writeSite(t, dir)
	status := &buildStatus{}
	status.setSuccess("b-1")

	srv := httptest.NewServer(newHandler(dir, status, nil))
	defer srv.Close()

	code, body := get(t, srv, "/")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "home", body)

	code, body = get(t, srv, "/posts/hello/")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "hello post", body)

	code, body = get(t, srv, "/posts/missing/")
	require.Equal(t, http.StatusNotFound, code)
	require.Equal(t, "custom 404", body)

	code, _ = get(t, srv, "/posts/")
	require.Equal(t, http.StatusNotFound, code)
}

func TestHandler_Healthz(t *testing.T) {
	status := &buildStatus{}
	srv := httptest.NewServer(newHandler(t.TempDir(), status, nil))
	defer srv.Close()

	status.setSuccess("b-1")
	code, body := get(t, srv, "/healthz")
	require.Equal(t, http.StatusOK, code)
	var snap statusSnapshot
	require.NoError(t, json.Unmarshal([]byte(body), &snap))
	require.Equal(t, "ok", snap.Status)
	require.Equal(t, "b-1", snap.BuildID)

	status.setError("b-2", io.ErrUnexpectedEOF)
	code, body = get(t, srv, "/healthz")
	require.Equal(t, http.StatusServiceUnavailable, code)
	require.NoError(t, json.Unmarshal([]byte(body), &snap))
	require.Equal(t, "error", snap.Status)
	require.Equal(t, "internal", snap.Category)
	require.True(t, snap.HasGoodBuild)
}

func testProject(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	files := map[string]string{
		"templates/base.html":  "<title>{{title}}</title>{{content}}",
		"templates/post.html":  "<h1>{{title}}</h1>{{content}}",
		"templates/index.html": "{{posts}}",
		"templates/404.html":   "gone",
		"static/site.css":      "body{}",
		"content/posts/a.md":   "---\ntitle: A\ndate: 2024-01-01\n---\nhello\n",
	}
	for rel, body := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	return root
}

func TestPreview_RebuildServesAndTracksChanges(t *testing.T) {
	root := testProject(t)
	out := filepath.Join(t.TempDir(), "site")
	p := newPreview(root, out)

	require.NoError(t, p.rebuild(context.Background()))
	require.Len(t, p.fingerprints, 1)
	first := p.fingerprints["a"]

	require.NoError(t, os.WriteFile(filepath.Join(root, "content", "posts", "a.md"),
		[]byte("---\ntitle: A\ndate: 2024-01-01\n---\nchanged\n"), 0o644))
	require.NoError(t, p.rebuild(context.Background()))
	require.NotEqual(t, first, p.fingerprints["a"])

	srv := httptest.NewServer(p.Handler())
	defer srv.Close()

	code, body := get(t, srv, "/posts/a/")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "<p>changed</p>")

	code, body = get(t, srv, "/nope")
	require.Equal(t, http.StatusNotFound, code)
	require.Contains(t, body, "gone")

	code, body = get(t, srv, "/metrics")
	require.Equal(t, http.StatusOK, code)
	require.Contains(t, body, "sitebuild_build_outcomes_total")
}

func TestPreview_FailedRebuildMarksStatus(t *testing.T) {
	root := testProject(t)
	p := newPreview(root, filepath.Join(t.TempDir(), "site"))
	require.NoError(t, p.rebuild(context.Background()))

	require.NoError(t, os.Remove(filepath.Join(root, "templates", "base.html")))
	require.Error(t, p.rebuild(context.Background()))

	snap := p.status.snapshot()
	require.Equal(t, "error", snap.Status)
	require.Equal(t, "template", snap.Category)
	require.True(t, snap.HasGoodBuild)
}

func TestPreview_StopWaitsForRebuildWorker(t *testing.T) {
	root := testProject(t)
	p := newPreview(root, filepath.Join(t.TempDir(), "site"))
	requests := make(chan struct{}, 1)
	stop := p.startRebuildWorker(context.Background(), requests)

	requests <- struct{}{}
	require.Eventually(t, func() bool { return p.status.snapshot().BuildID != "" },
		5*time.Second, 10*time.Millisecond)

	// stop must return with no rebuild holding the build lock, even though
	// the parent context is never canceled.
	requests <- struct{}{}
	stop()
	require.True(t, p.mu.TryLock(), "rebuild still running after stop")
	p.mu.Unlock()
}
