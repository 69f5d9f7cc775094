// Package preview serves a built site locally and rebuilds it when content,
// templates, static assets or site configuration change.
package preview

import (
	"context"
	stderrors "errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cpawithai/sitebuild/internal/config"
	"github.com/cpawithai/sitebuild/internal/errors"
	"github.com/cpawithai/sitebuild/internal/frontmatterops"
	"github.com/cpawithai/sitebuild/internal/logfields"
	"github.com/cpawithai/sitebuild/internal/metrics"
	"github.com/cpawithai/sitebuild/internal/site"
	"github.com/cpawithai/sitebuild/internal/workspace"
)

// DefaultAddr is the listen address when none is given.
const DefaultAddr = "localhost:8000"

// Options configure a preview session.
type Options struct {
	// Root is the project directory.
	Root string
	// Addr is the HTTP listen address.
	Addr string
	// OutputDir is where the site is built. Empty means a temporary
	// workspace that is removed on shutdown.
	OutputDir string
}

// Preview owns one preview session: its builds, status and metrics.
type Preview struct {
	root     string
	output   string
	status   *buildStatus
	recorder *metrics.PrometheusRecorder

	// mu serializes builds.
	mu           sync.Mutex
	fingerprints map[string]string
}

func newPreview(root, output string) *Preview {
	return &Preview{
		root:     root,
		output:   output,
		status:   &buildStatus{},
		recorder: metrics.NewPrometheusRecorder(nil),
	}
}

// Handler returns the HTTP handler serving the site, /healthz and /metrics.
func (p *Preview) Handler() http.Handler {
	return newHandler(p.output, p.status, p.recorder.Handler())
}

// rebuild reloads configuration and builds the site once. Failures are
// recorded in the status and logged; the previous output stays served only
// as far as the failed build left it.
func (p *Preview) rebuild(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	cfg, err := config.Load(p.root)
	if err != nil {
		p.status.setError("", err)
		return err
	}
	report, err := site.NewGenerator(cfg).
		WithOutputDir(p.output).
		WithRecorder(p.recorder).
		Build(ctx)
	if err != nil {
		p.status.setError(report.BuildID, err)
		return err
	}
	p.status.setSuccess(report.BuildID)

	next := report.Fingerprints()
	if p.fingerprints != nil {
		changed := frontmatterops.Diff(p.fingerprints, next)
		slog.Info("Site rebuilt",
			logfields.BuildID(report.BuildID),
			logfields.Count(len(changed)))
		for _, slug := range changed {
			slog.Debug("Post changed", logfields.Slug(slug))
		}
	}
	p.fingerprints = next
	return nil
}

// Run builds the site, serves it on opts.Addr and rebuilds on change until
// ctx is canceled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.Root)
	if err != nil {
		return err
	}
	if opts.Addr == "" {
		opts.Addr = DefaultAddr
	}

	output := opts.OutputDir
	if output == "" {
		ws := workspace.NewManager("")
		if err := ws.Create(); err != nil {
			return err
		}
		defer func() {
			if err := ws.Cleanup(); err != nil {
				slog.Warn("Failed to remove preview workspace", logfields.Error(err))
			}
		}()
		output = ws.Path()
	} else {
		output = cfg.Resolve(output)
	}

	p := newPreview(cfg.Root, output)
	if err := p.rebuild(ctx); err != nil {
		slog.Error("Initial build failed", logfields.Error(err))
	}

	ln, err := net.Listen("tcp", opts.Addr)
	if err != nil {
		return errors.Wrap(err, errors.CategoryRuntime, errors.SeverityFatal, "preview server could not listen").
			WithContext("addr", opts.Addr)
	}
	srv := &http.Server{Handler: p.Handler(), ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			slog.Error("Preview server stopped", logfields.Error(err))
		}
	}()
	defer shutdown(srv)
	slog.Info("Preview server listening",
		logfields.Addr("http://"+ln.Addr().String()),
		logfields.Output(output))

	ws := newWatchSet(cfg)
	watcher, err := newWatcher(ws)
	if err != nil {
		return errors.Wrap(err, errors.CategoryRuntime, errors.SeverityFatal, "file watcher could not start")
	}
	defer func() { _ = watcher.Close() }()

	deb := newDebouncer(debounceDelay)
	defer deb.stop()
	// Deferred after the workspace cleanup, so it runs first: no rebuild
	// writes into the output once cleanup starts.
	defer p.startRebuildWorker(ctx, deb.out)()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleFileEvent(watcher, ws, ev, deb.trigger)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			slog.Warn("Watcher error", logfields.Error(err))
		}
	}
}

// startRebuildWorker runs rebuildWorker until ctx is canceled or the returned
// stop func is called. stop waits for an in-flight rebuild to finish.
func (p *Preview) startRebuildWorker(ctx context.Context, requests <-chan struct{}) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		p.rebuildWorker(ctx, requests)
	}()
	return func() {
		cancel()
		wg.Wait()
	}
}

// rebuildWorker runs one rebuild per request. Requests arriving during a
// build collapse into a single follow-up build.
func (p *Preview) rebuildWorker(ctx context.Context, requests <-chan struct{}) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-requests:
			slog.Info("Change detected; rebuilding site")
			if err := p.rebuild(ctx); err != nil {
				slog.Warn("Rebuild failed", logfields.Error(err))
			}
		}
	}
}

func handleFileEvent(w *fsnotify.Watcher, ws watchSet, ev fsnotify.Event, trigger func()) {
	if !ws.relevant(ev.Name) {
		return
	}
	if ev.Has(fsnotify.Create) {
		if fi, err := os.Stat(ev.Name); err == nil && fi.IsDir() {
			addDirsRecursive(w, ev.Name)
		}
	}
	slog.Debug("File change detected", logfields.Path(ev.Name), logfields.Op(ev.Op.String()))
	trigger()
}

func shutdown(srv *http.Server) {
	slog.Info("Shutting down preview server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("HTTP server shutdown error", logfields.Error(err))
	}
}
