package preview

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/cpawithai/sitebuild/internal/config"
	"github.com/cpawithai/sitebuild/internal/logfields"
	"github.com/cpawithai/sitebuild/internal/util/sets"
)

const debounceDelay = 300 * time.Millisecond

// rootFiles are the project-root files whose changes trigger a rebuild.
var rootFiles = sets.New(config.FileName, ".env", ".env.local")

// ignoredNames are OS droppings that never trigger a rebuild.
var ignoredNames = sets.New(".DS_Store", "Thumbs.db")

// watchSet decides which filesystem events matter for a project.
type watchSet struct {
	root string
	dirs []string
}

func newWatchSet(cfg *config.Config) watchSet {
	return watchSet{
		root: cfg.Root,
		dirs: []string{cfg.ContentDir(), cfg.TemplatesDir(), cfg.StaticDir()},
	}
}

// relevant reports whether a change at path should trigger a rebuild.
func (ws watchSet) relevant(path string) bool {
	if filepath.Dir(path) == ws.root {
		return rootFiles.Has(filepath.Base(path))
	}
	return !shouldIgnoreEvent(path)
}

// shouldIgnoreEvent returns true for editor temp files and hidden files.
func shouldIgnoreEvent(path string) bool {
	base := filepath.Base(path)
	if strings.HasPrefix(base, ".") || ignoredNames.Has(base) {
		return true
	}
	return strings.HasSuffix(base, "~") ||
		strings.HasSuffix(base, ".swp") ||
		strings.HasSuffix(base, ".swx") ||
		(strings.HasPrefix(base, "#") && strings.HasSuffix(base, "#"))
}

// newWatcher watches the project root (non-recursively) and every input
// directory recursively. Missing input directories are skipped.
func newWatcher(ws watchSet) (*fsnotify.Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(ws.root); err != nil {
		_ = w.Close()
		return nil, err
	}
	for _, dir := range ws.dirs {
		addDirsRecursive(w, dir)
	}
	return w, nil
}

func addDirsRecursive(w *fsnotify.Watcher, root string) {
	_ = filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if d.IsDir() {
			if err := w.Add(path); err != nil {
				slog.Warn("Watch add failed", logfields.Path(path), logfields.Error(err))
			}
		}
		return nil
	})
}

// debouncer coalesces bursts of triggers into one request on out, fired
// delay after the last trigger.
type debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
	delay time.Duration
	out   chan struct{}
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay, out: make(chan struct{}, 1)}
}

func (d *debouncer) trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, d.fire)
}

// fire queues a request unless one is already pending.
func (d *debouncer) fire() {
	select {
	case d.out <- struct{}{}:
	default:
	}
}

func (d *debouncer) stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
}
