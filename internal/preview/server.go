package preview

import (
	"encoding/json"
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// newHandler serves the built site from root, plus /healthz and /metrics.
// Paths with no file behind them get 404.html with a 404 status, the way
// static hosts serve a custom not-found page.
func newHandler(root string, status *buildStatus, metricsHandler http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		snap := status.snapshot()
		w.Header().Set("Content-Type", "application/json")
		if snap.Status != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(snap)
	})
	if metricsHandler != nil {
		mux.Handle("/metrics", metricsHandler)
	}
	mux.Handle("/", &siteHandler{root: root, files: http.FileServer(http.Dir(root))})
	return mux
}

type siteHandler struct {
	root  string
	files http.Handler
}

func (h *siteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !h.exists(r.URL.Path) {
		h.notFound(w)
		return
	}
	h.files.ServeHTTP(w, r)
}

func (h *siteHandler) exists(urlPath string) bool {
	full := filepath.Join(h.root, filepath.FromSlash(path.Clean("/"+urlPath)))
	info, err := os.Stat(full)
	if err != nil {
		return false
	}
	if info.IsDir() {
		_, err = os.Stat(filepath.Join(full, "index.html"))
		return err == nil
	}
	return true
}

func (h *siteHandler) notFound(w http.ResponseWriter) {
	page, err := os.ReadFile(filepath.Join(h.root, "404.html"))
	if err != nil {
		http.NotFound(w, nil)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(page)
}
