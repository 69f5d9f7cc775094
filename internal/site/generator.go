// Package site builds the static site: post pages, the index, 404, llms.txt,
// sitemap.xml, feed.xml, CNAME and the copied static tree.
//
// A build is a fixed sequence of stages run on one goroutine; the first
// failing stage aborts the build and leaves the partial output in place.
package site

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cpawithai/sitebuild/internal/config"
	"github.com/cpawithai/sitebuild/internal/errors"
	"github.com/cpawithai/sitebuild/internal/logfields"
	"github.com/cpawithai/sitebuild/internal/markdown"
	"github.com/cpawithai/sitebuild/internal/metrics"
	"github.com/cpawithai/sitebuild/internal/templates"
)

// Generator builds a site from a project configuration.
type Generator struct {
	cfg       *config.Config
	outputDir string
	// outputLabel is how the output dir appears in the summary line.
	outputLabel string
	renderer    *markdown.Renderer
	globals     templates.Globals
	observer    BuildObserver
	progress    io.Writer
}

// NewGenerator creates a Generator writing to the configured output directory.
func NewGenerator(cfg *config.Config) *Generator {
	return &Generator{
		cfg:         cfg,
		outputDir:   cfg.OutputDir(),
		outputLabel: cfg.Paths.Output,
		renderer:    markdown.New(),
		globals:     templates.NewGlobals(cfg.Analytics.PosthogKey),
		observer:    NoopObserver{},
		progress:    io.Discard,
	}
}

// WithOutputDir overrides the output directory.
func (g *Generator) WithOutputDir(dir string) *Generator {
	g.outputLabel = dir
	g.outputDir = g.cfg.Resolve(dir)
	return g
}

// WithRecorder reports stage and build metrics to rec.
func (g *Generator) WithRecorder(rec metrics.Recorder) *Generator {
	if rec == nil {
		rec = metrics.NoopRecorder{}
	}
	g.observer = recorderObserver{rec: rec}
	return g
}

// WithObserver replaces the build observer.
func (g *Generator) WithObserver(obs BuildObserver) *Generator {
	if obs == nil {
		obs = NoopObserver{}
	}
	g.observer = obs
	return g
}

// WithProgress sets where per-artifact progress lines are written.
func (g *Generator) WithProgress(w io.Writer) *Generator {
	if w == nil {
		w = io.Discard
	}
	g.progress = w
	return g
}

// OutputDir returns the absolute output directory.
func (g *Generator) OutputDir() string { return g.outputDir }

// Build runs every stage and returns the report. The report is returned
// even when the build fails.
func (g *Generator) Build(ctx context.Context) (*BuildReport, error) {
	report := newBuildReport(g.outputDir)
	bs := newBuildState(g, report)

	slog.Info("Build started",
		logfields.BuildID(report.BuildID),
		logfields.Output(g.outputDir))

	err := runStages(ctx, bs, pipeline())
	report.finish(err)
	g.observer.OnBuildComplete(report)

	if err != nil {
		slog.Error("Build failed",
			logfields.BuildID(report.BuildID),
			logfields.Error(err))
		return report, err
	}

	slog.Info("Build complete",
		logfields.BuildID(report.BuildID),
		logfields.Outcome(string(report.Outcome)),
		logfields.Count(len(bs.Posts)),
		logfields.DurationMS(float64(report.Duration().Microseconds())/1000))
	g.progressf("\n🦀 Built %d posts → %s/\n", len(bs.Posts), filepath.ToSlash(filepath.Clean(g.outputLabel)))
	return report, nil
}

func (g *Generator) progressf(format string, args ...any) {
	_, _ = fmt.Fprintf(g.progress, format, args...)
}

// prepareOutput removes and recreates the output root.
func (g *Generator) prepareOutput() error {
	if g.cfg.EnclosesRoot(g.outputDir) {
		return errors.ValidationFailed("output", "refusing to clear the project root or one of its parents").
			WithContext("path", g.outputDir)
	}
	if err := os.RemoveAll(g.outputDir); err != nil {
		return errors.OutputWriteFailed(g.outputDir, err)
	}
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return errors.OutputWriteFailed(g.outputDir, err)
	}
	return nil
}

// url joins the site base URL with an absolute path.
func (g *Generator) url(path string) string {
	return g.cfg.Site.BaseURL + path
}

func postPath(slug string) string {
	return "/posts/" + slug + "/"
}

// writeOutput writes data to rel under the output root, creating directories.
func (g *Generator) writeOutput(rel string, data []byte) error {
	path := filepath.Join(g.outputDir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.OutputWriteFailed(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.OutputWriteFailed(path, err)
	}
	return nil
}
