package commands

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/cpawithai/sitebuild/internal/config"
	"github.com/cpawithai/sitebuild/internal/logfields"
	"github.com/cpawithai/sitebuild/internal/site"
)

// BuildCmd implements the 'build' command.
type BuildCmd struct {
	Output string `short:"o" name:"output" help:"Output directory (overrides paths.output)"`
	Report string `name:"report" help:"Write a JSON build report to this path" type:"path"`
}

func (b *BuildCmd) Run(g *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return RunBuild(ctx, g, root.Dir, b.Output, b.Report)
}

// RunBuild loads the project at dir and builds it once.
func RunBuild(ctx context.Context, g *Global, dir, output, reportPath string) error {
	cfg, err := config.Load(dir)
	if err != nil {
		return err
	}

	gen := site.NewGenerator(cfg).WithProgress(g.Stdout)
	if output != "" {
		gen = gen.WithOutputDir(output)
	}

	report, buildErr := gen.Build(ctx)
	if reportPath != "" {
		if err := report.Persist(reportPath); err != nil {
			slog.Warn("Failed to write build report", logfields.Path(reportPath), logfields.Error(err))
		}
	}
	return buildErr
}
