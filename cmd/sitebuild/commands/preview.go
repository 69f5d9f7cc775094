package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/cpawithai/sitebuild/internal/preview"
)

// PreviewCmd serves the site locally and rebuilds on change.
type PreviewCmd struct {
	Addr   string `name:"addr" default:"localhost:8000" help:"HTTP listen address."`
	Output string `short:"o" name:"output" help:"Output directory for the preview build (defaults to a temporary directory)."`
}

func (p *PreviewCmd) Run(_ *Global, root *CLI) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	return preview.Run(ctx, preview.Options{
		Root:      root.Dir,
		Addr:      p.Addr,
		OutputDir: p.Output,
	})
}
