package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"github.com/cpawithai/sitebuild/cmd/sitebuild/commands"
	"github.com/cpawithai/sitebuild/internal/errors"
	"github.com/cpawithai/sitebuild/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Must(cli,
		kong.Name("sitebuild"),
		kong.Description("Build the static site from Markdown posts and HTML templates."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)
	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)

	if err := ctx.Run(&commands.Global{Stdout: os.Stdout}); err != nil {
		errors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
	}
}
