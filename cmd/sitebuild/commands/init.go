package commands

import (
	"fmt"

	"github.com/cpawithai/sitebuild/internal/config"
)

// InitCmd implements the 'init' command.
type InitCmd struct {
	Force bool `help:"Overwrite an existing site.yaml"`
}

func (i *InitCmd) Run(g *Global, root *CLI) error {
	path, err := config.Init(root.Dir, i.Force)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(g.Stdout, "Wrote %s\n", path)
	return nil
}
