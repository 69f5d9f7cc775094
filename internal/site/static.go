package site

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cpawithai/sitebuild/internal/errors"
)

// copyStatic mirrors the static directory into <out>/static, replacing any
// previous copy. A missing static directory fails the build.
func (g *Generator) copyStatic() error {
	src := g.cfg.StaticDir()
	dest := filepath.Join(g.outputDir, "static")

	info, err := os.Stat(src)
	if err != nil {
		return errors.StaticCopyFailed(src, err)
	}
	if !info.IsDir() {
		return errors.StaticCopyFailed(src, os.ErrInvalid)
	}
	if err := os.RemoveAll(dest); err != nil {
		return errors.OutputWriteFailed(dest, err)
	}
	if err := copyTree(src, dest, map[string]bool{}); err != nil {
		return errors.StaticCopyFailed(src, err)
	}
	return nil
}

// copyTree copies src into dest, following symlinks: a linked file is copied
// by content and a linked directory is descended into. ancestors holds the
// resolved directories on the current path and rejects link cycles.
func copyTree(src, dest string, ancestors map[string]bool) error {
	real, err := filepath.EvalSymlinks(src)
	if err != nil {
		return err
	}
	if ancestors[real] {
		return fmt.Errorf("symlink cycle at %s", src)
	}
	ancestors[real] = true
	defer delete(ancestors, real)

	entries, err := os.ReadDir(src)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return err
	}
	for _, e := range entries {
		from, to := filepath.Join(src, e.Name()), filepath.Join(dest, e.Name())
		info, err := os.Stat(from)
		if err != nil {
			return err
		}
		switch {
		case info.IsDir():
			err = copyTree(from, to, ancestors)
		case info.Mode().IsRegular():
			err = copyFile(from, to)
		default:
			err = fmt.Errorf("%s: unsupported file type %s", from, info.Mode().Type())
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

// writeCNAME records the custom domain for GitHub Pages, without a newline.
func (g *Generator) writeCNAME() error {
	return g.writeOutput("CNAME", []byte(g.cfg.Site.Domain))
}
