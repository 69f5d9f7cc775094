// Package commands implements the sitebuild CLI subcommands.
package commands

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
)

// LogLevelEnv overrides the log level (debug|info|warn|error).
const LogLevelEnv = "SITEBUILD_LOG_LEVEL"

// Global carries process-wide state into subcommands.
type Global struct {
	// Stdout receives progress lines; diagnostics go to the slog default (stderr).
	Stdout io.Writer
}

// CLI definition & global flags.
type CLI struct {
	Dir     string           `short:"C" name:"dir" help:"Project root containing content/, templates/ and static/" default:"." type:"path"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Build   BuildCmd   `cmd:"" default:"withargs" help:"Build the site (default command)"`
	Preview PreviewCmd `cmd:"" help:"Build, serve and rebuild the site on change"`
	Init    InitCmd    `cmd:"" help:"Write an example site.yaml"`
}

// AfterApply runs after flag parsing; set up logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: parseLogLevel(c.Verbose)}))
	slog.SetDefault(logger)
	return nil
}

// parseLogLevel resolves the level from --verbose and SITEBUILD_LOG_LEVEL.
// The environment wins when set to a known level.
func parseLogLevel(verbose bool) slog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(LogLevelEnv))) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	if verbose {
		return slog.LevelDebug
	}
	// Progress lines on stdout already report each artifact.
	return slog.LevelWarn
}
