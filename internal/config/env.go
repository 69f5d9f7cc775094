package config

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/cpawithai/sitebuild/internal/logfields"
)

// envFiles are loaded in order from the project root. godotenv.Load never
// overrides variables that are already set, so the first file wins.
var envFiles = []string{".env", ".env.local"}

func loadEnvFiles(root string) {
	for _, name := range envFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			slog.Warn("Could not load env file", logfields.Path(path), logfields.Error(err))
			continue
		}
		slog.Debug("Loaded env file", logfields.Path(path))
	}
}
