package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/cpawithai/sitebuild/internal/errors"
)

// Init writes an example site.yaml holding every default into root.
func Init(root string, force bool) (string, error) {
	path := filepath.Join(root, FileName)
	if _, err := os.Stat(path); err == nil && !force {
		return "", errors.New(errors.CategoryConfig, errors.SeverityFatal,
			"configuration file already exists (use --force to overwrite)").WithContext("path", path)
	}

	example := Default(root)
	data, err := yaml.Marshal(example)
	if err != nil {
		return "", errors.InternalError("marshal example config", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", errors.OutputWriteFailed(path, err)
	}
	return path, nil
}
