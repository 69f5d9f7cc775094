package config

import (
	"net/url"

	"github.com/cpawithai/sitebuild/internal/errors"
)

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.Site.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.ValidationFailed("site.base_url", "must be an absolute http(s) URL").
			WithContext("value", cfg.Site.BaseURL)
	}
	if cfg.Feed.MaxItems < 0 {
		return errors.ValidationFailed("feed.max_items", "must be positive")
	}
	if cfg.EnclosesRoot(cfg.Paths.Output) {
		return errors.ValidationFailed("paths.output", "must not be the project root or one of its parents")
	}
	return nil
}
