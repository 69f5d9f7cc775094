// Package config loads the optional site.yaml project file.
//
// Every field has a default matching the stock site, so a project without a
// site.yaml builds exactly like one with the example file written by Init.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/cpawithai/sitebuild/internal/errors"
)

// FileName is the project configuration file looked up in the project root.
const FileName = "site.yaml"

// PosthogKeyEnv names the environment variable holding the analytics key.
const PosthogKeyEnv = "POSTHOG_KEY"

// Config is the full project configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Paths   PathsConfig   `yaml:"paths"`
	Feed    FeedConfig    `yaml:"feed"`
	Sitemap SitemapConfig `yaml:"sitemap"`

	// Analytics is never read from the file; it comes from the environment.
	Analytics AnalyticsConfig `yaml:"-"`

	// Root is the absolute project root every relative path resolves against.
	Root string `yaml:"-"`
}

// SiteConfig holds the site identity used in page titles, feeds and llms.txt.
type SiteConfig struct {
	Name            string   `yaml:"name"`
	BaseURL         string   `yaml:"base_url"`
	HomeTitle       string   `yaml:"home_title"`
	HomeDescription string   `yaml:"home_description"`
	FeedDescription string   `yaml:"feed_description"`
	LLMSSummary     []string `yaml:"llms_summary"`
	Domain          string   `yaml:"domain"`
}

// PathsConfig locates inputs and the output tree, relative to the project root.
type PathsConfig struct {
	Content   string `yaml:"content"`
	Templates string `yaml:"templates"`
	Static    string `yaml:"static"`
	Output    string `yaml:"output"`
}

type FeedConfig struct {
	MaxItems int `yaml:"max_items"`
}

type SitemapConfig struct {
	Namespace string `yaml:"namespace"`
}

type AnalyticsConfig struct {
	PosthogKey string
}

// Load reads <root>/site.yaml when present and returns a normalized, defaulted
// and validated Config. A missing file yields the defaults.
func Load(root string) (*Config, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return nil, errors.ConfigNotReadable(root, err)
	}
	loadEnvFiles(absRoot)

	cfg := &Config{}
	path := filepath.Join(absRoot, FileName)
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		expanded := os.ExpandEnv(string(data))
		if uerr := yaml.Unmarshal([]byte(expanded), cfg); uerr != nil {
			return nil, errors.ConfigInvalid(path, uerr)
		}
	case os.IsNotExist(err):
	default:
		return nil, errors.ConfigNotReadable(path, err)
	}

	cfg.Root = absRoot
	cfg.Analytics.PosthogKey = os.Getenv(PosthogKeyEnv)

	normalize(cfg)
	applyDefaults(cfg)
	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the configuration used when no site.yaml exists, rooted at root.
func Default(root string) *Config {
	cfg := &Config{Root: root}
	applyDefaults(cfg)
	return cfg
}

func normalize(cfg *Config) {
	cfg.Site.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Site.BaseURL), "/")
	cfg.Site.Domain = strings.TrimSpace(cfg.Site.Domain)
	for _, p := range []*string{&cfg.Paths.Content, &cfg.Paths.Templates, &cfg.Paths.Static, &cfg.Paths.Output} {
		*p = strings.TrimSpace(*p)
	}
}

// Resolve turns a configured path into an absolute one under Root.
func (c *Config) Resolve(p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(c.Root, p)
}

// EnclosesRoot reports whether dir is the project root or one of its
// ancestors. Clearing such a directory would delete the project sources.
func (c *Config) EnclosesRoot(dir string) bool {
	rel, err := filepath.Rel(c.Resolve(dir), c.Root)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// ContentDir, TemplatesDir, StaticDir and OutputDir return absolute paths.
func (c *Config) ContentDir() string   { return c.Resolve(c.Paths.Content) }
func (c *Config) TemplatesDir() string { return c.Resolve(c.Paths.Templates) }
func (c *Config) StaticDir() string    { return c.Resolve(c.Paths.Static) }
func (c *Config) OutputDir() string    { return c.Resolve(c.Paths.Output) }
