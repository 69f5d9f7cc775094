package templates

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cpawithai/sitebuild/internal/errors"
	"github.com/cpawithai/sitebuild/internal/logfields"
)

// Template file names inside the templates directory.
const (
	BaseFile     = "base.html"
	PostFile     = "post.html"
	IndexFile    = "index.html"
	NotFoundFile = "404.html"
)

// KeyPosthog is the analytics placeholder every render receives.
const KeyPosthog = "posthog_key"

// Globals are values merged into every render. Explicit render values win.
type Globals Values

// NewGlobals builds the process-wide defaults from the analytics key.
// An unset key renders as the empty string.
func NewGlobals(posthogKey string) Globals {
	return Globals{KeyPosthog: posthogKey}
}

// Set holds the templates one build renders with.
type Set struct {
	Base     *Template
	Post     *Template
	Index    *Template
	NotFound *Template

	globals Globals
}

// NewSet assembles a Set from already parsed templates.
func NewSet(base, post, index, notFound *Template, globals Globals) *Set {
	return &Set{Base: base, Post: post, Index: index, NotFound: notFound, globals: globals}
}

// LoadSet reads the four site templates from dir. Any missing or unreadable
// file is an error.
func LoadSet(dir string, globals Globals) (*Set, error) {
	load := func(name string) (*Template, error) {
		raw, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return nil, errors.TemplateMissing(name, err).WithContext("path", filepath.Join(dir, name))
		}
		t := Parse(name, string(raw))
		slog.Debug("Loaded template",
			logfields.Template(name),
			slog.Any("placeholders", t.Placeholders()))
		return t, nil
	}

	s := &Set{globals: globals}
	var err error
	if s.Base, err = load(BaseFile); err != nil {
		return nil, err
	}
	if s.Post, err = load(PostFile); err != nil {
		return nil, err
	}
	if s.Index, err = load(IndexFile); err != nil {
		return nil, err
	}
	if s.NotFound, err = load(NotFoundFile); err != nil {
		return nil, err
	}
	return s, nil
}

// Render renders t with the set's globals merged under values.
func (s *Set) Render(t *Template, values Values) string {
	merged := make(Values, len(values)+len(s.globals))
	for k, v := range s.globals {
		merged[k] = v
	}
	for k, v := range values {
		merged[k] = v
	}
	return t.Render(merged)
}
