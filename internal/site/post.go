package site

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/cpawithai/sitebuild/internal/errors"
	"github.com/cpawithai/sitebuild/internal/frontmatter"
	"github.com/cpawithai/sitebuild/internal/frontmatterops"
	"github.com/cpawithai/sitebuild/internal/logfields"
	"github.com/cpawithai/sitebuild/internal/templates"
)

const wordsPerMinute = 200

// Post is the metadata of one built post.
type Post struct {
	Title       string
	Slug        string
	Date        string
	Description string
	Tags        []string
	ReadingTime int

	SourcePath  string
	Fingerprint string
}

// postSources lists the Markdown files in the content directory in filename
// order. A missing directory means no posts.
func (g *Generator) postSources() ([]string, error) {
	dir := g.cfg.ContentDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("No content directory", logfields.Path(dir))
			return nil, nil
		}
		return nil, errors.ContentReadFailed(dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".md" {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// buildPost renders one Markdown file to <out>/posts/<slug>/index.html.
func (g *Generator) buildPost(set *templates.Set, path string) (Post, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Post{}, errors.ContentReadFailed(path, err)
	}
	fields, body, err := frontmatter.Parse(raw)
	if err != nil {
		return Post{}, errors.FrontmatterInvalid(path, err)
	}

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	slug := frontmatter.String(fields, "slug", stem)
	post := Post{
		Slug:        slug,
		Title:       frontmatter.String(fields, "title", titleFromSlug(slug)),
		Date:        frontmatter.String(fields, "date", ""),
		Description: frontmatter.String(fields, "description", ""),
		Tags:        frontmatter.StringSlice(fields, "tags"),
		ReadingTime: readingTime(body),
		SourcePath:  path,
	}

	post.Fingerprint, err = frontmatterops.ComputeFingerprint(fields, body)
	if err != nil {
		return Post{}, errors.FrontmatterInvalid(path, err)
	}

	html, err := g.renderer.Render(body)
	if err != nil {
		return Post{}, errors.MarkdownRenderFailed(path, err)
	}

	content := set.Render(set.Post, templates.Values{
		"title":        post.Title,
		"date":         post.Date,
		"description":  post.Description,
		"tags":         tagsHTML(post.Tags),
		"reading_time": readingTimeLabel(post.ReadingTime),
		"content":      html,
	})
	page := set.Render(set.Base, templates.Values{
		"title":       post.Title + " — " + g.cfg.Site.Name,
		"description": post.Description,
		"content":     content,
		"url":         g.url(postPath(slug)),
	})

	if err := g.writeOutput("posts/"+slug+"/index.html", []byte(page)); err != nil {
		return Post{}, err
	}

	slog.Debug("Built post",
		logfields.Slug(slug),
		logfields.Title(post.Title),
		logfields.File(path),
		logfields.Fingerprint(post.Fingerprint))
	return post, nil
}

// titleFromSlug turns "my-first-post" into "My First Post".
func titleFromSlug(slug string) string {
	return cases.Title(language.English).String(strings.ReplaceAll(slug, "-", " "))
}

// readingTime is whole minutes at 200 words per minute, never less than one.
func readingTime(body []byte) int {
	return max(1, len(strings.Fields(string(body)))/wordsPerMinute)
}

func readingTimeLabel(minutes int) string {
	return strconv.Itoa(minutes) + " min read"
}

func tagsHTML(tags []string) string {
	spans := make([]string, len(tags))
	for i, t := range tags {
		spans[i] = `<span class="tag">` + t + `</span>`
	}
	return strings.Join(spans, " ")
}
