package site

import "github.com/cpawithai/sitebuild/internal/templates"

func (g *Generator) buildNotFound(set *templates.Set) error {
	page := set.Render(set.Base, templates.Values{
		"title":       "Page Not Found — " + g.cfg.Site.Name,
		"description": "",
		"content":     set.Render(set.NotFound, nil),
		"url":         g.url("/404"),
	})
	return g.writeOutput("404.html", []byte(page))
}
