package site

import (
	"strings"

	"github.com/cpawithai/sitebuild/internal/templates"
)

// cardTemplate is the markup of one post card on the home page.
var cardTemplate = templates.Parse("card", `
        <article class="post-card">
            <div class="post-meta">
                <time>{{date}}</time>
                <span class="separator">·</span>
                <span>{{reading_time}}</span>
            </div>
            <h2><a href="{{href}}">{{title}}</a></h2>
            <p class="post-description">{{description}}</p>
            <div class="post-tags">{{tags}}</div>
        </article>
        `)

func (g *Generator) buildIndex(set *templates.Set, posts []Post) error {
	var cards strings.Builder
	for _, p := range byDateDesc(posts) {
		cards.WriteString(cardTemplate.Render(templates.Values{
			"date":         p.Date,
			"reading_time": readingTimeLabel(p.ReadingTime),
			"href":         postPath(p.Slug),
			"title":        p.Title,
			"description":  p.Description,
			"tags":         tagsHTML(p.Tags),
		}))
	}

	index := set.Render(set.Index, templates.Values{"posts": cards.String()})
	page := set.Render(set.Base, templates.Values{
		"title":       g.cfg.Site.HomeTitle,
		"description": g.cfg.Site.HomeDescription,
		"content":     index,
		"url":         g.url("/"),
	})
	return g.writeOutput("index.html", []byte(page))
}
