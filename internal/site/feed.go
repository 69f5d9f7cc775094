package site

import (
	"encoding/xml"

	"github.com/cpawithai/sitebuild/internal/errors"
)

const atomNamespace = "http://www.w3.org/2005/Atom"

type rssXML struct {
	XMLName   xml.Name   `xml:"rss"`
	Version   string     `xml:"version,attr"`
	AtomXMLNS string     `xml:"xmlns:atom,attr"`
	Channel   rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	AtomLink    atomLink  `xml:"atom:link"`
	Items       []rssItem `xml:"item"`
}

type atomLink struct {
	Href string `xml:"href,attr"`
	Rel  string `xml:"rel,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	Description string `xml:"description"`
	PubDate     string `xml:"pubDate"`
	GUID        string `xml:"guid"`
}

// buildFeed writes an RSS 2.0 feed of the most recent posts. pubDate carries
// the frontmatter date unchanged.
func (g *Generator) buildFeed(posts []Post) error {
	recent := byDateDesc(posts)
	if len(recent) > g.cfg.Feed.MaxItems {
		recent = recent[:g.cfg.Feed.MaxItems]
	}

	items := make([]rssItem, 0, len(recent))
	for _, p := range recent {
		link := g.url(postPath(p.Slug))
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Description,
			PubDate:     p.Date,
			GUID:        link,
		})
	}

	data, err := encodeXML(rssXML{
		Version:   "2.0",
		AtomXMLNS: atomNamespace,
		Channel: rssChannel{
			Title:       g.cfg.Site.Name,
			Link:        g.cfg.Site.BaseURL,
			Description: g.cfg.Site.FeedDescription,
			AtomLink: atomLink{
				Href: g.url("/feed.xml"),
				Rel:  "self",
				Type: "application/rss+xml",
			},
			Items: items,
		},
	})
	if err != nil {
		return errors.InternalError("encode feed", err)
	}
	return g.writeOutput("feed.xml", data)
}
