package site

import (
	"bytes"
	"encoding/xml"

	"github.com/cpawithai/sitebuild/internal/errors"
)

type sitemapURLSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// buildSitemap lists the home page first, then every post newest first.
func (g *Generator) buildSitemap(posts []Post) error {
	urls := []sitemapURL{{Loc: g.url("/")}}
	for _, p := range byDateDesc(posts) {
		urls = append(urls, sitemapURL{
			Loc:     g.url(postPath(p.Slug)),
			LastMod: p.Date,
		})
	}
	data, err := encodeXML(sitemapURLSet{
		XMLNS: g.cfg.Sitemap.Namespace,
		URLs:  urls,
	})
	if err != nil {
		return errors.InternalError("encode sitemap", err)
	}
	return g.writeOutput("sitemap.xml", data)
}

func encodeXML(v any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
