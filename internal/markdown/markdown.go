// Package markdown converts post bodies to HTML with a fixed goldmark
// configuration: tables, heading anchors, attribute lists, raw HTML
// passthrough, smart punctuation and class-based code highlighting.
package markdown

import (
	"bytes"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
)

// CodeBlockClass is the class of the <div> every fenced code block is wrapped in.
const CodeBlockClass = "code-block"

// Renderer converts Markdown to HTML. A Renderer is safe to reuse across posts
// but not for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

// New returns a Renderer with the site's extension set.
func New() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Typographer,
			highlighting.NewHighlighting(
				highlighting.WithGuessLanguage(false),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
				highlighting.WithWrapperRenderer(wrapCodeBlock),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
	return &Renderer{md: md}
}

// Render converts a Markdown body (frontmatter already removed) to an HTML fragment.
func (r *Renderer) Render(body []byte) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(body, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// wrapCodeBlock encloses code in a code-block div. Chroma writes its own <pre>
// for highlighted blocks; unhighlighted blocks need the <pre><code> pair here.
func wrapCodeBlock(w util.BufWriter, c highlighting.CodeBlockContext, entering bool) {
	if entering {
		_, _ = w.WriteString(`<div class="` + CodeBlockClass + `">`)
		if !c.Highlighted() {
			_, _ = w.WriteString("<pre><code>")
		}
		return
	}
	if !c.Highlighted() {
		_, _ = w.WriteString("</code></pre>")
	}
	_, _ = w.WriteString("</div>\n")
}
