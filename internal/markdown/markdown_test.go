package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func render(t *testing.T, src string) string {
	t.Helper()
	out, err := New().Render([]byte(src))
	require.NoError(t, err)
	return out
}

func TestRender_Paragraph(t *testing.T) {
	require.Equal(t, "<p>Hello</p>\n", render(t, "Hello"))
}

func TestRender_HeadingAnchor(t *testing.T) {
	out := render(t, "## Getting Started\n")
	require.Contains(t, out, `<h2 id="getting-started">Getting Started</h2>`)
}

func TestRender_HeadingAttributes(t *testing.T) {
	out := render(t, "## Intro {#custom .lead}\n")
	require.Contains(t, out, `id="custom"`)
	require.Contains(t, out, `class="lead"`)
}

func TestRender_Table(t *testing.T) {
	out := render(t, "| a | b |\n|---|---|\n| 1 | 2 |\n")
	require.Contains(t, out, "<table>")
	require.Contains(t, out, "<td>1</td>")
}

func TestRender_RawHTMLPassesThrough(t *testing.T) {
	out := render(t, "<div class=\"note\">\n\nhi\n\n</div>\n")
	require.Contains(t, out, `<div class="note">`)
}

func TestRender_Typographer(t *testing.T) {
	out := render(t, `"quoted" -- dash`)
	require.Contains(t, out, "&ldquo;quoted&rdquo;")
	require.Contains(t, out, "&ndash;")
}

func TestRender_FencedCodeWithLanguage(t *testing.T) {
	out := render(t, "```python\nprint(1)\n```\n")
	require.True(t, strings.HasPrefix(out, `<div class="code-block">`), out)
	require.Contains(t, out, "<pre")
	require.Contains(t, out, `class="`)
	require.NotContains(t, out, "style=")
}

func TestRender_FencedCodeWithoutLanguage(t *testing.T) {
	out := render(t, "```\na < b\n```\n")
	require.Contains(t, out, `<div class="code-block"><pre><code>`)
	require.Contains(t, out, "a &lt; b")
	require.Contains(t, out, "</code></pre></div>")
}

func TestRender_ReusableAcrossCalls(t *testing.T) {
	r := New()
	a, err := r.Render([]byte("# One"))
	require.NoError(t, err)
	b, err := r.Render([]byte("# One"))
	require.NoError(t, err)
	require.Equal(t, a, b)
}
