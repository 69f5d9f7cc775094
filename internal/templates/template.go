// Package templates implements the site's placeholder substitution.
//
// A placeholder is the literal text {{name}} where name is one or more ASCII
// letters, digits or underscores. Templates are tokenized once; rendering
// resolves each placeholder by exact name and never re-scans substituted text.
package templates

import (
	"fmt"
	"sort"
	"strings"
)

// Values maps placeholder names to their replacement text.
type Values map[string]string

type token struct {
	text string // literal text, or the placeholder name when isVar
	// isVar marks a placeholder token.
	isVar bool
}

// Template is a pre-tokenized substitution template.
type Template struct {
	name   string
	tokens []token
}

// Parse tokenizes text into literal and placeholder tokens.
func Parse(name, text string) *Template {
	t := &Template{name: name}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			t.tokens = append(t.tokens, token{text: lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(text); {
		if strings.HasPrefix(text[i:], "{{") {
			if key, n, ok := scanPlaceholder(text[i:]); ok {
				flush()
				t.tokens = append(t.tokens, token{text: key, isVar: true})
				i += n
				continue
			}
		}
		lit.WriteByte(text[i])
		i++
	}
	flush()
	return t
}

// scanPlaceholder reports whether s starts with a well-formed {{name}} and
// returns the name and the placeholder length.
func scanPlaceholder(s string) (string, int, bool) {
	end := strings.Index(s[2:], "}}")
	if end <= 0 {
		return "", 0, false
	}
	key := s[2 : 2+end]
	for i := 0; i < len(key); i++ {
		if !isNameByte(key[i]) {
			return "", 0, false
		}
	}
	return key, end + 4, true
}

func isNameByte(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}

// Name returns the name the template was parsed under.
func (t *Template) Name() string { return t.name }

// Render substitutes values into the template. Placeholders without a value
// are written back verbatim.
func (t *Template) Render(values Values) string {
	var b strings.Builder
	for _, tok := range t.tokens {
		if !tok.isVar {
			b.WriteString(tok.text)
			continue
		}
		if v, ok := values[tok.text]; ok {
			b.WriteString(v)
			continue
		}
		b.WriteString("{{")
		b.WriteString(tok.text)
		b.WriteString("}}")
	}
	return b.String()
}

// Placeholders lists the distinct placeholder names in the template, sorted.
func (t *Template) Placeholders() []string {
	seen := make(map[string]struct{})
	for _, tok := range t.tokens {
		if tok.isVar {
			seen[tok.text] = struct{}{}
		}
	}
	names := make([]string, 0, len(seen))
	for k := range seen {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func (t *Template) String() string {
	return fmt.Sprintf("template %s (%d tokens)", t.name, len(t.tokens))
}
