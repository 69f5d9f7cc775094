// Package frontmatter splits YAML frontmatter from Markdown content files and
// exposes typed accessors over the parsed mapping.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// Style captures the newline shape of a source document.
type Style struct {
	Newline string
}

// ErrMissingClosingDelimiter indicates the document started with a YAML
// frontmatter delimiter but did not contain a closing delimiter.
var ErrMissingClosingDelimiter = errors.New("yaml frontmatter start delimiter found but closing delimiter is missing")

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a YAML frontmatter delimiter, had is false
// and body is the full input. A closing delimiter on the last line without a
// trailing newline is accepted.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, style Style, err error) {
	style = detectStyle(content)

	nl := style.Newline
	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, style, nil
	}

	frontmatterStart := len(open)
	rest := content[frontmatterStart:]
	closeLine := []byte("---" + nl)
	if bytes.HasPrefix(rest, closeLine) {
		return []byte{}, rest[len(closeLine):], true, style, nil
	}
	if bytes.Equal(rest, []byte("---")) {
		return []byte{}, []byte{}, true, style, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	if idx := bytes.Index(rest, closeSeq); idx >= 0 {
		frontmatterEnd := frontmatterStart + idx + len(nl)
		bodyStart := frontmatterStart + idx + len(closeSeq)
		return content[frontmatterStart:frontmatterEnd], content[bodyStart:], true, style, nil
	}

	closeAtEOF := []byte(nl + "---")
	if bytes.HasSuffix(rest, closeAtEOF) {
		frontmatterEnd := len(content) - len("---")
		return content[frontmatterStart:frontmatterEnd], []byte{}, true, style, nil
	}

	return nil, nil, false, style, ErrMissingClosingDelimiter
}

// ParseYAML parses raw YAML frontmatter (without --- delimiters) into a map.
func ParseYAML(frontmatter []byte) (map[string]any, error) {
	if len(frontmatter) == 0 {
		return map[string]any{}, nil
	}

	var fields map[string]any
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	if fields == nil {
		fields = map[string]any{}
	}
	return fields, nil
}

// Parse extracts the frontmatter mapping and Markdown body from a content file.
//
// Contract:
//   - No leading delimiter: empty mapping and the original text unchanged.
//   - Frontmatter present: parsed mapping and the body with surrounding whitespace trimmed.
//   - Missing closing delimiter or malformed YAML: error.
func Parse(content []byte) (map[string]any, []byte, error) {
	raw, body, had, _, err := Split(content)
	if err != nil {
		return nil, nil, err
	}
	if !had {
		return map[string]any{}, content, nil
	}

	fields, err := ParseYAML(raw)
	if err != nil {
		return nil, nil, err
	}
	return fields, bytes.TrimSpace(body), nil
}

func detectStyle(content []byte) Style {
	newline := "\n"
	for i := 0; i+1 < len(content); i++ {
		if content[i] == '\r' && content[i+1] == '\n' {
			newline = "\r\n"
			break
		}
		if content[i] == '\n' {
			newline = "\n"
			break
		}
	}
	return Style{Newline: newline}
}
