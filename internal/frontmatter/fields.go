package frontmatter

import (
	"fmt"
	"strings"
)

// String returns the string form of fields[key], or def when the key is
// absent or null. Non-string scalars (numbers, booleans) are formatted.
func String(fields map[string]any, key, def string) string {
	v, ok := fields[key]
	if !ok || v == nil {
		return def
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// StringSlice returns fields[key] as a list of strings. A single scalar becomes
// a one-element list; absent, null and empty values yield an empty list.
func StringSlice(fields map[string]any, key string) []string {
	v, ok := fields[key]
	if !ok || v == nil {
		return []string{}
	}

	switch vv := v.(type) {
	case []any:
		out := make([]string, 0, len(vv))
		for _, item := range vv {
			if item == nil {
				continue
			}
			out = append(out, fmt.Sprint(item))
		}
		return out
	case []string:
		return append([]string{}, vv...)
	case string:
		if strings.TrimSpace(vv) == "" {
			return []string{}
		}
		return []string{vv}
	default:
		return []string{fmt.Sprint(vv)}
	}
}
