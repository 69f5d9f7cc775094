package frontmatter

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanonical_EmptyMap_ReturnsEmpty(t *testing.T) {
	out, err := Canonical(map[string]any{})
	require.NoError(t, err)
	require.Equal(t, "", string(out))
}

func TestCanonical_DeterministicOrderAndTrailingNewline(t *testing.T) {
	fields := map[string]any{
		"title": "two",
		"date":  "2024-01-01",
		"n":     3,
	}

	out1, err := Canonical(fields)
	require.NoError(t, err)
	out2, err := Canonical(fields)
	require.NoError(t, err)
	require.Equal(t, string(out1), string(out2))

	require.Equal(t, "date: \"2024-01-01\"\nn: 3\ntitle: two\n", string(out1))
}

func TestCanonical_NestedMapAndList(t *testing.T) {
	fields := map[string]any{
		"outer": map[string]any{
			"b": 2,
			"a": 1,
		},
		"tags": []any{"x", "y"},
	}

	out, err := Canonical(fields)
	require.NoError(t, err)
	text := string(out)
	require.Contains(t, text, "outer:\n  a: 1\n  b: 2\n")
	require.Less(t, strings.Index(text, "outer:"), strings.Index(text, "tags:"))
	require.Less(t, strings.Index(text, "- x"), strings.Index(text, "- y"))
}
