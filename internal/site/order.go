package site

import (
	"slices"
	"strings"
)

// byDateDesc returns a copy of posts ordered newest first. Dates compare as
// plain strings, so ISO dates sort chronologically and equal dates keep
// their build order.
func byDateDesc(posts []Post) []Post {
	sorted := slices.Clone(posts)
	slices.SortStableFunc(sorted, func(a, b Post) int {
		return strings.Compare(b.Date, a.Date)
	})
	return sorted
}
