// Package frontmatterops derives stable content fingerprints for posts.
package frontmatterops

import (
	"errors"
	"sort"
	"strings"

	"github.com/cpawithai/sitebuild/internal/frontmatter"
	"github.com/inful/mdfp"
)

// Keys that never contribute to a fingerprint: bookkeeping fields that change
// without the content changing.
var excludedKeys = map[string]struct{}{
	mdfp.FingerprintField: {},
	"lastmod":             {},
	"uid":                 {},
	"aliases":             {},
}

// ComputeFingerprint hashes the canonical frontmatter together with the body.
//
// The frontmatter is serialized key-sorted with LF newlines and one trailing
// newline removed, so two posts with equal fields and body always agree.
func ComputeFingerprint(fields map[string]any, body []byte) (string, error) {
	if fields == nil {
		return "", errors.New("fields map is nil")
	}

	hashed := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, skip := excludedKeys[k]; skip {
			continue
		}
		hashed[k] = v
	}

	fm := ""
	if len(hashed) > 0 {
		raw, err := frontmatter.Canonical(hashed)
		if err != nil {
			return "", err
		}
		fm = strings.TrimSuffix(string(raw), "\n")
	}

	return mdfp.CalculateFingerprintFromParts(fm, string(body)), nil
}

// Diff compares two slug to fingerprint snapshots and returns the slugs that
// were added, removed or changed, sorted.
func Diff(prev, next map[string]string) []string {
	changed := make([]string, 0)
	for slug, fp := range next {
		if old, ok := prev[slug]; !ok || old != fp {
			changed = append(changed, slug)
		}
	}
	for slug := range prev {
		if _, ok := next[slug]; !ok {
			changed = append(changed, slug)
		}
	}
	sort.Strings(changed)
	return changed
}
