// Package slug derives URL-safe identifiers from display names.
// Categories and products never carry a hand-written slug: every create and
// rename re-derives it here, so a slug is always reproducible from its name.
package slug

import "strings"

// Make lowercases the input, collapses every run of characters outside
// [a-z0-9] into a single hyphen and strips leading/trailing hyphens.
// It is pure, total and idempotent: Make(Make(s)) == Make(s).
func Make(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	lastHyphen := false
	for _, r := range strings.ToLower(text) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.Trim(b.String(), "-")
}
