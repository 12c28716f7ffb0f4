// Package content provides cleanup of raw article body text.
package content

import "regexp"

// Cleaner strips provider truncation artifacts from article bodies.
type Cleaner struct {
	truncationPattern *regexp.Regexp
}

// NewCleaner creates a new cleaner instance.
func NewCleaner() *Cleaner {
	return &Cleaner{
		// Some providers truncate content server-side and append a
		// marker like "[+1234 chars]" at the end of the body.
		truncationPattern: regexp.MustCompile(`\s*\[\+\d+ chars\]$`),
	}
}

// Clean removes a trailing truncation marker from the content, if present.
// Content without the marker is returned unchanged, and the operation is
// idempotent.
func (c *Cleaner) Clean(content string) string {
	return c.truncationPattern.ReplaceAllString(content, "")
}
