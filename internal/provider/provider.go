// Package provider implements adapters for external news APIs. Each
// adapter translates its provider's native JSON shape into the canonical
// article record and declares the dedup identity key for its records.
package provider

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"newswire/internal/models"
)

// ErrSkipRecord marks a raw record that lacks the fields required to
// build an article. Skipping is not a failure.
var ErrSkipRecord = errors.New("record lacks required fields")

// DefaultContent is stored when a provider supplies neither a body nor a
// description.
const DefaultContent = "No content available"

// publishedAtLayout is the ISO-8601 timestamp format both providers emit.
const publishedAtLayout = "2006-01-02T15:04:05Z"

// Adapter is the capability set each external news provider implements.
// The orchestrator iterates adapters uniformly; adding a provider means
// implementing this interface, not editing the orchestrator.
type Adapter interface {
	// Name returns the provider identifier used in config and logs.
	Name() string

	// Key declares the article field used for deduplication. An adapter
	// uses exactly one key consistently; keys are not interchangeable
	// across providers.
	Key() models.DedupKey

	// Ready reports whether credentials for live fetching are present.
	Ready() bool

	// Fetch returns raw provider records, from the network or from the
	// built-in sample set when mock is true. Transport failures yield
	// whatever records were obtained plus a recoverable error.
	Fetch(ctx context.Context, limit int, mock bool) ([]json.RawMessage, error)

	// Normalize translates one raw record into an article draft, or
	// returns ErrSkipRecord when the record is unusable.
	Normalize(raw json.RawMessage) (*models.Article, error)
}

// parsePublishedAt parses a provider timestamp, falling back to the
// current ingestion time when the value is absent or unparseable.
func parsePublishedAt(value string, now func() time.Time) time.Time {
	if value != "" {
		if ts, err := time.Parse(publishedAtLayout, value); err == nil {
			return ts.UTC()
		}
	}

	return now().UTC()
}

// placeholderWebsite synthesizes a website URL from a source display name
// for sources without known metadata.
func placeholderWebsite(name string) string {
	return "https://" + strings.ReplaceAll(strings.ToLower(name), " ", "") + ".com"
}
