// Package ingest sequences fetch, normalize, dedup/store and categorize
// across all configured providers for one run.
package ingest

import (
	"context"
	"errors"
	"fmt"
	"time"

	"newswire/internal/classify"
	"newswire/internal/logger"
	"newswire/internal/provider"
	"newswire/internal/store"

	"github.com/getsentry/sentry-go"
	"github.com/google/uuid"
)

// ProviderResult aggregates one provider's counts for a run.
type ProviderResult struct {
	Provider string
	Fetched  int
	Created  int
	Skipped  int
	Failed   int
	FetchErr error
}

// RunResult aggregates one orchestrator run. Runs are not persisted; the
// idempotent side effects on article/category storage are the only
// durable output.
type RunResult struct {
	StartedAt   time.Time
	CompletedAt time.Time
	RunID       string
	Providers   []ProviderResult
	Mock        bool
}

// TotalCreated returns the number of articles created across providers.
func (r *RunResult) TotalCreated() int {
	total := 0
	for _, p := range r.Providers {
		total += p.Created
	}

	return total
}

// Err returns the providers' fetch errors joined into one aggregate, or
// nil when every provider fetched cleanly. Callers exposing a manual
// refresh report this single error, never per-provider traces.
func (r *RunResult) Err() error {
	var errs []error

	for _, p := range r.Providers {
		if p.FetchErr != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.Provider, p.FetchErr))
		}
	}

	return errors.Join(errs...)
}

// Orchestrator runs the ingestion pipeline across configured adapters.
type Orchestrator struct {
	store         *store.Store
	classifier    *classify.Classifier
	log           *logger.Logger
	adapters      []provider.Adapter
	retentionDays int
}

// NewOrchestrator creates an orchestrator over the given adapters.
// Adapter order is the processing order within a run.
func NewOrchestrator(s *store.Store, c *classify.Classifier, adapters []provider.Adapter, log *logger.Logger) *Orchestrator {
	return &Orchestrator{
		store:      s,
		classifier: c,
		log:        log,
		adapters:   adapters,
	}
}

// EnableRetention makes each run delete articles published more than
// maxAgeDays ago. Off unless configured.
func (o *Orchestrator) EnableRetention(maxAgeDays int) {
	o.retentionDays = maxAgeDays
}

// Run executes one ingestion cycle: for each adapter, independently
// fetch, normalize, dedup/store and categorize. A failing provider never
// stops the others; the run always completes and reports counts. When any
// adapter lacks credentials the whole run is forced into mock mode with a
// warning.
func (o *Orchestrator) Run(ctx context.Context, limit int, mock bool) *RunResult {
	result := &RunResult{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}

	log := o.log.With("run_id", result.RunID)

	if !mock {
		for _, a := range o.adapters {
			if !a.Ready() {
				log.Warn("credentials missing, forcing mock mode for all providers", "provider", a.Name())
				mock = true

				break
			}
		}
	}

	result.Mock = mock
	log.Info("ingestion run started", "providers", len(o.adapters), "limit", limit, "mock", mock)

	for _, a := range o.adapters {
		if ctx.Err() != nil {
			break
		}

		result.Providers = append(result.Providers, o.runProvider(ctx, log, a, limit, mock))
	}

	if o.retentionDays > 0 {
		removed, err := o.store.DeleteArticlesOlderThan(o.retentionDays)
		if err != nil {
			log.Error("retention cleanup failed", "error", err)
		} else if removed > 0 {
			log.Info("retention cleanup removed old articles", "removed", removed)
		}
	}

	result.CompletedAt = time.Now().UTC()
	log.Info("ingestion run completed",
		"created", result.TotalCreated(),
		"duration", result.CompletedAt.Sub(result.StartedAt).String(),
	)

	return result
}

// runProvider processes a single provider. Failures of any kind are
// contained here: a panicking or erroring adapter yields a partial result
// and the run moves on to the next provider.
func (o *Orchestrator) runProvider(ctx context.Context, log *logger.Logger, a provider.Adapter, limit int, mock bool) (res ProviderResult) {
	res.Provider = a.Name()

	defer func() {
		if r := recover(); r != nil {
			log.Error("provider panicked", "provider", a.Name(), "panic", r)
			res.FetchErr = fmt.Errorf("provider %s panicked: %v", a.Name(), r)
		}
	}()

	records, err := a.Fetch(ctx, limit, mock)
	if err != nil {
		log.Warn("provider fetch failed", "provider", a.Name(), "error", err)
		sentry.CaptureException(err)
		res.FetchErr = err
	}

	res.Fetched = len(records)

	for _, raw := range records {
		article, err := a.Normalize(raw)
		if errors.Is(err, provider.ErrSkipRecord) {
			res.Skipped++

			continue
		}

		if err != nil {
			res.Failed++
			log.Warn("record normalization failed", "provider", a.Name(), "error", err)

			continue
		}

		sourceCreated, err := o.store.GetOrCreateSource(&article.Source)
		if err != nil {
			res.Failed++
			log.Error("source lookup failed", "provider", a.Name(), "source", article.Source.Name, "error", err)
			sentry.CaptureException(err)

			continue
		}

		if sourceCreated {
			log.Info("created source", "name", article.Source.Name)
		}

		article.SourceID = article.Source.ID

		created, err := o.store.GetOrCreateArticle(a.Key(), article)
		if err != nil {
			res.Failed++
			log.Error("article store failed", "provider", a.Name(), "title", article.Title, "error", err)
			sentry.CaptureException(err)

			continue
		}

		if !created {
			// Already stored: re-ingestion is insert-only, never an update.
			continue
		}

		res.Created++
		log.Info("created article", "provider", a.Name(), "title", article.Title)

		if _, err := o.classifier.Categorize(article); err != nil {
			log.Warn("categorization failed", "provider", a.Name(), "title", article.Title, "error", err)
		}
	}

	log.Info("provider finished",
		"provider", a.Name(),
		"fetched", res.Fetched,
		"created", res.Created,
		"skipped", res.Skipped,
		"failed", res.Failed,
	)

	return res
}
