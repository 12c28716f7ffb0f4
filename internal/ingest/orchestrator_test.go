package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"testing"
	"time"

	"newswire/internal/classify"
	"newswire/internal/logger"
	"newswire/internal/models"
	"newswire/internal/provider"
	"newswire/internal/store"
)

// stubAdapter is a configurable in-memory Adapter for orchestrator tests.
type stubAdapter struct {
	name     string
	key      models.DedupKey
	ready    bool
	records  []json.RawMessage
	fetchErr error
	panics   bool

	fetchCalls int
	mockSeen   []bool
}

type stubRecord struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	URL     string `json:"url"`
	Skip    bool   `json:"skip"`
	Broken  bool   `json:"broken"`
}

func (s *stubAdapter) Name() string         { return s.name }
func (s *stubAdapter) Key() models.DedupKey { return s.key }
func (s *stubAdapter) Ready() bool          { return s.ready }

func (s *stubAdapter) Fetch(ctx context.Context, limit int, mock bool) ([]json.RawMessage, error) {
	s.fetchCalls++
	s.mockSeen = append(s.mockSeen, mock)

	if s.panics {
		panic("stub adapter exploded")
	}

	return s.records, s.fetchErr
}

func (s *stubAdapter) Normalize(raw json.RawMessage) (*models.Article, error) {
	var rec stubRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}

	if rec.Broken {
		return nil, errors.New("unusable record")
	}

	if rec.Skip {
		return nil, provider.ErrSkipRecord
	}

	return &models.Article{
		Title:       rec.Title,
		Content:     rec.Content,
		URL:         rec.URL,
		PublishedAt: time.Date(2023, 5, 1, 12, 0, 0, 0, time.UTC),
		Source: models.Source{
			Name:       "Stub Source",
			WebsiteURL: "https://stubsource.com",
			Country:    "Unknown",
		},
	}, nil
}

func rawRecords(t *testing.T, recs ...stubRecord) []json.RawMessage {
	t.Helper()

	var raws []json.RawMessage

	for _, rec := range recs {
		b, err := json.Marshal(rec)
		if err != nil {
			t.Fatalf("marshal stub record: %v", err)
		}

		raws = append(raws, b)
	}

	return raws
}

func newTestOrchestrator(t *testing.T, adapters ...provider.Adapter) (*Orchestrator, *store.Store) {
	t.Helper()

	st, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}

	t.Cleanup(func() { st.Close() })

	log := logger.NewLoggerWithWriter("error", "text", io.Discard)
	classifier := classify.NewClassifier(st, log)

	return NewOrchestrator(st, classifier, adapters, log), st
}

func TestOrchestrator_Run(t *testing.T) {
	adapter := &stubAdapter{
		name:  "stub",
		key:   models.DedupByTitle,
		ready: true,
		records: rawRecords(t,
			stubRecord{Title: "Election results announced", Content: "Counting finished.", URL: "https://example.com/1"},
			stubRecord{Title: "New vaccine approved", Content: "Trials completed.", URL: "https://example.com/2"},
			stubRecord{Skip: true},
			stubRecord{Broken: true},
		),
	}

	orch, st := newTestOrchestrator(t, adapter)

	result := orch.Run(context.Background(), 10, false)

	if result.RunID == "" {
		t.Error("Expected non-empty run ID")
	}

	if result.Mock {
		t.Error("Expected live run with ready adapter")
	}

	if len(result.Providers) != 1 {
		t.Fatalf("Expected 1 provider result, got %d", len(result.Providers))
	}

	pr := result.Providers[0]
	if pr.Fetched != 4 || pr.Created != 2 || pr.Skipped != 1 || pr.Failed != 1 {
		t.Errorf("Counts = fetched %d created %d skipped %d failed %d, want 4/2/1/1",
			pr.Fetched, pr.Created, pr.Skipped, pr.Failed)
	}

	count, err := st.CountArticles()
	if err != nil {
		t.Fatalf("CountArticles failed: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 stored articles, got %d", count)
	}

	// Categories were assigned during the run.
	articles, err := st.ListArticles()
	if err != nil {
		t.Fatalf("ListArticles failed: %v", err)
	}

	for _, a := range articles {
		cats, err := st.CategoriesForArticle(a.ID)
		if err != nil {
			t.Fatalf("CategoriesForArticle failed: %v", err)
		}

		if len(cats) == 0 {
			t.Errorf("Article %q has no categories", a.Title)
		}
	}
}

func TestOrchestrator_Run_Idempotent(t *testing.T) {
	adapter := &stubAdapter{
		name:  "stub",
		key:   models.DedupByTitle,
		ready: true,
		records: rawRecords(t,
			stubRecord{Title: "Election results announced", Content: "Counting finished.", URL: "https://example.com/1"},
		),
	}

	orch, st := newTestOrchestrator(t, adapter)

	first := orch.Run(context.Background(), 10, false)
	if first.TotalCreated() != 1 {
		t.Fatalf("Expected 1 created on first run, got %d", first.TotalCreated())
	}

	second := orch.Run(context.Background(), 10, false)
	if second.TotalCreated() != 0 {
		t.Errorf("Expected 0 created on second run, got %d", second.TotalCreated())
	}

	count, err := st.CountArticles()
	if err != nil {
		t.Fatalf("CountArticles failed: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected 1 stored article after both runs, got %d", count)
	}
}

func TestOrchestrator_Run_ProviderIsolation(t *testing.T) {
	failing := &stubAdapter{
		name:     "failing",
		key:      models.DedupByTitle,
		ready:    true,
		fetchErr: errors.New("upstream down"),
	}

	panicking := &stubAdapter{
		name:   "panicking",
		key:    models.DedupByTitle,
		ready:  true,
		panics: true,
	}

	healthy := &stubAdapter{
		name:  "healthy",
		key:   models.DedupByURL,
		ready: true,
		records: rawRecords(t,
			stubRecord{Title: "Summit concludes", Content: "Leaders met.", URL: "https://example.com/s"},
		),
	}

	orch, _ := newTestOrchestrator(t, failing, panicking, healthy)

	result := orch.Run(context.Background(), 10, false)

	if len(result.Providers) != 3 {
		t.Fatalf("Expected 3 provider results, got %d", len(result.Providers))
	}

	if result.Providers[0].FetchErr == nil {
		t.Error("Expected fetch error recorded for failing provider")
	}

	if result.Providers[1].FetchErr == nil {
		t.Error("Expected panic recorded as fetch error")
	}

	if result.Providers[2].Created != 1 {
		t.Errorf("Expected healthy provider to create 1 article, got %d", result.Providers[2].Created)
	}

	if result.Err() == nil {
		t.Error("Expected aggregated run error")
	}
}

func TestOrchestrator_Run_MissingCredentialsForcesMock(t *testing.T) {
	ready := &stubAdapter{name: "ready", key: models.DedupByTitle, ready: true}
	unready := &stubAdapter{name: "unready", key: models.DedupByURL, ready: false}

	orch, _ := newTestOrchestrator(t, ready, unready)

	result := orch.Run(context.Background(), 10, false)

	if !result.Mock {
		t.Error("Expected run forced into mock mode")
	}

	// Every adapter must have been fetched in mock mode, including the
	// ones that do hold credentials.
	for _, a := range []*stubAdapter{ready, unready} {
		if a.fetchCalls != 1 {
			t.Errorf("Adapter %q fetched %d times, want 1", a.name, a.fetchCalls)
		}

		for _, mock := range a.mockSeen {
			if !mock {
				t.Errorf("Adapter %q saw a live fetch", a.name)
			}
		}
	}
}

func TestOrchestrator_Run_ContextCancelled(t *testing.T) {
	adapter := &stubAdapter{name: "stub", key: models.DedupByTitle, ready: true}

	orch, _ := newTestOrchestrator(t, adapter)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := orch.Run(ctx, 10, true)

	if adapter.fetchCalls != 0 {
		t.Errorf("Expected no fetches after cancellation, got %d", adapter.fetchCalls)
	}

	if len(result.Providers) != 0 {
		t.Errorf("Expected no provider results, got %d", len(result.Providers))
	}
}

func TestOrchestrator_Run_Retention(t *testing.T) {
	adapter := &stubAdapter{
		name:  "stub",
		key:   models.DedupByTitle,
		ready: true,
	}

	orch, st := newTestOrchestrator(t, adapter)
	orch.EnableRetention(30)

	// Seed one stale article directly.
	src := &models.Source{Name: "Stub Source", WebsiteURL: "https://stubsource.com", Country: "Unknown"}
	if _, err := st.GetOrCreateSource(src); err != nil {
		t.Fatalf("GetOrCreateSource failed: %v", err)
	}

	stale := &models.Article{
		SourceID:    src.ID,
		Title:       "Stale story",
		Content:     "Old body",
		URL:         "https://example.com/stale",
		PublishedAt: time.Now().UTC().AddDate(0, 0, -90),
	}
	if _, err := st.GetOrCreateArticle(models.DedupByTitle, stale); err != nil {
		t.Fatalf("GetOrCreateArticle failed: %v", err)
	}

	orch.Run(context.Background(), 10, true)

	count, err := st.CountArticles()
	if err != nil {
		t.Fatalf("CountArticles failed: %v", err)
	}

	if count != 0 {
		t.Errorf("Expected stale article removed, got %d remaining", count)
	}
}

func TestRunResult_Err(t *testing.T) {
	clean := &RunResult{Providers: []ProviderResult{{Provider: "a"}, {Provider: "b"}}}
	if clean.Err() != nil {
		t.Errorf("Expected nil error for clean run, got %v", clean.Err())
	}

	failed := &RunResult{Providers: []ProviderResult{
		{Provider: "a", FetchErr: fmt.Errorf("boom")},
		{Provider: "b"},
	}}
	if failed.Err() == nil {
		t.Error("Expected aggregated error for failed provider")
	}
}
