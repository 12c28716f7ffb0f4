package classify

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"newswire/internal/logger"
	"newswire/internal/models"
	"newswire/internal/store"
)

func TestMatch(t *testing.T) {
	taxonomy := DefaultTaxonomy()

	tests := []struct {
		name     string
		title    string
		content  string
		expected []string
	}{
		{
			name:     "Single category from title",
			title:    "Election results announced",
			content:  "Counting finished overnight.",
			expected: []string{"Politics"},
		},
		{
			name:     "Single category from content",
			title:    "Morning briefing",
			content:  "A new vaccine rollout begins today.",
			expected: []string{"Health"},
		},
		{
			name:     "Multiple categories",
			title:    "Vaccine maker surges on stock market",
			content:  "Investors reacted to the trial results.",
			expected: []string{"Business", "Health"},
		},
		{
			name:     "Case-insensitive match",
			title:    "GOVERNMENT SHUTDOWN LOOMS",
			content:  "",
			expected: []string{"Politics"},
		},
		{
			name:     "No match falls back",
			title:    "Quiet afternoon",
			content:  "Nothing occurred downtown.",
			expected: []string{FallbackCategory},
		},
		{
			name:     "Empty input falls back",
			title:    "",
			content:  "",
			expected: []string{FallbackCategory},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(taxonomy, tt.title, tt.content)
			if len(got) != len(tt.expected) {
				t.Fatalf("Match returned %v, want %v", got, tt.expected)
			}

			for i := range got {
				if got[i] != tt.expected[i] {
					t.Errorf("Match[%d] = %q, want %q", i, got[i], tt.expected[i])
				}
			}
		})
	}
}

func TestMatch_OneHitPerCategory(t *testing.T) {
	// Several keywords of the same entry must still assign it once.
	got := Match(DefaultTaxonomy(), "Doctor treats patient at hospital", "")
	if len(got) != 1 || got[0] != "Health" {
		t.Errorf("Expected single Health assignment, got %v", got)
	}
}

func newTestClassifier(t *testing.T) (*Classifier, *store.Store) {
	t.Helper()

	s, err := store.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("store.New failed: %v", err)
	}

	t.Cleanup(func() { s.Close() })

	log := logger.NewLoggerWithWriter("error", "text", io.Discard)

	return NewClassifier(s, log), s
}

func storeArticle(t *testing.T, s *store.Store, title, content string) *models.Article {
	t.Helper()

	src := &models.Source{Name: "Test Source", WebsiteURL: "https://testsource.com", Country: "Unknown"}
	if _, err := s.GetOrCreateSource(src); err != nil {
		t.Fatalf("GetOrCreateSource failed: %v", err)
	}

	article := &models.Article{
		SourceID:    src.ID,
		Title:       title,
		Content:     content,
		URL:         "https://example.com/" + title,
		PublishedAt: time.Now().UTC(),
	}

	if _, err := s.GetOrCreateArticle(models.DedupByTitle, article); err != nil {
		t.Fatalf("GetOrCreateArticle failed: %v", err)
	}

	return article
}

func TestClassifier_Categorize(t *testing.T) {
	c, s := newTestClassifier(t)

	article := storeArticle(t, s, "Vaccine maker surges on stock market", "Investors reacted.")

	assigned, err := c.Categorize(article)
	if err != nil {
		t.Fatalf("Categorize failed: %v", err)
	}

	if len(assigned) != 2 {
		t.Fatalf("Expected 2 assigned categories, got %d", len(assigned))
	}

	stored, err := s.CategoriesForArticle(article.ID)
	if err != nil {
		t.Fatalf("CategoriesForArticle failed: %v", err)
	}

	names := map[string]bool{}
	for _, cat := range stored {
		names[cat.Name] = true
	}

	if !names["Business"] || !names["Health"] {
		t.Errorf("Expected Business and Health persisted, got %v", stored)
	}
}

func TestClassifier_Categorize_Fallback(t *testing.T) {
	c, s := newTestClassifier(t)

	article := storeArticle(t, s, "Quiet afternoon", "Nothing occurred downtown.")

	assigned, err := c.Categorize(article)
	if err != nil {
		t.Fatalf("Categorize failed: %v", err)
	}

	if len(assigned) != 1 || assigned[0].Name != FallbackCategory {
		t.Errorf("Expected only %q, got %v", FallbackCategory, assigned)
	}
}

func TestClassifier_Categorize_Idempotent(t *testing.T) {
	c, s := newTestClassifier(t)

	article := storeArticle(t, s, "Election results announced", "Counting finished.")

	if _, err := c.Categorize(article); err != nil {
		t.Fatalf("Categorize failed: %v", err)
	}

	if _, err := c.Categorize(article); err != nil {
		t.Fatalf("Categorize (second) failed: %v", err)
	}

	stored, err := s.CategoriesForArticle(article.ID)
	if err != nil {
		t.Fatalf("CategoriesForArticle failed: %v", err)
	}

	if len(stored) != 1 {
		t.Errorf("Expected 1 association after repeat categorize, got %d", len(stored))
	}
}
