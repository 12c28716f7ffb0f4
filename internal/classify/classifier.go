package classify

import (
	"fmt"
	"strings"

	"newswire/internal/logger"
	"newswire/internal/models"
	"newswire/internal/store"
)

// Classifier assigns categories to stored articles and persists the
// article-category associations.
type Classifier struct {
	store    *store.Store
	log      *logger.Logger
	taxonomy []Entry
}

// NewClassifier creates a classifier using the default taxonomy.
func NewClassifier(s *store.Store, log *logger.Logger) *Classifier {
	return &Classifier{
		store:    s,
		log:      log,
		taxonomy: DefaultTaxonomy(),
	}
}

// Match returns the taxonomy category names whose keywords appear in the
// lowercased concatenation of title and content. This is multi-label:
// every taxonomy entry is checked independently, and the first keyword
// hit per entry assigns that entry only. Zero hits yield the fallback
// category alone.
func Match(taxonomy []Entry, title, content string) []string {
	searchText := strings.ToLower(title + " " + content)

	var matched []string

	for _, entry := range taxonomy {
		for _, keyword := range entry.Keywords {
			if strings.Contains(searchText, strings.ToLower(keyword)) {
				matched = append(matched, entry.Name)

				break
			}
		}
	}

	if len(matched) == 0 {
		matched = append(matched, FallbackCategory)
	}

	return matched
}

// Categorize assigns categories to the article and persists the
// associations. Category rows and association rows are created lazily and
// idempotently, so categorizing twice changes nothing.
func (c *Classifier) Categorize(article *models.Article) ([]models.Category, error) {
	names := Match(c.taxonomy, article.Title, article.Content)

	var assigned []models.Category

	for _, name := range names {
		cat, _, err := c.store.GetOrCreateCategory(name)
		if err != nil {
			return assigned, fmt.Errorf("failed to resolve category %q: %w", name, err)
		}

		if _, err := c.store.LinkArticleCategory(article.ID, cat.ID); err != nil {
			return assigned, fmt.Errorf("failed to link category %q: %w", name, err)
		}

		assigned = append(assigned, cat)
		c.log.Info("assigned category", "article", article.Title, "category", cat.Name)
	}

	return assigned, nil
}
