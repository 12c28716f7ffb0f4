// Package classify assigns topical categories to articles by keyword matching.
package classify

// FallbackCategory is assigned when no taxonomy entry matches.
const FallbackCategory = "Uncategorized"

// Entry maps a category name to the keywords that select it.
type Entry struct {
	Name     string
	Keywords []string
}

// DefaultTaxonomy returns the fixed keyword taxonomy in canonical order.
// It is static configuration: matching logic never depends on the
// concrete table, so the table could later be externalized unchanged.
func DefaultTaxonomy() []Entry {
	return []Entry{
		{Name: "Politics", Keywords: []string{
			"government", "election", "political", "policy", "president",
			"vote", "democracy", "parliament",
		}},
		{Name: "Technology", Keywords: []string{
			"tech", "technology", "digital", "computer", "software",
			"hardware", "AI", "artificial intelligence", "app",
		}},
		{Name: "Business", Keywords: []string{
			"business", "economy", "market", "stock", "company",
			"economic", "finance", "trade", "investor",
		}},
		{Name: "Science", Keywords: []string{
			"science", "scientific", "research", "study", "discovery",
			"researcher", "laboratory", "experiment",
		}},
		{Name: "Health", Keywords: []string{
			"health", "medical", "doctor", "patient", "disease",
			"treatment", "hospital", "medicine", "vaccine",
		}},
		{Name: "Entertainment", Keywords: []string{
			"entertainment", "movie", "film", "actor", "actress",
			"celebrity", "star", "music", "concert",
		}},
		{Name: "Sports", Keywords: []string{
			"sport", "team", "player", "game", "match", "tournament",
			"championship", "athlete", "coach",
		}},
		{Name: "World", Keywords: []string{
			"world", "international", "global", "foreign", "country",
			"nation", "worldwide",
		}},
		{Name: "Environment", Keywords: []string{
			"environment", "climate", "pollution", "environmental",
			"renewable", "sustainable", "ecology", "green",
		}},
		{Name: "Education", Keywords: []string{
			"education", "school", "university", "student", "teacher",
			"academic", "learning", "college", "classroom",
		}},
	}
}
