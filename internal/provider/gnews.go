package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"newswire/internal/content"
	"newswire/internal/logger"
	"newswire/internal/models"
)

// gnewsEndpoint is the GNews top-headlines endpoint.
const gnewsEndpoint = "https://gnews.io/api/v4/top-headlines"

// gnewsArticle is the provider's native record shape.
type gnewsArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	} `json:"source"`
}

// gnewsResponse is the provider's top-headlines envelope.
type gnewsResponse struct {
	Articles []json.RawMessage `json:"articles"`
}

// GNewsAdapter fetches top headlines from GNews. Articles are
// deduplicated by exact URL: GNews and NewsAPI may legitimately both
// store the same physical story, once per provider.
type GNewsAdapter struct {
	client   *Client
	cleaner  *content.Cleaner
	log      *logger.Logger
	apiKey   string
	endpoint string
	now      func() time.Time
}

// NewGNewsAdapter creates a GNews adapter. An empty apiKey leaves the
// adapter usable in mock mode only.
func NewGNewsAdapter(client *Client, apiKey string, log *logger.Logger) *GNewsAdapter {
	return &GNewsAdapter{
		client:   client,
		cleaner:  content.NewCleaner(),
		log:      log,
		apiKey:   apiKey,
		endpoint: gnewsEndpoint,
		now:      time.Now,
	}
}

// Name returns the provider identifier.
func (a *GNewsAdapter) Name() string {
	return "gnews"
}

// Key declares the dedup identity key: GNews records dedup on URL.
func (a *GNewsAdapter) Key() models.DedupKey {
	return models.DedupByURL
}

// Ready reports whether an API token is configured.
func (a *GNewsAdapter) Ready() bool {
	return a.apiKey != ""
}

// Fetch returns raw records from a single top-headlines request.
func (a *GNewsAdapter) Fetch(ctx context.Context, limit int, mock bool) ([]json.RawMessage, error) {
	if mock {
		return decodeMockArticles(mockGNewsData)
	}

	params := url.Values{}
	params.Set("token", a.apiKey)
	params.Set("lang", "en")
	params.Set("max", strconv.Itoa(limit))

	body, err := a.client.GetJSON(ctx, a.endpoint, params)
	if err != nil {
		a.log.Warn("gnews request failed", "error", err)

		return nil, fmt.Errorf("gnews: %w", err)
	}

	var resp gnewsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		a.log.Warn("gnews response malformed", "error", err)

		return nil, fmt.Errorf("gnews: %w", err)
	}

	return resp.Articles, nil
}

// Normalize translates one GNews record into an article draft. GNews does
// not expose authors or source countries, so the author is fixed and the
// country falls back to "Unknown".
func (a *GNewsAdapter) Normalize(raw json.RawMessage) (*models.Article, error) {
	var rec gnewsArticle
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("malformed gnews record: %w", err)
	}

	if rec.Title == "" || (rec.Content == "" && rec.Description == "") {
		return nil, ErrSkipRecord
	}

	body := rec.Content
	if body == "" {
		body = rec.Description
	}
	if body == "" {
		body = DefaultContent
	}

	sourceName := rec.Source.Name
	if sourceName == "" {
		sourceName = "Unknown Source"
	}

	websiteURL := rec.Source.URL
	if websiteURL == "" {
		websiteURL = placeholderWebsite(sourceName)
	}

	return &models.Article{
		Title:       rec.Title,
		Content:     a.cleaner.Clean(body),
		Author:      "GNews",
		ImageURL:    rec.Image,
		URL:         rec.URL,
		PublishedAt: parsePublishedAt(rec.PublishedAt, a.now),
		IsRead:      false,
		Source: models.Source{
			Name:       sourceName,
			WebsiteURL: websiteURL,
			Country:    "Unknown",
		},
	}, nil
}
