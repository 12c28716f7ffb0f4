package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"newswire/internal/content"
	"newswire/internal/logger"
	"newswire/internal/models"
)

// newsAPIEndpoint is the NewsAPI top-headlines endpoint.
const newsAPIEndpoint = "https://newsapi.org/v2/top-headlines"

// sourceMeta holds static publisher metadata used to seed Source rows on
// first creation.
type sourceMeta struct {
	Name       string
	WebsiteURL string
	Country    string
}

// newsAPISourceIDs fixes the request order for the per-outlet fan-out.
var newsAPISourceIDs = []string{
	"bbc-news",
	"cnn",
	"the-washington-post",
	"reuters",
	"associated-press",
}

var newsAPISources = map[string]sourceMeta{
	"bbc-news": {
		Name:       "BBC News",
		WebsiteURL: "https://www.bbc.co.uk/news",
		Country:    "United Kingdom",
	},
	"cnn": {
		Name:       "CNN",
		WebsiteURL: "https://www.cnn.com",
		Country:    "United States",
	},
	"the-washington-post": {
		Name:       "The Washington Post",
		WebsiteURL: "https://www.washingtonpost.com",
		Country:    "United States",
	},
	"reuters": {
		Name:       "Reuters",
		WebsiteURL: "https://www.reuters.com",
		Country:    "International",
	},
	"associated-press": {
		Name:       "Associated Press",
		WebsiteURL: "https://apnews.com",
		Country:    "United States",
	},
}

// newsAPIArticle is the provider's native record shape.
type newsAPIArticle struct {
	Source struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	} `json:"source"`
	Author      string `json:"author"`
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url"`
	URLToImage  string `json:"urlToImage"`
	PublishedAt string `json:"publishedAt"`
	Content     string `json:"content"`
}

// newsAPIResponse is the provider's top-headlines envelope.
type newsAPIResponse struct {
	Status   string            `json:"status"`
	Message  string            `json:"message"`
	Articles []json.RawMessage `json:"articles"`
}

// NewsAPIAdapter fetches top headlines from NewsAPI for a fixed set of
// outlets. Articles are deduplicated by exact title.
type NewsAPIAdapter struct {
	client   *Client
	cleaner  *content.Cleaner
	log      *logger.Logger
	apiKey   string
	endpoint string
	now      func() time.Time
}

// NewNewsAPIAdapter creates a NewsAPI adapter. An empty apiKey leaves the
// adapter usable in mock mode only.
func NewNewsAPIAdapter(client *Client, apiKey string, log *logger.Logger) *NewsAPIAdapter {
	return &NewsAPIAdapter{
		client:   client,
		cleaner:  content.NewCleaner(),
		log:      log,
		apiKey:   apiKey,
		endpoint: newsAPIEndpoint,
		now:      time.Now,
	}
}

// Name returns the provider identifier.
func (a *NewsAPIAdapter) Name() string {
	return "newsapi"
}

// Key declares the dedup identity key: NewsAPI records dedup on title.
func (a *NewsAPIAdapter) Key() models.DedupKey {
	return models.DedupByTitle
}

// Ready reports whether an API key is configured.
func (a *NewsAPIAdapter) Ready() bool {
	return a.apiKey != ""
}

// Fetch returns raw records, one request per configured outlet. A failed
// outlet request contributes zero records; the remaining outlets still
// proceed, and their failures are reported joined.
func (a *NewsAPIAdapter) Fetch(ctx context.Context, limit int, mock bool) ([]json.RawMessage, error) {
	if mock {
		return decodeMockArticles(mockNewsAPIData)
	}

	var records []json.RawMessage

	var errs []error

	for _, sourceID := range newsAPISourceIDs {
		params := url.Values{}
		params.Set("apiKey", a.apiKey)
		params.Set("sources", sourceID)
		params.Set("pageSize", strconv.Itoa(limit))

		body, err := a.client.GetJSON(ctx, a.endpoint, params)
		if err != nil {
			a.log.Warn("newsapi request failed", "source", sourceID, "error", err)
			errs = append(errs, fmt.Errorf("source %s: %w", sourceID, err))

			continue
		}

		var resp newsAPIResponse
		if err := json.Unmarshal(body, &resp); err != nil {
			a.log.Warn("newsapi response malformed", "source", sourceID, "error", err)
			errs = append(errs, fmt.Errorf("source %s: %w", sourceID, err))

			continue
		}

		if resp.Status != "ok" {
			a.log.Warn("newsapi returned error status", "source", sourceID, "message", resp.Message)
			errs = append(errs, fmt.Errorf("source %s: provider status %q: %s", sourceID, resp.Status, resp.Message))

			continue
		}

		records = append(records, resp.Articles...)
	}

	return records, errors.Join(errs...)
}

// Normalize translates one NewsAPI record into an article draft.
func (a *NewsAPIAdapter) Normalize(raw json.RawMessage) (*models.Article, error) {
	var rec newsAPIArticle
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, fmt.Errorf("malformed newsapi record: %w", err)
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

	source := models.Source{
		Name:       sourceName,
		WebsiteURL: placeholderWebsite(sourceName),
		Country:    "Unknown",
	}
	if meta, ok := newsAPISources[rec.Source.ID]; ok {
		source = models.Source{
			Name:       meta.Name,
			WebsiteURL: meta.WebsiteURL,
			Country:    meta.Country,
		}
	}

	return &models.Article{
		Title:       rec.Title,
		Content:     a.cleaner.Clean(body),
		Author:      rec.Author,
		ImageURL:    rec.URLToImage,
		URL:         rec.URL,
		PublishedAt: parsePublishedAt(rec.PublishedAt, a.now),
		IsRead:      false,
		Source:      source,
	}, nil
}

// decodeMockArticles splits a built-in JSON sample set into raw records
// so mock data flows through the exact same normalize path as live data.
func decodeMockArticles(data string) ([]json.RawMessage, error) {
	var records []json.RawMessage
	if err := json.Unmarshal([]byte(data), &records); err != nil {
		return nil, fmt.Errorf("failed to decode mock data: %w", err)
	}

	return records, nil
}
