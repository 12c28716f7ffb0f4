// Package models defines data structures shared across the ingestion pipeline.
package models

import "time"

// DedupKey identifies which article field an adapter uses to decide
// whether an incoming article already exists in storage.
type DedupKey string

// Supported dedup identity keys.
const (
	DedupByTitle DedupKey = "title"
	DedupByURL   DedupKey = "url"
)

// Source represents a publisher an article belongs to.
type Source struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	WebsiteURL string `json:"websiteUrl"`
	Country    string `json:"country"`
}

// Article is the canonical representation of one news item.
type Article struct {
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	PublishedAt time.Time `json:"publishedAt"`
	ID          int64     `json:"id"`
	SourceID    int64     `json:"sourceId"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"imageUrl"`
	URL         string    `json:"url"`
	IsRead      bool      `json:"isRead"`

	// Source carries the resolved publisher on normalized drafts before
	// the orchestrator has persisted it and filled SourceID.
	Source Source `json:"source"`
}
