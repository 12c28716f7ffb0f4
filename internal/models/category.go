package models

// Category is a topical label assigned to articles.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
