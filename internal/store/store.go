// Package store provides SQLite-backed persistence for articles, sources
// and categories.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"newswire/internal/models"

	_ "modernc.org/sqlite"
)

// ErrUnsupportedDedupKey indicates an adapter declared an unknown identity key.
var ErrUnsupportedDedupKey = errors.New("unsupported dedup key")

// Store wraps the SQLite database handle.
type Store struct {
	*sql.DB
}

// New opens (creating if necessary) the database at path and bootstraps
// the schema. Write transactions are opened immediate so concurrent runs
// serialize on the dedup identity check.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_txlock=immediate&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}

	if err := db.Ping(); err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS sources (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL UNIQUE,
            website_url TEXT NOT NULL,
            country TEXT NOT NULL DEFAULT 'Unknown'
        );
        CREATE TABLE IF NOT EXISTS articles (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            title TEXT NOT NULL,
            content TEXT NOT NULL,
            author TEXT,
            image_url TEXT,
            url TEXT,
            published_at INTEGER NOT NULL,
            source_id INTEGER NOT NULL REFERENCES sources(id),
            is_read BOOLEAN NOT NULL DEFAULT 0,
            created_at INTEGER NOT NULL,
            updated_at INTEGER NOT NULL
        );
        CREATE INDEX IF NOT EXISTS idx_articles_title ON articles(title);
        CREATE INDEX IF NOT EXISTS idx_articles_url ON articles(url);
        CREATE INDEX IF NOT EXISTS idx_articles_published ON articles(published_at);
        CREATE TABLE IF NOT EXISTS categories (
            id INTEGER PRIMARY KEY AUTOINCREMENT,
            name TEXT NOT NULL UNIQUE
        );
        CREATE TABLE IF NOT EXISTS article_categories (
            article_id INTEGER NOT NULL REFERENCES articles(id) ON DELETE CASCADE,
            category_id INTEGER NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
            UNIQUE(article_id, category_id)
        );
    `)
	if err != nil {
		return nil, err
	}

	return &Store{db}, nil
}

// GetOrCreateSource looks a source up by name, creating it with the given
// website and country on first reference. The source ID is filled in
// either way. Returns true when a new row was created.
func (s *Store) GetOrCreateSource(src *models.Source) (bool, error) {
	err := s.QueryRow(
		"SELECT id, website_url, country FROM sources WHERE name = ?",
		src.Name,
	).Scan(&src.ID, &src.WebsiteURL, &src.Country)

	if err == nil {
		return false, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	res, err := s.Exec(
		"INSERT INTO sources(name, website_url, country) VALUES(?, ?, ?)",
		src.Name, src.WebsiteURL, src.Country,
	)
	if err != nil {
		// A concurrent run may have created the row between the select
		// and the insert. Treat the unique-name violation as "exists".
		retryErr := s.QueryRow(
			"SELECT id, website_url, country FROM sources WHERE name = ?",
			src.Name,
		).Scan(&src.ID, &src.WebsiteURL, &src.Country)
		if retryErr == nil {
			return false, nil
		}

		return false, err
	}

	src.ID, err = res.LastInsertId()

	return true, err
}

// GetOrCreateArticle performs an atomic insert-if-absent keyed by the
// adapter's declared dedup identity (title or url). When the article
// already exists no field is updated; only the draft's ID is filled from
// the stored row. Returns true when a new row was created.
func (s *Store) GetOrCreateArticle(key models.DedupKey, a *models.Article) (bool, error) {
	var column, value string

	switch key {
	case models.DedupByTitle:
		column, value = "title", a.Title
	case models.DedupByURL:
		column, value = "url", a.URL
	default:
		return false, fmt.Errorf("%w: %q", ErrUnsupportedDedupKey, key)
	}

	tx, err := s.Begin()
	if err != nil {
		return false, err
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		"SELECT id FROM articles WHERE "+column+" = ? LIMIT 1", value,
	).Scan(&a.ID)

	if err == nil {
		return false, tx.Commit()
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	now := time.Now().UTC()

	res, err := tx.Exec(`INSERT INTO articles(
            title, content, author, image_url, url,
            published_at, source_id, is_read, created_at, updated_at
        ) VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.Title,
		a.Content,
		a.Author,
		a.ImageURL,
		a.URL,
		a.PublishedAt.Unix(),
		a.SourceID,
		a.IsRead,
		now.Unix(),
		now.Unix(),
	)
	if err != nil {
		return false, err
	}

	a.ID, err = res.LastInsertId()
	if err != nil {
		return false, err
	}

	a.CreatedAt = now
	a.UpdatedAt = now

	return true, tx.Commit()
}

// GetOrCreateCategory looks a category up by name, creating it when absent.
func (s *Store) GetOrCreateCategory(name string) (models.Category, bool, error) {
	cat := models.Category{Name: name}

	err := s.QueryRow("SELECT id FROM categories WHERE name = ?", name).Scan(&cat.ID)
	if err == nil {
		return cat, false, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		return cat, false, err
	}

	res, err := s.Exec("INSERT INTO categories(name) VALUES(?)", name)
	if err != nil {
		retryErr := s.QueryRow("SELECT id FROM categories WHERE name = ?", name).Scan(&cat.ID)
		if retryErr == nil {
			return cat, false, nil
		}

		return cat, false, err
	}

	cat.ID, err = res.LastInsertId()

	return cat, true, err
}

// LinkArticleCategory associates an article with a category. The link is
// idempotent: relinking an existing pair is a no-op. Returns true when a
// new association was created.
func (s *Store) LinkArticleCategory(articleID, categoryID int64) (bool, error) {
	res, err := s.Exec(
		"INSERT OR IGNORE INTO article_categories(article_id, category_id) VALUES(?, ?)",
		articleID, categoryID,
	)
	if err != nil {
		return false, err
	}

	affected, err := res.RowsAffected()

	return affected > 0, err
}

// CountArticles returns the total number of stored articles.
func (s *Store) CountArticles() (int, error) {
	var count int
	err := s.QueryRow("SELECT COUNT(*) FROM articles").Scan(&count)

	return count, err
}

// ListArticles returns all stored articles ordered by publication time.
func (s *Store) ListArticles() ([]models.Article, error) {
	rows, err := s.Query(`
        SELECT id, title, content, author, image_url, url,
               published_at, source_id, is_read, created_at, updated_at
        FROM articles
        ORDER BY published_at ASC, id ASC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []models.Article

	for rows.Next() {
		var a models.Article

		var author, imageURL, url sql.NullString

		var publishedAt, createdAt, updatedAt int64

		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Content,
			&author,
			&imageURL,
			&url,
			&publishedAt,
			&a.SourceID,
			&a.IsRead,
			&createdAt,
			&updatedAt,
		); err != nil {
			return nil, err
		}

		a.Author = author.String
		a.ImageURL = imageURL.String
		a.URL = url.String
		a.PublishedAt = time.Unix(publishedAt, 0).UTC()
		a.CreatedAt = time.Unix(createdAt, 0).UTC()
		a.UpdatedAt = time.Unix(updatedAt, 0).UTC()

		articles = append(articles, a)
	}

	return articles, rows.Err()
}

// CategoriesForArticle returns the categories assigned to an article.
func (s *Store) CategoriesForArticle(articleID int64) ([]models.Category, error) {
	rows, err := s.Query(`
        SELECT c.id, c.name
        FROM categories c
        JOIN article_categories ac ON ac.category_id = c.id
        WHERE ac.article_id = ?
        ORDER BY c.id ASC
    `, articleID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []models.Category

	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}

		categories = append(categories, c)
	}

	return categories, rows.Err()
}

// DeleteArticlesOlderThan removes articles published more than maxAgeDays
// ago. Used only by the optional retention setting.
func (s *Store) DeleteArticlesOlderThan(maxAgeDays int) (int64, error) {
	threshold := time.Now().UTC().AddDate(0, 0, -maxAgeDays).Unix()

	res, err := s.Exec("DELETE FROM articles WHERE published_at < ?", threshold)
	if err != nil {
		return 0, err
	}

	return res.RowsAffected()
}
