package domain

import "time"

// Article is a post published to a feed. CreatedOn is assigned by the database on insert.
type Article struct {
	ID        *int64     `json:"id,omitempty"`
	Title     string     `json:"title"`
	Body      string     `json:"body"`
	CreatedOn *time.Time `json:"created_on,omitempty"`
	Feed      string     `json:"feed,omitempty"`
}

// ArticleOption sets optional Article fields
type ArticleOption func(*Article)

// NewArticle makes an article record with title and body
func NewArticle(title, body string, opts ...ArticleOption) Article {
	a := Article{Title: title, Body: body}
	for _, opt := range opts {
		opt(&a)
	}
	return a
}

// ArticleID sets the storage-assigned id
func ArticleID(id int64) ArticleOption {
	return func(a *Article) { a.ID = &id }
}

// ArticleCreatedOn sets the article's creation time
func ArticleCreatedOn(t time.Time) ArticleOption {
	return func(a *Article) { a.CreatedOn = &t }
}

// ArticleFeed sets the name of the feed the article belongs to
func ArticleFeed(feed string) ArticleOption {
	return func(a *Article) { a.Feed = feed }
}
