package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedreader/pkg/domain"
)

// ArticleRepository handles article-related database operations
type ArticleRepository struct {
	exec  *Executor
	users UserLookup
	lock  sync.RWMutex
}

// articleSQL represents an article for SQL operations
type articleSQL struct {
	ID        int64      `db:"id"`
	Title     string     `db:"title"`
	Body      string     `db:"body"`
	CreatedOn *time.Time `db:"created_on"`
	FeedName  string     `db:"feed_name"`
}

const insertArticleSQL = `INSERT INTO articles (title, body, created_on, feed_name) VALUES (?, ?, CURRENT_TIMESTAMP, ?)`

// NewArticleRepository creates a new article repository
func NewArticleRepository(exec *Executor, users UserLookup) *ArticleRepository {
	return &ArticleRepository{exec: exec, users: users}
}

// Init creates the articles table if it doesn't exist
func (r *ArticleRepository) Init(ctx context.Context) error {
	stmts, err := loadSchema(r.exec.Dialect(), "articles")
	if err != nil {
		return err
	}
	return r.exec.DDL(ctx, stmts...)
}

// Add publishes article to feed. Creation time is set by the database.
func (r *ArticleRepository) Add(ctx context.Context, article domain.Article, feed string) error {
	if err := checkArticle(article, feed); err != nil {
		return err
	}
	log.Printf("[INFO] adding article %q to feed %q", article.Title, feed)

	r.lock.Lock()
	defer r.lock.Unlock()
	_, err := r.exec.DML(ctx, r.exec.Statement(insertArticleSQL), article.Title, article.Body, feed)
	return err
}

// AddBatch publishes all articles to feed in one transaction, either all or none are stored
func (r *ArticleRepository) AddBatch(ctx context.Context, articles []domain.Article, feed string) (int64, error) {
	args := make([][]any, 0, len(articles))
	for _, a := range articles {
		if err := checkArticle(a, feed); err != nil {
			return 0, err
		}
		args = append(args, []any{a.Title, a.Body, feed})
	}
	log.Printf("[INFO] adding %d article(s) to feed %q", len(articles), feed)

	r.lock.Lock()
	defer r.lock.Unlock()
	return r.exec.BatchDML(ctx, r.exec.Statement(insertArticleSQL), args)
}

// ListByID returns articles of all feeds the user with the given id is subscribed to
func (r *ArticleRepository) ListByID(ctx context.Context, userID int64) ([]domain.Article, error) {
	log.Printf("[INFO] getting articles for user with id %d", userID)

	r.lock.RLock()
	defer r.lock.RUnlock()
	query := `SELECT id, title, body, created_on, feed_name FROM articles
		WHERE feed_name IN (SELECT feed_name FROM subscriptions WHERE user_id = ?)
		ORDER BY created_on, id`
	return Query(ctx, r.exec, r.exec.Statement(query), mapArticle, userID)
}

// ListByName returns articles of all feeds any user with the given name is subscribed to, without duplicates
func (r *ArticleRepository) ListByName(ctx context.Context, userName string) ([]domain.Article, error) {
	if err := checkNotBlank(fieldUsername, userName); err != nil {
		return nil, err
	}
	log.Printf("[INFO] getting articles for user %q", userName)

	r.lock.RLock()
	defer r.lock.RUnlock()
	users, err := r.users.GetByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	ids := userIDs(users)
	if len(ids) == 0 {
		return []domain.Article{}, nil
	}

	query, args, err := sqlx.In(`SELECT id, title, body, created_on, feed_name FROM articles
		WHERE feed_name IN (SELECT feed_name FROM subscriptions WHERE user_id IN (?))
		ORDER BY created_on, id`, ids)
	if err != nil {
		return nil, domain.Internal(err, "error building articles query")
	}
	return Query(ctx, r.exec, r.exec.Statement(query), mapArticle, args...)
}

// checkArticle validates feed, title and body in that order
func checkArticle(article domain.Article, feed string) error {
	if err := checkNotBlank(fieldFeed, feed); err != nil {
		return err
	}
	if err := checkNotBlank(fieldArticleTitle, article.Title); err != nil {
		return err
	}
	return checkNotBlank(fieldArticleBody, article.Body)
}

func mapArticle(rows *sqlx.Rows) (domain.Article, error) {
	var a articleSQL
	if err := rows.StructScan(&a); err != nil {
		return domain.Article{}, err
	}
	opts := []domain.ArticleOption{domain.ArticleID(a.ID), domain.ArticleFeed(a.FeedName)}
	if a.CreatedOn != nil {
		opts = append(opts, domain.ArticleCreatedOn(*a.CreatedOn))
	}
	return domain.NewArticle(a.Title, a.Body, opts...), nil
}
