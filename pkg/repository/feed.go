package repository

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedreader/pkg/domain"
)

// FeedRepository handles feed-related database operations
type FeedRepository struct {
	exec *Executor
	lock sync.RWMutex
}

// feedSQL represents a feed for SQL operations
type feedSQL struct {
	Name      string     `db:"name"`
	CreatedOn *time.Time `db:"created_on"`
}

// NewFeedRepository creates a new feed repository
func NewFeedRepository(exec *Executor) *FeedRepository {
	return &FeedRepository{exec: exec}
}

// Init creates the feeds table if it doesn't exist
func (r *FeedRepository) Init(ctx context.Context) error {
	stmts, err := loadSchema(r.exec.Dialect(), "feeds")
	if err != nil {
		return err
	}
	return r.exec.DDL(ctx, stmts...)
}

// SeedDefaults inserts configured default feeds, skipping blank names and feeds already present
func (r *FeedRepository) SeedDefaults(ctx context.Context, names []string) error {
	args := make([][]any, 0, len(names))
	for _, name := range names {
		if name = strings.TrimSpace(name); name != "" {
			args = append(args, []any{name})
		}
	}
	log.Printf("[INFO] seeding %d default feed(s)", len(args))

	r.lock.Lock()
	defer r.lock.Unlock()
	_, err := r.exec.BatchDML(ctx,
		r.exec.Statement(`INSERT INTO feeds (name, created_on) VALUES (?, CURRENT_TIMESTAMP) ON CONFLICT (name) DO NOTHING`), args)
	return err
}

// Add inserts a new feed, adding an existing name fails
func (r *FeedRepository) Add(ctx context.Context, name string) error {
	if err := checkNotBlank(fieldFeed, name); err != nil {
		return err
	}
	log.Printf("[DEBUG] adding feed %q", name)

	r.lock.Lock()
	defer r.lock.Unlock()
	_, err := r.exec.DML(ctx, r.exec.Statement(`INSERT INTO feeds (name, created_on) VALUES (?, CURRENT_TIMESTAMP)`), name)
	return err
}

// Delete removes a feed. Fails while subscriptions or articles still reference it.
func (r *FeedRepository) Delete(ctx context.Context, name string) error {
	if err := checkNotBlank(fieldFeed, name); err != nil {
		return err
	}
	log.Printf("[DEBUG] deleting feed %q", name)

	r.lock.Lock()
	defer r.lock.Unlock()
	_, err := r.exec.DML(ctx, r.exec.Statement(`DELETE FROM feeds WHERE name = ?`), name)
	return err
}

// List returns all feeds in database order
func (r *FeedRepository) List(ctx context.Context) ([]domain.Feed, error) {
	log.Printf("[DEBUG] list all feeds")

	r.lock.RLock()
	defer r.lock.RUnlock()
	return Query(ctx, r.exec, r.exec.Statement(`SELECT name, created_on FROM feeds`), mapFeed)
}

func mapFeed(rows *sqlx.Rows) (domain.Feed, error) {
	var f feedSQL
	if err := rows.StructScan(&f); err != nil {
		return domain.Feed{}, err
	}
	return toDomainFeed(f), nil
}

// toDomainFeed converts feedSQL to domain.Feed
func toDomainFeed(f feedSQL) domain.Feed {
	if f.CreatedOn == nil {
		return domain.NewFeed(f.Name)
	}
	return domain.NewFeed(f.Name, domain.FeedCreatedOn(*f.CreatedOn))
}
