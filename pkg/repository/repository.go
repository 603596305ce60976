package repository

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/go-pkgz/repeater/v2"
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver, registered as "pgx"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

// DefaultDSN is used for sqlite when no DSN is configured
const DefaultDSN = "file:feedreader.db?mode=rwc&_txlock=immediate&_pragma=journal_mode(WAL)"

// Config represents database configuration
type Config struct {
	Driver          string // sqlite, pgx or postgres
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnectRetries  int
}

// Repositories contains all repository instances sharing one connection pool
type Repositories struct {
	Feed         *FeedRepository
	User         *UserRepository
	Subscription *SubscriptionRepository
	Article      *ArticleRepository
	DB           *sqlx.DB
}

// NewRepositories opens the pool, waits for the database and initializes all stores
func NewRepositories(ctx context.Context, cfg Config) (*Repositories, error) {
	driver, dsn := driverDSN(cfg)
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// configure connection pool
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}

	if err := waitForDB(ctx, db, cfg.ConnectRetries); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	exec := NewExecutor(db)
	users := NewUserRepository(exec)
	repos := &Repositories{
		Feed:         NewFeedRepository(exec),
		User:         users,
		Subscription: NewSubscriptionRepository(exec, users),
		Article:      NewArticleRepository(exec, users),
		DB:           db,
	}

	if err := repos.init(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	log.Printf("[INFO] %s database ready", exec.Dialect())
	return repos, nil
}

// Close closes the database connection
func (r *Repositories) Close() error {
	return r.DB.Close()
}

// Ping verifies the database connection
func (r *Repositories) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

// init creates tables in dependency order, feeds and users before the tables referencing them
func (r *Repositories) init(ctx context.Context) error {
	steps := []struct {
		name string
		fn   func(context.Context) error
	}{
		{"feed", r.Feed.Init},
		{"user", r.User.Init},
		{"subscription", r.Subscription.Init},
		{"article", r.Article.Init},
	}
	for _, s := range steps {
		log.Printf("[INFO] initializing %s store", s.name)
		if err := s.fn(ctx); err != nil {
			return fmt.Errorf("init %s store: %w", s.name, err)
		}
	}
	return nil
}

// waitForDB pings the database with backoff, a fresh postgres container may need a few seconds
func waitForDB(ctx context.Context, db *sqlx.DB, retries int) error {
	if retries < 1 {
		retries = 1
	}
	attempt := 0
	return repeater.NewBackoff(retries, 100*time.Millisecond, repeater.WithMaxDelay(5*time.Second)).Do(ctx, func() error {
		attempt++
		if err := db.PingContext(ctx); err != nil {
			log.Printf("[WARN] database is not ready, attempt %d of %d: %v", attempt, retries, err)
			return err
		}
		return nil
	})
}

// driverDSN resolves driver name and DSN. For sqlite it enforces foreign keys and busy timeout
// on every pooled connection, pragmas executed once would apply to a single connection only.
func driverDSN(cfg Config) (driver, dsn string) {
	driver, dsn = cfg.Driver, cfg.DSN
	switch driver {
	case "postgres", "pgx":
		return "pgx", dsn
	default:
		driver = "sqlite"
	}

	if dsn == "" {
		dsn = DefaultDSN
	}
	for _, pragma := range []string{"foreign_keys(1)", "busy_timeout(5000)"} {
		name := pragma[:strings.Index(pragma, "(")]
		if strings.Contains(dsn, name) {
			continue
		}
		sep := "?"
		if strings.Contains(dsn, "?") {
			sep = "&"
		}
		dsn += sep + "_pragma=" + pragma
	}
	return driver, dsn
}
