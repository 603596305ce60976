package repository

import (
	"context"
	"log"
	"sync"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedreader/pkg/domain"
)

// UserLookup resolves a user name to all users carrying it
type UserLookup interface {
	GetByName(ctx context.Context, name string) ([]domain.User, error)
}

// SubscriptionRepository handles user-to-feed subscriptions.
// Operations by user name resolve the name first and then run one statement per matched id.
// The lookup and the write are separate transactions.
type SubscriptionRepository struct {
	exec  *Executor
	users UserLookup
	lock  sync.RWMutex
}

const (
	insertSubscriptionSQL = `INSERT INTO subscriptions (user_id, feed_name) VALUES (?, ?)`
	deleteSubscriptionSQL = `DELETE FROM subscriptions WHERE user_id = ? AND feed_name = ?`
)

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(exec *Executor, users UserLookup) *SubscriptionRepository {
	return &SubscriptionRepository{exec: exec, users: users}
}

// Init creates the subscriptions table if it doesn't exist
func (r *SubscriptionRepository) Init(ctx context.Context) error {
	stmts, err := loadSchema(r.exec.Dialect(), "subscriptions")
	if err != nil {
		return err
	}
	return r.exec.DDL(ctx, stmts...)
}

// AddByName subscribes every user with the given name to feed
func (r *SubscriptionRepository) AddByName(ctx context.Context, feed, userName string) error {
	if err := checkNotBlank(fieldUsername, userName); err != nil {
		return err
	}
	if err := checkNotBlank(fieldFeed, feed); err != nil {
		return err
	}
	log.Printf("[INFO] subscribing %q to feed %q", userName, feed)

	r.lock.Lock()
	defer r.lock.Unlock()
	users, err := r.users.GetByName(ctx, userName)
	if err != nil {
		return err
	}
	_, err = r.exec.BatchDML(ctx, r.exec.Statement(insertSubscriptionSQL), subscriptionArgs(userIDs(users), feed))
	return err
}

// AddByID subscribes the user with the given id to feed
func (r *SubscriptionRepository) AddByID(ctx context.Context, feed string, userID int64) error {
	if err := checkNotBlank(fieldFeed, feed); err != nil {
		return err
	}
	log.Printf("[INFO] subscribing user with id %d to feed %q", userID, feed)

	r.lock.Lock()
	defer r.lock.Unlock()
	_, err := r.exec.DML(ctx, r.exec.Statement(insertSubscriptionSQL), userID, feed)
	return err
}

// DeleteByName unsubscribes every user with the given name from feed
func (r *SubscriptionRepository) DeleteByName(ctx context.Context, feed, userName string) error {
	if err := checkNotBlank(fieldUsername, userName); err != nil {
		return err
	}
	if err := checkNotBlank(fieldFeed, feed); err != nil {
		return err
	}
	log.Printf("[INFO] unsubscribing %q from feed %q", userName, feed)

	r.lock.Lock()
	defer r.lock.Unlock()
	users, err := r.users.GetByName(ctx, userName)
	if err != nil {
		return err
	}
	_, err = r.exec.BatchDML(ctx, r.exec.Statement(deleteSubscriptionSQL), subscriptionArgs(userIDs(users), feed))
	return err
}

// DeleteByID unsubscribes the user with the given id from feed
func (r *SubscriptionRepository) DeleteByID(ctx context.Context, feed string, userID int64) error {
	if err := checkNotBlank(fieldFeed, feed); err != nil {
		return err
	}
	log.Printf("[INFO] unsubscribing user with id %d from feed %q", userID, feed)

	r.lock.Lock()
	defer r.lock.Unlock()
	_, err := r.exec.DML(ctx, r.exec.Statement(deleteSubscriptionSQL), userID, feed)
	return err
}

// ListByID returns feeds the user with the given id is subscribed to
func (r *SubscriptionRepository) ListByID(ctx context.Context, userID int64) ([]domain.Feed, error) {
	log.Printf("[DEBUG] looking up subscriptions for user with id %d", userID)

	r.lock.RLock()
	defer r.lock.RUnlock()
	query := `SELECT name, created_on FROM feeds
		WHERE name IN (SELECT feed_name FROM subscriptions WHERE user_id = ?) ORDER BY name`
	return Query(ctx, r.exec, r.exec.Statement(query), mapFeed, userID)
}

// ListByName returns distinct feeds any user with the given name is subscribed to
func (r *SubscriptionRepository) ListByName(ctx context.Context, userName string) ([]domain.Feed, error) {
	if err := checkNotBlank(fieldUsername, userName); err != nil {
		return nil, err
	}
	log.Printf("[DEBUG] looking up subscriptions for user %q", userName)

	r.lock.RLock()
	defer r.lock.RUnlock()
	users, err := r.users.GetByName(ctx, userName)
	if err != nil {
		return nil, err
	}
	ids := userIDs(users)
	if len(ids) == 0 {
		return []domain.Feed{}, nil
	}

	query, args, err := sqlx.In(`SELECT name, created_on FROM feeds
		WHERE name IN (SELECT feed_name FROM subscriptions WHERE user_id IN (?)) ORDER BY name`, ids)
	if err != nil {
		return nil, domain.Internal(err, "error building subscriptions query")
	}
	return Query(ctx, r.exec, r.exec.Statement(query), mapFeed, args...)
}
