package repository

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedreader/pkg/domain"
)

// UserRepository handles user-related database operations
type UserRepository struct {
	exec *Executor
	lock sync.RWMutex
}

// userSQL represents a user for SQL operations
type userSQL struct {
	ID        int64      `db:"id"`
	Name      string     `db:"name"`
	CreatedOn *time.Time `db:"created_on"`
}

// NewUserRepository creates a new user repository
func NewUserRepository(exec *Executor) *UserRepository {
	return &UserRepository{exec: exec}
}

// Init creates the users table if it doesn't exist
func (r *UserRepository) Init(ctx context.Context) error {
	stmts, err := loadSchema(r.exec.Dialect(), "users")
	if err != nil {
		return err
	}
	return r.exec.DDL(ctx, stmts...)
}

// Add inserts a new user. Names are not unique, adding the same name twice makes two users.
func (r *UserRepository) Add(ctx context.Context, name string) error {
	if err := checkNotBlank(fieldUsername, name); err != nil {
		return err
	}
	log.Printf("[INFO] adding user %q", name)

	r.lock.Lock()
	defer r.lock.Unlock()
	_, err := r.exec.DML(ctx, r.exec.Statement(`INSERT INTO users (name, created_on) VALUES (?, CURRENT_TIMESTAMP)`), name)
	return err
}

// DeleteByName removes every user with the given name
func (r *UserRepository) DeleteByName(ctx context.Context, name string) error {
	if err := checkNotBlank(fieldUsername, name); err != nil {
		return err
	}
	log.Printf("[INFO] deleting user %q", name)

	r.lock.Lock()
	defer r.lock.Unlock()
	_, err := r.exec.DML(ctx, r.exec.Statement(`DELETE FROM users WHERE name = ?`), name)
	return err
}

// DeleteByID removes the user with the given id, missing id is not an error
func (r *UserRepository) DeleteByID(ctx context.Context, id int64) error {
	log.Printf("[INFO] deleting user with id %d", id)

	r.lock.Lock()
	defer r.lock.Unlock()
	_, err := r.exec.DML(ctx, r.exec.Statement(`DELETE FROM users WHERE id = ?`), id)
	return err
}

// GetByName returns all users with the given name ordered by id, empty slice if none
func (r *UserRepository) GetByName(ctx context.Context, name string) ([]domain.User, error) {
	if err := checkNotBlank(fieldUsername, name); err != nil {
		return nil, err
	}
	log.Printf("[DEBUG] looking up ids for user %q", name)

	r.lock.RLock()
	defer r.lock.RUnlock()
	return Query(ctx, r.exec, r.exec.Statement(`SELECT id, name, created_on FROM users WHERE name = ? ORDER BY id`),
		mapUser, name)
}

func mapUser(rows *sqlx.Rows) (domain.User, error) {
	var u userSQL
	if err := rows.StructScan(&u); err != nil {
		return domain.User{}, err
	}
	opts := []domain.UserOption{domain.UserID(u.ID)}
	if u.CreatedOn != nil {
		opts = append(opts, domain.UserCreatedOn(*u.CreatedOn))
	}
	return domain.NewUser(u.Name, opts...), nil
}
