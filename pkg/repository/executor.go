package repository

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedreader/pkg/domain"
	"github.com/umputun/feedreader/pkg/metrics"
)

// Prepare produces a prepared statement from a live transaction. The executor closes it.
type Prepare func(ctx context.Context, tx *sqlx.Tx) (*sqlx.Stmt, error)

// RowMapper converts the current row of rows into T
type RowMapper[T any] func(rows *sqlx.Rows) (T, error)

// Executor runs statements against the connection pool. Every call checks out a connection,
// runs inside its own transaction and commits on success or rolls back on failure.
// All failures are returned as *domain.AppError with code 500.
type Executor struct {
	db *sqlx.DB
}

// NewExecutor makes an executor on top of db pool
func NewExecutor(db *sqlx.DB) *Executor {
	return &Executor{db: db}
}

// Dialect returns schema dialect for the pool's driver, "sqlite" or "postgres"
func (e *Executor) Dialect() string {
	switch e.db.DriverName() {
	case "pgx", "postgres":
		return "postgres"
	default:
		return "sqlite"
	}
}

// Statement returns Prepare for query written with ? placeholders, rebound for the driver
func (e *Executor) Statement(query string) Prepare {
	q := e.db.Rebind(query)
	return func(ctx context.Context, tx *sqlx.Tx) (*sqlx.Stmt, error) {
		return tx.PreparexContext(ctx, q)
	}
}

// DDL executes schema statements without parameters in one transaction
func (e *Executor) DDL(ctx context.Context, statements ...string) error {
	log.Printf("[DEBUG] executing %d DDL statement(s)", len(statements))
	return e.inTx(ctx, "ddl", func(tx *sqlx.Tx) error {
		for _, stmt := range statements {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return domain.Internal(err, "error executing DDL statement")
			}
		}
		return nil
	})
}

// DML executes a single insert, update or delete and returns the number of affected rows
func (e *Executor) DML(ctx context.Context, prepare Prepare, args ...any) (int64, error) {
	var affected int64
	err := e.inTx(ctx, "dml", func(tx *sqlx.Tx) error {
		stmt, err := prepareStmt(ctx, tx, prepare)
		if err != nil {
			return err
		}
		defer closeStmt(stmt)

		res, err := stmt.ExecContext(ctx, args...)
		if err != nil {
			return domain.Internal(err, "error executing DML statement")
		}
		if affected, err = res.RowsAffected(); err != nil {
			return domain.Internal(err, "error executing DML statement")
		}
		log.Printf("[DEBUG] DML statement resulted in %d changes", affected)
		return nil
	})
	return affected, err
}

// BatchDML executes the prepared statement once per argument set, all in one transaction.
// An empty batch is a no-op. Returns the total number of affected rows.
func (e *Executor) BatchDML(ctx context.Context, prepare Prepare, argSets [][]any) (int64, error) {
	if len(argSets) == 0 {
		log.Printf("[DEBUG] empty DML batch, nothing to execute")
		return 0, nil
	}

	var affected int64
	err := e.inTx(ctx, "batch", func(tx *sqlx.Tx) error {
		stmt, err := prepareStmt(ctx, tx, prepare)
		if err != nil {
			return err
		}
		defer closeStmt(stmt)

		for _, args := range argSets {
			res, err := stmt.ExecContext(ctx, args...)
			if err != nil {
				return domain.Internal(err, "error executing DML statement")
			}
			n, err := res.RowsAffected()
			if err != nil {
				return domain.Internal(err, "error executing DML statement")
			}
			affected += n
		}
		log.Printf("[DEBUG] DML batch of %d resulted in %d changes", len(argSets), affected)
		return nil
	})
	return affected, err
}

// Query runs the prepared query and maps every row with mapper. Never returns a nil slice on success.
func Query[T any](ctx context.Context, e *Executor, prepare Prepare, mapper RowMapper[T], args ...any) ([]T, error) {
	results := []T{}
	err := e.inTx(ctx, "query", func(tx *sqlx.Tx) error {
		stmt, err := prepareStmt(ctx, tx, prepare)
		if err != nil {
			return err
		}
		defer closeStmt(stmt)

		rows, err := stmt.QueryxContext(ctx, args...)
		if err != nil {
			return domain.Internal(err, "error querying database")
		}
		defer rows.Close()

		for rows.Next() {
			v, err := mapper(rows)
			if err != nil {
				return domain.Internal(err, "error querying database")
			}
			results = append(results, v)
		}
		if err := rows.Err(); err != nil {
			return domain.Internal(err, "error querying database")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// StructMapper maps rows into T using db tags
func StructMapper[T any]() RowMapper[T] {
	return func(rows *sqlx.Rows) (T, error) {
		var v T
		err := rows.StructScan(&v)
		return v, err
	}
}

// inTx checks out a connection, runs fn in a transaction and releases the connection.
// A failed rollback is reported as its own error wrapping both the rollback and the original failure.
func (e *Executor) inTx(ctx context.Context, mode string, fn func(tx *sqlx.Tx) error) (err error) {
	started := time.Now()
	defer func() { metrics.ObserveStatement(mode, started, err) }()

	log.Printf("[DEBUG] checking out connection from pool for %s", mode)
	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return domain.Internal(err, "error getting connection from the pool")
	}

	if fnErr := fn(tx); fnErr != nil {
		rbErr := tx.Rollback()
		// a transaction closed by context cancellation is already rolled back
		if rbErr != nil && !(errors.Is(rbErr, sql.ErrTxDone) && ctx.Err() != nil) {
			return domain.Internal(errors.Join(rbErr, fnErr), "error rolling back sql operations")
		}
		return fnErr
	}

	if err := tx.Commit(); err != nil {
		return domain.Internal(err, "error committing transaction")
	}
	log.Printf("[DEBUG] %s committed, connection released to pool", mode)
	return nil
}

func prepareStmt(ctx context.Context, tx *sqlx.Tx, prepare Prepare) (*sqlx.Stmt, error) {
	stmt, err := prepare(ctx, tx)
	if err != nil {
		return nil, domain.Internal(err, "error preparing statement")
	}
	return stmt, nil
}

func closeStmt(stmt *sqlx.Stmt) {
	if err := stmt.Close(); err != nil {
		log.Printf("[WARN] failed to close sql statement: %v", err)
	}
}
