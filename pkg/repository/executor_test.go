package repository

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedreader/pkg/domain"
)

type testRow struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

func setupTestExecutor(t *testing.T) *Executor {
	t.Helper()
	_, dsn := driverDSN(Config{DSN: "file:" + filepath.Join(t.TempDir(), "exec.db") + "?mode=rwc"})
	db, err := sqlx.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	exec := NewExecutor(db)
	err = exec.DDL(context.Background(), `CREATE TABLE things (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE)`)
	require.NoError(t, err)
	return exec
}

func countThings(t *testing.T, exec *Executor) int {
	t.Helper()
	var count int
	require.NoError(t, exec.db.Get(&count, "SELECT COUNT(*) FROM things"))
	return count
}

func requireAppError(t *testing.T, err error, code int, msg string) *domain.AppError {
	t.Helper()
	require.Error(t, err)
	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, msg, appErr.Message)
	return appErr
}

func TestExecutor_DDL(t *testing.T) {
	exec := setupTestExecutor(t)
	ctx := context.Background()

	err := exec.DDL(ctx, `CREATE TABLE a (id INTEGER)`, `CREATE TABLE b (id INTEGER)`)
	require.NoError(t, err)

	var tables []string
	require.NoError(t, exec.db.Select(&tables, `SELECT name FROM sqlite_master WHERE type='table' AND name IN ('a','b') ORDER BY name`))
	assert.Equal(t, []string{"a", "b"}, tables)

	t.Run("invalid statement rolls back the whole script", func(t *testing.T) {
		err := exec.DDL(ctx, `CREATE TABLE c (id INTEGER)`, `CREATE TABLE oops (`)
		requireAppError(t, err, http.StatusInternalServerError, "error executing DDL statement")

		var count int
		require.NoError(t, exec.db.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='c'`))
		assert.Equal(t, 0, count)
	})
}

func TestExecutor_DML(t *testing.T) {
	exec := setupTestExecutor(t)
	ctx := context.Background()

	n, err := exec.DML(ctx, exec.Statement(`INSERT INTO things (name) VALUES (?)`), "one")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = exec.DML(ctx, exec.Statement(`UPDATE things SET name = ? WHERE name = ?`), "uno", "missing")
	require.NoError(t, err)
	assert.Equal(t, int64(0), n, "no match is not an error")

	t.Run("constraint violation", func(t *testing.T) {
		_, err := exec.DML(ctx, exec.Statement(`INSERT INTO things (name) VALUES (?)`), "one")
		appErr := requireAppError(t, err, http.StatusInternalServerError, "error executing DML statement")
		assert.Error(t, appErr.Err)
		assert.Equal(t, 1, countThings(t, exec))
	})

	t.Run("missing table", func(t *testing.T) {
		// sqlite compiles the statement lazily, the failure shows up on exec
		_, err := exec.DML(ctx, exec.Statement(`INSERT INTO nothing (name) VALUES (?)`), "x")
		appErr := requireAppError(t, err, http.StatusInternalServerError, "error executing DML statement")
		assert.Contains(t, appErr.Err.Error(), "nothing")
		assert.Equal(t, 1, countThings(t, exec))
	})

	t.Run("prepare failure", func(t *testing.T) {
		prepErr := errors.New("can't prepare")
		prepare := func(context.Context, *sqlx.Tx) (*sqlx.Stmt, error) { return nil, prepErr }

		_, err := exec.DML(ctx, prepare, "x")
		appErr := requireAppError(t, err, http.StatusInternalServerError, "error preparing statement")
		assert.ErrorIs(t, appErr, prepErr)

		_, err = exec.BatchDML(ctx, prepare, [][]any{{"x"}})
		requireAppError(t, err, http.StatusInternalServerError, "error preparing statement")

		_, err = Query(ctx, exec, prepare, StructMapper[testRow]())
		requireAppError(t, err, http.StatusInternalServerError, "error preparing statement")
	})
}

func TestExecutor_BatchDML(t *testing.T) {
	exec := setupTestExecutor(t)
	ctx := context.Background()
	insert := exec.Statement(`INSERT INTO things (name) VALUES (?)`)

	t.Run("empty batch is a no-op", func(t *testing.T) {
		n, err := exec.BatchDML(ctx, insert, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), n)
	})

	t.Run("all sets applied", func(t *testing.T) {
		n, err := exec.BatchDML(ctx, insert, [][]any{{"a"}, {"b"}, {"c"}})
		require.NoError(t, err)
		assert.Equal(t, int64(3), n)
		assert.Equal(t, 3, countThings(t, exec))
	})

	t.Run("failure rolls back earlier sets", func(t *testing.T) {
		_, err := exec.BatchDML(ctx, insert, [][]any{{"d"}, {"a"}})
		requireAppError(t, err, http.StatusInternalServerError, "error executing DML statement")
		assert.Equal(t, 3, countThings(t, exec))
	})
}

func TestExecutor_Query(t *testing.T) {
	exec := setupTestExecutor(t)
	ctx := context.Background()

	_, err := exec.BatchDML(ctx, exec.Statement(`INSERT INTO things (name) VALUES (?)`), [][]any{{"x"}, {"y"}, {"z"}})
	require.NoError(t, err)

	t.Run("struct mapper", func(t *testing.T) {
		rows, err := Query(ctx, exec, exec.Statement(`SELECT id, name FROM things WHERE name <> ? ORDER BY name`),
			StructMapper[testRow](), "y")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "x", rows[0].Name)
		assert.Equal(t, "z", rows[1].Name)
		assert.NotZero(t, rows[0].ID)
	})

	t.Run("custom mapper", func(t *testing.T) {
		names, err := Query(ctx, exec, exec.Statement(`SELECT name FROM things ORDER BY name DESC`),
			func(rows *sqlx.Rows) (string, error) {
				var s string
				err := rows.Scan(&s)
				return s, err
			})
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "y", "x"}, names)
	})

	t.Run("no rows gives empty non-nil slice", func(t *testing.T) {
		rows, err := Query(ctx, exec, exec.Statement(`SELECT id, name FROM things WHERE name = ?`), StructMapper[testRow](), "none")
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)
	})

	t.Run("mapper failure", func(t *testing.T) {
		_, err := Query(ctx, exec, exec.Statement(`SELECT id, name FROM things`),
			func(*sqlx.Rows) (int, error) { return 0, errors.New("boom") })
		requireAppError(t, err, http.StatusInternalServerError, "error querying database")
	})

	t.Run("canceled context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err := Query(cctx, exec, exec.Statement(`SELECT id, name FROM things`), StructMapper[testRow]())
		requireAppError(t, err, http.StatusInternalServerError, "error getting connection from the pool")
	})
}

func TestExecutor_RollbackFailure(t *testing.T) {
	exec := setupTestExecutor(t)
	origErr := errors.New("factory failed")

	// the factory closes the transaction itself, so the executor's rollback fails
	prepare := func(ctx context.Context, tx *sqlx.Tx) (*sqlx.Stmt, error) {
		require.NoError(t, tx.Rollback())
		return nil, origErr
	}

	_, err := exec.DML(context.Background(), prepare)
	appErr := requireAppError(t, err, http.StatusInternalServerError, "error rolling back sql operations")
	assert.ErrorIs(t, appErr, origErr, "original failure is kept in the chain")
}

func TestExecutor_Dialect(t *testing.T) {
	tbl := []struct {
		driver string
		want   string
	}{
		{"sqlite", "sqlite"},
		{"pgx", "postgres"},
		{"postgres", "postgres"},
	}
	for _, tt := range tbl {
		t.Run(tt.driver, func(t *testing.T) {
			exec := NewExecutor(sqlx.NewDb(nil, tt.driver))
			assert.Equal(t, tt.want, exec.Dialect())
		})
	}
}
