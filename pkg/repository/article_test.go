package repository

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedreader/pkg/domain"
)

func TestArticleRepository_AddAndList(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repos.Feed.SeedDefaults(ctx, []string{"test", "other"}))
	require.NoError(t, repos.User.Add(ctx, "user"))
	require.NoError(t, repos.Subscription.AddByName(ctx, "test", "user"))

	const total = 10
	for i := 0; i < total; i++ {
		require.NoError(t, repos.Article.Add(ctx, domain.NewArticle("title", "body"), "test"))
	}
	require.NoError(t, repos.Article.Add(ctx, domain.NewArticle("elsewhere", "body"), "other"))

	check := func(articles []domain.Article) {
		require.Len(t, articles, total)
		for _, a := range articles {
			assert.Equal(t, "title", a.Title)
			assert.Equal(t, "body", a.Body)
			assert.Equal(t, "test", a.Feed)
			assert.NotNil(t, a.CreatedOn)
			assert.NotNil(t, a.ID)
		}
		for i := 1; i < len(articles); i++ {
			assert.Less(t, *articles[i-1].ID, *articles[i].ID, "creation order")
		}
	}

	articles, err := repos.Article.ListByName(ctx, "user")
	require.NoError(t, err)
	check(articles)

	users, err := repos.User.GetByName(ctx, "user")
	require.NoError(t, err)
	articles, err = repos.Article.ListByID(ctx, *users[0].ID)
	require.NoError(t, err)
	check(articles)

	t.Run("unknown user", func(t *testing.T) {
		articles, err := repos.Article.ListByName(ctx, "ghost")
		require.NoError(t, err)
		assert.Empty(t, articles)
		articles, err = repos.Article.ListByID(ctx, 9999)
		require.NoError(t, err)
		assert.Empty(t, articles)
	})
}

func TestArticleRepository_SharedNameNoDuplicates(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repos.Feed.Add(ctx, "f"))
	require.NoError(t, repos.User.Add(ctx, "twin"))
	require.NoError(t, repos.User.Add(ctx, "twin"))
	require.NoError(t, repos.Subscription.AddByName(ctx, "f", "twin"))
	require.NoError(t, repos.Article.Add(ctx, domain.NewArticle("t", "b"), "f"))

	articles, err := repos.Article.ListByName(ctx, "twin")
	require.NoError(t, err)
	assert.Len(t, articles, 1)
}

func TestArticleRepository_AddBatch(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	require.NoError(t, repos.Feed.Add(ctx, "f"))

	articles := make([]domain.Article, 5)
	for i := range articles {
		articles[i] = domain.NewArticle(fmt.Sprintf("title %d", i), fmt.Sprintf("body %d", i))
	}
	n, err := repos.Article.AddBatch(ctx, articles, "f")
	require.NoError(t, err)
	assert.Equal(t, int64(5), n)
	assert.Equal(t, 5, countRows(t, repos, "articles"))

	t.Run("invalid article rejects the whole batch", func(t *testing.T) {
		bad := []domain.Article{domain.NewArticle("ok", "ok"), domain.NewArticle("no body", " ")}
		_, err := repos.Article.AddBatch(ctx, bad, "f")
		requireAppError(t, err, http.StatusBadRequest, "Article body attribute cannot be empty")
		assert.Equal(t, 5, countRows(t, repos, "articles"))
	})

	t.Run("unknown feed stores nothing", func(t *testing.T) {
		_, err := repos.Article.AddBatch(ctx, articles, "missing")
		requireAppError(t, err, http.StatusInternalServerError, "error executing DML statement")
		assert.Equal(t, 5, countRows(t, repos, "articles"))
	})

	t.Run("empty batch", func(t *testing.T) {
		n, err := repos.Article.AddBatch(ctx, nil, "f")
		require.NoError(t, err)
		assert.Zero(t, n)
	})
}

func TestArticleRepository_Validation(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()
	require.NoError(t, repos.Feed.Add(ctx, "test"))

	tbl := []struct {
		name    string
		article domain.Article
		feed    string
		msg     string
	}{
		{"no feed", domain.NewArticle("title", "body"), "", "Feed attribute cannot be empty"},
		{"no title", domain.NewArticle("", "body"), "test", "Article title attribute cannot be empty"},
		{"no body", domain.NewArticle("title", "  "), "test", "Article body attribute cannot be empty"},
		{"nothing at all", domain.Article{}, "", "Feed attribute cannot be empty"},
	}
	for _, tt := range tbl {
		t.Run(tt.name, func(t *testing.T) {
			err := repos.Article.Add(ctx, tt.article, tt.feed)
			requireAppError(t, err, http.StatusBadRequest, tt.msg)
		})
	}

	_, err := repos.Article.ListByName(ctx, "")
	requireAppError(t, err, http.StatusBadRequest, "Username attribute cannot be empty")
	assert.Equal(t, 0, countRows(t, repos, "articles"))
}
