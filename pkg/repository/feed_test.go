package repository

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedreader/pkg/domain"
)

func feedNames(feeds []domain.Feed) []string {
	res := make([]string, 0, len(feeds))
	for _, f := range feeds {
		res = append(res, f.Name)
	}
	return res
}

func TestFeedRepository_AddListDelete(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	feeds, err := repos.Feed.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, feeds)

	require.NoError(t, repos.Feed.Add(ctx, "news"))
	require.NoError(t, repos.Feed.Add(ctx, "sports"))

	feeds, err = repos.Feed.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"news", "sports"}, feedNames(feeds))
	for _, f := range feeds {
		assert.NotNil(t, f.CreatedOn)
	}

	t.Run("duplicate feed", func(t *testing.T) {
		err := repos.Feed.Add(ctx, "news")
		requireAppError(t, err, http.StatusInternalServerError, "error executing DML statement")
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, repos.Feed.Delete(ctx, "sports"))
		feeds, err := repos.Feed.List(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"news"}, feedNames(feeds))
	})

	t.Run("delete referenced feed fails", func(t *testing.T) {
		require.NoError(t, repos.Article.Add(ctx, domain.NewArticle("t", "b"), "news"))
		err := repos.Feed.Delete(ctx, "news")
		requireAppError(t, err, http.StatusInternalServerError, "error executing DML statement")
	})
}

func TestFeedRepository_SeedDefaults(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	defaults := []string{"news", " sports ", "", "tech", "  "}
	require.NoError(t, repos.Feed.SeedDefaults(ctx, defaults))

	feeds, err := repos.Feed.List(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"news", "sports", "tech"}, feedNames(feeds))

	t.Run("seeding twice doesn't duplicate", func(t *testing.T) {
		require.NoError(t, repos.Feed.SeedDefaults(ctx, defaults))
		feeds, err := repos.Feed.List(ctx)
		require.NoError(t, err)
		assert.Len(t, feeds, 3)
	})

	t.Run("nothing to seed", func(t *testing.T) {
		require.NoError(t, repos.Feed.SeedDefaults(ctx, nil))
	})
}

func TestFeedRepository_Validation(t *testing.T) {
	repos, cleanup := setupTestDB(t)
	defer cleanup()
	ctx := context.Background()

	err := repos.Feed.Add(ctx, " ")
	requireAppError(t, err, http.StatusBadRequest, "Feed attribute cannot be empty")
	err = repos.Feed.Delete(ctx, "")
	requireAppError(t, err, http.StatusBadRequest, "Feed attribute cannot be empty")
	assert.Equal(t, 0, countRows(t, repos, "feeds"))
}
