package server

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedreader/pkg/domain"
	"github.com/umputun/feedreader/server/mocks"
)

func TestServer_rssHandler(t *testing.T) {
	articles := &mocks.ArticleStoreMock{
		ListByNameFunc: func(ctx context.Context, userName string) ([]domain.Article, error) {
			return []domain.Article{domain.NewArticle("Hello", "World", domain.ArticleID(3), domain.ArticleFeed("news"))}, nil
		},
		ListByIDFunc: func(ctx context.Context, userID int64) ([]domain.Article, error) {
			return nil, domain.Internal(errors.New("db down"), "error querying database")
		},
	}
	srv := testServer(t, Stores{Articles: articles}, nil)

	t.Run("by name", func(t *testing.T) {
		w := serve(t, srv, http.MethodGet, "/api/1/articles/rss?name=alice", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/rss+xml; charset=utf-8", w.Header().Get("Content-Type"))
		body := w.Body.String()
		assert.Contains(t, body, "<title>feedreader - alice</title>")
		assert.Contains(t, body, "<title>Hello</title>")
		assert.Contains(t, body, "<guid isPermaLink=\"false\">http://example.com/articles/3</guid>")
		assert.Contains(t, body, `href="http://example.com/api/1/articles/rss?name=alice"`)
		require.Len(t, articles.ListByNameCalls(), 1)
		assert.Equal(t, "alice", articles.ListByNameCalls()[0].UserName)
	})

	t.Run("store failure", func(t *testing.T) {
		w := serve(t, srv, http.MethodGet, "/api/1/articles/rss?id=1", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "error querying database", errorBody(t, w)["cause"])
	})

	t.Run("bad id", func(t *testing.T) {
		w := serve(t, srv, http.MethodGet, "/api/1/articles/rss?id=one", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
