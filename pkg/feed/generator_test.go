package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedreader/pkg/domain"
)

func TestGenerator_GenerateRSS(t *testing.T) {
	generator := NewGenerator("https://example.com/")

	created := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	articles := []domain.Article{
		domain.NewArticle("First", "<p>body &amp; more</p>", domain.ArticleID(1),
			domain.ArticleCreatedOn(created), domain.ArticleFeed("news")),
		domain.NewArticle("Second", "plain", domain.ArticleID(2), domain.ArticleFeed("sports")),
	}

	rss, err := generator.GenerateRSS(articles, "feedreader - alice", "/api/1/articles/rss?name=alice")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(rss, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, rss, `<rss version="2.0" xmlns:atom="http://www.w3.org/2005/Atom">`)
	assert.Contains(t, rss, "<title>feedreader - alice</title>")
	assert.Contains(t, rss, "<link>https://example.com/</link>")
	assert.Contains(t, rss, `href="https://example.com/api/1/articles/rss?name=alice"`)
	assert.Contains(t, rss, "<title>First</title>")
	assert.Contains(t, rss, `<guid isPermaLink="false">https://example.com/articles/1</guid>`)
	assert.Contains(t, rss, "<pubDate>Mon, 01 Jan 2024 12:00:00 +0000</pubDate>")
	assert.Contains(t, rss, "<category>news</category>")
	assert.Contains(t, rss, "&lt;p&gt;body &amp;amp; more&lt;/p&gt;", "markup escaped")
	assert.Equal(t, 1, strings.Count(rss, "<pubDate>"), "no date for article without creation time")
}

func TestGenerator_Empty(t *testing.T) {
	rss, err := NewGenerator("http://localhost:4567").GenerateRSS(nil, "empty", "/rss")
	require.NoError(t, err)
	assert.Contains(t, rss, "<channel>")
	assert.NotContains(t, rss, "<item>")
}

func TestGenerator_RoundTrip(t *testing.T) {
	articles := []domain.Article{
		domain.NewArticle("One", "<b>bold</b> text", domain.ArticleID(10), domain.ArticleFeed("news")),
		domain.NewArticle("Two", "second body", domain.ArticleID(11), domain.ArticleFeed("news")),
	}
	rss, err := NewGenerator("http://localhost").GenerateRSS(articles, "round trip", "/rss")
	require.NoError(t, err)

	res, err := NewImporter(time.Second, "test", 10, 1<<20).Parse(strings.NewReader(rss))
	require.NoError(t, err)
	require.Len(t, res.Articles, 2)
	assert.Equal(t, "One", res.Articles[0].Title)
	assert.Equal(t, "<b>bold</b> text", res.Articles[0].Body)
	assert.Equal(t, "Two", res.Articles[1].Title)
	assert.Equal(t, "second body", res.Articles[1].Body)
}
