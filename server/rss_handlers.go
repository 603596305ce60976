package server

import (
	"fmt"
	"log"
	"net/http"

	"github.com/umputun/feedreader/pkg/domain"
	"github.com/umputun/feedreader/pkg/feed"
)

// GET /api/1/articles/rss?id=... or ?name=..., the user's articles as RSS 2.0
func (s *Server) rssHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := parseUserRef(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	var articles []domain.Article
	title := "feedreader - " + ref.name
	if ref.byID {
		title = fmt.Sprintf("feedreader - user %d", ref.id)
		articles, err = s.stores.Articles.ListByID(r.Context(), ref.id)
	} else {
		articles, err = s.stores.Articles.ListByName(r.Context(), ref.name)
	}
	if err != nil {
		renderError(w, r, err)
		return
	}

	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	generator := feed.NewGenerator(scheme + "://" + r.Host)

	rss, err := generator.GenerateRSS(articles, title, r.URL.RequestURI())
	if err != nil {
		renderError(w, r, domain.Internal(err, "error generating rss document"))
		return
	}

	w.Header().Set("Content-Type", "application/rss+xml; charset=utf-8")
	if _, err := w.Write([]byte(rss)); err != nil {
		log.Printf("[ERROR] failed to write RSS response: %v", err)
	}
}
