package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/umputun/feedreader/pkg/domain"
	"github.com/umputun/feedreader/pkg/feed"
)

// userRef is a user addressed either by id or by name
type userRef struct {
	id   int64
	name string
	byID bool
}

// parseUserRef reads user reference from query, a non-blank id wins over name
func parseUserRef(r *http.Request) (userRef, error) {
	q := r.URL.Query()
	if idStr := strings.TrimSpace(q.Get("id")); idStr != "" {
		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil {
			return userRef{}, domain.BadRequest("id attribute must be a number").WithFix("Use a numeric user id or the name parameter")
		}
		return userRef{id: id, byID: true}, nil
	}
	return userRef{name: q.Get("name")}, nil
}

// statusHandler returns server status
func (s *Server) statusHandler(w http.ResponseWriter, r *http.Request) {
	status := map[string]any{
		"status":  "ok",
		"version": s.version,
		"time":    time.Now().UTC(),
	}
	renderJSON(w, r, http.StatusOK, status)
}

// POST /api/1/users?name=...
func (s *Server) addUserHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.stores.Users.Add(r.Context(), r.URL.Query().Get("name")); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /api/1/users?id=... or ?name=...
func (s *Server) deleteUserHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := parseUserRef(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	if ref.byID {
		err = s.stores.Users.DeleteByID(r.Context(), ref.id)
	} else {
		err = s.stores.Users.DeleteByName(r.Context(), ref.name)
	}
	if err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// POST /api/1/subscriptions?feed=...&id=... or &name=...
func (s *Server) subscribeHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := parseUserRef(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	feedName := r.URL.Query().Get("feed")
	if ref.byID {
		err = s.stores.Subscriptions.AddByID(r.Context(), feedName, ref.id)
	} else {
		err = s.stores.Subscriptions.AddByName(r.Context(), feedName, ref.name)
	}
	if err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /api/1/subscriptions?feed=...&id=... or &name=...
func (s *Server) unsubscribeHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := parseUserRef(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	feedName := r.URL.Query().Get("feed")
	if ref.byID {
		err = s.stores.Subscriptions.DeleteByID(r.Context(), feedName, ref.id)
	} else {
		err = s.stores.Subscriptions.DeleteByName(r.Context(), feedName, ref.name)
	}
	if err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// POST /api/1/articles?feed=... with {"title", "body"}
func (s *Server) addArticleHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
		Body  string `json:"body"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		renderError(w, r, &domain.AppError{Code: http.StatusBadRequest, Message: "error parsing article object",
			Fix: "Article object must have a valid title and body", Err: err})
		return
	}

	if err := s.stores.Articles.Add(r.Context(), domain.NewArticle(req.Title, req.Body), r.URL.Query().Get("feed")); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GET /api/1/articles?id=... or ?name=...
func (s *Server) listArticlesHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := parseUserRef(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	var articles []domain.Article
	if ref.byID {
		articles, err = s.stores.Articles.ListByID(r.Context(), ref.id)
	} else {
		articles, err = s.stores.Articles.ListByName(r.Context(), ref.name)
	}
	if err != nil {
		renderError(w, r, err)
		return
	}
	if articles == nil {
		articles = []domain.Article{}
	}
	renderJSON(w, r, http.StatusOK, articles)
}

// POST /api/1/articles/import?feed=...[&url=...], document in the body unless url is set
func (s *Server) importArticlesHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	feedName := q.Get("feed")
	if strings.TrimSpace(feedName) == "" {
		renderError(w, r, domain.BadRequest("Feed attribute cannot be empty"))
		return
	}

	var res feed.Result
	var err error
	if url := strings.TrimSpace(q.Get("url")); url != "" {
		res, err = s.importer.Fetch(r.Context(), url)
	} else {
		res, err = s.importer.Parse(r.Body)
	}
	if err != nil {
		renderError(w, r, err)
		return
	}

	var imported int64
	if len(res.Articles) > 0 {
		if imported, err = s.stores.Articles.AddBatch(r.Context(), res.Articles, feedName); err != nil {
			renderError(w, r, err)
			return
		}
	}
	log.Printf("[INFO] imported %d article(s) to feed %q, %d skipped", imported, feedName, res.Skipped)
	renderJSON(w, r, http.StatusOK, map[string]any{"feed": feedName, "imported": imported, "skipped": res.Skipped})
}

// POST /api/1/feeds?feed=...
func (s *Server) addFeedHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.stores.Feeds.Add(r.Context(), r.URL.Query().Get("feed")); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// DELETE /api/1/feeds?feed=...
func (s *Server) deleteFeedHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.stores.Feeds.Delete(r.Context(), r.URL.Query().Get("feed")); err != nil {
		renderError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// GET /api/1/feeds?id=... or ?name=..., feeds the user is subscribed to
func (s *Server) listFeedsHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := parseUserRef(r)
	if err != nil {
		renderError(w, r, err)
		return
	}

	var feeds []domain.Feed
	if ref.byID {
		feeds, err = s.stores.Subscriptions.ListByID(r.Context(), ref.id)
	} else {
		feeds, err = s.stores.Subscriptions.ListByName(r.Context(), ref.name)
	}
	if err != nil {
		renderError(w, r, err)
		return
	}
	s.renderFeeds(w, r, feeds)
}

// GET /api/1/feeds/all
func (s *Server) listAllFeedsHandler(w http.ResponseWriter, r *http.Request) {
	feeds, err := s.stores.Feeds.List(r.Context())
	if err != nil {
		renderError(w, r, err)
		return
	}
	s.renderFeeds(w, r, feeds)
}

func (s *Server) renderFeeds(w http.ResponseWriter, r *http.Request, feeds []domain.Feed) {
	if feeds == nil {
		feeds = []domain.Feed{}
	}
	renderJSON(w, r, http.StatusOK, feeds)
}
