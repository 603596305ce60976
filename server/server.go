package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/go-pkgz/lgr"
	"github.com/go-pkgz/rest"
	"github.com/go-pkgz/rest/logger"
	"github.com/go-pkgz/routegroup"

	"github.com/umputun/feedreader/pkg/domain"
	"github.com/umputun/feedreader/pkg/feed"
	"github.com/umputun/feedreader/pkg/metrics"
)

//go:generate moq -out mocks/config.go -pkg mocks -skip-ensure -fmt goimports . ConfigProvider
//go:generate moq -out mocks/users.go -pkg mocks -skip-ensure -fmt goimports . UserStore
//go:generate moq -out mocks/feeds.go -pkg mocks -skip-ensure -fmt goimports . FeedStore
//go:generate moq -out mocks/subscriptions.go -pkg mocks -skip-ensure -fmt goimports . SubscriptionStore
//go:generate moq -out mocks/articles.go -pkg mocks -skip-ensure -fmt goimports . ArticleStore
//go:generate moq -out mocks/importer.go -pkg mocks -skip-ensure -fmt goimports . Importer

// Server represents HTTP server instance
type Server struct {
	config   ConfigProvider
	stores   Stores
	importer Importer
	version  string
	debug    bool

	lock       sync.Mutex
	httpServer *http.Server
	router     *routegroup.Bundle
}

// Stores groups the persistence services used by handlers
type Stores struct {
	Users         UserStore
	Feeds         FeedStore
	Subscriptions SubscriptionStore
	Articles      ArticleStore
}

// UserStore manages users
type UserStore interface {
	Add(ctx context.Context, name string) error
	DeleteByName(ctx context.Context, name string) error
	DeleteByID(ctx context.Context, userID int64) error
}

// FeedStore manages feeds
type FeedStore interface {
	Add(ctx context.Context, name string) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]domain.Feed, error)
}

// SubscriptionStore manages user subscriptions to feeds
type SubscriptionStore interface {
	AddByName(ctx context.Context, feed, userName string) error
	AddByID(ctx context.Context, feed string, userID int64) error
	DeleteByName(ctx context.Context, feed, userName string) error
	DeleteByID(ctx context.Context, feed string, userID int64) error
	ListByID(ctx context.Context, userID int64) ([]domain.Feed, error)
	ListByName(ctx context.Context, userName string) ([]domain.Feed, error)
}

// ArticleStore manages articles
type ArticleStore interface {
	Add(ctx context.Context, article domain.Article, feed string) error
	AddBatch(ctx context.Context, articles []domain.Article, feed string) (int64, error)
	ListByID(ctx context.Context, userID int64) ([]domain.Article, error)
	ListByName(ctx context.Context, userName string) ([]domain.Article, error)
}

// Importer converts RSS/Atom documents to articles
type Importer interface {
	Parse(r io.Reader) (feed.Result, error)
	Fetch(ctx context.Context, feedURL string) (feed.Result, error)
}

// ConfigProvider provides server configuration
type ConfigProvider interface {
	GetServerConfig() (listen string, timeout time.Duration)
}

// New initializes a new server instance
func New(cfg ConfigProvider, stores Stores, importer Importer, version string, debug bool) *Server {
	s := &Server{
		config:   cfg,
		stores:   stores,
		importer: importer,
		version:  version,
		debug:    debug,
		router:   routegroup.New(http.NewServeMux()),
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// Run starts the HTTP server and handles graceful shutdown
func (s *Server) Run(ctx context.Context) error {
	listen, timeout := s.config.GetServerConfig()
	log.Printf("[INFO] starting server on %s", listen)

	s.lock.Lock()
	s.httpServer = &http.Server{
		Addr:              listen,
		Handler:           s.router,
		ReadHeaderTimeout: timeout,
		ReadTimeout:       timeout,
		WriteTimeout:      timeout,
	}
	s.lock.Unlock()

	go func() {
		<-ctx.Done()
		log.Printf("[INFO] shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("[WARN] server shutdown error: %v", err)
		}
	}()

	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	return nil
}

// setupMiddleware configures standard middleware for the server
func (s *Server) setupMiddleware() {
	s.router.Use(metrics.Middleware)
	s.router.Use(rest.AppInfo("feedreader", "umputun", s.version))
	s.router.Use(rest.Ping)

	if s.debug {
		s.router.Use(logger.New(logger.Log(lgr.Default()), logger.Prefix("[DEBUG]")).Handler)
	}

	s.router.Use(rest.Recoverer(lgr.Default()))
	s.router.Use(rest.Throttle(100))
	s.router.Use(rest.SizeLimit(1024 * 1024)) // 1MB
}

// setupRoutes configures application routes
func (s *Server) setupRoutes() {
	s.router.Mount("/api/1").Route(func(r *routegroup.Bundle) {
		r.HandleFunc("GET /status", s.statusHandler)

		r.HandleFunc("POST /users", s.addUserHandler)
		r.HandleFunc("DELETE /users", s.deleteUserHandler)

		r.HandleFunc("POST /subscriptions", s.subscribeHandler)
		r.HandleFunc("DELETE /subscriptions", s.unsubscribeHandler)

		r.HandleFunc("POST /articles", s.addArticleHandler)
		r.HandleFunc("GET /articles", s.listArticlesHandler)
		r.HandleFunc("POST /articles/import", s.importArticlesHandler)
		r.HandleFunc("GET /articles/rss", s.rssHandler)

		r.HandleFunc("POST /feeds", s.addFeedHandler)
		r.HandleFunc("GET /feeds", s.listFeedsHandler)
		r.HandleFunc("DELETE /feeds", s.deleteFeedHandler)
		r.HandleFunc("GET /feeds/all", s.listAllFeedsHandler)
	})

	s.router.Handle("GET /metrics", metrics.Handler())
}

// renderJSON sends JSON response
func renderJSON(w http.ResponseWriter, _ *http.Request, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			log.Printf("[ERROR] can't encode response to JSON: %v", err)
		}
	}
}

// renderError logs err and sends its code with {"cause", "Potential Fix"} body.
// Errors other than domain.AppError are sent as 500.
func renderError(w http.ResponseWriter, r *http.Request, err error) {
	appErr := domain.AsAppError(err)
	if appErr.Code >= http.StatusInternalServerError {
		log.Printf("[ERROR] %s %s failed: %v", r.Method, r.URL.Path, err)
	} else {
		log.Printf("[WARN] %s %s rejected: %v", r.Method, r.URL.Path, err)
	}
	renderJSON(w, r, appErr.Code, appErr.ErrorBody())
}
