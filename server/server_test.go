package server

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/umputun/feedreader/pkg/domain"
	"github.com/umputun/feedreader/server/mocks"
)

func TestServer_New(t *testing.T) {
	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return ":4567", 30 * time.Second
		},
	}

	srv := New(cfg, Stores{}, &mocks.ImporterMock{}, "1.0.0", true)
	assert.NotNil(t, srv)
	assert.Equal(t, "1.0.0", srv.version)
	assert.True(t, srv.debug)
	assert.NotNil(t, srv.router)
}

func TestServer_Run(t *testing.T) {
	// find free port
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := listener.Addr().(*net.TCPAddr).Port
	require.NoError(t, listener.Close())

	cfg := &mocks.ConfigProviderMock{
		GetServerConfigFunc: func() (string, time.Duration) {
			return fmt.Sprintf("127.0.0.1:%d", port), 30 * time.Second
		},
	}
	feeds := &mocks.FeedStoreMock{
		ListFunc: func(ctx context.Context) ([]domain.Feed, error) {
			return []domain.Feed{domain.NewFeed("news")}, nil
		},
	}
	srv := New(cfg, Stores{Feeds: feeds}, &mocks.ImporterMock{}, "1.0.0", false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	baseURL := fmt.Sprintf("http://127.0.0.1:%d", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(baseURL + "/ping")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := http.Get(baseURL + "/api/1/feeds/all")
	require.NoError(t, err)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[{"name":"news"}]`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_Middleware(t *testing.T) {
	srv := testServer(t, Stores{}, nil)

	t.Run("ping", func(t *testing.T) {
		w := serve(t, srv, http.MethodGet, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
		assert.Equal(t, "feedreader", w.Header().Get("App-Name"))
		assert.Equal(t, "test", w.Header().Get("App-Version"))
	})

	t.Run("metrics", func(t *testing.T) {
		serve(t, srv, http.MethodGet, "/ping", nil)
		w := serve(t, srv, http.MethodGet, "/metrics", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "feedreader_http_requests_total")
		assert.Contains(t, w.Body.String(), "go_goroutines")
	})

	t.Run("unknown route", func(t *testing.T) {
		w := serve(t, srv, http.MethodGet, "/api/1/nothing", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("panic recovered", func(t *testing.T) {
		users := &mocks.UserStoreMock{AddFunc: func(ctx context.Context, name string) error { panic("boom") }}
		w := serve(t, testServer(t, Stores{Users: users}, nil), http.MethodPost, "/api/1/users?name=x", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
