package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/doccrawl"
	crawlhttp "github.com/fwojciec/doccrawl/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ doccrawl.Fetcher = (*crawlhttp.Fetcher)(nil)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns HTML body from server", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html><body>Hello World</body></html>"))
		}))
		defer server.Close()

		fetcher := crawlhttp.NewFetcher()
		defer fetcher.Close()

		resp, err := fetcher.Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "<html><body>Hello World</body></html>", resp.HTML)
		assert.Equal(t, server.URL, resp.URL)
	})

	t.Run("reports the URL after redirects", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/docs", func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "/docs/", http.StatusMovedPermanently)
		})
		mux.HandleFunc("/docs/", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("<html>docs</html>"))
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		resp, err := crawlhttp.NewFetcher().Fetch(context.Background(), server.URL+"/docs")
		require.NoError(t, err)
		assert.Equal(t, server.URL+"/docs/", resp.URL)
		assert.Equal(t, "<html>docs</html>", resp.HTML)
	})

	t.Run("sends browser user agent by default", func(t *testing.T) {
		t.Parallel()

		var got string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.UserAgent()
		}))
		defer server.Close()

		_, err := crawlhttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, doccrawl.DefaultUserAgent, got)
	})

	t.Run("sends custom user agent", func(t *testing.T) {
		t.Parallel()

		var got string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got = r.UserAgent()
		}))
		defer server.Close()

		_, err := crawlhttp.NewFetcher(crawlhttp.WithUserAgent("doccrawl-test")).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "doccrawl-test", got)
	})

	t.Run("truncates bodies above the size cap", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("0123456789"))
		}))
		defer server.Close()

		resp, err := crawlhttp.NewFetcher(crawlhttp.WithMaxBodySize(4)).Fetch(context.Background(), server.URL)
		require.NoError(t, err)
		assert.Equal(t, "0123", resp.HTML)
	})

	t.Run("respects custom timeout option", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		}))
		defer server.Close()

		fetcher := crawlhttp.NewFetcher(crawlhttp.WithTimeout(10 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), server.URL)
		require.Error(t, err)
	})

	t.Run("returns context error when cancelled", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("response"))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := crawlhttp.NewFetcher().Fetch(ctx, server.URL)
		require.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returns error for non-existent host", func(t *testing.T) {
		t.Parallel()

		fetcher := crawlhttp.NewFetcher(crawlhttp.WithTimeout(100 * time.Millisecond))

		_, err := fetcher.Fetch(context.Background(), "http://non-existent-host.invalid/page")
		require.Error(t, err)
	})

	t.Run("returns invalid error for malformed URL", func(t *testing.T) {
		t.Parallel()

		_, err := crawlhttp.NewFetcher().Fetch(context.Background(), "http://[::1")
		require.Error(t, err)
		assert.Equal(t, doccrawl.EINVALID, doccrawl.ErrorCode(err))
	})

	t.Run("returns error for non-200 status codes", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte("404 Not Found"))
		}))
		defer server.Close()

		_, err := crawlhttp.NewFetcher().Fetch(context.Background(), server.URL)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}
