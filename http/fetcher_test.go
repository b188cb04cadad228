package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/progcrawl"
	prohttp "github.com/fwojciec/progcrawl/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("returns page content for an HTML response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte("<html><body>hello</body></html>"))
		}))
		defer srv.Close()

		f := prohttp.NewFetcher()
		content, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html><body>hello</body></html>", content.HTML)
		assert.Contains(t, content.ContentType, "text/html")
	})

	t.Run("sends a browser user agent", func(t *testing.T) {
		t.Parallel()

		var gotUA string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotUA = r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte("<html></html>"))
		}))
		defer srv.Close()

		f := prohttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Contains(t, gotUA, "Mozilla/5.0")
	})

	t.Run("maps retryable statuses to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		for _, status := range []int{429, 500, 502, 503, 504} {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(status)
			}))

			f := prohttp.NewFetcher()
			_, err := f.Fetch(context.Background(), srv.URL)

			require.Error(t, err, "status %d", status)
			assert.Equal(t, progcrawl.EUNAVAILABLE, progcrawl.ErrorCode(err), "status %d", status)
			srv.Close()
		}
	})

	t.Run("maps other error statuses to EINTERNAL", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		f := prohttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, progcrawl.EINTERNAL, progcrawl.ErrorCode(err))
	})

	t.Run("maps non-document content types to EUNSUPPORTED", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.4"))
		}))
		defer srv.Close()

		f := prohttp.NewFetcher()
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, progcrawl.EUNSUPPORTED, progcrawl.ErrorCode(err))
	})

	t.Run("accepts xhtml content", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/xhtml+xml")
			_, _ = w.Write([]byte("<html/>"))
		}))
		defer srv.Close()

		f := prohttp.NewFetcher()
		content, err := f.Fetch(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Equal(t, "<html/>", content.HTML)
	})

	t.Run("maps timeouts to EUNAVAILABLE", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		f := prohttp.NewFetcher(prohttp.WithTimeout(20 * time.Millisecond))
		_, err := f.Fetch(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, progcrawl.EUNAVAILABLE, progcrawl.ErrorCode(err))
	})

	t.Run("maps DNS resolution failures to EINTERNAL", func(t *testing.T) {
		t.Parallel()

		// The .invalid TLD is reserved and never resolves. An unresolvable
		// name is a permanent failure, not a retryable one.
		f := prohttp.NewFetcher()
		_, err := f.Fetch(context.Background(), "http://name-that-does-not-resolve.invalid/")

		require.Error(t, err)
		assert.Equal(t, progcrawl.EINTERNAL, progcrawl.ErrorCode(err))
	})

	t.Run("returns EINVALID for a malformed URL", func(t *testing.T) {
		t.Parallel()

		f := prohttp.NewFetcher()
		_, err := f.Fetch(context.Background(), "http://\x7f")

		require.Error(t, err)
		assert.Equal(t, progcrawl.EINVALID, progcrawl.ErrorCode(err))
	})
}
