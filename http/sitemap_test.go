package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	prohttp "github.com/fwojciec/progcrawl/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSitemapService_Discover(t *testing.T) {
	t.Parallel()

	t.Run("returns URLs from a urlset sitemap", func(t *testing.T) {
		t.Parallel()

		var srv *httptest.Server
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/sitemap.xml" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%[1]s/page1</loc></url>
  <url><loc>%[1]s/page2</loc></url>
</urlset>`, srv.URL)
		}))
		defer srv.Close()

		s := prohttp.NewSitemapService(nil)
		urls, err := s.Discover(context.Background(), []string{srv.URL + "/start"})

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page1", srv.URL + "/page2"}, urls)
	})

	t.Run("follows a sitemap index one level deep", func(t *testing.T) {
		t.Parallel()

		var srv *httptest.Server
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/sitemap.xml":
				fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <sitemap><loc>%[1]s/sitemap-pages.xml</loc></sitemap>
</sitemapindex>`, srv.URL)
			case "/sitemap-pages.xml":
				fmt.Fprintf(w, `<?xml version="1.0" encoding="UTF-8"?>
<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">
  <url><loc>%[1]s/deep-page</loc></url>
</urlset>`, srv.URL)
			default:
				w.WriteHeader(http.StatusNotFound)
			}
		}))
		defer srv.Close()

		s := prohttp.NewSitemapService(nil)
		urls, err := s.Discover(context.Background(), []string{srv.URL})

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/deep-page"}, urls)
	})

	t.Run("skips origins without a usable sitemap", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer srv.Close()

		s := prohttp.NewSitemapService(nil)
		urls, err := s.Discover(context.Background(), []string{srv.URL + "/start"})

		require.NoError(t, err)
		assert.Empty(t, urls)
	})

	t.Run("deduplicates URLs across seeds of the same origin", func(t *testing.T) {
		t.Parallel()

		var fetches int
		var srv *httptest.Server
		srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/sitemap.xml" {
				fetches++
				fmt.Fprintf(w, `<urlset><url><loc>%s/page</loc></url></urlset>`, srv.URL)
			}
		}))
		defer srv.Close()

		s := prohttp.NewSitemapService(nil)
		urls, err := s.Discover(context.Background(), []string{
			srv.URL + "/a",
			srv.URL + "/b",
		})

		require.NoError(t, err)
		assert.Equal(t, []string{srv.URL + "/page"}, urls)
		assert.Equal(t, 1, fetches, "one origin means one sitemap fetch")
	})

	t.Run("handles malformed XML without error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("this is not xml <<<"))
		}))
		defer srv.Close()

		s := prohttp.NewSitemapService(nil)
		urls, err := s.Discover(context.Background(), []string{srv.URL})

		require.NoError(t, err)
		assert.Empty(t, urls)
	})
}
