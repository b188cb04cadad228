package main_test

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/progcrawl/cmd/progcrawl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const relevantPage = `<html>
<head><title>Supported Employment Program</title></head>
<body>
<h1>Supported Employment Program</h1>
<p>The California Department of Rehabilitation offers a supported employment
program for adults with autism. Applicants must be eligible adults with a
documented disability. Contact us at info@dor.ca.gov or call 555-123-4567.
This program is funded by a federal grant.</p>
<a href="/other">Other services</a>
</body>
</html>`

func TestCrawlCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("crawls a seed and writes results", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.URL.Path {
			case "/robots.txt":
				w.WriteHeader(http.StatusNotFound)
			case "/":
				w.Header().Set("Content-Type", "text/html")
				fmt.Fprint(w, relevantPage)
			default:
				w.Header().Set("Content-Type", "text/html")
				fmt.Fprint(w, "<html><body><p>Nothing relevant here.</p></body></html>")
			}
		}))
		defer srv.Close()

		out := filepath.Join(t.TempDir(), "results")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{
			"crawl", srv.URL + "/",
			"--out", out,
			"--delay", "1ms",
			"--max-pages", "5",
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Found 1 programs")

		data, err := os.ReadFile(filepath.Join(out, "index.csv"))
		require.NoError(t, err)
		assert.Contains(t, string(data), srv.URL+"/")
		assert.Contains(t, string(data), "California")

		record, err := os.ReadFile(filepath.Join(out, "programs", "record_1.txt"))
		require.NoError(t, err)
		assert.Contains(t, string(record), "REGION: California")

		_, err = os.Stat(filepath.Join(out, "summary.txt"))
		require.NoError(t, err)
	})

	t.Run("reports when nothing is found", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, "<html><body><p>Nothing relevant here.</p></body></html>")
		}))
		defer srv.Close()

		out := filepath.Join(t.TempDir(), "results")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{
			"crawl", srv.URL + "/",
			"--out", out,
			"--delay", "1ms",
			"--max-pages", "3",
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No programs found")
	})

	t.Run("reads seeds from a file", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, relevantPage)
		}))
		defer srv.Close()

		seedsFile := filepath.Join(t.TempDir(), "seeds.txt")
		require.NoError(t, os.WriteFile(seedsFile, []byte("# comment\n\n"+srv.URL+"/\n"), 0644))

		out := filepath.Join(t.TempDir(), "results")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{
			"crawl",
			"--seeds-file", seedsFile,
			"--out", out,
			"--delay", "1ms",
			"--max-pages", "3",
		}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Found 1 programs")
	})

	t.Run("writes a markdown report when requested", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/" {
				w.WriteHeader(http.StatusNotFound)
				return
			}
			w.Header().Set("Content-Type", "text/html")
			fmt.Fprint(w, relevantPage)
		}))
		defer srv.Close()

		dir := t.TempDir()
		reportFile := filepath.Join(dir, "report.md")
		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		m := main.NewMain()
		err := m.Run(context.Background(), []string{
			"crawl", srv.URL + "/",
			"--out", filepath.Join(dir, "results"),
			"--report", reportFile,
			"--delay", "1ms",
			"--max-pages", "3",
		}, stdout, stderr)

		require.NoError(t, err)

		data, err := os.ReadFile(reportFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), "# State Autism Employment Programs Report")
		assert.Contains(t, string(data), "### California")
	})
}
