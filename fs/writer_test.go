package fs_test

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fwojciec/progcrawl"
	"github.com/fwojciec/progcrawl/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testResult(url, region, program string) *progcrawl.CrawlResult {
	return &progcrawl.CrawlResult{
		URL:           url,
		Title:         program,
		Region:        region,
		Domain:        "example.gov",
		RawText:       "Program details for " + program,
		ProgramName:   program,
		Services:      []string{"job training", "job placement"},
		Eligibility:   "Adults with autism are eligible",
		ContactInfo:   "Email: info@example.gov",
		FundingSource: "Funded by a federal grant",
		CrawledAt:     time.Now().UTC(),
	}
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("writes index row and record artifact per result", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.Write(context.Background(), testResult("https://example.gov/a", "California", "Program A")))
		require.NoError(t, w.Write(context.Background(), testResult("https://example.gov/b", "Texas", "Program B")))
		require.NoError(t, w.Close())

		f, err := os.Open(filepath.Join(dir, "index.csv"))
		require.NoError(t, err)
		defer f.Close()

		rows, err := csv.NewReader(f).ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 3, "header plus two rows")

		assert.Equal(t, []string{
			"URL", "Title", "Region", "Organization", "ProgramName",
			"Services", "Eligibility", "ContactInfo", "FundingSource", "Filename",
		}, rows[0])

		assert.Equal(t, "https://example.gov/a", rows[1][0])
		assert.Equal(t, "California", rows[1][2])
		assert.Equal(t, "job training, job placement", rows[1][5])
		assert.Equal(t, "record_1.txt", rows[1][9])
		assert.Equal(t, "record_2.txt", rows[2][9])
	})

	t.Run("record artifacts hold a field header block and the raw text", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.Write(context.Background(), testResult("https://example.gov/a", "California", "Program A")))

		data, err := os.ReadFile(filepath.Join(dir, "programs", "record_1.txt"))
		require.NoError(t, err)

		content := string(data)
		assert.Contains(t, content, "REGION: California\n")
		assert.Contains(t, content, "PROGRAM: Program A\n")
		assert.Contains(t, content, "URL: https://example.gov/a\n")
		assert.Contains(t, content, "ORGANIZATION: example.gov\n")
		assert.Contains(t, content, "SERVICES: job training, job placement\n")
		assert.Contains(t, content, strings.Repeat("-", 70))
		assert.Contains(t, content, "Program details for Program A")
	})

	t.Run("rejects invalid results", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		err := w.Write(context.Background(), &progcrawl.CrawlResult{Region: "California"})

		require.Error(t, err)
		assert.Equal(t, progcrawl.EINVALID, progcrawl.ErrorCode(err))
	})

	t.Run("Results returns records in emission order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.Write(context.Background(), testResult("https://example.gov/a", "California", "Program A")))
		require.NoError(t, w.Write(context.Background(), testResult("https://example.gov/b", "Texas", "Program B")))

		results := w.Results()
		require.Len(t, results, 2)
		assert.Equal(t, "https://example.gov/a", results[0].URL)
		assert.Equal(t, "https://example.gov/b", results[1].URL)
	})
}

func TestWriter_Close(t *testing.T) {
	t.Parallel()

	t.Run("writes a summary grouped by region with largest groups first", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(dir)

		require.NoError(t, w.Write(context.Background(), testResult("https://example.gov/a", "Texas", "Program A")))
		require.NoError(t, w.Write(context.Background(), testResult("https://example.gov/b", "California", "Program B")))
		require.NoError(t, w.Write(context.Background(), testResult("https://example.gov/c", "Texas", "Program C")))
		require.NoError(t, w.Close())

		data, err := os.ReadFile(filepath.Join(dir, "summary.txt"))
		require.NoError(t, err)

		content := string(data)
		assert.Contains(t, content, "Total Programs Found: 3")
		assert.Contains(t, content, "Regions Represented: 2")
		assert.Contains(t, content, "TEXAS: 2 programs")
		assert.Contains(t, content, "CALIFORNIA: 1 programs")
		assert.Less(t, strings.Index(content, "TEXAS"), strings.Index(content, "CALIFORNIA"),
			"region with more programs should come first")
	})

	t.Run("is a no-op when nothing was written", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		w := fs.NewWriter(filepath.Join(dir, "out"))

		require.NoError(t, w.Close())

		_, err := os.Stat(filepath.Join(dir, "out"))
		assert.True(t, os.IsNotExist(err), "no output directory should be created")
	})
}
