package goquery_test

import (
	"testing"

	"github.com/fwojciec/progcrawl"
	"github.com/fwojciec/progcrawl/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinkExtractor_ExtractLinks(t *testing.T) {
	t.Parallel()

	t.Run("resolves relative links against the base URL", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/about">About</a>
			<a href="programs/employment">Programs</a>
			<a href="https://other.example.org/page">External</a>
		</body></html>`

		e := goquery.NewLinkExtractor()
		links, err := e.ExtractLinks(html, "https://example.com/services/")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/about",
			"https://example.com/services/programs/employment",
			"https://other.example.org/page",
		}, links)
	})

	t.Run("returns links deduplicated in document order", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/b">B</a>
			<a href="/a">A</a>
			<a href="/b">B again</a>
		</body></html>`

		e := goquery.NewLinkExtractor()
		links, err := e.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/b", "https://example.com/a"}, links)
	})

	t.Run("skips non-http schemes", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="mailto:info@example.com">Email</a>
			<a href="javascript:void(0)">JS</a>
			<a href="tel:+15551234567">Call</a>
			<a href="ftp://example.com/file">FTP</a>
			<a href="/keep">Keep</a>
		</body></html>`

		e := goquery.NewLinkExtractor()
		links, err := e.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{"https://example.com/keep"}, links)
	})

	t.Run("skips anchors with empty hrefs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><a href="  ">blank</a><a>no href</a></body></html>`

		e := goquery.NewLinkExtractor()
		links, err := e.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, links)
	})

	t.Run("keeps fragment variants as distinct URLs", func(t *testing.T) {
		t.Parallel()

		html := `<html><body>
			<a href="/page">Page</a>
			<a href="/page#section">Section</a>
		</body></html>`

		e := goquery.NewLinkExtractor()
		links, err := e.ExtractLinks(html, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, []string{
			"https://example.com/page",
			"https://example.com/page#section",
		}, links)
	})

	t.Run("returns EINVALID for an invalid base URL", func(t *testing.T) {
		t.Parallel()

		e := goquery.NewLinkExtractor()
		_, err := e.ExtractLinks("<html></html>", "http://\x7f")

		require.Error(t, err)
		assert.Equal(t, progcrawl.EINVALID, progcrawl.ErrorCode(err))
	})
}
