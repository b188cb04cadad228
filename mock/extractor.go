package mock

import "github.com/fwojciec/progcrawl"

var _ progcrawl.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of progcrawl.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (e *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return e.ExtractLinksFn(html, baseURL)
}

var _ progcrawl.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of progcrawl.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(html string) (*progcrawl.PageText, error)
}

func (e *TextExtractor) ExtractText(html string) (*progcrawl.PageText, error) {
	return e.ExtractTextFn(html)
}
