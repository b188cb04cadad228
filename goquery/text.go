package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/progcrawl"
	"golang.org/x/net/html"
)

// boilerplateSelector matches the subtrees removed before text extraction.
// Navigation chrome would otherwise dominate keyword frequency counts.
const boilerplateSelector = "script, style, nav, footer, header"

// Ensure TextExtractor implements progcrawl.TextExtractor at compile time.
var _ progcrawl.TextExtractor = (*TextExtractor)(nil)

// TextExtractor derives the visible text of a page along with its title and
// first top-level heading.
type TextExtractor struct{}

// NewTextExtractor creates a new TextExtractor.
func NewTextExtractor() *TextExtractor {
	return &TextExtractor{}
}

// ExtractText strips boilerplate subtrees and returns the remaining visible
// text, one trimmed text node per line.
func (e *TextExtractor) ExtractText(rawHTML string) (*progcrawl.PageText, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, progcrawl.Errorf(progcrawl.EINVALID, "failed to parse HTML: %v", err)
	}

	page := &progcrawl.PageText{
		Title:   strings.TrimSpace(doc.Find("title").First().Text()),
		Heading: strings.TrimSpace(doc.Find("h1").First().Text()),
	}

	doc.Find(boilerplateSelector).Remove()

	var lines []string
	body := doc.Find("body")
	if body.Length() == 0 {
		body = doc.Selection
	}
	for _, node := range body.Nodes {
		collectText(node, &lines)
	}
	page.Text = strings.Join(lines, "\n")

	return page, nil
}

// collectText appends the trimmed content of every non-empty text node under
// n to lines, in document order.
func collectText(n *html.Node, lines *[]string) {
	if n.Type == html.TextNode {
		if text := strings.TrimSpace(n.Data); text != "" {
			*lines = append(*lines, text)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, lines)
	}
}
