package mock

import "github.com/fwojciec/progcrawl"

var _ progcrawl.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of progcrawl.Classifier.
type Classifier struct {
	RelevantFn func(text string, url string) bool
}

func (c *Classifier) Relevant(text string, url string) bool {
	return c.RelevantFn(text, url)
}

var _ progcrawl.FieldExtractor = (*FieldExtractor)(nil)

// FieldExtractor is a mock implementation of progcrawl.FieldExtractor.
type FieldExtractor struct {
	ExtractFieldsFn func(page *progcrawl.PageText, url string) *progcrawl.Fields
}

func (e *FieldExtractor) ExtractFields(page *progcrawl.PageText, url string) *progcrawl.Fields {
	return e.ExtractFieldsFn(page, url)
}
