package progcrawl

// Fields holds the structured attributes derived from an admitted page.
type Fields struct {
	Region        string
	ProgramName   string
	Services      []string
	Eligibility   string
	ContactInfo   string
	FundingSource string
}

// Classifier decides whether a page is relevant to the crawl's subject.
type Classifier interface {
	// Relevant reports whether the page at url with visible text is
	// relevant enough to emit a result for.
	Relevant(text string, url string) bool
}

// FieldExtractor derives structured attributes from admitted page text.
// Extraction is rule-based and deterministic; absent signals yield empty or
// default values, never errors.
type FieldExtractor interface {
	ExtractFields(page *PageText, url string) *Fields
}
