// Package rules implements the rule-based content pipeline: the relevance
// rubric that admits or discards pages and the deterministic field extractor
// that derives structured program attributes from page text.
package rules

import (
	"strings"

	"github.com/fwojciec/progcrawl"
)

// DefaultThreshold is the number of criteria a page must satisfy to be
// admitted. Requiring all five is too strict (legitimate pages routinely
// omit one signal); fewer than three admits excessive noise.
const DefaultThreshold = 3

// Criterion is a single named rule of the relevance rubric.
type Criterion struct {
	Name  string
	Match func(text, url string) bool
}

// Ensure Classifier implements progcrawl.Classifier at compile time.
var _ progcrawl.Classifier = (*Classifier)(nil)

// Classifier scores page text against a fixed rubric of criteria and admits
// pages that satisfy at least the threshold. All matching is case-insensitive
// substring or token membership over the term tables in this package.
type Classifier struct {
	criteria  []Criterion
	threshold int
}

// NewClassifier creates a Classifier with the default five-criterion rubric
// for state autism employment programs.
func NewClassifier() *Classifier {
	return &Classifier{
		criteria: []Criterion{
			{Name: "condition", Match: func(text, _ string) bool {
				return containsAny(text, ConditionTerms)
			}},
			{Name: "employment", Match: func(text, _ string) bool {
				return containsAny(text, EmploymentTerms)
			}},
			{Name: "government", Match: func(text, url string) bool {
				return containsAny(text, GovernmentTerms) || containsAny(url, GovernmentTerms)
			}},
			{Name: "program", Match: func(text, _ string) bool {
				return containsAny(text, ProgramTerms)
			}},
			{Name: "region", Match: regionSignal},
		},
		threshold: DefaultThreshold,
	}
}

// Score returns the number of criteria the page satisfies.
func (c *Classifier) Score(text, url string) int {
	text = strings.ToLower(text)
	url = strings.ToLower(url)

	score := 0
	for _, criterion := range c.criteria {
		if criterion.Match(text, url) {
			score++
		}
	}
	return score
}

// Relevant reports whether the page satisfies at least the threshold.
func (c *Classifier) Relevant(text, url string) bool {
	return c.Score(text, url) >= c.threshold
}

// regionSignal reports whether a state is named in the text or the URL.
// Full names match as substrings; abbreviations only as delimited URL
// segments ("/ca/" or ".ca.") so that common two-letter words don't trigger
// false positives.
func regionSignal(text, url string) bool {
	for _, name := range StateNames {
		if strings.Contains(text, name) || strings.Contains(url, name) {
			return true
		}
	}
	for _, ab := range StateAbbrevs {
		if abbrevInURL(url, strings.ToLower(ab)) {
			return true
		}
	}
	return false
}

// abbrevInURL reports whether a lowercase state abbreviation appears as a
// delimited path or domain segment of a lowercase URL.
func abbrevInURL(url, abbrev string) bool {
	return strings.Contains(url, "/"+abbrev+"/") || strings.Contains(url, "."+abbrev+".")
}

// containsAny reports whether s contains any of the terms as a substring.
// Both s and terms are expected to be lowercase.
func containsAny(s string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(s, term) {
			return true
		}
	}
	return false
}
