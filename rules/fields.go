package rules

import (
	"regexp"
	"strings"

	"github.com/fwojciec/progcrawl"
)

// UnknownRegion is reported when no state can be attributed to a page.
const UnknownRegion = "Unknown"

var (
	emailRe = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)

	// regionTokenRe matches any state name or abbreviation as a delimited
	// token in lowercase text.
	regionTokenRe = func() *regexp.Regexp {
		alts := make([]string, 0, len(StateNames)+len(StateAbbrevs))
		alts = append(alts, StateNames...)
		for _, ab := range StateAbbrevs {
			alts = append(alts, strings.ToLower(ab))
		}
		return regexp.MustCompile(`\b(` + strings.Join(alts, "|") + `)\b`)
	}()
)

// Ensure FieldExtractor implements progcrawl.FieldExtractor at compile time.
var _ progcrawl.FieldExtractor = (*FieldExtractor)(nil)

// FieldExtractor derives structured program attributes from admitted page
// text. All extraction is deterministic and rule-based; absent signals yield
// empty or default values.
type FieldExtractor struct{}

// NewFieldExtractor creates a new FieldExtractor.
func NewFieldExtractor() *FieldExtractor {
	return &FieldExtractor{}
}

// ExtractFields derives all structured attributes for a page.
func (e *FieldExtractor) ExtractFields(page *progcrawl.PageText, url string) *progcrawl.Fields {
	sentences := strings.Split(page.Text, ".")

	return &progcrawl.Fields{
		Region:        extractRegion(page.Text, url),
		ProgramName:   extractProgramName(page),
		Services:      extractServices(page.Text),
		Eligibility:   extractEligibility(sentences),
		ContactInfo:   extractContactInfo(page.Text),
		FundingSource: extractFundingSource(sentences),
	}
}

// extractRegion attributes a page to a state. First match wins, in priority
// order: full state name as a URL substring, state abbreviation as a
// delimited URL segment, then the most frequent state token in the text.
func extractRegion(text, url string) string {
	urlLower := strings.ToLower(url)

	for _, name := range StateNames {
		if strings.Contains(urlLower, name) {
			return titleCase(name)
		}
	}
	for _, ab := range StateAbbrevs {
		lower := strings.ToLower(ab)
		if abbrevInURL(urlLower, lower) {
			return titleCase(stateNameByAbbrev[lower])
		}
	}

	return regionByFrequency(strings.ToLower(text))
}

// regionByFrequency returns the most frequently mentioned state in text,
// counting both names and abbreviation tokens toward the same state. Ties
// break toward the state encountered first during the scan. This is a
// heuristic: a page that mentions neighboring states more often than its own
// will be misattributed.
func regionByFrequency(textLower string) string {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)

	for i, match := range regionTokenRe.FindAllString(textLower, -1) {
		name := match
		if full, ok := stateNameByAbbrev[match]; ok {
			name = full
		}
		counts[name]++
		if _, ok := firstSeen[name]; !ok {
			firstSeen[name] = i
		}
	}

	best := ""
	for name, count := range counts {
		if best == "" || count > counts[best] ||
			(count == counts[best] && firstSeen[name] < firstSeen[best]) {
			best = name
		}
	}
	if best == "" {
		return UnknownRegion
	}
	return titleCase(best)
}

// extractProgramName returns the document title, or the first top-level
// heading when the title is absent.
func extractProgramName(page *progcrawl.PageText) string {
	if page.Title != "" {
		return page.Title
	}
	return page.Heading
}

// extractServices collects every recognized service keyword that occurs in
// the text, in keyword-table order. Duplicates are impossible by
// construction.
func extractServices(text string) []string {
	textLower := strings.ToLower(text)
	var services []string
	for _, keyword := range ServiceKeywords {
		if strings.Contains(textLower, keyword) {
			services = append(services, keyword)
		}
	}
	return services
}

// extractContactInfo returns the first email address and the first
// NANP-style phone number found in the text, formatted as a semicolon-joined
// string. Empty if neither is present.
func extractContactInfo(text string) string {
	var parts []string
	if email := emailRe.FindString(text); email != "" {
		parts = append(parts, "Email: "+email)
	}
	if phone := phoneRe.FindString(text); phone != "" {
		parts = append(parts, "Phone: "+phone)
	}
	return strings.Join(parts, "; ")
}

// extractEligibility returns up to the first two sentences that contain both
// an eligibility indicator and a condition indicator, joined with ". ".
func extractEligibility(sentences []string) string {
	var qualifying []string
	for _, sentence := range sentences {
		lower := strings.ToLower(sentence)
		if containsAny(lower, EligibilityTerms) && containsAny(lower, EligibilityConditionTerms) {
			qualifying = append(qualifying, strings.TrimSpace(sentence))
			if len(qualifying) == 2 {
				break
			}
		}
	}
	return strings.Join(qualifying, ". ")
}

// extractFundingSource returns the first sentence containing a funding
// indicator, or empty if none.
func extractFundingSource(sentences []string) string {
	for _, sentence := range sentences {
		if containsAny(strings.ToLower(sentence), FundingTerms) {
			return strings.TrimSpace(sentence)
		}
	}
	return ""
}

// titleCase uppercases the first letter of each space-separated word.
// strings.Title is deprecated and the inputs here are plain ASCII state
// names.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
