package rules

import "strings"

// Term tables driving the relevance rubric and field extraction. Keeping
// them as data means the rubric can be tuned without touching control flow.

// ConditionTerms identify the disorder the crawl targets.
var ConditionTerms = []string{
	"autism", "autistic", "asd", "asperger", "developmental disability",
}

// EmploymentTerms identify employment-domain content.
var EmploymentTerms = []string{
	"employment", "job", "work", "career", "vocational", "workplace",
	"hiring", "training", "placement", "supported employment",
}

// GovernmentTerms identify governmental or organizational pages. They are
// tested against page text and the URL.
var GovernmentTerms = []string{
	"state", "government", "department", "division", "agency",
	"public", "gov", ".gov", "rehabilitation", "services",
}

// ProgramTerms identify program or service descriptions.
var ProgramTerms = []string{
	"program", "service", "initiative", "support", "assistance",
	"help", "resource", "opportunity",
}

// ServiceKeywords are the services recognized by the field extractor,
// reported in this order.
var ServiceKeywords = []string{
	"job training", "employment support", "vocational rehabilitation",
	"career counseling", "job placement", "supported employment",
	"workplace accommodation", "job coaching", "skills training",
	"internship", "apprenticeship", "transition services",
}

// EligibilityTerms mark sentences that describe eligibility criteria.
var EligibilityTerms = []string{
	"eligible", "qualification", "requirement", "criteria",
}

// EligibilityConditionTerms must co-occur with an eligibility term for a
// sentence to qualify as eligibility text.
var EligibilityConditionTerms = []string{
	"autism", "disability", "developmental",
}

// FundingTerms mark sentences that describe a funding source.
var FundingTerms = []string{
	"funded by", "grant", "federal", "state funding", "department of",
}

// StateNames lists the US states in lowercase.
var StateNames = []string{
	"alabama", "alaska", "arizona", "arkansas", "california", "colorado",
	"connecticut", "delaware", "florida", "georgia", "hawaii", "idaho",
	"illinois", "indiana", "iowa", "kansas", "kentucky", "louisiana",
	"maine", "maryland", "massachusetts", "michigan", "minnesota",
	"mississippi", "missouri", "montana", "nebraska", "nevada",
	"new hampshire", "new jersey", "new mexico", "new york",
	"north carolina", "north dakota", "ohio", "oklahoma", "oregon",
	"pennsylvania", "rhode island", "south carolina", "south dakota",
	"tennessee", "texas", "utah", "vermont", "virginia", "washington",
	"west virginia", "wisconsin", "wyoming",
}

// StateAbbrevs lists the two-letter postal abbreviations, index-aligned with
// StateNames.
var StateAbbrevs = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO",
	"CT", "DE", "FL", "GA", "HI", "ID",
	"IL", "IN", "IA", "KS", "KY", "LA",
	"ME", "MD", "MA", "MI", "MN",
	"MS", "MO", "MT", "NE", "NV",
	"NH", "NJ", "NM", "NY",
	"NC", "ND", "OH", "OK", "OR",
	"PA", "RI", "SC", "SD",
	"TN", "TX", "UT", "VT", "VA", "WA",
	"WV", "WI", "WY",
}

// stateNameByAbbrev maps lowercase abbreviations to their full state name.
var stateNameByAbbrev = func() map[string]string {
	m := make(map[string]string, len(StateAbbrevs))
	for i, ab := range StateAbbrevs {
		m[strings.ToLower(ab)] = StateNames[i]
	}
	return m
}()
