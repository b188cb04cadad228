package main

// DefaultSeeds is the built-in seed list: federal resources that link to
// state programs, autism organizations with state directories, vocational
// rehabilitation directories, and a few high-population state agencies.
var DefaultSeeds = []string{
	// Federal resources that link to state programs
	"https://www.dol.gov/agencies/odep/",
	"https://www.acl.gov/programs/aging-and-disability-networks/state-disability",
	"https://www.ed.gov/about/offices/list/osers/rsa/",

	// Autism organizations with state program directories
	"https://www.autismspeaks.org/state-autism-profiles",
	"https://www.autism-society.org/living-with-autism/",

	// Vocational rehabilitation state directories
	"https://www.csavr.org/content/members",
	"https://www.nchrtm.org/",

	// Developmental disabilities councils
	"https://nacdd.org/",
	"https://www.aucd.org/",

	// Employment focused
	"https://www.thinkwork.org/",
	"https://www.apse.org/",

	// Specific high-population state examples
	"https://www.dor.ca.gov/",      // California
	"https://www.twc.texas.gov/",   // Texas
	"https://www.acces.nysed.gov/vr/", // New York
	"https://www.fldoe.org/academics/career-adult-edu/vocational-rehabilitation/", // Florida
}
