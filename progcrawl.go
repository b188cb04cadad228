// Package progcrawl provides a focused web crawler that discovers US state
// government and nonprofit employment-program pages for people with autism.
// Starting from a seed list it follows links breadth-first, respects
// robots.txt, classifies pages against a keyword rubric, and extracts
// structured program records.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/) or their role
// (crawl/, rules/).
package progcrawl
