package progcrawl

import "context"

// CrawlTask is a unit of crawl work: a URL and the link-following depth at
// which it was discovered. Tasks are created once and never mutated.
type CrawlTask struct {
	URL   string
	Depth int
}

// Frontier manages the crawl queue and the visited set. It is consumed by a
// single crawl loop; Pop order is FIFO so traversal is breadth-first by
// discovery order.
type Frontier interface {
	// Push adds a task to the pending queue.
	// Returns false if the URL has already been seen or the queue growth
	// cap would be exceeded.
	Push(task CrawlTask) bool

	// Pop returns the next task in FIFO order.
	// Returns false if the queue is empty.
	Pop() (CrawlTask, bool)

	// Visit marks a URL as visited.
	// Returns false if the URL was already visited.
	Visit(url string) bool

	// Visited returns true if the URL has been visited.
	Visited(url string) bool

	// Len returns the number of pending tasks.
	Len() int

	// VisitedCount returns the number of visited URLs.
	VisitedCount() int
}

// RateLimiter bounds the crawl's request rate against all targets
// collectively.
type RateLimiter interface {
	// Wait blocks until the rate limit allows the next request.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context) error
}
