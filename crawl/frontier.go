package crawl

import (
	"sync"

	"github.com/fwojciec/progcrawl"
)

// Compile-time interface verification.
var _ progcrawl.Frontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with an exact-match visited set.
// URLs are compared as raw strings, without normalization, so the visited
// set is authoritative: a URL is processed at most once per session.
//
// The queue growth cap bounds visited+pending at 2×maxPages to prevent
// memory blow-up from high-fan-out pages.
type Frontier struct {
	mu       sync.Mutex
	queue    []progcrawl.CrawlTask
	visited  map[string]struct{}
	maxPages int
}

// NewFrontier creates a Frontier with the given page budget.
func NewFrontier(maxPages int) *Frontier {
	return &Frontier{
		visited:  make(map[string]struct{}),
		maxPages: maxPages,
	}
}

// Push adds a task to the pending queue.
// Returns false if the URL has already been visited or if accepting the task
// would push visited+pending past 2×maxPages.
func (f *Frontier) Push(task progcrawl.CrawlTask) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.visited[task.URL]; ok {
		return false
	}
	if len(f.visited)+len(f.queue) >= f.maxPages*2 {
		return false
	}
	f.queue = append(f.queue, task)
	return true
}

// Pop returns the next task in FIFO order.
// The bool result is false if the queue is empty.
func (f *Frontier) Pop() (progcrawl.CrawlTask, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return progcrawl.CrawlTask{}, false
	}
	task := f.queue[0]
	f.queue = f.queue[1:]
	return task, true
}

// Visit marks a URL as visited.
// Returns false if the URL was already visited.
func (f *Frontier) Visit(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.visited[url]; ok {
		return false
	}
	f.visited[url] = struct{}{}
	return true
}

// Visited returns true if the URL has been visited.
func (f *Frontier) Visited(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	_, ok := f.visited[url]
	return ok
}

// Len returns the number of pending tasks.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// VisitedCount returns the number of visited URLs.
func (f *Frontier) VisitedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.visited)
}
