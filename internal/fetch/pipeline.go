package fetch

import (
	"context"
	"sync"

	"github.com/kozaktomas/card-press/internal/progress"
)

// Pipeline dispatches resource downloads across a bounded worker pool.
type Pipeline struct {
	fetcher Fetcher
	workers int
}

// NewPipeline creates an acquisition pipeline. Worker count defaults to 1
// when a non-positive value is given.
func NewPipeline(fetcher Fetcher, workers int) *Pipeline {
	if workers <= 0 {
		workers = 1
	}
	return &Pipeline{
		fetcher: fetcher,
		workers: workers,
	}
}

// ResultSet holds the outcome of an acquisition run. All accessors take
// the lock so conditioning workers can update entries concurrently.
type ResultSet struct {
	mu    sync.Mutex
	paths map[string]string
	errs  map[string]error
}

// Path returns the local artifact path for a resource, or "" if its fetch
// failed or the id was never dispatched.
func (r *ResultSet) Path(resourceID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.paths[resourceID]
}

// SetPath replaces the recorded artifact path for a resource. Conditioning
// uses this to hand the normalized artifact back to the result set.
func (r *ResultSet) SetPath(resourceID, path string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths[resourceID] = path
}

// Err returns the recorded error for a resource, or nil.
func (r *ResultSet) Err(resourceID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.errs[resourceID]
}

// SetErr records a per-resource error. An already-recorded error is kept so
// the first failing stage wins.
func (r *ResultSet) SetErr(resourceID string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.errs[resourceID]; !ok {
		r.errs[resourceID] = err
	}
}

// Failed returns the resource ids that have a recorded error.
func (r *ResultSet) Failed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var ids []string
	for id := range r.errs {
		ids = append(ids, id)
	}
	return ids
}

// Errors returns a copy of the recorded per-resource errors keyed by
// resource id.
func (r *ResultSet) Errors() map[string]error {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]error, len(r.errs))
	for id, err := range r.errs {
		out[id] = err
	}
	return out
}

// Run fetches every distinct resource id using up to the configured number
// of parallel workers. Each id is fetched at most once even when listed
// multiple times. One download tick is emitted per finished item whether it
// succeeded or failed; failures are recorded and do not abort the run. Run
// blocks until all dispatched fetches have completed.
func (p *Pipeline) Run(ctx context.Context, resourceIDs []string, reporter progress.Reporter) *ResultSet {
	results := &ResultSet{
		paths: make(map[string]string),
		errs:  make(map[string]error),
	}

	seen := make(map[string]bool)
	var distinct []string
	for _, id := range resourceIDs {
		if !seen[id] {
			seen[id] = true
			distinct = append(distinct, id)
		}
	}

	semaphore := make(chan struct{}, p.workers)
	var wg sync.WaitGroup

	for _, id := range distinct {
		wg.Add(1)
		go func(resourceID string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			defer reporter.TickDownload()

			if err := ctx.Err(); err != nil {
				results.SetErr(resourceID, &FetchError{ResourceID: resourceID, Err: err})
				return
			}

			path, err := p.fetcher.Fetch(ctx, resourceID)
			if err != nil {
				results.SetErr(resourceID, &FetchError{ResourceID: resourceID, Err: err})
				return
			}
			results.SetPath(resourceID, path)
		}(id)
	}

	wg.Wait()
	return results
}
