package fetch

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/kozaktomas/card-press/internal/progress"
)

// fakeFetcher records how often each resource id is fetched and fails ids
// listed in failing.
type fakeFetcher struct {
	mu      sync.Mutex
	calls   map[string]int
	failing map[string]bool
	delay   time.Duration

	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		calls:   make(map[string]int),
		failing: make(map[string]bool),
	}
}

func (f *fakeFetcher) Fetch(ctx context.Context, resourceID string) (string, error) {
	current := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		max := f.maxInFlight.Load()
		if current <= max || f.maxInFlight.CompareAndSwap(max, current) {
			break
		}
	}

	if f.delay > 0 {
		time.Sleep(f.delay)
	}

	f.mu.Lock()
	f.calls[resourceID]++
	f.mu.Unlock()

	if f.failing[resourceID] {
		return "", errors.New("boom")
	}
	return "/tmp/" + resourceID + ".jpg", nil
}

// countingReporter counts ticks; safe for concurrent use.
type countingReporter struct {
	downloads atomic.Int32
	processes atomic.Int32
}

func (c *countingReporter) SetState(progress.State) {}
func (c *countingReporter) TickDownload()           { c.downloads.Add(1) }
func (c *countingReporter) TickProcess()            { c.processes.Add(1) }

func TestPipeline_FetchesEachResourceOnce(t *testing.T) {
	fetcher := newFakeFetcher()
	reporter := &countingReporter{}

	// shared-back referenced by many slots appears multiple times.
	ids := []string{"f0", "shared-back", "f1", "shared-back", "f2", "shared-back"}

	results := NewPipeline(fetcher, 3).Run(context.Background(), ids, reporter)

	for _, id := range []string{"f0", "f1", "f2", "shared-back"} {
		if fetcher.calls[id] != 1 {
			t.Errorf("resource %s fetched %d times, expected 1", id, fetcher.calls[id])
		}
		if results.Path(id) == "" {
			t.Errorf("resource %s has no recorded path", id)
		}
	}

	if got := reporter.downloads.Load(); got != 4 {
		t.Errorf("expected 4 download ticks, got %d", got)
	}
}

func TestPipeline_SharedResourceSamePath(t *testing.T) {
	fetcher := newFakeFetcher()
	results := NewPipeline(fetcher, 2).Run(context.Background(), []string{"shared", "shared"}, progress.Noop{})

	if results.Path("shared") != "/tmp/shared.jpg" {
		t.Errorf("unexpected path %s", results.Path("shared"))
	}
}

func TestPipeline_RecordsFailuresWithoutAborting(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.failing["bad"] = true
	reporter := &countingReporter{}

	results := NewPipeline(fetcher, 2).Run(context.Background(), []string{"good", "bad", "other"}, reporter)

	var fetchErr *FetchError
	if !errors.As(results.Err("bad"), &fetchErr) {
		t.Fatalf("expected FetchError for bad, got %v", results.Err("bad"))
	}
	if fetchErr.ResourceID != "bad" {
		t.Errorf("expected resource id 'bad', got '%s'", fetchErr.ResourceID)
	}

	if results.Err("good") != nil || results.Err("other") != nil {
		t.Error("sibling fetches should not be affected by one failure")
	}
	if results.Path("good") == "" || results.Path("other") == "" {
		t.Error("sibling fetches should record paths")
	}

	// Failures still advance visible progress.
	if got := reporter.downloads.Load(); got != 3 {
		t.Errorf("expected 3 download ticks, got %d", got)
	}

	failed := results.Failed()
	if len(failed) != 1 || failed[0] != "bad" {
		t.Errorf("expected failed [bad], got %v", failed)
	}
}

func TestPipeline_BoundedConcurrency(t *testing.T) {
	fetcher := newFakeFetcher()
	fetcher.delay = 10 * time.Millisecond

	var ids []string
	for i := 0; i < 20; i++ {
		ids = append(ids, fmt.Sprintf("res-%d", i))
	}

	const workers = 3
	NewPipeline(fetcher, workers).Run(context.Background(), ids, progress.Noop{})

	if max := fetcher.maxInFlight.Load(); max > workers {
		t.Errorf("observed %d concurrent fetches, worker bound is %d", max, workers)
	}
}

func TestPipeline_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	fetcher := newFakeFetcher()
	results := NewPipeline(fetcher, 2).Run(ctx, []string{"a", "b"}, progress.Noop{})

	for _, id := range []string{"a", "b"} {
		if results.Err(id) == nil {
			t.Errorf("expected error for %s after cancellation", id)
		}
	}
}

func TestResultSet_FirstErrorWins(t *testing.T) {
	rs := &ResultSet{
		paths: make(map[string]string),
		errs:  make(map[string]error),
	}

	first := errors.New("first")
	rs.SetErr("id", first)
	rs.SetErr("id", errors.New("second"))

	if !errors.Is(rs.Err("id"), first) {
		t.Errorf("expected first recorded error to win, got %v", rs.Err("id"))
	}
}
