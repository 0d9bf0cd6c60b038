package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
	perr "github.com/khizar-anjum/courtlistener-mcp/internal/platform/errors"
)

// fakeProvider counts acquisitions and can be flipped into failure
type fakeProvider struct {
	mu      sync.Mutex
	calls   int
	records []courtdir.Record
	err     error
	delay   time.Duration
}

func (p *fakeProvider) FetchAll(context.Context) ([]courtdir.Record, error) {
	p.mu.Lock()
	p.calls++
	records, err, delay := p.records, p.err, p.delay
	p.mu.Unlock()
	if delay > 0 {
		time.Sleep(delay)
	}
	return records, err
}

func (p *fakeProvider) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func (p *fakeProvider) fail(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

func someRecords() []courtdir.Record {
	return []courtdir.Record{
		{ID: "scotus", FullName: "Supreme Court of the United States", Category: courtdir.CategoryFederal},
		{ID: "cal", FullName: "Supreme Court of California", Category: courtdir.CategoryState},
	}
}

func TestCache_ServesCachedWhileFresh(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{records: someRecords()}
	c := NewCache(p, time.Hour)

	a, err := c.Directory(context.Background())
	if err != nil {
		t.Fatalf("first Directory: %v", err)
	}
	b, err := c.Directory(context.Background())
	if err != nil {
		t.Fatalf("second Directory: %v", err)
	}
	if a != b {
		t.Fatalf("fresh cache returned a different directory")
	}
	if got := p.callCount(); got != 1 {
		t.Fatalf("provider called %d times, want 1", got)
	}
}

func TestCache_RefreshesAfterExpiry(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{records: someRecords()}
	c := NewCache(p, time.Hour)

	clock := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var clockMu sync.Mutex
	c.now = func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return clock
	}

	a, err := c.Directory(context.Background())
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}

	clockMu.Lock()
	clock = clock.Add(2 * time.Hour)
	clockMu.Unlock()

	b, err := c.Directory(context.Background())
	if err != nil {
		t.Fatalf("Directory after expiry: %v", err)
	}
	if a == b {
		t.Fatalf("expired cache served the old directory")
	}
	if got := p.callCount(); got != 2 {
		t.Fatalf("provider called %d times, want 2", got)
	}
}

func TestCache_KeepsStaleOnRefreshFailure(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{records: someRecords()}
	c := NewCache(p, time.Hour)

	clock := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	var clockMu sync.Mutex
	c.now = func() time.Time {
		clockMu.Lock()
		defer clockMu.Unlock()
		return clock
	}

	a, err := c.Directory(context.Background())
	if err != nil {
		t.Fatalf("Directory: %v", err)
	}

	clockMu.Lock()
	clock = clock.Add(2 * time.Hour)
	clockMu.Unlock()
	p.fail(errors.New("upstream down"))

	b, err := c.Directory(context.Background())
	if err != nil {
		t.Fatalf("Directory with failing provider: %v", err)
	}
	if b != a {
		t.Fatalf("stale snapshot not retained across refresh failure")
	}
}

func TestCache_FirstAcquisitionFailureIsUnavailable(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{err: errors.New("boom")}
	c := NewCache(p, time.Hour)

	_, err := c.Directory(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want Unavailable, got %v", err)
	}
}

func TestCache_ZeroRecordsIsUnavailable(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{}
	c := NewCache(p, time.Hour)

	_, err := c.Directory(context.Background())
	if !perr.IsCode(err, perr.ErrorCodeUnavailable) {
		t.Fatalf("want Unavailable, got %v", err)
	}
}

func TestCache_ConcurrentCallersShareOneAcquisition(t *testing.T) {
	t.Parallel()

	p := &fakeProvider{records: someRecords(), delay: 50 * time.Millisecond}
	c := NewCache(p, time.Hour)

	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = c.Directory(context.Background())
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("caller %d: %v", i, err)
		}
	}
	if got := p.callCount(); got != 1 {
		t.Fatalf("provider called %d times, want 1", got)
	}
}
