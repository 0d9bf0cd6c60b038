// Package service implements the jurisdiction resolver, the suggestion
// engine, and the time-bounded directory cache they share
package service

import (
	"context"
	"sync"
	"time"

	"github.com/khizar-anjum/courtlistener-mcp/internal/core/courtdir"
	perr "github.com/khizar-anjum/courtlistener-mcp/internal/platform/errors"
	"github.com/khizar-anjum/courtlistener-mcp/internal/platform/logger"
	"github.com/khizar-anjum/courtlistener-mcp/internal/services/jurisdiction/domain"

	"golang.org/x/sync/singleflight"
)

// DefaultTTL keeps a built directory for 15 days before re-acquisition
const DefaultTTL = 15 * 24 * time.Hour

// Cache holds at most one built directory plus its expiry. Refreshes are
// coalesced through singleflight so concurrent callers racing past an expired
// snapshot share one acquisition. Snapshot replacement is atomic, readers of
// an older directory keep a valid immutable value
type Cache struct {
	provider domain.ProviderPort
	ttl      time.Duration
	log      logger.Logger

	mu      sync.RWMutex
	dir     *courtdir.Directory
	expires time.Time

	sf  singleflight.Group
	now func() time.Time // seam for tests
}

// NewCache builds a Cache over the given provider; ttl <= 0 uses DefaultTTL
func NewCache(provider domain.ProviderPort, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		provider: provider,
		ttl:      ttl,
		log:      *logger.Named("courtdir_cache"),
		now:      time.Now,
	}
}

// Directory implements domain.CatalogPort. Returns the cached directory while
// fresh; on first use or after expiry it rebuilds from the provider. When a
// rebuild fails and a previous directory exists the stale snapshot is kept
// and served rather than cached-over with an empty one
func (c *Cache) Directory(ctx context.Context) (*courtdir.Directory, error) {
	c.mu.RLock()
	dir, expires := c.dir, c.expires
	c.mu.RUnlock()

	if dir != nil && c.now().Before(expires) {
		return dir, nil
	}

	v, err, _ := c.sf.Do("refresh", func() (any, error) {
		// a waiter may arrive after another flight already refreshed
		c.mu.RLock()
		cur, exp := c.dir, c.expires
		c.mu.RUnlock()
		if cur != nil && c.now().Before(exp) {
			return cur, nil
		}
		return c.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	return v.(*courtdir.Directory), nil
}

// refresh acquires records, builds a fresh directory, and swaps it in
func (c *Cache) refresh(ctx context.Context) (*courtdir.Directory, error) {
	records, err := c.provider.FetchAll(ctx)
	if err == nil && len(records) == 0 {
		err = perr.Unavailablef("court provider returned zero records")
	}
	if err != nil {
		c.mu.RLock()
		stale := c.dir
		c.mu.RUnlock()
		if stale != nil {
			c.log.Warn().Err(err).
				Time("built_at", stale.BuiltAt).
				Msg("directory refresh failed, serving stale snapshot")
			return stale, nil
		}
		return nil, perr.WrapIf(err, perr.ErrorCodeUnavailable, "court directory unavailable")
	}

	dir := courtdir.Build(records)

	c.mu.Lock()
	c.dir = dir
	c.expires = c.now().Add(c.ttl)
	c.mu.Unlock()

	c.log.Info().
		Int("courts", dir.Len()).
		Int("states", len(dir.StateIndex)).
		Dur("ttl", c.ttl).
		Msg("court directory rebuilt")
	return dir, nil
}
