package configcache

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"time"

	"chestAnalyzer/pkg/logger"
)

// ---- Collaborator interfaces ----

// DistributedCache is the shared cache tier, typically Redis. All errors
// are treated as a miss by the resolver.
type DistributedCache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// OriginSource is the authoritative config service. found=false and
// transport errors are both resolved to "absent" by the resolver.
type OriginSource interface {
	Fetch(ctx context.Context, key string) ([]byte, bool, error)
}

type entry struct {
	value    []byte
	storedAt time.Time
}

// Resolver is the tiered config lookup: in-process map, distributed cache,
// then origin, each tier populating the ones above it on a hit. It never
// returns an error for a missing or unreachable origin; callers apply
// their own fallback defaults on an absent value.
type Resolver struct {
	mu    sync.RWMutex
	local map[string]entry

	ttl    time.Duration
	dist   DistributedCache
	origin OriginSource

	now func() time.Time
}

const DefaultTTL = 300 * time.Second

// NewResolver builds a resolver. dist may be nil when no distributed cache
// is available; the resolver then runs on the in-process tier alone.
func NewResolver(origin OriginSource, dist DistributedCache, ttl time.Duration) *Resolver {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Resolver{
		local:  make(map[string]entry),
		ttl:    ttl,
		dist:   dist,
		origin: origin,
		now:    time.Now,
	}
}

// Get resolves key through the cache tiers. The second return reports
// whether a value was found anywhere.
func (r *Resolver) Get(ctx context.Context, key string) ([]byte, bool) {
	if v, ok := r.getLocal(key); ok {
		ConfigCacheHitsTotal.WithLabelValues("local").Inc()
		return v, true
	}

	if r.dist != nil {
		v, ok, err := r.dist.Get(ctx, key)
		if err != nil {
			logger.Warn("distributed cache read failed", "key", key, "error", err)
		} else if ok {
			ConfigCacheHitsTotal.WithLabelValues("distributed").Inc()
			r.setLocal(key, v)
			return v, true
		}
	}

	ConfigCacheMissesTotal.Inc()

	v, ok, err := r.origin.Fetch(ctx, key)
	if err != nil {
		if isTimeout(err) {
			ConfigOriginTimeoutsTotal.Inc()
			logger.Warn("config origin timed out", "key", key, "error", err)
		} else {
			logger.Warn("config origin fetch failed", "key", key, "error", err)
		}
		return nil, false
	}
	if !ok {
		return nil, false
	}

	r.setLocal(key, v)
	if r.dist != nil {
		if err := r.dist.Set(ctx, key, v, r.ttl); err != nil {
			logger.Warn("distributed cache write failed", "key", key, "error", err)
		}
	}

	return v, true
}

// GetJSON resolves key and unmarshals the value into dest. A value that
// exists but fails to decode counts as absent.
func (r *Resolver) GetJSON(ctx context.Context, key string, dest any) bool {
	v, ok := r.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal(v, dest); err != nil {
		logger.Warn("config value decode failed", "key", key, "error", err)
		return false
	}
	return true
}

// Invalidate drops a single key from both cache tiers.
func (r *Resolver) Invalidate(ctx context.Context, key string) {
	r.mu.Lock()
	delete(r.local, key)
	r.mu.Unlock()

	if r.dist != nil {
		if err := r.dist.Delete(ctx, key); err != nil {
			logger.Warn("distributed cache delete failed", "key", key, "error", err)
		}
	}
}

// Clear drops every in-process entry and, best effort, the distributed
// entries. In-flight lookups that already passed the cache check are not
// affected.
func (r *Resolver) Clear(ctx context.Context) {
	r.mu.Lock()
	r.local = make(map[string]entry)
	r.mu.Unlock()

	if r.dist != nil {
		if err := r.dist.Clear(ctx); err != nil {
			logger.Warn("distributed cache clear failed", "error", err)
		}
	}
}

func (r *Resolver) getLocal(key string) ([]byte, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.local[key]
	if !ok {
		return nil, false
	}
	if r.now().Sub(e.storedAt) >= r.ttl {
		return nil, false
	}
	return e.value, true
}

func (r *Resolver) setLocal(key string, value []byte) {
	r.mu.Lock()
	r.local[key] = entry{value: value, storedAt: r.now()}
	r.mu.Unlock()
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
