// Package localcache puts a bounded in-process cache in front of the shared
// remote cache, so hot keys are served without a network round trip.
package localcache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/karlseguin/ccache/v3"

	"japan_hotel_booking/internal/adapters/observability"
	"japan_hotel_booking/internal/domain"
)

type Tiered struct {
	local    *ccache.Cache[[]byte]
	remote   domain.Cache // optional
	localTTL time.Duration
}

// New builds a two-level cache. remote may be nil for a process-local cache.
// Local entries never outlive localTTL, so invalidations issued by another
// process are picked up within that window.
func New(size int, localTTL time.Duration, remote domain.Cache) *Tiered {
	if size <= 0 {
		size = 1000
	}
	if localTTL <= 0 {
		localTTL = time.Minute
	}
	return &Tiered{
		local:    ccache.New(ccache.Configure[[]byte]().MaxSize(int64(size))),
		remote:   remote,
		localTTL: localTTL,
	}
}

func (t *Tiered) Get(ctx context.Context, key string, dst any) (bool, error) {
	if it := t.local.Get(key); it != nil && !it.Expired() {
		observability.ObserveCache("local", "hit")
		return true, json.Unmarshal(it.Value(), dst)
	}
	observability.ObserveCache("local", "miss")
	if t.remote == nil {
		return false, nil
	}
	ok, err := t.remote.Get(ctx, key, dst)
	if err != nil || !ok {
		return ok, err
	}
	// promote to the local tier
	if b, err := json.Marshal(dst); err == nil {
		t.local.Set(key, b, t.localTTL)
	}
	return true, nil
}

func (t *Tiered) Set(ctx context.Context, key string, v any, ttlSec int) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	ttl := t.localTTL
	if d := time.Duration(ttlSec) * time.Second; d > 0 && d < ttl {
		ttl = d
	}
	t.local.Set(key, b, ttl)
	observability.ObserveCache("local", "set")
	if t.remote == nil {
		return nil
	}
	return t.remote.Set(ctx, key, v, ttlSec)
}

func (t *Tiered) Del(ctx context.Context, key string) error {
	t.local.Delete(key)
	observability.ObserveCache("local", "del")
	if t.remote == nil {
		return nil
	}
	return t.remote.Del(ctx, key)
}

// Stop releases the local cache's background worker.
func (t *Tiered) Stop() { t.local.Stop() }
