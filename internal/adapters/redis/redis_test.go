package redisad_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"

	redisad "japan_hotel_booking/internal/adapters/redis"
	"japan_hotel_booking/internal/domain"
)

func newCache(t *testing.T) (*miniredis.Miniredis, *redisad.Cache) {
	t.Helper()
	mr := miniredis.RunT(t)
	c := redisad.New(mr.Addr(), "", 0)
	t.Cleanup(func() { _ = c.Client().Close() })
	return mr, c
}

func TestCache_SetGetDel(t *testing.T) {
	mr, c := newCache(t)
	ctx := context.Background()

	var got domain.ReviewStats
	ok, err := c.Get(ctx, "stats:1", &got)
	if err != nil || ok {
		t.Fatalf("expected miss, got ok=%v err=%v", ok, err)
	}

	want := domain.ReviewStats{AverageRating: 4.5, TotalReviews: 2, Distribution: domain.RatingDistribution{0, 0, 0, 1, 1}}
	if err := c.Set(ctx, "stats:1", want, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if ttl := mr.TTL("stats:1"); ttl != time.Minute {
		t.Fatalf("ttl: %v", ttl)
	}
	ok, err = c.Get(ctx, "stats:1", &got)
	if err != nil || !ok {
		t.Fatalf("expected hit, got ok=%v err=%v", ok, err)
	}
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}

	if err := c.Del(ctx, "stats:1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if mr.Exists("stats:1") {
		t.Fatalf("key should be gone")
	}
}

func TestCache_Expires(t *testing.T) {
	mr, c := newCache(t)
	ctx := context.Background()
	if err := c.Set(ctx, "k", "v", 1); err != nil {
		t.Fatalf("set: %v", err)
	}
	mr.FastForward(2 * time.Second)
	var s string
	if ok, _ := c.Get(ctx, "k", &s); ok {
		t.Fatalf("expected expiry")
	}
}

func TestStore_RoundTripWithoutExpiry(t *testing.T) {
	mr, c := newCache(t)
	st := redisad.NewStore(c.Client())
	ctx := context.Background()

	var ids []string
	ok, err := st.Get(ctx, domain.KeyFavorites+":guest", &ids)
	if err != nil || ok {
		t.Fatalf("expected empty store, got ok=%v err=%v", ok, err)
	}

	if err := st.Set(ctx, domain.KeyFavorites+":guest", []string{"1", "6"}); err != nil {
		t.Fatalf("set: %v", err)
	}
	if !mr.Exists("kv:favorite-hotels:guest") {
		t.Fatalf("expected namespaced key")
	}
	if ttl := mr.TTL("kv:favorite-hotels:guest"); ttl != 0 {
		t.Fatalf("store keys must not expire, ttl=%v", ttl)
	}

	ok, err = st.Get(ctx, domain.KeyFavorites+":guest", &ids)
	if err != nil || !ok {
		t.Fatalf("get: ok=%v err=%v", ok, err)
	}
	if len(ids) != 2 || ids[0] != "1" || ids[1] != "6" {
		t.Fatalf("unexpected ids: %v", ids)
	}
}

func TestStore_CorruptValue(t *testing.T) {
	mr, c := newCache(t)
	st := redisad.NewStore(c.Client())
	if err := mr.Set("kv:hotel-reviews", "{not json"); err != nil {
		t.Fatalf("seed: %v", err)
	}
	var rs []domain.Review
	if _, err := st.Get(context.Background(), domain.KeyReviews, &rs); err == nil {
		t.Fatalf("expected decode error")
	}
}
