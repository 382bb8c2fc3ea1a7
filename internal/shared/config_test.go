package shared

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"STORE_BACKEND", "CACHE_TTL_SECONDS", "SEED_REVIEWS", "CORS_ORIGINS", "REDIS_DB"} {
		t.Setenv(k, "")
	}
	c := Load()
	if c.StoreBackend != "mysql" {
		t.Fatalf("backend: %q", c.StoreBackend)
	}
	if c.CacheTTL != 15*time.Minute {
		t.Fatalf("ttl: %v", c.CacheTTL)
	}
	if !c.SeedReviews {
		t.Fatalf("seed reviews should default to true")
	}
	if len(c.CORSOrigins) != 1 || c.CORSOrigins[0] != "*" {
		t.Fatalf("cors: %v", c.CORSOrigins)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("STORE_BACKEND", "Redis")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("SEED_REVIEWS", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example ,")
	t.Setenv("REDIS_DB", "nope")

	c := Load()
	if c.StoreBackend != "redis" {
		t.Fatalf("backend: %q", c.StoreBackend)
	}
	if c.CacheTTL != time.Minute {
		t.Fatalf("ttl: %v", c.CacheTTL)
	}
	if c.SeedReviews {
		t.Fatalf("seed reviews should be off")
	}
	if len(c.CORSOrigins) != 2 || c.CORSOrigins[1] != "https://b.example" {
		t.Fatalf("cors: %v", c.CORSOrigins)
	}
	if c.RedisDB != 0 {
		t.Fatalf("bad int should fall back to default, got %d", c.RedisDB)
	}
}

func TestLoad_UnknownBackendFallsBack(t *testing.T) {
	t.Setenv("STORE_BACKEND", "sqlite")
	if c := Load(); c.StoreBackend != "mysql" {
		t.Fatalf("backend: %q", c.StoreBackend)
	}
}
