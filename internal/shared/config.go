package shared

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv         string
	LogLevel       string
	HTTPAddr       string
	MetricsAddr    string
	StoreBackend   string // mysql|redis
	MySQLDSN       string
	RedisAddr      string
	RedisDB        int
	RedisPass      string
	CacheTTL       time.Duration
	LocalCacheSize int
	FeedURL        string
	FeedKey        string
	FeedRPS        int
	SeedReviews    bool
	SeedWorkers    int
	CORSOrigins    []string
}

func Load() Config {
	// a missing .env is normal outside local development
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env")
	}

	atoi := func(k string, def int) int {
		if v := os.Getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:         env("APP_ENV", "prod"),
		LogLevel:       env("LOG_LEVEL", "info"),
		HTTPAddr:       env("HTTP_ADDR", ":8080"),
		MetricsAddr:    env("METRICS_ADDR", ""),
		StoreBackend:   strings.ToLower(env("STORE_BACKEND", "mysql")),
		MySQLDSN:       env("MYSQL_DSN", "root:root@tcp(localhost:3306)/storefront?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:      env("REDIS_ADDR", "localhost:6379"),
		RedisDB:        atoi("REDIS_DB", 0),
		RedisPass:      env("REDIS_PASSWORD", ""),
		CacheTTL:       time.Duration(atoi("CACHE_TTL_SECONDS", 900)) * time.Second,
		LocalCacheSize: atoi("LOCAL_CACHE_SIZE", 1000),
		FeedURL:        env("CATALOG_FEED_URL", ""),
		FeedKey:        env("CATALOG_FEED_KEY", ""),
		FeedRPS:        atoi("CATALOG_FEED_RPS", 5),
		SeedReviews:    envBool("SEED_REVIEWS", true),
		SeedWorkers:    atoi("SEED_WORKERS", 4),
		CORSOrigins:    envList("CORS_ORIGINS", []string{"*"}),
	}
	if c.StoreBackend != "mysql" && c.StoreBackend != "redis" {
		log.Warn().Str("backend", c.StoreBackend).Msg("unknown STORE_BACKEND, using mysql")
		c.StoreBackend = "mysql"
	}
	if c.FeedURL != "" && c.FeedKey == "" {
		log.Warn().Msg("CATALOG_FEED_KEY is empty")
	}
	return c
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envBool(k string, def bool) bool {
	if v := os.Getenv(k); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envList(k string, def []string) []string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	var out []string
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
