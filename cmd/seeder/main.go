package main

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"japan_hotel_booking/internal/adapters/observability"
	redisad "japan_hotel_booking/internal/adapters/redis"
	"japan_hotel_booking/internal/app"
	"japan_hotel_booking/internal/catalog"
	"japan_hotel_booking/internal/domain"
	"japan_hotel_booking/internal/shared"
	mysqlstore "japan_hotel_booking/internal/storage/mysql"
)

// seeder writes the initial reviews and warms the per-hotel stats cache.
func main() {
	ctx := context.Background()
	cfg := shared.Load()

	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	log.Info().
		Str("backend", cfg.StoreBackend).
		Int("workers", cfg.SeedWorkers).
		Msg("seeder starting")

	cache := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	var store domain.Store
	if cfg.StoreBackend == "redis" {
		store = redisad.NewStore(cache.Client())
	} else {
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			log.Fatal().Err(err).Msg("sql.Open failed")
		}
		if err := db.Ping(); err != nil {
			log.Fatal().Err(err).Msg("db.Ping failed")
		}
		log.Info().Msg("db ping ok")
		store = mysqlstore.New(db)
	}

	cat := catalog.FromConfig(ctx, cfg)

	reviews := app.NewReviewService(store, cat, cache)
	written, err := reviews.SeedReviews(ctx, shared.SeedReviews())
	if err != nil {
		log.Fatal().Err(err).Msg("seeding reviews failed")
	}
	log.Info().Bool("written", written).Msg("reviews seeded")

	q := app.NewQueryService(cat, store, cache, cfg.CacheTTL, reviews)
	workers := cfg.SeedWorkers
	if workers < 1 {
		workers = 1
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, h := range cat.Hotels() {
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			log.Fatal().Err(err).Msg("semaphore acquire failed")
		}

		wg.Add(1)
		go func(hotelID string) {
			defer wg.Done()
			defer sem.Release(1)

			st, err := q.HotelStats(ctx, hotelID)
			if err != nil {
				log.Warn().Str("id", hotelID).Err(err).Msg("warm stats failed")
				return
			}
			log.Info().Str("id", hotelID).Int("reviews", st.TotalReviews).Msg("stats warmed")
		}(h.ID)
	}
	wg.Wait()

	q.SearchHotels(ctx, nil)
	log.Info().Msg("seeding completed")
}
