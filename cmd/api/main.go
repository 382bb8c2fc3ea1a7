package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	server "japan_hotel_booking/internal/adapters/http_server"
	"japan_hotel_booking/internal/adapters/localcache"
	"japan_hotel_booking/internal/adapters/observability"
	redisad "japan_hotel_booking/internal/adapters/redis"
	"japan_hotel_booking/internal/app"
	"japan_hotel_booking/internal/catalog"
	"japan_hotel_booking/internal/domain"
	"japan_hotel_booking/internal/shared"
	mysqlstore "japan_hotel_booking/internal/storage/mysql"
)

func main() {
	cfg := shared.Load()

	// set global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reg := observability.InitRegistry()
	observability.Serve(cfg.MetricsAddr, reg)

	// deps
	remote := redisad.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	cache := localcache.New(cfg.LocalCacheSize, 30*time.Second, remote)
	defer cache.Stop()

	store, closeStore := openStore(ctx, cfg, remote)
	defer closeStore()

	cat := catalog.FromConfig(ctx, cfg)

	reviews := app.NewReviewService(store, cat, cache)
	if cfg.SeedReviews {
		seeded, err := reviews.SeedReviews(ctx, shared.SeedReviews())
		if err != nil {
			log.Fatal().Err(err).Msg("seeding reviews failed")
		}
		log.Info().Bool("written", seeded).Msg("review seed checked")
	}

	// http
	srv := server.New(cfg.CORSOrigins)
	srv.Mount("/metrics", observability.MetricsHandler(reg))
	srv.MountHandlers(&server.Handlers{
		Q:         app.NewQueryService(cat, store, cache, cfg.CacheTTL, reviews),
		Reviews:   reviews,
		Bookings:  app.NewBookingService(store, cat),
		Favorites: app.NewFavoritesService(store, cat),
		Prefs:     app.NewPreferencesService(store),
	})

	httpSrv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           srv.Mux(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("addr", cfg.HTTPAddr).Msg("API listening")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("shutting down")
		return httpSrv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Fatal().Err(err).Msg("http server failed")
	}
}

// openStore picks the persistence backend. The returned func releases it.
func openStore(ctx context.Context, cfg shared.Config, remote *redisad.Cache) (domain.Store, func()) {
	if cfg.StoreBackend == "redis" {
		if err := remote.Client().Ping(ctx).Err(); err != nil {
			log.Fatal().Err(err).Msg("redis ping failed")
		}
		log.Info().Str("addr", cfg.RedisAddr).Msg("using redis store")
		return redisad.NewStore(remote.Client()), func() { _ = remote.Client().Close() }
	}

	db, err := sql.Open("mysql", cfg.MySQLDSN)
	if err != nil {
		log.Fatal().Err(err).Msg("sql.Open failed")
	}
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db.Ping failed")
	}
	log.Info().Msg("database connection ok")
	return mysqlstore.New(db), func() { _ = db.Close() }
}
