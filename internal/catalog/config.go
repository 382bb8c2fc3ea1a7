package catalog

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"japan_hotel_booking/internal/adapters/catalogfeed"
	"japan_hotel_booking/internal/domain"
	"japan_hotel_booking/internal/shared"
)

const feedTimeout = 30 * time.Second

// FromConfig reads the partner feed when one is configured, falling back to
// the built-in hotels on any failure.
func FromConfig(ctx context.Context, cfg shared.Config) domain.Catalog {
	if cfg.FeedURL == "" {
		return Default()
	}
	client, err := catalogfeed.New(cfg.FeedURL, cfg.FeedKey, cfg.FeedRPS)
	if err != nil {
		log.Warn().Err(err).Msg("catalog feed disabled")
		return Default()
	}
	fctx, cancel := context.WithTimeout(ctx, feedTimeout)
	defer cancel()

	cat, err := Load(fctx, client)
	if err != nil {
		log.Warn().Err(err).Str("url", cfg.FeedURL).Msg("catalog feed unusable, using built-in catalog")
		return Default()
	}
	log.Info().Int("hotels", len(cat.Hotels())).Msg("catalog loaded from feed")
	return cat
}
