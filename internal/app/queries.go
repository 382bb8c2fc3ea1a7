package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"japan_hotel_booking/internal/domain"
)

type QueryService struct {
	catalog  domain.Catalog
	store    domain.Store
	cache    domain.Cache
	cacheTTL time.Duration
	reviews  *ReviewService
}

// NewQueryService builds the read side. reviews is the writer sharing st and
// c; stats fills are ordered against its writes. It may be nil when nothing
// writes reviews.
func NewQueryService(cat domain.Catalog, st domain.Store, c domain.Cache, ttl time.Duration, reviews *ReviewService) *QueryService {
	return &QueryService{catalog: cat, store: st, cache: c, cacheTTL: ttl, reviews: reviews}
}

// SearchHotels filters the catalog. Results are memoised per criteria; the
// catalog never changes while the process runs.
func (s *QueryService) SearchHotels(ctx context.Context, criteria *domain.SearchFilters) []domain.Hotel {
	key := searchKey(criteria)
	var out []domain.Hotel
	if s.cacheGet(ctx, key, &out) {
		return out
	}
	out = FilterHotels(s.catalog.Hotels(), criteria)
	s.cacheSet(ctx, key, out)
	return out
}

func (s *QueryService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	h, ok := s.catalog.Hotel(id)
	if !ok {
		return domain.Hotel{}, fmt.Errorf("hotel %q: %w", id, domain.ErrNotFound)
	}
	return h, nil
}

func (s *QueryService) HotelStats(ctx context.Context, hotelID string) (domain.ReviewStats, error) {
	if _, ok := s.catalog.Hotel(hotelID); !ok {
		return domain.ReviewStats{}, fmt.Errorf("hotel %q: %w", hotelID, domain.ErrNotFound)
	}
	key := statsKey(hotelID)
	var st domain.ReviewStats
	if s.cacheGet(ctx, key, &st) {
		return st, nil
	}
	unlock := s.reviews.readLock()
	defer unlock()
	all, err := loadReviews(ctx, s.store)
	if err != nil {
		return domain.ReviewStats{}, err
	}
	st = Statistics(all, hotelID)
	s.cacheSet(ctx, key, st)
	return st, nil
}

// HotelReviews returns the statistics of a hotel together with its reviews
// narrowed by filterBy and ordered by sortBy.
func (s *QueryService) HotelReviews(ctx context.Context, hotelID string, sortBy domain.ReviewSort, filterBy domain.RatingFilter) (domain.ReviewsView, error) {
	if _, ok := s.catalog.Hotel(hotelID); !ok {
		return domain.ReviewsView{}, fmt.Errorf("hotel %q: %w", hotelID, domain.ErrNotFound)
	}
	all, err := loadReviews(ctx, s.store)
	if err != nil {
		return domain.ReviewsView{}, err
	}
	items := SelectAndOrder(ReviewsForHotel(all, hotelID), sortBy, filterBy)
	st := Statistics(all, hotelID)
	return domain.ReviewsView{
		Stats: st,
		Items: items,
		Shown: len(items),
		Total: st.TotalReviews,
	}, nil
}

// Favorites returns the user's favorite hotels in catalog order.
func (s *QueryService) Favorites(ctx context.Context, u domain.User) ([]domain.Hotel, error) {
	ids := []string{}
	if _, err := s.store.Get(ctx, domain.UserKey(domain.KeyFavorites, u.ID), &ids); err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	out := []domain.Hotel{}
	for _, h := range s.catalog.Hotels() {
		if slices.Contains(ids, h.ID) {
			out = append(out, h)
		}
	}
	return out, nil
}

// cache failures are logged and otherwise ignored; the source of truth is
// always reachable.
func (s *QueryService) cacheGet(ctx context.Context, key string, dst any) bool {
	if s.cache == nil {
		return false
	}
	ok, err := s.cache.Get(ctx, key, dst)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache get failed")
		return false
	}
	return ok
}

func (s *QueryService) cacheSet(ctx context.Context, key string, v any) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, v, int(s.cacheTTL.Seconds())); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache set failed")
	}
}

func searchKey(f *domain.SearchFilters) string {
	if f == nil {
		return "search:all"
	}
	// only the fields the filter reads take part in the key
	b, _ := json.Marshal(struct {
		L string
		G int
		P [2]int64
	}{strings.ToLower(f.Location), f.Guests, f.PriceRange})
	sum := sha1.Sum(b)
	return "search:" + hex.EncodeToString(sum[:])
}
