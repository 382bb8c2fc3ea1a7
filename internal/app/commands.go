package app

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"japan_hotel_booking/internal/adapters/observability"
	"japan_hotel_booking/internal/domain"
)

type ReviewService struct {
	store   domain.Store
	catalog domain.Catalog
	cache   domain.Cache
	now     func() time.Time

	// serialises read-modify-write of the shared review list; stats cache
	// fills hold the read side so a write and its invalidation never land
	// between their load and their cache set
	mu sync.RWMutex
}

func NewReviewService(st domain.Store, cat domain.Catalog, cache domain.Cache) *ReviewService {
	return &ReviewService{store: st, catalog: cat, cache: cache, now: time.Now}
}

// SubmitReview validates the draft and stores the new review ahead of all
// existing ones.
func (s *ReviewService) SubmitReview(ctx context.Context, u domain.User, hotelID string, d domain.ReviewDraft) (domain.Review, error) {
	if _, ok := s.catalog.Hotel(hotelID); !ok {
		return domain.Review{}, fmt.Errorf("hotel %q: %w", hotelID, domain.ErrNotFound)
	}
	if err := validateStruct(d); err != nil {
		return domain.Review{}, err
	}

	now := s.now().UTC()
	rv := domain.Review{
		ID:         "review_" + uuid.NewString(),
		HotelID:    hotelID,
		UserID:     u.ID,
		UserName:   u.Name,
		Rating:     d.Rating,
		Title:      strings.TrimSpace(d.Title),
		Comment:    strings.TrimSpace(d.Comment),
		StayDate:   d.StayDate,
		CreatedAt:  now,
		Helpful:    0,
		Categories: d.Categories,
	}
	if rv.UserName == "" {
		rv.UserName = domain.GuestUser.Name
	}
	if rt := strings.TrimSpace(d.RoomType); rt != "" {
		rv.RoomType = &rt
	}
	for _, p := range d.Photos {
		rv.Photos = append(rv.Photos, domain.ReviewPhoto{
			ID:         "photo_" + uuid.NewString(),
			URL:        p,
			UploadedAt: now,
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	all, err := loadReviews(ctx, s.store)
	if err == nil {
		all = append([]domain.Review{rv}, all...)
		err = s.store.Set(ctx, domain.KeyReviews, all)
	}
	if err != nil {
		return domain.Review{}, fmt.Errorf("save review: %w", err)
	}

	s.invalidateStats(ctx, hotelID)
	observability.ReviewsSubmitted.WithLabelValues(hotelID).Inc()
	return rv, nil
}

// MarkHelpful records one helpful vote. Unknown ids surface ErrNotFound so the
// caller can tell a stale page from a recorded vote.
func (s *ReviewService) MarkHelpful(ctx context.Context, reviewID string) (domain.Review, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := loadReviews(ctx, s.store)
	if err != nil {
		return domain.Review{}, err
	}
	idx := indexOfReview(all, reviewID)
	if idx < 0 {
		return domain.Review{}, fmt.Errorf("review %q: %w", reviewID, domain.ErrNotFound)
	}
	updated := MarkHelpful(all, reviewID)
	if err := s.store.Set(ctx, domain.KeyReviews, updated); err != nil {
		return domain.Review{}, fmt.Errorf("save review: %w", err)
	}
	observability.HelpfulVotes.Inc()
	return updated[idx], nil
}

// SeedReviews stores seed only when no review has been written yet.
func (s *ReviewService) SeedReviews(ctx context.Context, seed []domain.Review) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := loadReviews(ctx, s.store)
	if err != nil {
		return false, err
	}
	if len(all) > 0 {
		return false, nil
	}
	if err := s.store.Set(ctx, domain.KeyReviews, seed); err != nil {
		return false, fmt.Errorf("seed reviews: %w", err)
	}
	seen := map[string]bool{}
	for _, r := range seed {
		if !seen[r.HotelID] {
			seen[r.HotelID] = true
			s.invalidateStats(ctx, r.HotelID)
		}
	}
	return true, nil
}

// readLock holds off review writes until the returned func is called.
func (s *ReviewService) readLock() func() {
	if s == nil {
		return func() {}
	}
	s.mu.RLock()
	return s.mu.RUnlock
}

func (s *ReviewService) invalidateStats(ctx context.Context, hotelID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, statsKey(hotelID)); err != nil {
		log.Warn().Err(err).Str("hotel", hotelID).Msg("stats cache invalidation failed")
	}
}

func loadReviews(ctx context.Context, st domain.Store) ([]domain.Review, error) {
	var all []domain.Review
	if _, err := st.Get(ctx, domain.KeyReviews, &all); err != nil {
		return nil, fmt.Errorf("load reviews: %w", err)
	}
	return all, nil
}

func indexOfReview(all []domain.Review, id string) int {
	for i, r := range all {
		if r.ID == id {
			return i
		}
	}
	return -1
}

func statsKey(hotelID string) string { return "stats:" + hotelID }
