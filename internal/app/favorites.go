package app

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"japan_hotel_booking/internal/adapters/observability"
	"japan_hotel_booking/internal/domain"
)

type FavoritesService struct {
	store   domain.Store
	catalog domain.Catalog
	mu      sync.Mutex
}

func NewFavoritesService(st domain.Store, cat domain.Catalog) *FavoritesService {
	return &FavoritesService{store: st, catalog: cat}
}

func (s *FavoritesService) FavoriteIDs(ctx context.Context, u domain.User) ([]string, error) {
	ids := []string{}
	if _, err := s.store.Get(ctx, domain.UserKey(domain.KeyFavorites, u.ID), &ids); err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	return ids, nil
}

// ToggleFavorite adds or removes hotelID and reports whether it is now a favorite.
func (s *FavoritesService) ToggleFavorite(ctx context.Context, u domain.User, hotelID string) (bool, error) {
	if _, ok := s.catalog.Hotel(hotelID); !ok {
		return false, fmt.Errorf("hotel %q: %w", hotelID, domain.ErrNotFound)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, err := s.FavoriteIDs(ctx, u)
	if err != nil {
		return false, err
	}
	var next []string
	added := !slices.Contains(ids, hotelID)
	if added {
		next = append(ids, hotelID)
	} else {
		next = slices.DeleteFunc(ids, func(id string) bool { return id == hotelID })
	}
	if err := s.store.Set(ctx, domain.UserKey(domain.KeyFavorites, u.ID), next); err != nil {
		return false, fmt.Errorf("save favorites: %w", err)
	}
	action := "removed"
	if added {
		action = "added"
	}
	observability.FavoritesToggled.WithLabelValues(action).Inc()
	return added, nil
}
