// Package catalog holds the read-only hotel list the storefront searches.
package catalog

import (
	"context"
	"fmt"

	"japan_hotel_booking/internal/domain"
)

type Static struct {
	hotels []domain.Hotel
	byID   map[string]int
}

// New validates hotels and builds a catalog from them.
func New(hotels []domain.Hotel) (*Static, error) {
	c := &Static{
		hotels: make([]domain.Hotel, len(hotels)),
		byID:   make(map[string]int, len(hotels)),
	}
	copy(c.hotels, hotels)
	for i, h := range c.hotels {
		if err := Check(h); err != nil {
			return nil, err
		}
		if _, dup := c.byID[h.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate hotel id %q", domain.ErrInvalidCatalog, h.ID)
		}
		c.byID[h.ID] = i
	}
	return c, nil
}

// Default is the built-in catalog.
func Default() *Static {
	c, err := New(SeedHotels())
	if err != nil {
		panic(err)
	}
	return c
}

// Load builds a catalog from a remote feed. Callers usually fall back to
// Default on error.
func Load(ctx context.Context, feed domain.CatalogFeed) (*Static, error) {
	hotels, err := feed.FetchHotels(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	return New(hotels)
}

// Hotels returns a copy of the catalog in its fixed order.
func (c *Static) Hotels() []domain.Hotel {
	out := make([]domain.Hotel, len(c.hotels))
	copy(out, c.hotels)
	return out
}

func (c *Static) Hotel(id string) (domain.Hotel, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Hotel{}, false
	}
	return c.hotels[i], true
}

// Check reports the first invariant h violates.
func Check(h domain.Hotel) error {
	switch {
	case h.ID == "":
		return fmt.Errorf("%w: hotel without id", domain.ErrInvalidCatalog)
	case h.PriceRange.Min > h.PriceRange.Max:
		return fmt.Errorf("%w: hotel %s: price range min %d > max %d",
			domain.ErrInvalidCatalog, h.ID, h.PriceRange.Min, h.PriceRange.Max)
	case len(h.Rooms) == 0:
		return fmt.Errorf("%w: hotel %s has no rooms", domain.ErrInvalidCatalog, h.ID)
	}
	for _, r := range h.Rooms {
		if r.Capacity <= 0 {
			return fmt.Errorf("%w: room %s: capacity must be positive", domain.ErrInvalidCatalog, r.ID)
		}
		if r.Price < 0 {
			return fmt.Errorf("%w: room %s: negative price", domain.ErrInvalidCatalog, r.ID)
		}
	}
	return nil
}
