package app

import (
	"strings"

	"japan_hotel_booking/internal/domain"
)

// FilterHotels returns the hotels of catalog that match criteria, in catalog
// order. A nil criteria returns the whole catalog.
func FilterHotels(catalog []domain.Hotel, criteria *domain.SearchFilters) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(catalog))
	if criteria == nil {
		return append(out, catalog...)
	}
	loc := strings.ToLower(criteria.Location)
	for _, h := range catalog {
		if matchesSearch(h, criteria, loc) {
			out = append(out, h)
		}
	}
	return out
}

func matchesSearch(h domain.Hotel, f *domain.SearchFilters, loc string) bool {
	if loc != "" && !strings.Contains(strings.ToLower(h.Location), loc) {
		return false
	}
	if f.Guests > 0 && !hasCapacity(h.Rooms, f.Guests) {
		return false
	}
	// only the cheapest rate is compared against the range
	from := h.PriceRange.Min
	return from >= f.PriceRange[0] && from <= f.PriceRange[1]
}

func hasCapacity(rooms []domain.Room, guests int) bool {
	for _, r := range rooms {
		if r.Capacity >= guests {
			return true
		}
	}
	return false
}
