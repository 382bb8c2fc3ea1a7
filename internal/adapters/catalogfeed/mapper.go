package catalogfeed

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"japan_hotel_booking/internal/domain"
)

/********** alias registries **********/

var hotelAliases = map[string][]string{
	"id":          {"id", "hotel_id", "hotelId"},
	"name":        {"name", "hotel_name", "title"},
	"location":    {"location", "city", "area", "address.city"},
	"region":      {"region", "prefecture", "state", "address.prefecture"},
	"description": {"description", "summary", "description_long"},
	"images":      {"images", "photos", "gallery"},
	"rating":      {"rating", "stars", "score"},
	"reviews":     {"reviewCount", "review_count", "reviews_count"},
	"amenities":   {"amenities", "facilities"},
	"rooms":       {"rooms", "room_types"},
	"price_min":   {"priceRange.min", "price_range.min", "min_price"},
	"price_max":   {"priceRange.max", "price_range.max", "max_price"},
}

var roomAliases = map[string][]string{
	"id":          {"id", "room_id", "roomId"},
	"type":        {"type", "room_type", "category"},
	"name":        {"name", "room_name", "title"},
	"description": {"description", "summary"},
	"capacity":    {"capacity", "max_guests", "maxOccupancy", "occupancy"},
	"price":       {"price", "nightly_price", "rate"},
	"amenities":   {"amenities", "facilities"},
	"images":      {"images", "photos"},
	"available":   {"available", "is_available"},
}

func mapHotels(raw []map[string]any) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(raw))
	for _, m := range raw {
		h, ok := mapHotel(m)
		if !ok {
			log.Warn().Interface("keys", keysOf(m)).Msg("catalogfeed: skipping hotel without id")
			continue
		}
		out = append(out, h)
	}
	return out
}

func mapHotel(m map[string]any) (domain.Hotel, bool) {
	id := firstIDAlias(m, hotelAliases["id"])
	if id == "" {
		return domain.Hotel{}, false
	}
	h := domain.Hotel{
		ID:          id,
		Name:        firstStrAlias(m, hotelAliases, "name"),
		Location:    firstStrAlias(m, hotelAliases, "location"),
		Region:      firstStrAlias(m, hotelAliases, "region"),
		Description: firstStrAlias(m, hotelAliases, "description"),
		Images:      firstSliceStrings(m, hotelAliases["images"]...),
		Amenities:   firstSliceStrings(m, hotelAliases["amenities"]...),
		Rooms:       []domain.Room{},
	}
	if f := getFloatFlexible(m, hotelAliases["rating"]...); f != nil {
		h.Rating = *f
	}
	if n := firstInt64Flexible(m, hotelAliases["reviews"]...); n != nil {
		h.ReviewCount = int(*n)
	}
	for _, path := range hotelAliases["rooms"] {
		list, ok := lookupAny(m, path).([]any)
		if !ok {
			continue
		}
		for i, it := range list {
			rm, ok := it.(map[string]any)
			if !ok {
				continue
			}
			h.Rooms = append(h.Rooms, mapRoom(rm, id, i))
		}
		break
	}

	// fall back to the room rates when the feed has no explicit range
	h.PriceRange.Min, h.PriceRange.Max = roomPriceBounds(h.Rooms)
	if n := firstInt64Flexible(m, hotelAliases["price_min"]...); n != nil {
		h.PriceRange.Min = *n
	}
	if n := firstInt64Flexible(m, hotelAliases["price_max"]...); n != nil {
		h.PriceRange.Max = *n
	}
	return h, true
}

func mapRoom(m map[string]any, hotelID string, idx int) domain.Room {
	r := domain.Room{
		ID:          firstIDAlias(m, roomAliases["id"]),
		Type:        firstStrAlias(m, roomAliases, "type"),
		Name:        firstStrAlias(m, roomAliases, "name"),
		Description: firstStrAlias(m, roomAliases, "description"),
		Amenities:   firstSliceStrings(m, roomAliases["amenities"]...),
		Images:      firstSliceStrings(m, roomAliases["images"]...),
		Available:   true,
	}
	if r.ID == "" {
		r.ID = hotelID + "-" + strconv.Itoa(idx+1)
	}
	if r.Name == "" {
		r.Name = r.Type
	}
	if n := firstInt64Flexible(m, roomAliases["capacity"]...); n != nil {
		r.Capacity = int(*n)
	}
	if n := firstInt64Flexible(m, roomAliases["price"]...); n != nil {
		r.Price = *n
	}
	for _, p := range roomAliases["available"] {
		if b, ok := lookupAny(m, p).(bool); ok {
			r.Available = b
			break
		}
	}
	return r
}

func roomPriceBounds(rooms []domain.Room) (lo, hi int64) {
	for i, r := range rooms {
		if i == 0 || r.Price < lo {
			lo = r.Price
		}
		if r.Price > hi {
			hi = r.Price
		}
	}
	return lo, hi
}

/********** tiny helpers **********/

// lookupAny: safe nested lookup with dot paths on maps.
func lookupAny(m map[string]any, path string) any {
	cur := any(m)
	for _, part := range strings.Split(path, ".") {
		obj, ok := cur.(map[string]any)
		if !ok {
			return nil
		}
		v, ok := obj[part]
		if !ok {
			return nil
		}
		cur = v
	}
	return cur
}

func firstStrAlias(m map[string]any, aliases map[string][]string, key string) string {
	for _, p := range aliases[key] {
		if s, ok := lookupAny(m, p).(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				return s
			}
		}
	}
	return ""
}

// firstIDAlias accepts ids sent as strings or as JSON numbers.
func firstIDAlias(m map[string]any, paths []string) string {
	for _, p := range paths {
		switch v := lookupAny(m, p).(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case float64:
			return strconv.FormatInt(int64(v), 10)
		}
	}
	return ""
}

// getFloatFlexible: number from several paths (float64/int/string like "4,5").
func getFloatFlexible(m map[string]any, paths ...string) *float64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			f := v
			return &f
		case string:
			s := strings.TrimSpace(strings.ReplaceAll(v, ",", "."))
			if s == "" {
				continue
			}
			if f, err := strconv.ParseFloat(s, 64); err == nil {
				return &f
			}
		}
	}
	return nil
}

// firstInt64Flexible: int64 from several paths (float64/string).
func firstInt64Flexible(m map[string]any, paths ...string) *int64 {
	for _, k := range paths {
		switch v := lookupAny(m, k).(type) {
		case float64:
			x := int64(v)
			return &x
		case string:
			s := strings.TrimSpace(v)
			if s == "" {
				continue
			}
			if n, err := strconv.ParseInt(s, 10, 64); err == nil {
				return &n
			}
		}
	}
	return nil
}

// firstSliceStrings returns the first string list found. Elements may be
// plain strings or objects carrying a "url" or "name".
func firstSliceStrings(m map[string]any, paths ...string) []string {
	for _, p := range paths {
		list, ok := lookupAny(m, p).([]any)
		if !ok {
			continue
		}
		out := make([]string, 0, len(list))
		for _, it := range list {
			switch v := it.(type) {
			case string:
				if v != "" {
					out = append(out, v)
				}
			case map[string]any:
				for _, k := range []string{"url", "name"} {
					if s, ok := v[k].(string); ok && s != "" {
						out = append(out, s)
						break
					}
				}
			}
		}
		return out
	}
	return []string{}
}

func keysOf(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
