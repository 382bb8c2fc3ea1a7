package domain

type Hotel struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	Region      string     `json:"region"` // prefecture
	Description string     `json:"description"`
	Images      []string   `json:"images"`
	Rating      float64    `json:"rating"`
	ReviewCount int        `json:"reviewCount"`
	Amenities   []string   `json:"amenities"`
	Rooms       []Room     `json:"rooms"`
	PriceRange  PriceRange `json:"priceRange"`
}

type Room struct {
	ID          string   `json:"id"`
	Type        string   `json:"type"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Capacity    int      `json:"capacity"`
	Price       int64    `json:"price"` // JPY per night
	Amenities   []string `json:"amenities"`
	Images      []string `json:"images"`
	Available   bool     `json:"available"`
}

type PriceRange struct {
	Min int64 `json:"min"`
	Max int64 `json:"max"`
}

// Room returns the room with the given id.
func (h Hotel) Room(id string) (Room, bool) {
	for _, r := range h.Rooms {
		if r.ID == id {
			return r, true
		}
	}
	return Room{}, false
}

// SearchFilters is the storefront search query. CheckIn, CheckOut and
// Amenities are carried for presentation only; the catalog filter ignores them.
type SearchFilters struct {
	Location   string   `json:"location"`
	CheckIn    string   `json:"checkIn"`
	CheckOut   string   `json:"checkOut"`
	Guests     int      `json:"guests"`
	PriceRange [2]int64 `json:"priceRange"`
	Amenities  []string `json:"amenities"`
}

// DefaultSearchFilters mirrors the storefront's initial search form.
func DefaultSearchFilters() SearchFilters {
	return SearchFilters{
		Guests:     2,
		PriceRange: [2]int64{20000, 200000},
		Amenities:  []string{},
	}
}
