package domain

import "context"

// Store keys. User-scoped keys are suffixed with ":<userID>" via UserKey.
const (
	KeyReviews   = "hotel-reviews"
	KeyBookings  = "user-bookings"
	KeyFavorites = "favorite-hotels"
	KeyLanguage  = "app-language"
	KeyTheme     = "app-theme"
)

func UserKey(name, userID string) string { return name + ":" + userID }

// Store is the key-scoped persistence collaborator. Values are JSON documents.
type Store interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Catalog is the read-only hotel list supplied at startup.
type Catalog interface {
	Hotels() []Hotel
	Hotel(id string) (Hotel, bool)
}

// CatalogFeed fetches a catalog from a remote partner feed.
type CatalogFeed interface {
	FetchHotels(ctx context.Context) ([]Hotel, error)
}
