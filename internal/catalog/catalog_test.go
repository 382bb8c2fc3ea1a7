package catalog

import (
	"context"
	"errors"
	"testing"

	"japan_hotel_booking/internal/domain"
)

func TestDefault_SeedIsValid(t *testing.T) {
	c := Default()
	hs := c.Hotels()
	if len(hs) != 6 {
		t.Fatalf("expected 6 hotels, got %d", len(hs))
	}
	for i, h := range hs {
		got, ok := c.Hotel(h.ID)
		if !ok || got.ID != h.ID {
			t.Fatalf("lookup %s failed", h.ID)
		}
		if want := string(rune('1' + i)); h.ID != want {
			t.Fatalf("order: position %d has id %s", i, h.ID)
		}
	}
	if _, ok := c.Hotel("7"); ok {
		t.Fatalf("unexpected hotel 7")
	}
}

func TestHotels_ReturnsCopy(t *testing.T) {
	c := Default()
	hs := c.Hotels()
	hs[0].Name = "mutated"
	if h, _ := c.Hotel(hs[0].ID); h.Name == "mutated" {
		t.Fatalf("catalog was modified through Hotels()")
	}
}

func TestNew_RejectsInvalidHotels(t *testing.T) {
	good := func() domain.Hotel {
		return domain.Hotel{
			ID:         "x",
			PriceRange: domain.PriceRange{Min: 10, Max: 20},
			Rooms:      []domain.Room{{ID: "x-1", Capacity: 2, Price: 10}},
		}
	}
	cases := []struct {
		name string
		mut  func(h *domain.Hotel)
	}{
		{"empty id", func(h *domain.Hotel) { h.ID = "" }},
		{"min above max", func(h *domain.Hotel) { h.PriceRange.Min = 30 }},
		{"no rooms", func(h *domain.Hotel) { h.Rooms = nil }},
		{"zero capacity", func(h *domain.Hotel) { h.Rooms[0].Capacity = 0 }},
		{"negative price", func(h *domain.Hotel) { h.Rooms[0].Price = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := good()
			tc.mut(&h)
			if _, err := New([]domain.Hotel{h}); !errors.Is(err, domain.ErrInvalidCatalog) {
				t.Fatalf("expected ErrInvalidCatalog, got %v", err)
			}
		})
	}

	if _, err := New([]domain.Hotel{good(), good()}); !errors.Is(err, domain.ErrInvalidCatalog) {
		t.Fatalf("duplicate ids should be rejected, got %v", err)
	}
	if _, err := New([]domain.Hotel{good()}); err != nil {
		t.Fatalf("valid hotel rejected: %v", err)
	}
}

type fakeFeed struct {
	hotels []domain.Hotel
	err    error
}

func (f fakeFeed) FetchHotels(ctx context.Context) ([]domain.Hotel, error) { return f.hotels, f.err }

func TestLoad(t *testing.T) {
	ctx := context.Background()

	c, err := Load(ctx, fakeFeed{hotels: SeedHotels()[:2]})
	if err != nil || len(c.Hotels()) != 2 {
		t.Fatalf("load: %v", err)
	}

	boom := errors.New("feed down")
	if _, err := Load(ctx, fakeFeed{err: boom}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped feed error, got %v", err)
	}

	bad := SeedHotels()[:1]
	bad[0].Rooms = nil
	if _, err := Load(ctx, fakeFeed{hotels: bad}); !errors.Is(err, domain.ErrInvalidCatalog) {
		t.Fatalf("expected invalid catalog, got %v", err)
	}
}
