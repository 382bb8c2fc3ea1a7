package app

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"

	"japan_hotel_booking/internal/adapters/observability"
	"japan_hotel_booking/internal/domain"
)

const dateLayout = "2006-01-02"

type BookingService struct {
	store   domain.Store
	catalog domain.Catalog
	now     func() time.Time
	mu      sync.Mutex
}

func NewBookingService(st domain.Store, cat domain.Catalog) *BookingService {
	return &BookingService{store: st, catalog: cat, now: time.Now}
}

func (s *BookingService) CreateBooking(ctx context.Context, u domain.User, req domain.BookingRequest) (domain.Booking, error) {
	if err := validateStruct(req); err != nil {
		return domain.Booking{}, err
	}
	h, ok := s.catalog.Hotel(req.HotelID)
	if !ok {
		return domain.Booking{}, fmt.Errorf("hotel %q: %w", req.HotelID, domain.ErrNotFound)
	}
	room, ok := h.Room(req.RoomID)
	if !ok {
		return domain.Booking{}, fmt.Errorf("room %q: %w", req.RoomID, domain.ErrNotFound)
	}
	if !room.Available {
		return domain.Booking{}, domain.Invalid("roomId", "Room is not available")
	}
	nights, err := Nights(req.CheckIn, req.CheckOut)
	if err != nil {
		return domain.Booking{}, err
	}
	if nights < 1 {
		return domain.Booking{}, domain.Invalid("checkOut", "Must be after check-in")
	}
	if req.Guests > room.Capacity {
		return domain.Booking{}, domain.Invalid("guests", fmt.Sprintf("Room sleeps at most %d", room.Capacity))
	}

	b := domain.Booking{
		ID:           uuid.NewString(),
		HotelID:      h.ID,
		HotelName:    h.Name,
		RoomID:       room.ID,
		RoomName:     room.Name,
		CheckIn:      req.CheckIn,
		CheckOut:     req.CheckOut,
		Guests:       req.Guests,
		TotalPrice:   int64(nights) * room.Price,
		GuestDetails: req.GuestDetails,
		Status:       domain.BookingConfirmed,
		CreatedAt:    s.now().UTC(),
	}

	key := domain.UserKey(domain.KeyBookings, u.ID)
	s.mu.Lock()
	defer s.mu.Unlock()
	var list []domain.Booking
	if _, err := s.store.Get(ctx, key, &list); err != nil {
		return domain.Booking{}, fmt.Errorf("load bookings: %w", err)
	}
	list = append(list, b)
	if err := s.store.Set(ctx, key, list); err != nil {
		return domain.Booking{}, fmt.Errorf("save bookings: %w", err)
	}
	observability.Bookings.WithLabelValues(string(b.Status)).Inc()
	return b, nil
}

func (s *BookingService) ListBookings(ctx context.Context, u domain.User) ([]domain.Booking, error) {
	list := []domain.Booking{}
	if _, err := s.store.Get(ctx, domain.UserKey(domain.KeyBookings, u.ID), &list); err != nil {
		return nil, fmt.Errorf("load bookings: %w", err)
	}
	return list, nil
}

// CancelBooking marks a booking cancelled. Cancelling twice is a no-op.
func (s *BookingService) CancelBooking(ctx context.Context, u domain.User, id string) (domain.Booking, error) {
	key := domain.UserKey(domain.KeyBookings, u.ID)
	s.mu.Lock()
	defer s.mu.Unlock()

	var list []domain.Booking
	if _, err := s.store.Get(ctx, key, &list); err != nil {
		return domain.Booking{}, fmt.Errorf("load bookings: %w", err)
	}
	for i := range list {
		if list[i].ID != id {
			continue
		}
		if list[i].Status == domain.BookingCancelled {
			return list[i], nil
		}
		list[i].Status = domain.BookingCancelled
		if err := s.store.Set(ctx, key, list); err != nil {
			return domain.Booking{}, fmt.Errorf("save bookings: %w", err)
		}
		observability.Bookings.WithLabelValues(string(domain.BookingCancelled)).Inc()
		return list[i], nil
	}
	return domain.Booking{}, fmt.Errorf("booking %q: %w", id, domain.ErrNotFound)
}

// Nights is the number of nights between two YYYY-MM-DD dates, rounded up.
func Nights(checkIn, checkOut string) (int, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return 0, domain.Invalid("checkIn", "Must be a date in YYYY-MM-DD format")
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return 0, domain.Invalid("checkOut", "Must be a date in YYYY-MM-DD format")
	}
	return int(math.Ceil(out.Sub(in).Hours() / 24)), nil
}
