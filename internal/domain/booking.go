package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID           string        `json:"id"`
	HotelID      string        `json:"hotelId"`
	HotelName    string        `json:"hotelName"`
	RoomID       string        `json:"roomId"`
	RoomName     string        `json:"roomName"`
	CheckIn      string        `json:"checkIn"`
	CheckOut     string        `json:"checkOut"`
	Guests       int           `json:"guests"`
	TotalPrice   int64         `json:"totalPrice"`
	GuestDetails GuestDetails  `json:"guestDetails"`
	Status       BookingStatus `json:"status"`
	CreatedAt    time.Time     `json:"createdAt"`
}

type GuestDetails struct {
	FirstName string `json:"firstName" validate:"required,notblank,max=100"`
	LastName  string `json:"lastName" validate:"required,notblank,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"max=40"`
}

type BookingRequest struct {
	HotelID      string       `json:"hotelId" validate:"required"`
	RoomID       string       `json:"roomId" validate:"required"`
	CheckIn      string       `json:"checkIn" validate:"required,datetime=2006-01-02"`
	CheckOut     string       `json:"checkOut" validate:"required,datetime=2006-01-02"`
	Guests       int          `json:"guests" validate:"required,gte=1"`
	GuestDetails GuestDetails `json:"guestDetails"`
}
