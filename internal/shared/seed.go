package shared

import (
	"time"

	"japan_hotel_booking/internal/domain"
)

// SeedReviews returns the reviews a fresh store starts with.
func SeedReviews() []domain.Review {
	return []domain.Review{
		{
			ID:         "review_1",
			HotelID:    "1",
			UserID:     "user_1",
			UserName:   "Sarah Johnson",
			UserAvatar: "https://images.unsplash.com/photo-1494790108755-2616b612b786?w=40&h=40&fit=crop&crop=face",
			Rating:     5,
			Title:      "Absolutely Perfect Stay!",
			Comment:    "The Ritz-Carlton Kyoto exceeded all expectations. The traditional Japanese aesthetics combined with luxury amenities created an unforgettable experience. The staff was incredibly attentive and the garden views were breathtaking. The location is perfect for exploring Kyoto's historic temples.",
			RoomType:   ptr("Kamogawa Suite"),
			StayDate:   "2024-01-15",
			CreatedAt:  ts("2024-01-18T10:30:00Z"),
			Helpful:    12,
			Categories: domain.CategoryRatings{
				Cleanliness: 5,
				Service:     5,
				Location:    5,
				Value:       4,
				Amenities:   5,
			},
		},
		{
			ID:         "review_2",
			HotelID:    "1",
			UserID:     "user_2",
			UserName:   "Michael Chen",
			UserAvatar: "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=40&h=40&fit=crop&crop=face",
			Rating:     4,
			Title:      "Great Hotel with Minor Issues",
			Comment:    "Overall a wonderful stay. The hotel is beautiful and the service is top-notch. The room was spacious and comfortable. However, the price is quite steep and some of the amenities felt a bit dated. The breakfast was excellent though, and the location can't be beat.",
			RoomType:   ptr("Deluxe Room with Garden View"),
			StayDate:   "2024-01-10",
			CreatedAt:  ts("2024-01-12T14:20:00Z"),
			Helpful:    8,
			Categories: domain.CategoryRatings{
				Cleanliness: 4,
				Service:     5,
				Location:    5,
				Value:       3,
				Amenities:   4,
			},
		},
		{
			ID:         "review_3",
			HotelID:    "1",
			UserID:     "user_3",
			UserName:   "Emma Williams",
			UserAvatar: "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=40&h=40&fit=crop&crop=face",
			Rating:     5,
			Title:      "Magical Experience in Kyoto",
			Comment:    "This hotel is pure magic! From the moment we arrived, we were treated like royalty. The traditional design elements are stunning, and the modern amenities are perfect. The spa was incredibly relaxing after long days of sightseeing. Would definitely return!",
			RoomType:   ptr("Deluxe Room with Garden View"),
			StayDate:   "2024-01-08",
			CreatedAt:  ts("2024-01-10T09:15:00Z"),
			Helpful:    15,
			Categories: domain.CategoryRatings{
				Cleanliness: 5,
				Service:     5,
				Location:    4,
				Value:       4,
				Amenities:   5,
			},
		},
		{
			ID:         "review_4",
			HotelID:    "2",
			UserID:     "user_4",
			UserName:   "David Kim",
			UserAvatar: "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=40&h=40&fit=crop&crop=face",
			Rating:     4,
			Title:      "Business Travel Paradise",
			Comment:    "Perfect for business travelers. The Park Hyatt Tokyo offers excellent service and the location in Shinjuku is unbeatable. Rooms are modern and well-equipped. The views of Tokyo are spectacular, especially at night. Only downside was the busy lobby during peak hours.",
			RoomType:   ptr("Park Suite"),
			StayDate:   "2024-01-20",
			CreatedAt:  ts("2024-01-22T16:45:00Z"),
			Helpful:    6,
			Categories: domain.CategoryRatings{
				Cleanliness: 5,
				Service:     4,
				Location:    5,
				Value:       4,
				Amenities:   4,
			},
		},
		{
			ID:         "review_5",
			HotelID:    "2",
			UserID:     "user_5",
			UserName:   "Lisa Anderson",
			UserAvatar: "https://images.unsplash.com/photo-1544005313-94ddf0286df2?w=40&h=40&fit=crop&crop=face",
			Rating:     5,
			Title:      "Tokyo Luxury at Its Finest",
			Comment:    "Absolutely incredible hotel! The design is stunning, the service impeccable, and the location couldn't be better. We loved having easy access to shopping, dining, and entertainment. The hotel restaurant was also fantastic. A truly luxurious Tokyo experience.",
			RoomType:   ptr("Deluxe Room City View"),
			StayDate:   "2024-01-12",
			CreatedAt:  ts("2024-01-14T11:30:00Z"),
			Helpful:    9,
			Categories: domain.CategoryRatings{
				Cleanliness: 5,
				Service:     5,
				Location:    5,
				Value:       4,
				Amenities:   5,
			},
		},
		{
			ID:         "review_6",
			HotelID:    "3",
			UserID:     "user_6",
			UserName:   "James Wilson",
			Rating:     3,
			Title:      "Good but Overpriced",
			Comment:    "The hotel has a great location and decent amenities, but I felt it was overpriced for what you get. The room was smaller than expected and the service, while polite, wasn't exceptional. The breakfast buffet was good though, and the staff were helpful with local recommendations.",
			RoomType:   ptr("Standard Room"),
			StayDate:   "2024-01-05",
			CreatedAt:  ts("2024-01-07T13:20:00Z"),
			Helpful:    3,
			Categories: domain.CategoryRatings{
				Cleanliness: 4,
				Service:     3,
				Location:    4,
				Value:       2,
				Amenities:   3,
			},
		},
	}
}

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func ptr(s string) *string { return &s }
