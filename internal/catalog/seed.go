package catalog

import "japan_hotel_booking/internal/domain"

const (
	imgRitz   = "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=800&h=600&fit=crop"
	imgRiver  = "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop"
	imgRoom   = "https://images.unsplash.com/photo-1571896349842-33c89424de2d?w=800&h=600&fit=crop"
	imgCity   = "https://images.unsplash.com/photo-1555686637-b830e73a25c8?w=800&h=600&fit=crop"
	imgRyokan = "https://images.unsplash.com/photo-1578662015928-3badd62c5f3b?w=800&h=600&fit=crop"
)

// SeedHotels returns the six hotels the storefront ships with.
func SeedHotels() []domain.Hotel {
	return []domain.Hotel{
		{
			ID:          "1",
			Name:        "The Ritz-Carlton Kyoto",
			Location:    "Kyoto",
			Region:      "Kyoto",
			Description: "Luxury hotel overlooking the Kamogawa River and Higashiyama mountains, blending traditional Japanese aesthetics with modern comfort.",
			Images:      []string{imgRitz, imgRiver, imgRoom},
			Rating:      4.8,
			ReviewCount: 1247,
			Amenities:   []string{"Spa", "Restaurant", "Bar", "Fitness Center", "Concierge", "Room Service"},
			PriceRange:  domain.PriceRange{Min: 45000, Max: 120000},
			Rooms: []domain.Room{
				{
					ID:          "1-1",
					Type:        "Deluxe",
					Name:        "Deluxe Room with Garden View",
					Description: "Spacious room with traditional Japanese elements and garden views",
					Capacity:    2,
					Price:       45000,
					Amenities:   []string{"Garden View", "Mini Bar", "Free WiFi", "Air Conditioning"},
					Images:      []string{imgRoom},
					Available:   true,
				},
				{
					ID:          "1-2",
					Type:        "Suite",
					Name:        "Kamogawa Suite",
					Description: "Luxurious suite with panoramic river views and separate living area",
					Capacity:    4,
					Price:       120000,
					Amenities:   []string{"River View", "Living Room", "Butler Service", "Premium Amenities"},
					Images:      []string{imgRiver},
					Available:   true,
				},
			},
		},
		{
			ID:          "2",
			Name:        "Park Hyatt Tokyo",
			Location:    "Shinjuku",
			Region:      "Tokyo",
			Description: "Sophisticated hotel in the heart of Tokyo with stunning city views and contemporary design.",
			Images:      []string{imgCity, imgRoom, imgRiver},
			Rating:      4.7,
			ReviewCount: 892,
			Amenities:   []string{"Spa", "Pool", "Restaurant", "Bar", "Fitness Center", "Business Center"},
			PriceRange:  domain.PriceRange{Min: 38000, Max: 95000},
			Rooms: []domain.Room{
				{
					ID:          "2-1",
					Type:        "Park",
					Name:        "Park Room",
					Description: "Modern room with park views and contemporary amenities",
					Capacity:    2,
					Price:       38000,
					Amenities:   []string{"Park View", "Mini Bar", "Free WiFi", "Marble Bathroom"},
					Images:      []string{imgRoom},
					Available:   true,
				},
			},
		},
		{
			ID:          "3",
			Name:        "Hoshinoya Tokyo",
			Location:    "Otemachi",
			Region:      "Tokyo",
			Description: "Traditional ryokan-style hotel in modern Tokyo, offering authentic Japanese hospitality.",
			Images:      []string{imgRyokan, imgRoom, imgRiver},
			Rating:      4.9,
			ReviewCount: 654,
			Amenities:   []string{"Traditional Onsen", "Tea Ceremony", "Traditional Restaurant", "Concierge"},
			PriceRange:  domain.PriceRange{Min: 55000, Max: 150000},
			Rooms: []domain.Room{
				{
					ID:          "3-1",
					Type:        "Sakura",
					Name:        "Sakura Room",
					Description: "Traditional Japanese room with tatami floors and futon beds",
					Capacity:    2,
					Price:       55000,
					Amenities:   []string{"Tatami Floors", "Futon Beds", "Traditional Bath", "City View"},
					Images:      []string{imgRyokan},
					Available:   true,
				},
			},
		},
		{
			ID:          "4",
			Name:        "Four Seasons Hotel Kyoto",
			Location:    "Higashiyama",
			Region:      "Kyoto",
			Description: "Elegant hotel surrounded by traditional temples and shrines in historic Kyoto.",
			Images:      []string{imgRitz, imgRiver, imgRoom},
			Rating:      4.6,
			ReviewCount: 1089,
			Amenities:   []string{"Spa", "Restaurant", "Garden", "Tea House", "Cultural Experiences"},
			PriceRange:  domain.PriceRange{Min: 42000, Max: 110000},
			Rooms: []domain.Room{
				{
					ID:          "4-1",
					Type:        "Premier",
					Name:        "Premier Garden Room",
					Description: "Elegant room overlooking traditional Japanese gardens",
					Capacity:    2,
					Price:       42000,
					Amenities:   []string{"Garden View", "Traditional Decor", "Premium Amenities", "Tea Service"},
					Images:      []string{imgRoom},
					Available:   true,
				},
			},
		},
		{
			ID:          "5",
			Name:        "Conrad Osaka",
			Location:    "Nakanoshima",
			Region:      "Osaka",
			Description: "Modern luxury hotel with panoramic views of Osaka Bay and contemporary design.",
			Images:      []string{imgCity, imgRoom, imgRiver},
			Rating:      4.5,
			ReviewCount: 756,
			Amenities:   []string{"Sky Bar", "Spa", "Pool", "Multiple Restaurants", "Executive Lounge"},
			PriceRange:  domain.PriceRange{Min: 35000, Max: 85000},
			Rooms: []domain.Room{
				{
					ID:          "5-1",
					Type:        "Bay View",
					Name:        "Bay View Room",
					Description: "Modern room with stunning views of Osaka Bay",
					Capacity:    2,
					Price:       35000,
					Amenities:   []string{"Bay View", "Modern Design", "Premium Bedding", "High-Speed WiFi"},
					Images:      []string{imgRoom},
					Available:   true,
				},
			},
		},
		{
			ID:          "6",
			Name:        "Gora Kadan",
			Location:    "Hakone",
			Region:      "Kanagawa",
			Description: "Traditional ryokan with private onsen baths and mountain views in Hakone.",
			Images:      []string{imgRyokan, imgRitz, imgRoom},
			Rating:      4.9,
			ReviewCount: 423,
			Amenities:   []string{"Private Onsen", "Kaiseki Dining", "Traditional Gardens", "Mountain Views"},
			PriceRange:  domain.PriceRange{Min: 65000, Max: 180000},
			Rooms: []domain.Room{
				{
					ID:          "6-1",
					Type:        "Mountain Villa",
					Name:        "Traditional Villa with Private Onsen",
					Description: "Luxurious traditional villa with private hot spring bath",
					Capacity:    4,
					Price:       65000,
					Amenities:   []string{"Private Onsen", "Mountain View", "Traditional Architecture", "Kaiseki Meals"},
					Images:      []string{imgRyokan},
					Available:   true,
				},
			},
		},
	}
}
