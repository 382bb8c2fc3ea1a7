package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

type Review struct {
	ID         string          `json:"id"`
	HotelID    string          `json:"hotelId"`
	UserID     string          `json:"userId"`
	UserName   string          `json:"userName"`
	UserAvatar string          `json:"userAvatar,omitempty"`
	Rating     int             `json:"rating"` // 1..5
	Title      string          `json:"title"`
	Comment    string          `json:"comment"`
	RoomType   *string         `json:"roomType,omitempty"`
	StayDate   string          `json:"stayDate"` // YYYY-MM-DD
	CreatedAt  time.Time       `json:"createdAt"`
	Helpful    int             `json:"helpful"`
	Photos     []ReviewPhoto   `json:"photos,omitempty"`
	Categories CategoryRatings `json:"categories"`
}

type ReviewPhoto struct {
	ID         string    `json:"id"`
	URL        string    `json:"url"`
	UploadedAt time.Time `json:"uploadedAt"`
}

// CategoryRatings is the fixed set of sub-scores a guest gives, each 1..5.
type CategoryRatings struct {
	Cleanliness int `json:"cleanliness" validate:"gte=1,lte=5"`
	Service     int `json:"service" validate:"gte=1,lte=5"`
	Location    int `json:"location" validate:"gte=1,lte=5"`
	Value       int `json:"value" validate:"gte=1,lte=5"`
	Amenities   int `json:"amenities" validate:"gte=1,lte=5"`
}

type CategoryAverages struct {
	Cleanliness float64 `json:"cleanliness"`
	Service     float64 `json:"service"`
	Location    float64 `json:"location"`
	Value       float64 `json:"value"`
	Amenities   float64 `json:"amenities"`
}

// RatingDistribution counts reviews per star; index 0 is one star.
type RatingDistribution [5]int

// Count returns the number of reviews with the given star value.
func (d RatingDistribution) Count(stars int) int {
	if stars < 1 || stars > 5 {
		return 0
	}
	return d[stars-1]
}

// MarshalJSON writes the counts keyed by star value, {"1":n,...,"5":n}.
func (d RatingDistribution) MarshalJSON() ([]byte, error) {
	m := make(map[string]int, len(d))
	for i, n := range d {
		m[strconv.Itoa(i+1)] = n
	}
	return json.Marshal(m)
}

// UnmarshalJSON reads the star-keyed form. Missing stars count zero.
func (d *RatingDistribution) UnmarshalJSON(b []byte) error {
	var m map[string]int
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	var out RatingDistribution
	for k, n := range m {
		stars, err := strconv.Atoi(k)
		if err != nil || stars < 1 || stars > 5 {
			return fmt.Errorf("rating distribution: unexpected star %q", k)
		}
		out[stars-1] = n
	}
	*d = out
	return nil
}

type ReviewStats struct {
	AverageRating    float64            `json:"averageRating"`
	TotalReviews     int                `json:"totalReviews"`
	Distribution     RatingDistribution `json:"distribution"`
	CategoryAverages CategoryAverages   `json:"categoryAverages"`
}

type ReviewSort string

const (
	SortNewest  ReviewSort = "newest"
	SortOldest  ReviewSort = "oldest"
	SortHighest ReviewSort = "highest"
	SortLowest  ReviewSort = "lowest"
	SortHelpful ReviewSort = "helpful"
)

func (s ReviewSort) Valid() bool {
	switch s {
	case SortNewest, SortOldest, SortHighest, SortLowest, SortHelpful:
		return true
	}
	return false
}

// RatingFilter narrows a review list to one star value. Zero means all.
type RatingFilter int

const AllRatings RatingFilter = 0

func (f RatingFilter) Valid() bool { return f >= 0 && f <= 5 }

// ReviewsView is what the storefront renders under a hotel.
type ReviewsView struct {
	Stats ReviewStats `json:"stats"`
	Items []Review    `json:"items"`
	Shown int         `json:"shown"`
	Total int         `json:"total"`
}

// ReviewDraft is the review form as submitted by a guest.
type ReviewDraft struct {
	Rating     int             `json:"rating" validate:"required,gte=1,lte=5"`
	Title      string          `json:"title" validate:"required,notblank,max=200"`
	Comment    string          `json:"comment" validate:"required,notblank,max=5000"`
	RoomType   string          `json:"roomType" validate:"max=200"`
	StayDate   string          `json:"stayDate" validate:"required,datetime=2006-01-02"`
	Photos     []string        `json:"photos" validate:"max=5,dive,photo_url"`
	Categories CategoryRatings `json:"categories"`
}
