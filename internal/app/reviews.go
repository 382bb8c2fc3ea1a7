package app

import (
	"cmp"
	"slices"

	"japan_hotel_booking/internal/domain"
)

// ReviewsForHotel selects the reviews written for hotelID, keeping order.
func ReviewsForHotel(all []domain.Review, hotelID string) []domain.Review {
	out := make([]domain.Review, 0)
	for _, r := range all {
		if r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	return out
}

// Statistics aggregates the reviews of one hotel. Averages are not rounded.
func Statistics(all []domain.Review, hotelID string) domain.ReviewStats {
	var (
		st     domain.ReviewStats
		sum    int
		totals domain.CategoryRatings
	)
	for _, r := range all {
		if r.HotelID != hotelID {
			continue
		}
		st.TotalReviews++
		sum += r.Rating
		if r.Rating >= 1 && r.Rating <= 5 {
			st.Distribution[r.Rating-1]++
		}
		totals.Cleanliness += r.Categories.Cleanliness
		totals.Service += r.Categories.Service
		totals.Location += r.Categories.Location
		totals.Value += r.Categories.Value
		totals.Amenities += r.Categories.Amenities
	}
	if st.TotalReviews == 0 {
		return st
	}
	n := float64(st.TotalReviews)
	st.AverageRating = float64(sum) / n
	st.CategoryAverages = domain.CategoryAverages{
		Cleanliness: float64(totals.Cleanliness) / n,
		Service:     float64(totals.Service) / n,
		Location:    float64(totals.Location) / n,
		Value:       float64(totals.Value) / n,
		Amenities:   float64(totals.Amenities) / n,
	}
	return st
}

// SelectAndOrder narrows hotelReviews to one star value (unless filterBy is
// AllRatings) and sorts the result stably. The input is never modified.
func SelectAndOrder(hotelReviews []domain.Review, sortBy domain.ReviewSort, filterBy domain.RatingFilter) []domain.Review {
	out := make([]domain.Review, 0, len(hotelReviews))
	for _, r := range hotelReviews {
		if filterBy != domain.AllRatings && r.Rating != int(filterBy) {
			continue
		}
		out = append(out, r)
	}
	if cmpFn := reviewOrder(sortBy); cmpFn != nil {
		slices.SortStableFunc(out, cmpFn)
	}
	return out
}

func reviewOrder(sortBy domain.ReviewSort) func(a, b domain.Review) int {
	switch sortBy {
	case domain.SortNewest:
		return func(a, b domain.Review) int { return b.CreatedAt.Compare(a.CreatedAt) }
	case domain.SortOldest:
		return func(a, b domain.Review) int { return a.CreatedAt.Compare(b.CreatedAt) }
	case domain.SortHighest:
		return func(a, b domain.Review) int { return cmp.Compare(b.Rating, a.Rating) }
	case domain.SortLowest:
		return func(a, b domain.Review) int { return cmp.Compare(a.Rating, b.Rating) }
	case domain.SortHelpful:
		return func(a, b domain.Review) int { return cmp.Compare(b.Helpful, a.Helpful) }
	}
	return nil
}

// MarkHelpful returns a copy of all with the helpful counter of reviewID
// incremented by one. An unknown id yields an unchanged copy.
func MarkHelpful(all []domain.Review, reviewID string) []domain.Review {
	out := make([]domain.Review, len(all))
	copy(out, all)
	for i := range out {
		if out[i].ID == reviewID {
			out[i].Helpful++
			break
		}
	}
	return out
}
