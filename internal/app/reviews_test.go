package app_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"japan_hotel_booking/internal/app"
	"japan_hotel_booking/internal/domain"
	"japan_hotel_booking/internal/shared"
)

func rv(id, hotel string, rating, helpful int, created string) domain.Review {
	ts, err := time.Parse(time.RFC3339, created)
	if err != nil {
		panic(err)
	}
	return domain.Review{
		ID: id, HotelID: hotel, Rating: rating, Helpful: helpful, CreatedAt: ts,
		Categories: domain.CategoryRatings{Cleanliness: rating, Service: rating, Location: rating, Value: rating, Amenities: rating},
	}
}

func ids(rs []domain.Review) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.ID
	}
	return out
}

func TestStatistics_ZeroState(t *testing.T) {
	zero := domain.ReviewStats{}
	if got := app.Statistics(nil, "1"); !reflect.DeepEqual(got, zero) {
		t.Fatalf("empty input: %+v", got)
	}
	if got := app.Statistics(shared.SeedReviews(), "999"); !reflect.DeepEqual(got, zero) {
		t.Fatalf("no match: %+v", got)
	}
}

func TestStatistics_Means(t *testing.T) {
	st := app.Statistics(shared.SeedReviews(), "1")
	if st.TotalReviews != 3 {
		t.Fatalf("total: %d", st.TotalReviews)
	}
	if math.Abs(st.AverageRating-14.0/3.0) > 1e-9 {
		t.Fatalf("average should not be rounded, got %v", st.AverageRating)
	}
	want := domain.RatingDistribution{0, 0, 0, 1, 2}
	if st.Distribution != want {
		t.Fatalf("distribution: %v", st.Distribution)
	}
	if st.Distribution.Count(5) != 2 || st.Distribution.Count(4) != 1 {
		t.Fatalf("count accessor: %v", st.Distribution)
	}
}

func TestStatistics_CategoryAverage(t *testing.T) {
	all := []domain.Review{
		rv("a", "h", 5, 0, "2024-01-01T00:00:00Z"),
		rv("b", "h", 4, 0, "2024-01-02T00:00:00Z"),
		rv("c", "h", 3, 0, "2024-01-03T00:00:00Z"),
		rv("x", "other", 1, 0, "2024-01-03T00:00:00Z"),
	}
	st := app.Statistics(all, "h")
	if st.CategoryAverages.Cleanliness != 4.0 || st.AverageRating != 4.0 {
		t.Fatalf("unexpected stats: %+v", st)
	}
}

func TestSelectAndOrder_Sorts(t *testing.T) {
	in := []domain.Review{
		rv("a", "h", 3, 1, "2024-01-02T00:00:00Z"),
		rv("b", "h", 5, 9, "2024-01-01T00:00:00Z"),
		rv("c", "h", 5, 4, "2024-01-03T00:00:00Z"),
		rv("d", "h", 1, 9, "2024-01-04T00:00:00Z"),
	}
	orig := append([]domain.Review(nil), in...)

	cases := []struct {
		sort domain.ReviewSort
		want []string
	}{
		{domain.SortNewest, []string{"d", "c", "a", "b"}},
		{domain.SortOldest, []string{"b", "a", "c", "d"}},
		{domain.SortHighest, []string{"b", "c", "a", "d"}},
		{domain.SortLowest, []string{"d", "a", "b", "c"}},
		{domain.SortHelpful, []string{"b", "d", "c", "a"}},
		{domain.ReviewSort("bogus"), []string{"a", "b", "c", "d"}},
	}
	for _, tc := range cases {
		t.Run(string(tc.sort), func(t *testing.T) {
			got := ids(app.SelectAndOrder(in, tc.sort, domain.AllRatings))
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v want %v", got, tc.want)
			}
		})
	}
	if !reflect.DeepEqual(in, orig) {
		t.Fatalf("input was modified")
	}
}

func TestSelectAndOrder_IdempotentAndFilter(t *testing.T) {
	seed := app.ReviewsForHotel(shared.SeedReviews(), "1")

	once := app.SelectAndOrder(seed, domain.SortNewest, domain.AllRatings)
	twice := app.SelectAndOrder(once, domain.SortNewest, domain.AllRatings)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Fatalf("resorting changed order: %v vs %v", ids(once), ids(twice))
	}

	filtered := app.SelectAndOrder(seed, domain.SortHelpful, 5)
	sortedFirst := app.SelectAndOrder(app.SelectAndOrder(seed, domain.SortHelpful, domain.AllRatings), domain.SortHelpful, 5)
	if !reflect.DeepEqual(ids(filtered), ids(sortedFirst)) {
		t.Fatalf("filter/sort composition differs: %v vs %v", ids(filtered), ids(sortedFirst))
	}
	if !reflect.DeepEqual(ids(filtered), []string{"review_3", "review_1"}) {
		t.Fatalf("unexpected: %v", ids(filtered))
	}

	if got := app.SelectAndOrder(seed, domain.SortNewest, 2); got == nil || len(got) != 0 {
		t.Fatalf("no matches should give an empty, non-nil slice: %#v", got)
	}
}

func TestMarkHelpful(t *testing.T) {
	all := shared.SeedReviews()
	before := shared.SeedReviews()

	out := app.MarkHelpful(all, "review_2")
	for i := range out {
		want := before[i]
		if out[i].ID == "review_2" {
			want.Helpful++
		}
		if !reflect.DeepEqual(out[i], want) {
			t.Fatalf("review %s changed unexpectedly: %+v", out[i].ID, out[i])
		}
	}
	if !reflect.DeepEqual(all, before) {
		t.Fatalf("input was modified")
	}

	if got := app.MarkHelpful(all, "missing"); !reflect.DeepEqual(got, before) {
		t.Fatalf("unknown id should leave the collection unchanged")
	}
}

func TestReviewsForHotel_KeepsOrder(t *testing.T) {
	got := ids(app.ReviewsForHotel(shared.SeedReviews(), "2"))
	if !reflect.DeepEqual(got, []string{"review_4", "review_5"}) {
		t.Fatalf("got %v", got)
	}
	if got := app.ReviewsForHotel(nil, "2"); got == nil {
		t.Fatalf("expected empty, non-nil slice")
	}
}
