package domain_test

import (
	"encoding/json"
	"testing"

	"japan_hotel_booking/internal/domain"
)

func TestRatingDistribution_JSONKeyedByStar(t *testing.T) {
	st := domain.ReviewStats{TotalReviews: 3, Distribution: domain.RatingDistribution{0, 0, 0, 1, 2}}
	b, err := json.Marshal(st)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw struct {
		Distribution map[string]int `json:"distribution"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("distribution should be an object: %s", b)
	}
	want := map[string]int{"1": 0, "2": 0, "3": 0, "4": 1, "5": 2}
	if len(raw.Distribution) != len(want) {
		t.Fatalf("got %v", raw.Distribution)
	}
	for k, n := range want {
		if raw.Distribution[k] != n {
			t.Fatalf("star %s: got %d want %d", k, raw.Distribution[k], n)
		}
	}

	var back domain.ReviewStats
	if err := json.Unmarshal(b, &back); err != nil || back != st {
		t.Fatalf("decode: %+v err=%v", back, err)
	}
}

func TestRatingDistribution_UnmarshalRejectsUnknownStar(t *testing.T) {
	var d domain.RatingDistribution
	if err := json.Unmarshal([]byte(`{"5":1,"6":2}`), &d); err == nil {
		t.Fatalf("expected error for star 6")
	}
	if err := json.Unmarshal([]byte(`{"2":3}`), &d); err != nil || d.Count(2) != 3 || d.Count(5) != 0 {
		t.Fatalf("partial object: %v err=%v", d, err)
	}
}
