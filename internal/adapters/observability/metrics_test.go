package observability_test

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"japan_hotel_booking/internal/adapters/observability"
)

func scrape(t *testing.T) string {
	t.Helper()
	reg := observability.InitRegistry()
	mh := observability.MetricsHandler(reg)
	req := httptest.NewRequest("GET", "/metrics", nil)
	rr := httptest.NewRecorder()
	mh.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("metrics status: %d", rr.Code)
	}
	body, _ := io.ReadAll(rr.Body)
	return string(body)
}

func TestMetricsRegistryAndHandler(t *testing.T) {
	// record samples so the vectors show up in the output
	observability.ObserveHTTP("/test", "GET", 200, 12*time.Millisecond)
	observability.ObserveStore("redis", "get", nil, false)
	observability.ObserveStore("redis", "set", errors.New("boom"), true)
	observability.Bookings.WithLabelValues("confirmed").Inc()

	out := scrape(t)
	for _, want := range []string{
		"storefront_http_requests_total",
		`storefront_store_operations_total{backend="redis",op="get",result="miss"}`,
		`storefront_store_operations_total{backend="redis",op="set",result="error"}`,
		`storefront_bookings_total{status="confirmed"}`,
		"storefront_review_helpful_votes_total",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output", want)
		}
	}
}
