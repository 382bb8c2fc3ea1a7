// internal/adapters/http_server/handlers.go
package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"japan_hotel_booking/internal/app"
	"japan_hotel_booking/internal/domain"
)

type Handlers struct {
	Q         *app.QueryService
	Reviews   *app.ReviewService
	Bookings  *app.BookingService
	Favorites *app.FavoritesService
	Prefs     *app.PreferencesService
}

type problem struct {
	Type   string            `json:"type"`
	Title  string            `json:"title"`
	Status int               `json:"status"`
	Detail string            `json:"detail,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/hotels", h.searchHotels)
		r.Get("/hotels/{id}", h.getHotel)
		r.Get("/hotels/{id}/reviews", h.listReviews)
		r.Post("/hotels/{id}/reviews", h.submitReview)
		r.Get("/hotels/{id}/reviews/stats", h.reviewStats)
		r.Post("/reviews/{id}/helpful", h.markHelpful)

		r.Get("/favorites", h.listFavorites)
		r.Post("/favorites/{hotelId}/toggle", h.toggleFavorite)

		r.Get("/bookings", h.listBookings)
		r.Post("/bookings", h.createBooking)
		r.Post("/bookings/{id}/cancel", h.cancelBooking)

		r.Get("/preferences", h.getPreferences)
		r.Put("/preferences", h.putPreferences)
		r.Post("/preferences/language/toggle", h.toggleLanguage)
		r.Post("/preferences/theme/toggle", h.toggleTheme)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemFields(w, status, title, detail, nil)
}

func writeProblemFields(w http.ResponseWriter, status int, title, detail string, fields map[string]string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	p := problem{Type: "about:blank", Title: title, Status: status, Detail: detail, Errors: fields}
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps service errors onto problem responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		writeProblemFields(w, http.StatusBadRequest, "Validation Failed", "one or more fields are invalid", ve.Fields)
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", err.Error())
	default:
		log.Error().Err(err).Str("path", r.URL.Path).Msg("request failed")
		writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(io.LimitReader(r.Body, 1<<20))
	if err := dec.Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return false
	}
	return true
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

/********** hotels **********/

var searchParams = []string{"location", "guests", "min_price", "max_price", "check_in", "check_out", "amenities"}

// parseSearch returns nil criteria when no search parameter is present.
// Missing parameters take the storefront form defaults.
func parseSearch(r *http.Request) (*domain.SearchFilters, *domain.ValidationError) {
	q := r.URL.Query()
	present := false
	for _, p := range searchParams {
		if q.Has(p) {
			present = true
			break
		}
	}
	if !present {
		return nil, nil
	}

	f := domain.DefaultSearchFilters()
	fields := map[string]string{}
	f.Location = strings.TrimSpace(q.Get("location"))
	f.CheckIn = q.Get("check_in")
	f.CheckOut = q.Get("check_out")
	if v := q.Get("amenities"); v != "" {
		for _, a := range strings.Split(v, ",") {
			if a = strings.TrimSpace(a); a != "" {
				f.Amenities = append(f.Amenities, a)
			}
		}
	}
	if v := q.Get("guests"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			fields["guests"] = "Must be a non-negative integer"
		} else {
			f.Guests = n
		}
	}
	for i, p := range []string{"min_price", "max_price"} {
		if v := q.Get(p); v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil || n < 0 {
				fields[p] = "Must be a non-negative integer"
				continue
			}
			f.PriceRange[i] = n
		}
	}
	if len(fields) > 0 {
		return nil, &domain.ValidationError{Fields: fields}
	}
	return &f, nil
}

func (h *Handlers) searchHotels(w http.ResponseWriter, r *http.Request) {
	criteria, verr := parseSearch(r)
	if verr != nil {
		writeError(w, r, verr)
		return
	}
	writeJSON(w, http.StatusOK, h.Q.SearchHotels(r.Context(), criteria))
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	hotel, err := h.Q.GetHotel(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	etag, body := calcETagAndBody(hotel)
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}

	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write getHotel body")
	}
}

/********** reviews **********/

func parseRating(s string) (domain.RatingFilter, bool) {
	if s == "" || s == "all" {
		return domain.AllRatings, true
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	f := domain.RatingFilter(n)
	return f, f != domain.AllRatings && f.Valid()
}

func (h *Handlers) listReviews(w http.ResponseWriter, r *http.Request) {
	sortBy := domain.ReviewSort(r.URL.Query().Get("sort"))
	if sortBy == "" {
		sortBy = domain.SortNewest
	}
	if !sortBy.Valid() {
		writeError(w, r, domain.Invalid("sort", "Must be one of newest, oldest, highest, lowest, helpful"))
		return
	}
	rating, ok := parseRating(r.URL.Query().Get("rating"))
	if !ok {
		writeError(w, r, domain.Invalid("rating", "Must be all or 1 to 5"))
		return
	}

	view, err := h.Q.HotelReviews(r.Context(), chi.URLParam(r, "id"), sortBy, rating)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

func (h *Handlers) reviewStats(w http.ResponseWriter, r *http.Request) {
	st, err := h.Q.HotelStats(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

func (h *Handlers) submitReview(w http.ResponseWriter, r *http.Request) {
	var d domain.ReviewDraft
	if !decodeBody(w, r, &d) {
		return
	}
	rv, err := h.Reviews.SubmitReview(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "id"), d)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, rv)
}

func (h *Handlers) markHelpful(w http.ResponseWriter, r *http.Request) {
	rv, err := h.Reviews.MarkHelpful(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rv)
}

/********** favorites **********/

func (h *Handlers) listFavorites(w http.ResponseWriter, r *http.Request) {
	hotels, err := h.Q.Favorites(r.Context(), UserFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, hotels)
}

func (h *Handlers) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "hotelId")
	fav, err := h.Favorites.ToggleFavorite(r.Context(), UserFrom(r.Context()), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"hotelId": id, "favorite": fav})
}

/********** bookings **********/

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	bs, err := h.Bookings.ListBookings(r.Context(), UserFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, bs)
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var req domain.BookingRequest
	if !decodeBody(w, r, &req) {
		return
	}
	b, err := h.Bookings.CreateBooking(r.Context(), UserFrom(r.Context()), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handlers) cancelBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.Bookings.CancelBooking(r.Context(), UserFrom(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

/********** preferences **********/

func (h *Handlers) getPreferences(w http.ResponseWriter, r *http.Request) {
	p, err := h.Prefs.Get(r.Context(), UserFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) putPreferences(w http.ResponseWriter, r *http.Request) {
	var p domain.Preferences
	if !decodeBody(w, r, &p) {
		return
	}
	out, err := h.Prefs.Set(r.Context(), UserFrom(r.Context()), p)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) toggleLanguage(w http.ResponseWriter, r *http.Request) {
	p, err := h.Prefs.ToggleLanguage(r.Context(), UserFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (h *Handlers) toggleTheme(w http.ResponseWriter, r *http.Request) {
	p, err := h.Prefs.ToggleTheme(r.Context(), UserFrom(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}
