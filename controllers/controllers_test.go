package controllers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mjain-dev/stay_booking_system/backend/models"
	"github.com/mjain-dev/stay_booking_system/backend/pricing"
	"github.com/mjain-dev/stay_booking_system/backend/routes"
	"github.com/mjain-dev/stay_booking_system/backend/store"
)

func newTestRouter(st store.Store, bookingDelay time.Duration) *mux.Router {
	router := mux.NewRouter()
	routes.Routes(router, st, nil, bookingDelay, zap.NewNop())
	return router
}

func doRequest(router *mux.Router, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetListings_ReturnsFullCatalog(t *testing.T) {
	router := newTestRouter(store.NewMemoryStore(), 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/listings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var listings []models.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	assert.Len(t, listings, len(store.Fixtures()))
}

func TestGetListings_FilterAndSort(t *testing.T) {
	router := newTestRouter(store.NewMemoryStore(), 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/listings?propertyType=cabin&sort=price-low", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var listings []models.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listings))
	require.Len(t, listings, 2)
	assert.LessOrEqual(t, listings[0].Price, listings[1].Price)
	for _, l := range listings {
		assert.Equal(t, "Cabin", l.PropertyType)
	}
}

func TestGetListings_NoMatchesReturnsEmptyArray(t *testing.T) {
	router := newTestRouter(store.NewMemoryStore(), 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/listings?location=atlantis", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestGetListingByID(t *testing.T) {
	router := newTestRouter(store.NewMemoryStore(), 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/listings/1", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var listing models.Listing
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listing))
	assert.Equal(t, "1", listing.ID)

	rec = doRequest(router, httptest.NewRequest(http.MethodGet, "/api/listings/999", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetListingQuote(t *testing.T) {
	st := store.NewMemoryStoreWith([]models.Listing{{ID: "q1", Price: 100}})
	router := newTestRouter(st, 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/listings/q1/quote?checkIn=2024-03-10&checkOut=2024-03-13", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var quote pricing.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 300.0, quote.Subtotal)
	assert.Equal(t, 30.0, quote.ServiceFee)
	assert.Equal(t, 330.0, quote.Total)
}

func TestGetListingQuote_MissingDatesAreZero(t *testing.T) {
	st := store.NewMemoryStoreWith([]models.Listing{{ID: "q1", Price: 100}})
	router := newTestRouter(st, 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/listings/q1/quote", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	var quote pricing.Quote
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &quote))
	assert.Equal(t, pricing.Quote{}, quote)
}

func TestGetListingQuote_ReversedDatesRejected(t *testing.T) {
	st := store.NewMemoryStoreWith([]models.Listing{{ID: "q1", Price: 100}})
	router := newTestRouter(st, 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/listings/q1/quote?checkIn=2024-03-13&checkOut=2024-03-10", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func bookingBody(listingID string) string {
	return `{
		"listingId": "` + listingID + `",
		"guestName": "Ada Lovelace",
		"guestEmail": "ada@example.com",
		"checkIn": "2024-03-10",
		"checkOut": "2024-03-13",
		"guests": 2
	}`
}

func TestCreateBooking_Success(t *testing.T) {
	st := store.NewMemoryStoreWith([]models.Listing{{ID: "b1", Price: 100}})
	router := newTestRouter(st, 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody("b1"))))
	require.Equal(t, http.StatusCreated, rec.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "b1", booking.ListingID)
	assert.Equal(t, models.BookingConfirmed, booking.Status)
	assert.Equal(t, 330.0, booking.TotalPrice) // 3 nights at 100 plus 10% fee
	assert.False(t, booking.CreatedAt.IsZero())

	// confirmation lookup resolves the new booking
	rec = doRequest(router, httptest.NewRequest(http.MethodGet, "/api/bookings/"+booking.ID, nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	router := newTestRouter(store.NewMemoryStore(), 0)

	body := `{"listingId": "1", "guestName": "", "guestEmail": "ada@example.com", "checkIn": "2024-03-10", "checkOut": "2024-03-13"}`
	rec := doRequest(router, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking_InvalidBody(t *testing.T) {
	router := newTestRouter(store.NewMemoryStore(), 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader("{not json")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking_UnknownListing(t *testing.T) {
	router := newTestRouter(store.NewMemoryStore(), 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody("999"))))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateBooking_ReversedDates(t *testing.T) {
	router := newTestRouter(store.NewMemoryStore(), 0)

	body := `{"listingId": "1", "guestName": "Ada", "guestEmail": "ada@example.com", "checkIn": "2024-03-13", "checkOut": "2024-03-10"}`
	rec := doRequest(router, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBooking_ZeroGuestsDefaultsToOne(t *testing.T) {
	st := store.NewMemoryStoreWith([]models.Listing{{ID: "b1", Price: 100}})
	router := newTestRouter(st, 0)

	body := `{"listingId": "b1", "guestName": "Ada", "guestEmail": "ada@example.com", "checkIn": "2024-03-10", "checkOut": "2024-03-13"}`
	rec := doRequest(router, httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &booking))
	assert.Equal(t, 1, booking.Guests)
}

func TestCreateBooking_CancelledDuringDelayCommitsNothing(t *testing.T) {
	st := store.NewMemoryStoreWith([]models.Listing{{ID: "b1", Price: 100}})
	router := newTestRouter(st, 5*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/bookings", strings.NewReader(bookingBody("b1"))).WithContext(ctx)

	rec := doRequest(router, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestGetBookingByID_NotFound(t *testing.T) {
	router := newTestRouter(store.NewMemoryStore(), 0)

	rec := doRequest(router, httptest.NewRequest(http.MethodGet, "/api/bookings/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
