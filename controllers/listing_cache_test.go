package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mjain-dev/stay_booking_system/backend/search"
	"github.com/mjain-dev/stay_booking_system/backend/store"
)

func TestGetListings_CacheMissThenHit(t *testing.T) {
	st := store.NewMemoryStore()
	db, mock := redismock.NewClientMock()
	handler := GetListings(st, db, zap.NewNop())

	query := url.Values{"location": {"malibu"}}
	key := searchCacheKey(query)

	listings, err := st.Listings(context.Background())
	require.NoError(t, err)
	expected, err := json.Marshal(search.Query(listings, search.ParseParams(query)))
	require.NoError(t, err)

	// miss: engine runs, result is written back to the cache
	mock.ExpectGet(key).RedisNil()
	mock.ExpectSet(key, expected, searchCacheTTL).SetVal("OK")

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/listings?location=malibu", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(expected), rec.Body.String())

	// hit: served straight from the cache
	mock.ExpectGet(key).SetVal(string(expected))

	rec = httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/listings?location=malibu", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(expected), rec.Body.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchCacheKey_OrderIndependent(t *testing.T) {
	a := searchCacheKey(url.Values{"location": {"malibu"}, "guests": {"2"}})
	b := searchCacheKey(url.Values{"guests": {"2"}, "location": {"malibu"}})
	c := searchCacheKey(url.Values{"location": {"aspen"}, "guests": {"2"}})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGetListings_RedisFailureFallsThrough(t *testing.T) {
	st := store.NewMemoryStore()
	db, mock := redismock.NewClientMock()
	handler := GetListings(st, db, zap.NewNop())

	query := url.Values{}
	key := searchCacheKey(query)

	listings, err := st.Listings(context.Background())
	require.NoError(t, err)
	expected, err := json.Marshal(listings)
	require.NoError(t, err)

	// a broken cache must not break the search
	mock.ExpectGet(key).SetErr(assert.AnError)
	mock.ExpectSet(key, expected, searchCacheTTL).SetErr(assert.AnError)

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/api/listings", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(expected), rec.Body.String())
}
