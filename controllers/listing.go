package controllers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mjain-dev/stay_booking_system/backend/pricing"
	"github.com/mjain-dev/stay_booking_system/backend/search"
	"github.com/mjain-dev/stay_booking_system/backend/store"
)

const searchCacheTTL = 10 * time.Minute

// GetListings serves the search results. When a Redis client is supplied,
// responses are cached per query string; with a nil client every request
// hits the store directly.
func GetListings(st store.Store, redisClient *redis.Client, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		var cacheKey string
		if redisClient != nil {
			cacheKey = searchCacheKey(query)

			cached, err := redisClient.Get(r.Context(), cacheKey).Result()
			if err == nil {
				logger.Debug("search cache hit", zap.String("key", cacheKey))
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(cached))
				return
			}
			if err != redis.Nil {
				logger.Warn("redis GET failed", zap.String("key", cacheKey), zap.Error(err))
			}
		}

		listings, err := st.Listings(r.Context())
		if err != nil {
			logger.Error("failed to fetch listings", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "error fetching listings")
			return
		}

		results := search.Query(listings, search.ParseParams(query))

		body, err := json.Marshal(results)
		if err != nil {
			logger.Error("failed to encode listings", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to encode response")
			return
		}

		if redisClient != nil {
			if err := redisClient.Set(r.Context(), cacheKey, body, searchCacheTTL).Err(); err != nil {
				logger.Warn("failed to cache search response", zap.String("key", cacheKey), zap.Error(err))
			}
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write(body)
	}
}

func GetListingByID(st store.Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		listing, err := st.ListingByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "listing not found")
			return
		}
		if err != nil {
			logger.Error("failed to fetch listing", zap.String("id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "error fetching listing")
			return
		}

		writeJSON(w, http.StatusOK, listing)
	}
}

// GetListingQuote prices a stay at a listing's nightly rate for the booking
// panel. Missing dates yield an all-zero quote rather than an error.
func GetListingQuote(st store.Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		listing, err := st.ListingByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "listing not found")
			return
		}
		if err != nil {
			logger.Error("failed to fetch listing", zap.String("id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "error fetching listing")
			return
		}

		quote, err := pricing.StayQuote(listing.Price, r.URL.Query().Get("checkIn"), r.URL.Query().Get("checkOut"))
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, quote)
	}
}

// searchCacheKey hashes the sorted query string so equivalent searches share
// a cache entry regardless of parameter order.
func searchCacheKey(queryParams url.Values) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, key := range keys {
		values := queryParams[key]
		sort.Strings(values)
		for _, val := range values {
			sb.WriteString(key)
			sb.WriteString("=")
			sb.WriteString(val)
			sb.WriteString("&")
		}
	}
	rawKey := strings.TrimSuffix(sb.String(), "&")

	sum := sha256.Sum256([]byte(rawKey))
	return "listings:" + hex.EncodeToString(sum[:])
}
