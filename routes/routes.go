package routes

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/mjain-dev/stay_booking_system/backend/controllers"
	"github.com/mjain-dev/stay_booking_system/backend/store"
)

func Routes(router *mux.Router, st store.Store, redisClient *redis.Client, bookingDelay time.Duration, logger *zap.Logger) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	// Listing routes
	api.HandleFunc("/listings", controllers.GetListings(st, redisClient, logger)).Methods("GET")
	api.HandleFunc("/listings/{id}", controllers.GetListingByID(st, logger)).Methods("GET")
	api.HandleFunc("/listings/{id}/quote", controllers.GetListingQuote(st, logger)).Methods("GET")

	// Booking routes
	api.HandleFunc("/bookings", controllers.CreateBooking(st, bookingDelay, logger)).Methods("POST")
	api.HandleFunc("/bookings/{id}", controllers.GetBookingByID(st, logger)).Methods("GET")
}
