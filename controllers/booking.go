package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/mjain-dev/stay_booking_system/backend/models"
	"github.com/mjain-dev/stay_booking_system/backend/pricing"
	"github.com/mjain-dev/stay_booking_system/backend/store"
)

type CreateBookingRequest struct {
	ListingID  string `json:"listingId"`
	GuestName  string `json:"guestName"`
	GuestEmail string `json:"guestEmail"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Guests     int    `json:"guests"`
}

// CreateBooking validates the form, prices the stay server-side and appends
// the booking. The delay simulates submission latency; a request cancelled
// while waiting commits nothing.
func CreateBooking(st store.Store, delay time.Duration, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateBookingRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Warn("invalid booking request body", zap.Error(err))
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}

		req.GuestName = strings.TrimSpace(req.GuestName)
		req.GuestEmail = strings.TrimSpace(req.GuestEmail)
		req.CheckIn = strings.TrimSpace(req.CheckIn)
		req.CheckOut = strings.TrimSpace(req.CheckOut)

		if req.GuestName == "" || req.GuestEmail == "" || req.CheckIn == "" || req.CheckOut == "" {
			writeError(w, http.StatusBadRequest, "guestName, guestEmail, checkIn and checkOut are required")
			return
		}

		listing, err := st.ListingByID(r.Context(), req.ListingID)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "listing not found")
			return
		}
		if err != nil {
			logger.Error("failed to fetch listing", zap.String("id", req.ListingID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "error fetching listing")
			return
		}

		quote, err := pricing.StayQuote(listing.Price, req.CheckIn, req.CheckOut)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		guests := req.Guests
		if guests < 1 {
			guests = 1
		}

		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-r.Context().Done():
				logger.Warn("booking submission cancelled", zap.String("listingId", req.ListingID), zap.Error(r.Context().Err()))
				writeError(w, http.StatusServiceUnavailable, "booking was not completed, please try again")
				return
			}
		}

		booking, err := st.AddBooking(r.Context(), models.BookingDraft{
			ListingID:  listing.ID,
			GuestName:  req.GuestName,
			GuestEmail: req.GuestEmail,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			Guests:     guests,
			TotalPrice: quote.Total,
		})
		if err != nil {
			logger.Error("failed to create booking", zap.String("listingId", req.ListingID), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "booking failed, please try again")
			return
		}

		logger.Info("booking created",
			zap.String("bookingId", booking.ID),
			zap.String("listingId", booking.ListingID),
			zap.Int("nights", quote.Nights),
			zap.Float64("total", booking.TotalPrice),
		)

		writeJSON(w, http.StatusCreated, booking)
	}
}

func GetBookingByID(st store.Store, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		booking, err := st.BookingByID(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "booking not found")
			return
		}
		if err != nil {
			logger.Error("failed to fetch booking", zap.String("id", id), zap.Error(err))
			writeError(w, http.StatusInternalServerError, "error fetching booking")
			return
		}

		writeJSON(w, http.StatusOK, booking)
	}
}
