package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mjain-dev/stay_booking_system/backend/models"
)

// MemoryStore serves the fixture catalog and keeps bookings in an
// append-only slice. Listings are immutable after construction; the mutex
// only guards the booking slice.
type MemoryStore struct {
	mu       sync.RWMutex
	listings []models.Listing
	bookings []models.Booking
}

func NewMemoryStore() *MemoryStore {
	return NewMemoryStoreWith(Fixtures())
}

func NewMemoryStoreWith(listings []models.Listing) *MemoryStore {
	return &MemoryStore{listings: listings}
}

func (s *MemoryStore) Listings(_ context.Context) ([]models.Listing, error) {
	out := make([]models.Listing, len(s.listings))
	copy(out, s.listings)
	return out, nil
}

func (s *MemoryStore) ListingByID(_ context.Context, id string) (*models.Listing, error) {
	for _, listing := range s.listings {
		if listing.ID == id {
			found := listing
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) AddBooking(_ context.Context, draft models.BookingDraft) (*models.Booking, error) {
	booking := models.Booking{
		ID:         uuid.NewString(),
		ListingID:  draft.ListingID,
		GuestName:  draft.GuestName,
		GuestEmail: draft.GuestEmail,
		CheckIn:    draft.CheckIn,
		CheckOut:   draft.CheckOut,
		Guests:     draft.Guests,
		TotalPrice: draft.TotalPrice,
		Status:     models.BookingConfirmed,
		CreatedAt:  time.Now().UTC(),
	}

	s.mu.Lock()
	s.bookings = append(s.bookings, booking)
	s.mu.Unlock()

	return &booking, nil
}

func (s *MemoryStore) BookingByID(_ context.Context, id string) (*models.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, booking := range s.bookings {
		if booking.ID == id {
			found := booking
			return &found, nil
		}
	}
	return nil, ErrNotFound
}
