// Package store holds the catalog and booking data behind a narrow
// interface, so the storefront can run on in-memory fixtures while tests
// and deployments swap backends without touching the core logic.
package store

import (
	"context"
	"errors"

	"github.com/mjain-dev/stay_booking_system/backend/models"
)

// ErrNotFound is returned when a listing or booking id does not resolve.
var ErrNotFound = errors.New("not found")

type Store interface {
	Listings(ctx context.Context) ([]models.Listing, error)
	ListingByID(ctx context.Context, id string) (*models.Listing, error)
	AddBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error)
	BookingByID(ctx context.Context, id string) (*models.Booking, error)
}
