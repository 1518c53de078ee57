package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/mjain-dev/stay_booking_system/backend/models"
)

// MongoStore backs the same contract with MongoDB collections.
type MongoStore struct {
	listings *mongo.Collection
	bookings *mongo.Collection
}

func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{
		listings: db.Collection("listings"),
		bookings: db.Collection("bookings"),
	}
}

// EnsureSeeded inserts the fixture catalog when the listings collection is
// empty, so a fresh database serves the same catalog as the memory store.
func (s *MongoStore) EnsureSeeded(ctx context.Context) error {
	count, err := s.listings.CountDocuments(ctx, bson.M{})
	if err != nil {
		return fmt.Errorf("counting listings: %w", err)
	}
	if count > 0 {
		return nil
	}

	fixtures := Fixtures()
	docs := make([]interface{}, 0, len(fixtures))
	for _, listing := range fixtures {
		docs = append(docs, listing)
	}

	if _, err := s.listings.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("seeding listings: %w", err)
	}
	return nil
}

func (s *MongoStore) Listings(ctx context.Context) ([]models.Listing, error) {
	cursor, err := s.listings.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("fetching listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []models.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("decoding listings: %w", err)
	}
	return listings, nil
}

func (s *MongoStore) ListingByID(ctx context.Context, id string) (*models.Listing, error) {
	var listing models.Listing
	err := s.listings.FindOne(ctx, bson.M{"_id": id}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching listing %s: %w", id, err)
	}
	return &listing, nil
}

func (s *MongoStore) AddBooking(ctx context.Context, draft models.BookingDraft) (*models.Booking, error) {
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

	if _, err := s.bookings.InsertOne(ctx, booking); err != nil {
		return nil, fmt.Errorf("inserting booking: %w", err)
	}
	return &booking, nil
}

func (s *MongoStore) BookingByID(ctx context.Context, id string) (*models.Booking, error) {
	var booking models.Booking
	err := s.bookings.FindOne(ctx, bson.M{"_id": id}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetching booking %s: %w", id, err)
	}
	return &booking, nil
}
