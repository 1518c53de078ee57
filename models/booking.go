package models

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

type Booking struct {
	ID         string        `bson:"_id" json:"id"`
	ListingID  string        `bson:"listingId" json:"listingId"`
	GuestName  string        `bson:"guestName" json:"guestName"`
	GuestEmail string        `bson:"guestEmail" json:"guestEmail"`
	CheckIn    string        `bson:"checkIn" json:"checkIn"`
	CheckOut   string        `bson:"checkOut" json:"checkOut"`
	Guests     int           `bson:"guests" json:"guests"`
	TotalPrice float64       `bson:"totalPrice" json:"totalPrice"`
	Status     BookingStatus `bson:"status" json:"status"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
}

// BookingDraft is a booking before the store has assigned its identity.
type BookingDraft struct {
	ListingID  string
	GuestName  string
	GuestEmail string
	CheckIn    string
	CheckOut   string
	Guests     int
	TotalPrice float64
}
