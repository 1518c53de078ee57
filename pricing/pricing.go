// Package pricing computes the price breakdown for a stay: number of
// nights, subtotal, the 10% service fee and the grand total.
package pricing

import (
	"errors"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// ServiceFeeRate is the surcharge applied to the stay subtotal.
const ServiceFeeRate = 0.10

// ErrReversedDates is returned when the check-out date falls before the
// check-in date.
var ErrReversedDates = errors.New("check-out date is before check-in date")

type Quote struct {
	Nights     int     `json:"nights"`
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"serviceFee"`
	Total      float64 `json:"total"`
}

// StayQuote prices a stay at the given nightly rate. Dates are YYYY-MM-DD
// strings; if either is missing or unparseable the quote is all zeros with
// no error, which is the signal callers use to suppress the price
// breakdown. The service fee is rounded to the nearest whole currency unit.
func StayQuote(nightlyRate float64, checkIn, checkOut string) (Quote, error) {
	start, errIn := time.Parse(dateLayout, checkIn)
	end, errOut := time.Parse(dateLayout, checkOut)
	if errIn != nil || errOut != nil {
		return Quote{}, nil
	}

	if end.Before(start) {
		return Quote{}, ErrReversedDates
	}

	nights := int(end.Sub(start).Hours() / 24)
	subtotal := nightlyRate * float64(nights)
	serviceFee := math.Round(subtotal * ServiceFeeRate)

	return Quote{
		Nights:     nights,
		Subtotal:   subtotal,
		ServiceFee: serviceFee,
		Total:      subtotal + serviceFee,
	}, nil
}
