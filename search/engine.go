package search

import (
	"sort"
	"strings"

	"github.com/mjain-dev/stay_booking_system/backend/models"
)

// Query filters and sorts the catalog. All supplied filters must pass; a
// filter left unset is skipped. The input slice is never mutated and the
// result is always a fresh, non-nil slice. Sorting is stable: listings with
// an equal sort key keep their filtered order.
func Query(listings []models.Listing, p Params) []models.Listing {
	results := make([]models.Listing, 0, len(listings))
	for _, listing := range listings {
		if matches(listing, p) {
			results = append(results, listing)
		}
	}

	switch p.Sort {
	case SortPriceLow:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price < results[j].Price
		})
	case SortPriceHigh:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Price > results[j].Price
		})
	case SortRating:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].Rating > results[j].Rating
		})
	case SortReviews:
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].ReviewCount > results[j].ReviewCount
		})
	default:
		// relevance: keep filtered order
	}

	return results
}

func matches(listing models.Listing, p Params) bool {
	if p.Location != "" {
		needle := strings.ToLower(p.Location)
		if !strings.Contains(strings.ToLower(listing.Location), needle) &&
			!strings.Contains(strings.ToLower(listing.Title), needle) {
			return false
		}
	}

	if p.Guests != nil && listing.MaxGuests < *p.Guests {
		return false
	}

	if p.MinPrice != nil && listing.Price < *p.MinPrice {
		return false
	}

	if p.MaxPrice != nil && listing.Price > *p.MaxPrice {
		return false
	}

	// The storefront lower-cases the selected type before sending it, while
	// the catalog keeps mixed case, so the comparison must fold case.
	if p.PropertyType != "" && !strings.EqualFold(listing.PropertyType, p.PropertyType) {
		return false
	}

	for _, amenity := range p.Amenities {
		if !hasAmenity(listing.Amenities, amenity) {
			return false
		}
	}

	return true
}

func hasAmenity(amenities []string, want string) bool {
	for _, a := range amenities {
		if a == want {
			return true
		}
	}
	return false
}
