package search

import (
	"net/url"
	"strconv"
	"strings"
)

// Sort modes accepted by the search page.
const (
	SortRelevance = "relevance"
	SortPriceLow  = "price-low"
	SortPriceHigh = "price-high"
	SortRating    = "rating"
	SortReviews   = "reviews"
)

// Params holds the optional search filters. Pointer fields distinguish
// "not supplied" from a zero value, so guests=0 or minPrice=0 never gets
// confused with an absent filter.
type Params struct {
	Location     string
	Guests       *int
	MinPrice     *float64
	MaxPrice     *float64
	PropertyType string
	Amenities    []string
	Sort         string
}

// ParseParams reads search filters from a URL query string. Numeric values
// that fail to parse are treated as absent rather than zero, so a garbled
// guests or price value does not exclude every listing.
func ParseParams(query url.Values) Params {
	p := Params{
		Location:     strings.TrimSpace(query.Get("location")),
		PropertyType: strings.TrimSpace(query.Get("propertyType")),
		Sort:         strings.TrimSpace(query.Get("sort")),
	}

	if v := strings.TrimSpace(query.Get("guests")); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.Guests = &n
		}
	}

	if v := strings.TrimSpace(query.Get("minPrice")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.MinPrice = &f
		}
	}

	if v := strings.TrimSpace(query.Get("maxPrice")); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			p.MaxPrice = &f
		}
	}

	// amenities can be repeated and each value can be a comma-separated list
	for _, raw := range query["amenities"] {
		for _, term := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(term); trimmed != "" {
				p.Amenities = append(p.Amenities, trimmed)
			}
		}
	}

	return p
}
