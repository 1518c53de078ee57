package store

import "github.com/mjain-dev/stay_booking_system/backend/models"

// Fixtures returns the static catalog the storefront ships with.
func Fixtures() []models.Listing {
	return []models.Listing{
		{
			ID:          "1",
			Title:       "Luxury Beachfront Villa",
			Description: "Wake up to ocean views in this stunning villa right on the sand. Private pool, chef's kitchen and direct beach access.",
			Location:    "Malibu, California",
			Price:       850,
			Rating:      4.9,
			ReviewCount: 128,
			Images: []string{
				"/images/villa-1.jpg",
				"/images/villa-2.jpg",
				"/images/villa-3.jpg",
			},
			Amenities:    []string{"WiFi", "Pool", "Kitchen", "Parking", "Air Conditioning", "Beach Access"},
			PropertyType: "Villa",
			Bedrooms:     4,
			Bathrooms:    3,
			MaxGuests:    8,
			Host: models.Host{
				Name:      "Sarah Mitchell",
				Avatar:    "/avatars/sarah.jpg",
				Superhost: true,
			},
			Coordinates: models.Coordinates{Lat: 34.0259, Lng: -118.7798},
		},
		{
			ID:          "2",
			Title:       "Cozy Mountain Cabin",
			Description: "A rustic log cabin tucked into the pines, minutes from the ski lifts. Wood-burning fireplace and a hot tub under the stars.",
			Location:    "Aspen, Colorado",
			Price:       320,
			Rating:      4.8,
			ReviewCount: 94,
			Images: []string{
				"/images/cabin-1.jpg",
				"/images/cabin-2.jpg",
			},
			Amenities:    []string{"WiFi", "Kitchen", "Parking", "Hot Tub", "Fireplace", "Mountain View"},
			PropertyType: "Cabin",
			Bedrooms:     2,
			Bathrooms:    1,
			MaxGuests:    4,
			Host: models.Host{
				Name:      "Tom Harris",
				Avatar:    "/avatars/tom.jpg",
				Superhost: false,
			},
			Coordinates: models.Coordinates{Lat: 39.1911, Lng: -106.8175},
		},
		{
			ID:          "3",
			Title:       "Modern Downtown Loft",
			Description: "Industrial-chic loft in the heart of the city. Floor-to-ceiling windows, exposed brick and a short walk to everything.",
			Location:    "New York, New York",
			Price:       275,
			Rating:      4.6,
			ReviewCount: 211,
			Images: []string{
				"/images/loft-1.jpg",
				"/images/loft-2.jpg",
			},
			Amenities:    []string{"WiFi", "Kitchen", "Air Conditioning", "Gym"},
			PropertyType: "Loft",
			Bedrooms:     1,
			Bathrooms:    1,
			MaxGuests:    2,
			Host: models.Host{
				Name:      "Priya Raman",
				Avatar:    "/avatars/priya.jpg",
				Superhost: true,
			},
			Coordinates: models.Coordinates{Lat: 40.7209, Lng: -74.0007},
		},
		{
			ID:          "4",
			Title:       "Charming Garden Cottage",
			Description: "A storybook cottage with a private garden and patio. Quiet neighborhood, ten minutes from the old town.",
			Location:    "Savannah, Georgia",
			Price:       145,
			Rating:      4.7,
			ReviewCount: 67,
			Images: []string{
				"/images/cottage-1.jpg",
			},
			Amenities:    []string{"WiFi", "Kitchen", "Parking", "Air Conditioning"},
			PropertyType: "Cottage",
			Bedrooms:     2,
			Bathrooms:    1,
			MaxGuests:    4,
			Host: models.Host{
				Name:      "Ellen Brooks",
				Avatar:    "/avatars/ellen.jpg",
				Superhost: false,
			},
			Coordinates: models.Coordinates{Lat: 32.0809, Lng: -81.0912},
		},
		{
			ID:          "5",
			Title:       "Skyline Penthouse Suite",
			Description: "Top-floor penthouse with a wraparound terrace and panoramic skyline views. Concierge building with gym and rooftop pool.",
			Location:    "Miami, Florida",
			Price:       680,
			Rating:      4.9,
			ReviewCount: 156,
			Images: []string{
				"/images/penthouse-1.jpg",
				"/images/penthouse-2.jpg",
				"/images/penthouse-3.jpg",
			},
			Amenities:    []string{"WiFi", "Pool", "Kitchen", "Air Conditioning", "Gym", "Parking"},
			PropertyType: "Penthouse",
			Bedrooms:     3,
			Bathrooms:    2,
			MaxGuests:    6,
			Host: models.Host{
				Name:      "Carlos Vega",
				Avatar:    "/avatars/carlos.jpg",
				Superhost: true,
			},
			Coordinates: models.Coordinates{Lat: 25.7617, Lng: -80.1918},
		},
		{
			ID:          "6",
			Title:       "Sunny Studio Apartment",
			Description: "Bright, compact studio near the waterfront. Perfect base for a solo trip or a weekend for two.",
			Location:    "Seattle, Washington",
			Price:       98,
			Rating:      4.4,
			ReviewCount: 45,
			Images: []string{
				"/images/apartment-1.jpg",
			},
			Amenities:    []string{"WiFi", "Kitchen"},
			PropertyType: "Apartment",
			Bedrooms:     1,
			Bathrooms:    1,
			MaxGuests:    2,
			Host: models.Host{
				Name:      "Janet Liu",
				Avatar:    "/avatars/janet.jpg",
				Superhost: false,
			},
			Coordinates: models.Coordinates{Lat: 47.6062, Lng: -122.3321},
		},
		{
			ID:          "7",
			Title:       "Lakeside Family Cabin",
			Description: "Spacious cabin on the lake with a private dock, kayaks and a fire pit. Sleeps the whole family.",
			Location:    "Lake Tahoe, California",
			Price:       410,
			Rating:      4.8,
			ReviewCount: 102,
			Images: []string{
				"/images/lake-cabin-1.jpg",
				"/images/lake-cabin-2.jpg",
			},
			Amenities:    []string{"WiFi", "Kitchen", "Parking", "Fireplace", "Hot Tub", "Mountain View"},
			PropertyType: "Cabin",
			Bedrooms:     3,
			Bathrooms:    2,
			MaxGuests:    8,
			Host: models.Host{
				Name:      "Mike Donovan",
				Avatar:    "/avatars/mike.jpg",
				Superhost: true,
			},
			Coordinates: models.Coordinates{Lat: 39.0968, Lng: -120.0324},
		},
		{
			ID:          "8",
			Title:       "Historic District Apartment",
			Description: "Elegant two-bedroom in a restored 1920s building. High ceilings, original moldings, steps from cafes and galleries.",
			Location:    "Charleston, South Carolina",
			Price:       185,
			Rating:      4.5,
			ReviewCount: 73,
			Images: []string{
				"/images/historic-1.jpg",
				"/images/historic-2.jpg",
			},
			Amenities:    []string{"WiFi", "Kitchen", "Air Conditioning", "Parking"},
			PropertyType: "Apartment",
			Bedrooms:     2,
			Bathrooms:    1,
			MaxGuests:    4,
			Host: models.Host{
				Name:      "Grace Whitfield",
				Avatar:    "/avatars/grace.jpg",
				Superhost: false,
			},
			Coordinates: models.Coordinates{Lat: 32.7765, Lng: -79.9311},
		},
	}
}
