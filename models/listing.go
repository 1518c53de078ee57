package models

type Host struct {
	Name      string `bson:"name" json:"name"`
	Avatar    string `bson:"avatar" json:"avatar"`
	Superhost bool   `bson:"superhost" json:"superhost"`
}

type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

type Listing struct {
	ID           string      `bson:"_id" json:"id"`
	Title        string      `bson:"title" json:"title"`
	Description  string      `bson:"description" json:"description"`
	Location     string      `bson:"location" json:"location"`
	Price        float64     `bson:"price" json:"price"`
	Rating       float64     `bson:"rating" json:"rating"`
	ReviewCount  int         `bson:"reviewCount" json:"reviewCount"`
	Images       []string    `bson:"images" json:"images"`
	Amenities    []string    `bson:"amenities" json:"amenities"`
	PropertyType string      `bson:"propertyType" json:"propertyType"`
	Bedrooms     int         `bson:"bedrooms" json:"bedrooms"`
	Bathrooms    int         `bson:"bathrooms" json:"bathrooms"`
	MaxGuests    int         `bson:"maxGuests" json:"maxGuests"`
	Host         Host        `bson:"host" json:"host"`
	Coordinates  Coordinates `bson:"coordinates" json:"coordinates"`
}
