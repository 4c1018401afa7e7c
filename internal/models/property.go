package models

import (
	"time"
)

const (
	TransactionSale = "sale"
	TransactionRent = "rent"

	PropertyApartment = "apartment"
	PropertyHouse     = "house"
	PropertyLandPlot  = "land_plot"
)

func IsValidTransactionType(t string) bool {
	return t == TransactionSale || t == TransactionRent
}

func IsValidPropertyType(t string) bool {
	return t == PropertyApartment || t == PropertyHouse || t == PropertyLandPlot
}

type Property struct {
	ID              int     `json:"id"`
	Title           string  `json:"title"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	Address         string  `json:"address"`
	City            string  `json:"city"`
	TransactionType string  `json:"transaction_type"`
	PropertyType    string  `json:"property_type"`
	Bedrooms        int     `json:"bedrooms"`
	Bathrooms       int     `json:"bathrooms"`
	Area            float64 `json:"area"`
	Furnished       bool    `json:"furnished"`
	AirConditioning bool    `json:"air_conditioning"`
	Parking         bool    `json:"parking"`
	PetsAllowed     bool    `json:"pets_allowed"`
	HeatingType     string  `json:"heating_type"`
	Images          []Image `json:"images"`
	UserID          int     `json:"user_id"`
	User            struct {
		ID         int     `json:"id"`
		Name       string  `json:"name"`
		Surname    string  `json:"surname"`
		Phone      string  `json:"phone,omitempty"`
		AvatarPath *string `json:"avatar_path,omitempty"`
	} `json:"user"`
	Views     int        `json:"views"`
	Archived  bool       `json:"archived"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

type Image struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"`
}

// Bounds is a geographic rectangle: south-west and north-east corners.
type Bounds struct {
	SWLat float64 `json:"sw_lat"`
	SWLng float64 `json:"sw_lng"`
	NELat float64 `json:"ne_lat"`
	NELng float64 `json:"ne_lng"`
}

// PropertyFilter is the neutral search predicate built from query params.
// Nil pointer / empty string / empty slice means "no constraint on this
// dimension". All provided fields combine with AND; Search matches as a
// case-insensitive substring across title, address, city and description;
// Rooms is a multi-select where 0 means studio and 4 means "4 or more".
type PropertyFilter struct {
	TransactionType string
	PropertyType    string
	Search          string
	MinPrice        *float64
	MaxPrice        *float64
	MinBedrooms     *int
	MaxBedrooms     *int
	MinBathrooms    *int
	MaxBathrooms    *int
	MinArea         *float64
	MaxArea         *float64
	PetsAllowed     *bool
	HeatingType     string
	Parking         *bool
	Furnished       *bool
	AirConditioning *bool
	Rooms           []int
	Bounds          *Bounds
	Limit           int
}
