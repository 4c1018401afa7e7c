package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"turakBack/internal/models"
)

// pathID reads a pat-style path parameter (":id") as an int.
func pathID(r *http.Request, name string) (int, error) {
	id, err := strconv.Atoi(r.URL.Query().Get(":" + name))
	if err != nil || id < 1 {
		return 0, models.ErrValidation
	}
	return id, nil
}

// Query parsing is lenient on purpose: a malformed numeric or boolean value
// is treated as if the parameter was not sent at all, so a bad "min_price"
// never fails the whole listing request.

func floatParam(q url.Values, name string) *float64 {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

func intParam(q url.Values, name string) *int {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &v
}

func boolParam(q url.Values, name string) *bool {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

// roomsParam accepts a comma separated list ("1,2,4"); malformed entries are
// skipped rather than rejecting the list.
func roomsParam(q url.Values, name string) []int {
	raw := strings.TrimSpace(q.Get(name))
	if raw == "" {
		return nil
	}
	var rooms []int
	for _, part := range strings.Split(raw, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		rooms = append(rooms, n)
	}
	return rooms
}

// boundsParam requires all four corners; a partial or malformed box is
// ignored.
func boundsParam(q url.Values) *models.Bounds {
	swLat := floatParam(q, "sw_lat")
	swLng := floatParam(q, "sw_lng")
	neLat := floatParam(q, "ne_lat")
	neLng := floatParam(q, "ne_lng")
	if swLat == nil || swLng == nil || neLat == nil || neLng == nil {
		return nil
	}
	return &models.Bounds{SWLat: *swLat, SWLng: *swLng, NELat: *neLat, NELng: *neLng}
}

func filterFromQuery(q url.Values) models.PropertyFilter {
	f := models.PropertyFilter{
		TransactionType: strings.TrimSpace(q.Get("transaction_type")),
		PropertyType:    strings.TrimSpace(q.Get("property_type")),
		Search:          strings.TrimSpace(q.Get("search")),
		HeatingType:     strings.TrimSpace(q.Get("heating_type")),
		MinPrice:        floatParam(q, "min_price"),
		MaxPrice:        floatParam(q, "max_price"),
		MinBedrooms:     intParam(q, "min_bedrooms"),
		MaxBedrooms:     intParam(q, "max_bedrooms"),
		MinBathrooms:    intParam(q, "min_bathrooms"),
		MaxBathrooms:    intParam(q, "max_bathrooms"),
		MinArea:         floatParam(q, "min_area"),
		MaxArea:         floatParam(q, "max_area"),
		PetsAllowed:     boolParam(q, "pets_allowed"),
		Parking:         boolParam(q, "parking"),
		Furnished:       boolParam(q, "furnished"),
		AirConditioning: boolParam(q, "air_conditioning"),
		Rooms:           roomsParam(q, "rooms"),
		Bounds:          boundsParam(q),
	}
	if limit := intParam(q, "limit"); limit != nil && *limit > 0 {
		f.Limit = *limit
	}
	return f
}
