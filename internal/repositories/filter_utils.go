package repositories

import (
	"fmt"
	"strings"

	"turakBack/internal/models"
)

// buildPropertyWhere translates a models.PropertyFilter into a WHERE clause
// and its argument list. Provided fields combine with AND; the free-text
// search is an OR across title, address, city and description; the room
// multi-select is an OR across its buckets (0 = studio, 4 = four or more).
// Archived listings are always excluded.
func buildPropertyWhere(f models.PropertyFilter) (string, []interface{}) {
	conds := []string{"p.archived = FALSE"}
	var args []interface{}

	next := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if f.TransactionType != "" {
		conds = append(conds, "p.transaction_type = "+next(f.TransactionType))
	}
	if f.PropertyType != "" {
		conds = append(conds, "p.property_type = "+next(f.PropertyType))
	}
	if f.Search != "" {
		pattern := "%" + f.Search + "%"
		conds = append(conds, fmt.Sprintf(
			"(p.title ILIKE %s OR p.address ILIKE %s OR p.city ILIKE %s OR p.description ILIKE %s)",
			next(pattern), next(pattern), next(pattern), next(pattern)))
	}
	if f.MinPrice != nil {
		conds = append(conds, "p.price >= "+next(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		conds = append(conds, "p.price <= "+next(*f.MaxPrice))
	}
	if f.MinBedrooms != nil {
		conds = append(conds, "p.bedrooms >= "+next(*f.MinBedrooms))
	}
	if f.MaxBedrooms != nil {
		conds = append(conds, "p.bedrooms <= "+next(*f.MaxBedrooms))
	}
	if f.MinBathrooms != nil {
		conds = append(conds, "p.bathrooms >= "+next(*f.MinBathrooms))
	}
	if f.MaxBathrooms != nil {
		conds = append(conds, "p.bathrooms <= "+next(*f.MaxBathrooms))
	}
	if f.MinArea != nil {
		conds = append(conds, "p.area >= "+next(*f.MinArea))
	}
	if f.MaxArea != nil {
		conds = append(conds, "p.area <= "+next(*f.MaxArea))
	}
	if f.PetsAllowed != nil {
		conds = append(conds, "p.pets_allowed = "+next(*f.PetsAllowed))
	}
	if f.HeatingType != "" {
		conds = append(conds, "p.heating_type = "+next(f.HeatingType))
	}
	if f.Parking != nil {
		conds = append(conds, "p.parking = "+next(*f.Parking))
	}
	if f.Furnished != nil {
		conds = append(conds, "p.furnished = "+next(*f.Furnished))
	}
	if f.AirConditioning != nil {
		conds = append(conds, "p.air_conditioning = "+next(*f.AirConditioning))
	}
	if len(f.Rooms) > 0 {
		var buckets []string
		for _, n := range f.Rooms {
			switch {
			case n <= 0:
				// studio
				buckets = append(buckets, "p.bedrooms = 0")
			case n >= 4:
				buckets = append(buckets, "p.bedrooms >= 4")
			default:
				buckets = append(buckets, "p.bedrooms = "+next(n))
			}
		}
		conds = append(conds, "("+strings.Join(buckets, " OR ")+")")
	}
	if f.Bounds != nil {
		conds = append(conds, fmt.Sprintf("p.latitude BETWEEN %s AND %s",
			next(f.Bounds.SWLat), next(f.Bounds.NELat)))
		conds = append(conds, fmt.Sprintf("p.longitude BETWEEN %s AND %s",
			next(f.Bounds.SWLng), next(f.Bounds.NELng)))
	}

	return strings.Join(conds, " AND "), args
}
