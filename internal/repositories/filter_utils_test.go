package repositories

import (
	"strings"
	"testing"

	"turakBack/internal/models"
)

func fptr(v float64) *float64 { return &v }
func iptr(v int) *int         { return &v }
func bptr(v bool) *bool       { return &v }

func TestBuildPropertyWhereEmptyFilter(t *testing.T) {
	where, args := buildPropertyWhere(models.PropertyFilter{})
	if where != "p.archived = FALSE" {
		t.Fatalf("expected archived-only clause, got %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("expected no args, got %v", args)
	}
}

func TestBuildPropertyWhereMinPriceOnly(t *testing.T) {
	where, args := buildPropertyWhere(models.PropertyFilter{MinPrice: fptr(100000)})
	if !strings.Contains(where, "p.price >= $1") {
		t.Fatalf("expected lower price bound, got %q", where)
	}
	if strings.Contains(where, "p.price <=") {
		t.Fatalf("unexpected upper price bound in %q", where)
	}
	if len(args) != 1 || args[0].(float64) != 100000 {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBuildPropertyWhereSearchIsOrAcrossFourColumns(t *testing.T) {
	where, args := buildPropertyWhere(models.PropertyFilter{Search: "Moscow"})
	for _, col := range []string{"p.title ILIKE", "p.address ILIKE", "p.city ILIKE", "p.description ILIKE"} {
		if !strings.Contains(where, col) {
			t.Fatalf("expected %s in %q", col, where)
		}
	}
	if strings.Count(where, " OR ") != 3 {
		t.Fatalf("expected search columns joined with OR, got %q", where)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 pattern args, got %d", len(args))
	}
	if args[0].(string) != "%Moscow%" {
		t.Fatalf("expected substring pattern, got %v", args[0])
	}
}

func TestBuildPropertyWhereRoomBuckets(t *testing.T) {
	where, args := buildPropertyWhere(models.PropertyFilter{Rooms: []int{0, 4}})
	if !strings.Contains(where, "(p.bedrooms = 0 OR p.bedrooms >= 4)") {
		t.Fatalf("expected studio and 4+ buckets, got %q", where)
	}
	if len(args) != 0 {
		t.Fatalf("bucket edges take no args, got %v", args)
	}

	where, args = buildPropertyWhere(models.PropertyFilter{Rooms: []int{2, 3}})
	if !strings.Contains(where, "(p.bedrooms = $1 OR p.bedrooms = $2)") {
		t.Fatalf("expected exact-count buckets, got %q", where)
	}
	if len(args) != 2 || args[0].(int) != 2 || args[1].(int) != 3 {
		t.Fatalf("unexpected args %v", args)
	}
}

func TestBuildPropertyWhereBounds(t *testing.T) {
	f := models.PropertyFilter{
		Bounds: &models.Bounds{SWLat: 55.5, SWLng: 37.3, NELat: 55.9, NELng: 37.9},
	}
	where, args := buildPropertyWhere(f)
	if !strings.Contains(where, "p.latitude BETWEEN $1 AND $2") {
		t.Fatalf("expected latitude bounds, got %q", where)
	}
	if !strings.Contains(where, "p.longitude BETWEEN $3 AND $4") {
		t.Fatalf("expected longitude bounds, got %q", where)
	}
	if len(args) != 4 {
		t.Fatalf("expected 4 args, got %v", args)
	}
}

func TestBuildPropertyWhereCombinesWithAnd(t *testing.T) {
	f := models.PropertyFilter{
		TransactionType: models.TransactionRent,
		PropertyType:    models.PropertyApartment,
		MinPrice:        fptr(40000),
		MaxPrice:        fptr(60000),
		MinBedrooms:     iptr(2),
		Furnished:       bptr(true),
	}
	where, args := buildPropertyWhere(f)
	for _, frag := range []string{
		"p.transaction_type = $1",
		"p.property_type = $2",
		"p.price >= $3",
		"p.price <= $4",
		"p.bedrooms >= $5",
		"p.furnished = $6",
	} {
		if !strings.Contains(where, frag) {
			t.Fatalf("expected %q in %q", frag, where)
		}
	}
	if len(args) != 6 {
		t.Fatalf("expected 6 args, got %d", len(args))
	}
	if strings.Contains(strings.TrimPrefix(where, "p.archived = FALSE AND "), " OR ") {
		t.Fatalf("top-level conditions must be AND-joined: %q", where)
	}
}
