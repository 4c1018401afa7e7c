package handlers

import (
	"net/url"
	"reflect"
	"testing"
)

func TestFilterFromQueryLenientNumbers(t *testing.T) {
	q := url.Values{}
	q.Set("min_price", "abc")
	q.Set("max_price", "250000")
	q.Set("min_area", "")
	f := filterFromQuery(q)

	if f.MinPrice != nil {
		t.Fatalf("malformed min_price should be dropped, got %v", *f.MinPrice)
	}
	if f.MaxPrice == nil || *f.MaxPrice != 250000 {
		t.Fatalf("valid max_price lost: %v", f.MaxPrice)
	}
	if f.MinArea != nil {
		t.Fatalf("empty min_area should be dropped")
	}
}

func TestFilterFromQueryBooleans(t *testing.T) {
	q := url.Values{}
	q.Set("furnished", "true")
	q.Set("parking", "banana")
	f := filterFromQuery(q)

	if f.Furnished == nil || !*f.Furnished {
		t.Fatalf("furnished=true not parsed")
	}
	if f.Parking != nil {
		t.Fatalf("malformed parking should be dropped, got %v", *f.Parking)
	}
}

func TestRoomsParamSkipsBadEntries(t *testing.T) {
	q := url.Values{}
	q.Set("rooms", "0, 2, x, 4")
	got := roomsParam(q, "rooms")
	want := []int{0, 2, 4}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("rooms = %v, want %v", got, want)
	}
}

func TestBoundsParamRequiresAllCorners(t *testing.T) {
	q := url.Values{}
	q.Set("sw_lat", "43.1")
	q.Set("sw_lng", "76.8")
	q.Set("ne_lat", "43.4")
	if b := boundsParam(q); b != nil {
		t.Fatalf("partial box should be ignored, got %+v", b)
	}

	q.Set("ne_lng", "77.1")
	b := boundsParam(q)
	if b == nil {
		t.Fatal("complete box dropped")
	}
	if b.SWLat != 43.1 || b.NELng != 77.1 {
		t.Fatalf("box corners wrong: %+v", b)
	}
}

func TestFilterFromQueryLimit(t *testing.T) {
	q := url.Values{}
	q.Set("limit", "-5")
	if f := filterFromQuery(q); f.Limit != 0 {
		t.Fatalf("negative limit should be ignored, got %d", f.Limit)
	}

	q.Set("limit", "20")
	if f := filterFromQuery(q); f.Limit != 20 {
		t.Fatalf("limit = %d, want 20", f.Limit)
	}
}
