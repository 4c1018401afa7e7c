package repositories

import "testing"

func TestNullIfEmpty(t *testing.T) {
	tests := []struct {
		name      string
		in        string
		wantValid bool
	}{
		{"empty becomes NULL", "", false},
		{"phone kept", "+77001234567", true},
		{"email kept", "a@b.kz", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nullIfEmpty(tt.in)
			if got.Valid != tt.wantValid {
				t.Fatalf("nullIfEmpty(%q).Valid = %v, want %v", tt.in, got.Valid, tt.wantValid)
			}
			if got.Valid && got.String != tt.in {
				t.Fatalf("nullIfEmpty(%q).String = %q", tt.in, got.String)
			}
		})
	}
}
