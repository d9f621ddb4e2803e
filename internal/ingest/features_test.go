package ingest

import "testing"

func TestHasFeature(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"Тийм", true},
		{"Байгаа", true},
		{"yes", true},
		{"Тайлбар хэсэгт бий", true},
		{"Үгүй", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := HasFeature(tt.raw); got != tt.want {
			t.Errorf("HasFeature(%q) = %v; want %v", tt.raw, got, tt.want)
		}
	}
}

func TestElevatorTriState(t *testing.T) {
	tests := []struct {
		raw     string
		wantYes bool
		wantNo  bool
	}{
		{"Шаттай", true, false},
		{"shattai", true, false},
		{"Шатгүй", false, true},
		{"shatgui", false, true},
		// Neither marker: unknown, not "no".
		{"мэдээлэл алга", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		if got := IsElevatorYes(tt.raw); got != tt.wantYes {
			t.Errorf("IsElevatorYes(%q) = %v; want %v", tt.raw, got, tt.wantYes)
		}
		if got := IsElevatorNo(tt.raw); got != tt.wantNo {
			t.Errorf("IsElevatorNo(%q) = %v; want %v", tt.raw, got, tt.wantNo)
		}
	}
}

func TestBalconyCount(t *testing.T) {
	two := 2
	zero := 0

	tests := []struct {
		raw  string
		want *int
	}{
		{"2 тагттай", &two},
		{"Тагтгүй", &zero},
		{"тагт гүй", &zero},
		{"no balcony", &zero},
		{"Байгаа", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := BalconyCount(tt.raw)
		switch {
		case got == nil && tt.want != nil:
			t.Errorf("BalconyCount(%q) = nil; want %d", tt.raw, *tt.want)
		case got != nil && tt.want == nil:
			t.Errorf("BalconyCount(%q) = %d; want nil", tt.raw, *got)
		case got != nil && tt.want != nil && *got != *tt.want:
			t.Errorf("BalconyCount(%q) = %d; want %d", tt.raw, *got, *tt.want)
		}
	}
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		raw    string
		want   int
		wantOK bool
	}{
		{"3 өрөө", 3, true},
		{"4", 4, true},
		{"өрөө", 0, false},
		{"", 0, false},
	}

	for _, tt := range tests {
		got, ok := LeadingNumber(tt.raw)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("LeadingNumber(%q) = (%d, %v); want (%d, %v)", tt.raw, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestParseArea(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"56.4 м²", 56.4},
		{"80", 80},
		{"7248", 7248}, // outlier filtering happens in the normalizer
		{"talbai", 0},
		{"", 0},
	}

	for _, tt := range tests {
		if got := parseArea(tt.raw); got != tt.want {
			t.Errorf("parseArea(%q) = %f; want %f", tt.raw, got, tt.want)
		}
	}
}

func TestFirstImageURL(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"https://cdn.unegui.mn/a.jpg", "https://cdn.unegui.mn/a.jpg"},
		{"https://cdn.unegui.mn/a.jpg, https://cdn.unegui.mn/b.jpg", "https://cdn.unegui.mn/a.jpg"},
		{`["https://cdn.unegui.mn/a.jpg"]`, "https://cdn.unegui.mn/a.jpg"},
		{"no image", ""},
		{"", ""},
	}

	for _, tt := range tests {
		if got := firstImageURL(tt.raw); got != tt.want {
			t.Errorf("firstImageURL(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCleanDate(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Өнөөдөр 12:30", "12:30"},
		{"unuudur 09:15", "09:15"},
		{"2024-11-02", "2024-11-02"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := cleanDate(tt.raw); got != tt.want {
			t.Errorf("cleanDate(%q) = %q; want %q", tt.raw, got, tt.want)
		}
	}
}
