package models

import "testing"

func TestFormatPriceMongolian(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{1_200_000_000, "₮1.2 тэрбум"},
		{250_000_000, "₮250 сая"},
		{950_000, "₮950,000"},
		{500, "₮500"},
	}

	for _, tt := range tests {
		got := FormatPrice(tt.price, "mn")
		if got != tt.want {
			t.Errorf("FormatPrice(%d, mn) = %q; want %q", tt.price, got, tt.want)
		}
	}
}

func TestFormatPriceUSD(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{3_400_000_000, "$1.00M"},
		{340_000_000, "$100K"},
		{3_400, "$1"},
	}

	for _, tt := range tests {
		got := FormatPrice(tt.price, "en")
		if got != tt.want {
			t.Errorf("FormatPrice(%d, en) = %q; want %q", tt.price, got, tt.want)
		}
	}
}

func TestMarkerColor(t *testing.T) {
	tests := []struct {
		price int64
		want  string
	}{
		{150_000_000, "green"},
		{250_000_000, "blue"},
		{450_000_000, "orange"},
		{800_000_000, "red"},
	}

	for _, tt := range tests {
		l := Listing{Price: tt.price}
		if got := l.MarkerColor(); got != tt.want {
			t.Errorf("MarkerColor() for %d = %q; want %q", tt.price, got, tt.want)
		}
	}
}
