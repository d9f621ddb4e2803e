package models

// District is one of the fixed administrative subdivisions of Ulaanbaatar
// covered by the dataset.
type District string

const (
	DistrictSukhbaatar       District = "Sukhbaatar"
	DistrictKhanUul          District = "Khan-Uul"
	DistrictChingeltei       District = "Chingeltei"
	DistrictBayanzurkh       District = "Bayanzurkh"
	DistrictSonginoKhairkhan District = "Songino Khairkhan"
	DistrictBayangol         District = "Bayangol"
	DistrictUnknown          District = "Unknown"
)

// AllDistricts lists every known district, excluding Unknown.
var AllDistricts = []District{
	DistrictSukhbaatar,
	DistrictKhanUul,
	DistrictChingeltei,
	DistrictBayanzurkh,
	DistrictSonginoKhairkhan,
	DistrictBayangol,
}

// Listing is a cleaned, validated property advertisement. Every listing in
// the store has Price > 0, 0 < Area <= 1000 and valid coordinates; rows that
// fail normalization are dropped, never null-filled.
type Listing struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Price          int64    `json:"price"`
	PriceFormatted string   `json:"price_formatted"`
	Location       string   `json:"location,omitempty"`
	District       District `json:"district"`
	Area           float64  `json:"area"`

	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Geohash string  `json:"geohash"`

	// Feature fields keep the scraped free text; counts are parsed out
	// where possible and left nil where the source says nothing.
	Balcony      string `json:"balcony,omitempty"`
	BalconyCount *int   `json:"balcony_count,omitempty"`
	Elevator     string `json:"elevator,omitempty"`
	Garage       string `json:"garage,omitempty"`
	Door         string `json:"door,omitempty"`
	FloorType    string `json:"floor_type,omitempty"`
	Rooms        string `json:"rooms,omitempty"`
	WindowCount  string `json:"window_count,omitempty"`
	Year         string `json:"year,omitempty"`

	// Display-only passthrough.
	Floor         string `json:"floor,omitempty"`
	BuildingFloor string `json:"building_floor,omitempty"`
	Description   string `json:"description,omitempty"`
	Date          string `json:"date,omitempty"`
	Views         string `json:"views,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	Link          string `json:"link,omitempty"`
}

// MarkerColor buckets the price into the map-pin color scale used by the
// dashboard legend.
func (l *Listing) MarkerColor() string {
	switch {
	case l.Price < 200_000_000:
		return "green"
	case l.Price < 400_000_000:
		return "blue"
	case l.Price < 600_000_000:
		return "orange"
	default:
		return "red"
	}
}
