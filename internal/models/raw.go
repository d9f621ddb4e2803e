package models

// RawRecord is one row of scraped input before normalization. Every field is
// free text and any of them may be empty or malformed; Index is the source
// row position and becomes the listing id.
type RawRecord struct {
	Index         int
	Title         string
	Price         string
	Area          string
	Location      string
	Balcony       string
	Elevator      string
	Garage        string
	WindowCount   string
	Year          string
	Door          string
	FloorType     string
	Rooms         string
	Floor         string
	BuildingFloor string
	Description   string
	Date          string
	Views         string
	Images        string
	Link          string
}
