package ingest

import (
	"errors"
	"log/slog"
	"strings"

	"github.com/Khantushig-web/Real-estate-Unegui/internal/geo"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/models"
)

const (
	// maxPlausibleArea rejects unit-error scrapes (values like 7248 m²).
	maxPlausibleArea = 1000
	// maxDescriptionRunes caps the stored description text.
	maxDescriptionRunes = 300
	// defaultTitle replaces a fully missing title field.
	defaultTitle = "Property"
)

var (
	errBadArea        = errors.New("area missing, zero or implausibly large")
	errAmbiguousPrice = errors.New("price in ambiguous per-area/total band")
	errNoPrice        = errors.New("no parseable positive price")
)

// Normalizer turns RawRecords into validated Listings. Rows that fail any
// parsing step are dropped individually; a bad row never aborts the load.
type Normalizer struct {
	logger *slog.Logger
}

// NewNormalizer creates a Normalizer with the given logger.
func NewNormalizer(logger *slog.Logger) *Normalizer {
	return &Normalizer{logger: logger}
}

// Normalize processes raw rows in order and deduplicates the result on
// (title, price, area), keeping the first occurrence. For a fixed input and
// id assignment the output is identical across runs.
func (n *Normalizer) Normalize(raw []models.RawRecord) []models.Listing {
	type dedupeKey struct {
		title string
		price int64
		area  float64
	}

	seen := make(map[dedupeKey]struct{})
	result := make([]models.Listing, 0, len(raw))
	dropped := 0
	duplicates := 0

	for _, rec := range raw {
		listing, err := n.normalizeRecord(rec)
		if err != nil {
			dropped++
			n.logger.Debug("dropping row", "index", rec.Index, "reason", err)
			continue
		}

		key := dedupeKey{title: listing.Title, price: listing.Price, area: listing.Area}
		if _, dup := seen[key]; dup {
			duplicates++
			continue
		}
		seen[key] = struct{}{}

		result = append(result, listing)
	}

	n.logger.Info("normalized listings",
		"raw", len(raw), "kept", len(result), "dropped", dropped, "duplicates", duplicates)
	return result
}

// normalizeRecord applies the field-level cleaning rules to one row.
func (n *Normalizer) normalizeRecord(rec models.RawRecord) (models.Listing, error) {
	area := parseArea(rec.Area)
	if area == 0 || area > maxPlausibleArea {
		return models.Listing{}, errBadArea
	}

	price, err := resolveTotalPrice(parseBasePrice(rec.Price), area)
	if err != nil {
		return models.Listing{}, err
	}
	if price <= 0 {
		return models.Listing{}, errNoPrice
	}

	district := geo.DistrictFromLocation(rec.Location)
	lat, lng := geo.CoordinateFor(district, rec.Index)

	title := strings.TrimSpace(rec.Title)
	if title == "" {
		title = defaultTitle
	}

	return models.Listing{
		ID:             rec.Index,
		Title:          title,
		Price:          price,
		PriceFormatted: models.FormatPrice(price, "mn"),
		Location:       rec.Location,
		District:       district,
		Area:           area,
		Lat:            lat,
		Lng:            lng,
		Geohash:        geo.GeohashFor(lat, lng),
		Balcony:        rec.Balcony,
		BalconyCount:   BalconyCount(rec.Balcony),
		Elevator:       rec.Elevator,
		Garage:         rec.Garage,
		Door:           rec.Door,
		FloorType:      rec.FloorType,
		Rooms:          rec.Rooms,
		WindowCount:    rec.WindowCount,
		Year:           rec.Year,
		Floor:          rec.Floor,
		BuildingFloor:  rec.BuildingFloor,
		Description:    truncateRunes(rec.Description, maxDescriptionRunes),
		Date:           cleanDate(rec.Date),
		Views:          rec.Views,
		ImageURL:       firstImageURL(rec.Images),
		Link:           rec.Link,
	}, nil
}

func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
