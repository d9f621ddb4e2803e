package ingest

import (
	"encoding/csv"
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/Khantushig-web/Real-estate-Unegui/internal/models"
)

// columnAliases lists the accepted header names for each canonical field,
// in preference order. The scrape exports have drifted over time, so any
// subset of these columns may be present under any of the listed names.
var columnAliases = map[string][]string{
	"title":          {"Title", "Title(0)"},
	"price":          {"Price", "Price(0)"},
	"area":           {"Area"},
	"location":       {"Location", "Place", "Location Detail"},
	"balcony":        {"Balcony"},
	"elevator":       {"Elevator"},
	"garage":         {"Garage"},
	"window_count":   {"Window Count", "Window"},
	"year":           {"Commissioning Year"},
	"door":           {"Door Type", "Door"},
	"floor_type":     {"Floor Type", "Floor_Type", "Floor"},
	"rooms":          {"Room Count", "Rooms"},
	"floor":          {"Floor Number"},
	"building_floor": {"Building Floor"},
	"description":    {"Description"},
	"date":           {"Published Date", "Date"},
	"views":          {"View Count"},
	"images":         {"images", "Image"},
	"link":           {"Title link", "Link"},
}

// Loader reads raw scraped rows from a CSV export.
type Loader struct {
	path   string
	logger *slog.Logger
}

// NewLoader creates a loader for the given CSV file.
func NewLoader(path string, logger *slog.Logger) *Loader {
	return &Loader{path: path, logger: logger}
}

// Load reads the CSV into raw records. Loading is best-effort: a missing or
// unreadable file yields an empty set and no error (the caller surfaces a
// "no data" state), and malformed lines end the read with whatever parsed
// so far.
func (l *Loader) Load() ([]models.RawRecord, error) {
	f, err := os.Open(l.path)
	if err != nil {
		l.logger.Warn("data file not readable, starting with empty dataset",
			"path", l.path, "error", err)
		return nil, nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		l.logger.Warn("data file has no header row", "path", l.path, "error", err)
		return nil, nil
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, "\uFEFF")
		}
		columns[strings.TrimSpace(name)] = i
	}

	var records []models.RawRecord
	for index := 0; ; index++ {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			l.logger.Warn("stopping CSV read on malformed line",
				"path", l.path, "rows_read", len(records), "error", err)
			break
		}

		records = append(records, models.RawRecord{
			Index:         index,
			Title:         fieldValue(columns, row, "title"),
			Price:         fieldValue(columns, row, "price"),
			Area:          fieldValue(columns, row, "area"),
			Location:      fieldValue(columns, row, "location"),
			Balcony:       fieldValue(columns, row, "balcony"),
			Elevator:      fieldValue(columns, row, "elevator"),
			Garage:        fieldValue(columns, row, "garage"),
			WindowCount:   fieldValue(columns, row, "window_count"),
			Year:          fieldValue(columns, row, "year"),
			Door:          fieldValue(columns, row, "door"),
			FloorType:     fieldValue(columns, row, "floor_type"),
			Rooms:         fieldValue(columns, row, "rooms"),
			Floor:         fieldValue(columns, row, "floor"),
			BuildingFloor: fieldValue(columns, row, "building_floor"),
			Description:   fieldValue(columns, row, "description"),
			Date:          fieldValue(columns, row, "date"),
			Views:         fieldValue(columns, row, "views"),
			Images:        fieldValue(columns, row, "images"),
			Link:          fieldValue(columns, row, "link"),
		})
	}

	l.logger.Info("loaded raw records", "path", l.path, "rows", len(records))
	return records, nil
}

// fieldValue resolves a canonical field against the header, taking the
// first alias whose column holds a non-empty value.
func fieldValue(columns map[string]int, row []string, field string) string {
	for _, alias := range columnAliases[field] {
		idx, ok := columns[alias]
		if !ok || idx >= len(row) {
			continue
		}
		if v := strings.TrimSpace(row[idx]); v != "" {
			return v
		}
	}
	return ""
}
