package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "listings.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing temp CSV: %v", err)
	}
	return path
}

func TestLoaderMissingFileYieldsEmptySet(t *testing.T) {
	l := NewLoader(filepath.Join(t.TempDir(), "nope.csv"), newTestLogger())

	records, err := l.Load()
	if err != nil {
		t.Fatalf("missing file should not be an error, got %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty set, got %d records", len(records))
	}
}

func TestLoaderResolvesColumnAliases(t *testing.T) {
	csvData := "Title(0),Price(0),Area,Place,Rooms,Door\n" +
		"Байр зарна,250 сая,54,БГД 10-р хороолол,3 өрөө,Төмөр\n"
	l := NewLoader(writeTempCSV(t, csvData), newTestLogger())

	records, err := l.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	r := records[0]
	if r.Title != "Байр зарна" {
		t.Errorf("Title via Title(0) alias = %q", r.Title)
	}
	if r.Price != "250 сая" {
		t.Errorf("Price via Price(0) alias = %q", r.Price)
	}
	if r.Location != "БГД 10-р хороолол" {
		t.Errorf("Location via Place alias = %q", r.Location)
	}
	if r.Rooms != "3 өрөө" {
		t.Errorf("Rooms via Rooms alias = %q", r.Rooms)
	}
	if r.Door != "Төмөр" {
		t.Errorf("Door via Door alias = %q", r.Door)
	}
}

func TestLoaderPrefersPrimaryAlias(t *testing.T) {
	csvData := "Title,Title(0),Price,Area\n" +
		"Primary,Secondary,300 сая,60\n" +
		",Fallback,280 сая,55\n"
	l := NewLoader(writeTempCSV(t, csvData), newTestLogger())

	records, err := l.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Title != "Primary" {
		t.Errorf("row 0 title = %q; want Primary", records[0].Title)
	}
	// Empty primary column falls through to the next alias.
	if records[1].Title != "Fallback" {
		t.Errorf("row 1 title = %q; want Fallback", records[1].Title)
	}
}

func TestLoaderAssignsRowIndexes(t *testing.T) {
	csvData := "Title,Price,Area\na,1,1\nb,2,2\nc,3,3\n"
	l := NewLoader(writeTempCSV(t, csvData), newTestLogger())

	records, err := l.Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	for i, r := range records {
		if r.Index != i {
			t.Errorf("record %d has index %d", i, r.Index)
		}
	}
}
