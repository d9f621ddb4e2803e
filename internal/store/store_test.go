package store

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Khantushig-web/Real-estate-Unegui/internal/models"
)

func TestSummarize(t *testing.T) {
	listings := []models.Listing{
		{Price: 100, Area: 40},
		{Price: 200, Area: 60},
		{Price: 600, Area: 80},
	}

	got := Summarize(listings)
	if got.Count != 3 {
		t.Errorf("count = %d; want 3", got.Count)
	}
	if got.AveragePrice != 300 {
		t.Errorf("average price = %d; want 300", got.AveragePrice)
	}
	if got.MedianPrice != 200 {
		t.Errorf("median price = %d; want 200", got.MedianPrice)
	}
	if got.AverageArea != 60 {
		t.Errorf("average area = %f; want 60", got.AverageArea)
	}
}

func TestSummarizeEvenCountMedian(t *testing.T) {
	listings := []models.Listing{
		{Price: 100}, {Price: 200}, {Price: 300}, {Price: 400},
	}

	if got := Summarize(listings).MedianPrice; got != 250 {
		t.Errorf("median of even-sized set = %d; want 250", got)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	if got := Summarize(nil); got != (Summary{}) {
		t.Errorf("empty summary = %+v; want zero value", got)
	}
}

func TestFacets(t *testing.T) {
	s := newTestStore(testListings())

	f := s.Facets()
	wantDistricts := []models.District{models.DistrictBayangol, models.DistrictSukhbaatar}
	if !reflect.DeepEqual(f.Districts, wantDistricts) {
		t.Errorf("districts = %v; want %v", f.Districts, wantDistricts)
	}
	if !reflect.DeepEqual(f.DoorTypes, []string{"Бүргэд", "Төмөр"}) {
		t.Errorf("door types = %v", f.DoorTypes)
	}
	if f.PriceMin != 150_000_000 || f.PriceMax != 480_000_000 {
		t.Errorf("price bounds = [%d, %d]", f.PriceMin, f.PriceMax)
	}
	if f.AreaMax != 120 {
		t.Errorf("area max = %f", f.AreaMax)
	}
	// Non-numeric year "шинэ" is ignored for the bounds.
	if f.YearMin != 2015 || f.YearMax != 2021 {
		t.Errorf("year bounds = [%d, %d]", f.YearMin, f.YearMax)
	}
	if !f.HasRoomData || !f.HasWindowData || !f.HasBalconyData {
		t.Errorf("availability flags = %+v", f)
	}
}

func TestReloadFromCSV(t *testing.T) {
	csvData := "Title,Price,Area,Location\n" +
		"Байр А,250 сая,54,БГД\n" +
		"Байр Б,\"15,000,000\",60,СХД\n" // ambiguous price band, dropped

	path := filepath.Join(t.TempDir(), "listings.csv")
	if err := os.WriteFile(path, []byte(csvData), 0o644); err != nil {
		t.Fatal(err)
	}

	s := New(path, newTestLogger())
	if err := s.Reload(); err != nil {
		t.Fatalf("Reload returned error: %v", err)
	}

	if s.Count() != 1 {
		t.Fatalf("count = %d; want 1", s.Count())
	}
	if s.LoadedAt().IsZero() {
		t.Error("LoadedAt not set after reload")
	}

	l, ok := s.Get(0)
	if !ok {
		t.Fatal("listing 0 not found")
	}
	if l.District != models.DistrictBayangol {
		t.Errorf("district = %q; want Bayangol", l.District)
	}
	if l.Price != 250_000_000 {
		t.Errorf("price = %d; want 250000000", l.Price)
	}
}

func TestReloadMissingFileGivesEmptyStore(t *testing.T) {
	s := New(filepath.Join(t.TempDir(), "absent.csv"), newTestLogger())

	if err := s.Reload(); err != nil {
		t.Fatalf("missing file must not fail the reload: %v", err)
	}
	if s.Count() != 0 {
		t.Errorf("count = %d; want 0", s.Count())
	}
}
