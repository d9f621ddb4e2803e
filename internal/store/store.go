// Package store owns the normalized listing dataset: an explicit in-memory
// cache built once per load and handed out as immutable snapshots. Filtering
// is a pure projection and safe to run concurrently against one snapshot.
package store

import (
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Khantushig-web/Real-estate-Unegui/internal/ingest"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/metrics"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/models"
)

// Store holds the normalized listings and the dataset-wide availability
// flags the filter evaluator needs.
type Store struct {
	loader     *ingest.Loader
	normalizer *ingest.Normalizer
	logger     *slog.Logger

	mu       sync.RWMutex
	listings []models.Listing
	loadedAt time.Time

	hasRoomData    bool
	hasWindowData  bool
	hasBalconyData bool
}

// New creates a store reading from the given CSV file. The dataset is empty
// until Reload is called.
func New(dataFile string, logger *slog.Logger) *Store {
	return &Store{
		loader:     ingest.NewLoader(dataFile, logger),
		normalizer: ingest.NewNormalizer(logger),
		logger:     logger,
	}
}

// Reload re-reads the data file, rebuilds the normalized set and swaps it
// in atomically. Readers keep whatever snapshot they already hold.
func (s *Store) Reload() error {
	raw, err := s.loader.Load()
	if err != nil {
		metrics.DatasetLoads.WithLabelValues("error").Inc()
		return fmt.Errorf("loading raw records: %w", err)
	}

	s.replace(s.normalizer.Normalize(raw))

	metrics.DatasetLoads.WithLabelValues("success").Inc()
	metrics.ListingsLoaded.Set(float64(s.Count()))
	return nil
}

// replace installs a new normalized set and recomputes which optional
// fields carry any usable data.
func (s *Store) replace(listings []models.Listing) {
	var rooms, windows, balconies bool
	for i := range listings {
		if _, ok := ingest.LeadingNumber(listings[i].Rooms); ok {
			rooms = true
		}
		if _, ok := ingest.LeadingNumber(listings[i].WindowCount); ok {
			windows = true
		}
		if listings[i].BalconyCount != nil {
			balconies = true
		}
	}

	s.mu.Lock()
	s.listings = listings
	s.loadedAt = time.Now()
	s.hasRoomData = rooms
	s.hasWindowData = windows
	s.hasBalconyData = balconies
	s.mu.Unlock()
}

// Listings returns the current snapshot. Callers must treat it as
// read-only.
func (s *Store) Listings() []models.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.listings
}

// Get returns the listing with the given id.
func (s *Store) Get(id int) (models.Listing, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.listings {
		if s.listings[i].ID == id {
			return s.listings[i], true
		}
	}
	return models.Listing{}, false
}

// Count returns the number of listings in the current snapshot.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.listings)
}

// LoadedAt returns when the current snapshot was built.
func (s *Store) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

// Summary aggregates display statistics over a listing set.
type Summary struct {
	Count        int     `json:"count"`
	AveragePrice int64   `json:"average_price"`
	MedianPrice  int64   `json:"median_price"`
	AverageArea  float64 `json:"average_area"`
}

// Summarize computes the dashboard header statistics for a listing set.
func Summarize(listings []models.Listing) Summary {
	if len(listings) == 0 {
		return Summary{}
	}

	var priceSum int64
	var areaSum float64
	prices := make([]int64, 0, len(listings))
	for i := range listings {
		priceSum += listings[i].Price
		areaSum += listings[i].Area
		prices = append(prices, listings[i].Price)
	}

	sort.Slice(prices, func(i, j int) bool { return prices[i] < prices[j] })
	median := prices[len(prices)/2]
	if len(prices)%2 == 0 {
		median = (prices[len(prices)/2-1] + prices[len(prices)/2]) / 2
	}

	return Summary{
		Count:        len(listings),
		AveragePrice: priceSum / int64(len(listings)),
		MedianPrice:  median,
		AverageArea:  areaSum / float64(len(listings)),
	}
}

// Facets describes the filter-control options and bounds derivable from the
// current dataset.
type Facets struct {
	Districts  []models.District `json:"districts"`
	DoorTypes  []string          `json:"door_types"`
	FloorTypes []string          `json:"floor_types"`

	PriceMin int64   `json:"price_min"`
	PriceMax int64   `json:"price_max"`
	AreaMax  float64 `json:"area_max"`
	YearMin  int     `json:"year_min,omitempty"`
	YearMax  int     `json:"year_max,omitempty"`

	HasRoomData    bool `json:"has_room_data"`
	HasWindowData  bool `json:"has_window_data"`
	HasBalconyData bool `json:"has_balcony_data"`
}

// Facets extracts the option lists and slider bounds for the current
// snapshot.
func (s *Store) Facets() Facets {
	s.mu.RLock()
	listings := s.listings
	f := Facets{
		HasRoomData:    s.hasRoomData,
		HasWindowData:  s.hasWindowData,
		HasBalconyData: s.hasBalconyData,
	}
	s.mu.RUnlock()

	districts := make(map[models.District]struct{})
	doors := make(map[string]struct{})
	floors := make(map[string]struct{})

	for i := range listings {
		l := &listings[i]
		districts[l.District] = struct{}{}
		if l.Door != "" {
			doors[l.Door] = struct{}{}
		}
		if l.FloorType != "" {
			floors[l.FloorType] = struct{}{}
		}

		if f.PriceMin == 0 || l.Price < f.PriceMin {
			f.PriceMin = l.Price
		}
		if l.Price > f.PriceMax {
			f.PriceMax = l.Price
		}
		if l.Area > f.AreaMax {
			f.AreaMax = l.Area
		}
		if y, ok := numericYear(l.Year); ok {
			if f.YearMin == 0 || y < f.YearMin {
				f.YearMin = y
			}
			if y > f.YearMax {
				f.YearMax = y
			}
		}
	}

	for d := range districts {
		f.Districts = append(f.Districts, d)
	}
	sort.Slice(f.Districts, func(i, j int) bool { return f.Districts[i] < f.Districts[j] })
	for d := range doors {
		f.DoorTypes = append(f.DoorTypes, d)
	}
	sort.Strings(f.DoorTypes)
	for fl := range floors {
		f.FloorTypes = append(f.FloorTypes, fl)
	}
	sort.Strings(f.FloorTypes)

	return f
}
