package store

import (
	"strconv"

	"github.com/Khantushig-web/Real-estate-Unegui/internal/ingest"
	"github.com/Khantushig-web/Real-estate-Unegui/internal/models"
)

// TriState is a yes/no/any filter value. The zero value means "any".
type TriState string

const (
	TriAny TriState = ""
	TriYes TriState = "yes"
	TriNo  TriState = "no"
)

// FilterParams holds the user-selected constraints. Nil bounds and empty
// strings mean "not constrained". All active constraints are ANDed.
type FilterParams struct {
	Districts []models.District

	MinPrice *int64
	MaxPrice *int64
	MinArea  *float64
	MaxArea  *float64
	MinYear  *int
	MaxYear  *int

	Elevator  TriState
	Garage    TriState
	Door      string
	FloorType string

	MinRooms     *int
	MaxRooms     *int
	MinBalconies *int
	MaxBalconies *int
	MinWindows   *int
	MaxWindows   *int
}

// Filter returns the listings matching the constraints. Count constraints
// (rooms, balconies, windows) are skipped entirely when no record in the
// dataset carries usable data for that field; otherwise a record without a
// parseable value fails the active constraint.
func (s *Store) Filter(p FilterParams) []models.Listing {
	s.mu.RLock()
	listings := s.listings
	roomData := s.hasRoomData
	windowData := s.hasWindowData
	balconyData := s.hasBalconyData
	s.mu.RUnlock()

	var districts map[models.District]struct{}
	if len(p.Districts) > 0 {
		districts = make(map[models.District]struct{}, len(p.Districts))
		for _, d := range p.Districts {
			districts[d] = struct{}{}
		}
	}

	out := make([]models.Listing, 0, len(listings))
	for i := range listings {
		l := &listings[i]

		if districts != nil {
			if _, ok := districts[l.District]; !ok {
				continue
			}
		}
		if p.MinPrice != nil && l.Price < *p.MinPrice {
			continue
		}
		if p.MaxPrice != nil && l.Price > *p.MaxPrice {
			continue
		}
		if p.MinArea != nil && l.Area < *p.MinArea {
			continue
		}
		if p.MaxArea != nil && l.Area > *p.MaxArea {
			continue
		}
		if !matchYear(l.Year, p.MinYear, p.MaxYear) {
			continue
		}
		if !matchElevator(l.Elevator, p.Elevator) {
			continue
		}
		if !matchGarage(l.Garage, p.Garage) {
			continue
		}
		if p.Door != "" && l.Door != p.Door {
			continue
		}
		if p.FloorType != "" && l.FloorType != p.FloorType {
			continue
		}
		if roomData && !matchCount(l.Rooms, p.MinRooms, p.MaxRooms) {
			continue
		}
		if windowData && !matchCount(l.WindowCount, p.MinWindows, p.MaxWindows) {
			continue
		}
		if balconyData && !matchBalconies(l.BalconyCount, p.MinBalconies, p.MaxBalconies) {
			continue
		}

		out = append(out, *l)
	}

	return out
}

// matchYear bounds-checks purely numeric years; non-numeric or blank year
// text passes unconditionally.
func matchYear(year string, min, max *int) bool {
	if min == nil && max == nil {
		return true
	}
	y, ok := numericYear(year)
	if !ok {
		return true
	}
	if min != nil && y < *min {
		return false
	}
	if max != nil && y > *max {
		return false
	}
	return true
}

func numericYear(year string) (int, bool) {
	if year == "" {
		return 0, false
	}
	for _, r := range year {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return 0, false
	}
	return y, true
}

func matchElevator(text string, want TriState) bool {
	switch want {
	case TriYes:
		return ingest.IsElevatorYes(text)
	case TriNo:
		return ingest.IsElevatorNo(text)
	default:
		return true
	}
}

func matchGarage(text string, want TriState) bool {
	switch want {
	case TriYes:
		return ingest.HasFeature(text)
	case TriNo:
		return !ingest.HasFeature(text)
	default:
		return true
	}
}

// matchCount applies a numeric range to a free-text count field via
// leading-digit parse; unparseable values fail an active constraint.
func matchCount(text string, min, max *int) bool {
	if min == nil && max == nil {
		return true
	}
	n, ok := ingest.LeadingNumber(text)
	if !ok {
		return false
	}
	if min != nil && n < *min {
		return false
	}
	if max != nil && n > *max {
		return false
	}
	return true
}

func matchBalconies(count *int, min, max *int) bool {
	if min == nil && max == nil {
		return true
	}
	if count == nil {
		return false
	}
	if min != nil && *count < *min {
		return false
	}
	if max != nil && *count > *max {
		return false
	}
	return true
}
