package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	numberRegexp    = regexp.MustCompile(`\d+`)
	areaTokenRegexp = regexp.MustCompile(`[\d.]+`)
	urlRegexp       = regexp.MustCompile(`https?://[^\s"']+`)
)

// Keyword tables for free-text feature fields. The scrape mixes Mongolian
// Cyrillic, transliteration and English, so each predicate checks every
// spelling that occurs in the data.
var (
	affirmativeMarkers = []string{"тийм", "байгаа", "yes", "тайлбар"}
	noBalconyMarkers   = []string{"тагтгүй", "тагт гүй", "no"}
	elevatorYesMarkers = []string{"shattai", "шаттай"}
	elevatorNoMarkers  = []string{"shatgui", "шатгүй"}
	todayMarkers       = []string{"Өнөөдөр", "өнөөдөр", "unuudur"}
)

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// HasFeature reports whether a free-text field affirms the feature is
// present. Empty input is "no".
func HasFeature(text string) bool {
	if text == "" {
		return false
	}
	return containsAny(strings.ToLower(text), affirmativeMarkers)
}

// IsElevatorYes reports an explicit elevator-present marker. Elevator
// phrasing has its own vocabulary, so this is separate from HasFeature.
func IsElevatorYes(text string) bool {
	if text == "" {
		return false
	}
	return containsAny(strings.ToLower(strings.TrimSpace(text)), elevatorYesMarkers)
}

// IsElevatorNo reports an explicit no-elevator marker. Text matching
// neither predicate is unknown, which must not be read as "no".
func IsElevatorNo(text string) bool {
	if text == "" {
		return false
	}
	return containsAny(strings.ToLower(strings.TrimSpace(text)), elevatorNoMarkers)
}

// BalconyCount parses the balcony field: a digit wins, an explicit
// no-balcony marker means 0, anything else is absent.
func BalconyCount(text string) *int {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if m := numberRegexp.FindString(text); m != "" {
		n, err := strconv.Atoi(m)
		if err != nil {
			return nil
		}
		return &n
	}
	if containsAny(strings.ToLower(text), noBalconyMarkers) {
		zero := 0
		return &zero
	}
	return nil
}

// LeadingNumber extracts the first digit run from free text, shared by the
// room/window count filters.
func LeadingNumber(text string) (int, bool) {
	m := numberRegexp.FindString(text)
	if m == "" {
		return 0, false
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0, false
	}
	return n, true
}

// parseArea extracts the first numeric token of the area field. Returns 0
// when nothing parseable is found.
func parseArea(text string) float64 {
	m := areaTokenRegexp.FindString(text)
	if m == "" {
		return 0
	}
	area, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return area
}

// firstImageURL pulls the first http(s) URL out of the scraped image cell,
// trimming list punctuation the scraper leaves behind.
func firstImageURL(text string) string {
	m := urlRegexp.FindString(text)
	if m == "" {
		return ""
	}
	if fields := strings.Fields(m); len(fields) > 0 {
		m = fields[0]
	}
	return strings.TrimRight(m, ",;")
}

// cleanDate strips the "today" words the site injects into publish dates.
func cleanDate(text string) string {
	for _, m := range todayMarkers {
		text = strings.ReplaceAll(text, m, "")
	}
	return strings.TrimSpace(text)
}
