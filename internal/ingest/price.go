package ingest

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	// digitGroupRegexp captures digit runs with optional thousands commas
	digitGroupRegexp = regexp.MustCompile(`[\d,]+`)
)

// billionMarkers are the magnitude words sellers use for billion-tugrik
// prices, in both spellings seen in the data.
var billionMarkers = []string{"тэрбум", "тэрбүм"}

// Heuristic thresholds for prices quoted without units. Listings quote
// either price per square meter or total price with no way to tell them
// apart; amounts at or below perAreaCeiling are read as per-m² and amounts
// inside (perAreaCeiling, totalFloor) are too ambiguous to keep.
const (
	perAreaCeiling = 10_000_000
	totalFloor     = 20_000_000
)

// parseBasePrice maps a free-text price to a single tugrik amount before
// the per-area correction. The minimum of all digit groups is used so that
// "from X to Y" ranges resolve conservatively, then magnitude words fix up
// values quoted in billions or (implicitly) millions. Returns 0 when the
// text carries no parseable number.
func parseBasePrice(text string) int64 {
	matches := digitGroupRegexp.FindAllString(text, -1)

	var price int64
	found := false
	for _, m := range matches {
		v, err := strconv.ParseInt(strings.ReplaceAll(m, ",", ""), 10, 64)
		if err != nil {
			continue
		}
		if !found || v < price {
			price = v
			found = true
		}
	}
	if !found {
		return 0
	}

	lower := strings.ToLower(text)
	billion := false
	for _, marker := range billionMarkers {
		if strings.Contains(lower, marker) {
			billion = true
			break
		}
	}

	if billion {
		if price < 100 {
			price *= 1_000_000_000
		}
	} else if price < 1000 {
		price *= 1_000_000
	}

	return price
}

// resolveTotalPrice applies the per-area heuristic to a base price.
// Amounts at or below perAreaCeiling are treated as price per m² and
// multiplied by the area; amounts strictly between perAreaCeiling and
// totalFloor are ambiguous and rejected.
func resolveTotalPrice(base int64, area float64) (int64, error) {
	switch {
	case base <= perAreaCeiling:
		return int64(math.Round(float64(base) * area)), nil
	case base < totalFloor:
		return 0, errAmbiguousPrice
	default:
		return base, nil
	}
}
