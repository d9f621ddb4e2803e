package models

import (
	"fmt"
	"strconv"
)

// usdRate is the fixed MNT→USD conversion used for display approximations.
const usdRate = 3400

// FormatPrice renders a tugrik amount the way the dashboard shows it:
// Mongolian uses сая/тэрбум magnitudes, English converts to approximate USD.
func FormatPrice(price int64, lang string) string {
	if lang == "en" {
		usd := float64(price) / usdRate
		switch {
		case usd >= 1_000_000:
			return fmt.Sprintf("$%.2fM", usd/1_000_000)
		case usd >= 1_000:
			return fmt.Sprintf("$%.0fK", usd/1_000)
		default:
			return fmt.Sprintf("$%.0f", usd)
		}
	}

	switch {
	case price >= 1_000_000_000:
		return fmt.Sprintf("₮%.1f тэрбум", float64(price)/1_000_000_000)
	case price >= 1_000_000:
		return fmt.Sprintf("₮%.0f сая", float64(price)/1_000_000)
	default:
		return "₮" + groupThousands(price)
	}
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var out []byte
	lead := len(s) % 3
	if lead > 0 {
		out = append(out, s[:lead]...)
	}
	for i := lead; i < len(s); i += 3 {
		if len(out) > 0 {
			out = append(out, ',')
		}
		out = append(out, s[i:i+3]...)
	}
	return string(out)
}
