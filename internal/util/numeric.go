package util

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	reDotGroups   = regexp.MustCompile(`^-?\d{1,3}(?:\.\d{3})+$`)
	reCommaGroups = regexp.MustCompile(`^-?\d{1,3}(?:,\d{3})+$`)
)

// ParseNumeric converts a raw cell token to a float. It tolerates currency
// prefixes, thousands separators and a decimal comma; anything that still
// refuses to parse reports ok=false.
func ParseNumeric(token string) (float64, bool) {
	compact := strings.ReplaceAll(token, " ", " ")
	compact = strings.TrimSpace(compact)
	compact = strings.TrimPrefix(compact, "$")
	compact = strings.ReplaceAll(compact, " ", "")
	if compact == "" {
		return 0, false
	}

	switch {
	case reDotGroups.MatchString(compact):
		compact = strings.ReplaceAll(compact, ".", "")
	case reCommaGroups.MatchString(compact):
		compact = strings.ReplaceAll(compact, ",", "")
	case strings.Contains(compact, ",") && !strings.Contains(compact, "."):
		compact = strings.ReplaceAll(compact, ",", ".")
	default:
		// "1,234.5" style: commas are grouping.
		if strings.Contains(compact, ",") && strings.Contains(compact, ".") {
			compact = strings.ReplaceAll(compact, ",", "")
		}
	}

	v, err := strconv.ParseFloat(compact, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
