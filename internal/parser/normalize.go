package parser

import (
	"strings"

	"acuity/internal/codes"
	"acuity/internal/source"
	"acuity/internal/util"
)

// NormalizeCountry converts an origin cell to a 2-letter ISO code. A value
// that is already two characters passes through untouched; unknown codes pass
// through verbatim after uppercasing.
func NormalizeCountry(c source.Cell) string {
	if !c.Present {
		return ""
	}
	code := strings.ToUpper(strings.TrimSpace(c.Raw))
	if code == "" || len(code) == 2 {
		return code
	}
	if iso, ok := codes.Origin(code); ok {
		return iso
	}
	return code
}

// NormalizeUnit converts a unit cell to its standard abbreviation, falling
// back to the uppercased input for unknown units.
func NormalizeUnit(c source.Cell) string {
	if !c.Present {
		return ""
	}
	unit := strings.ToUpper(strings.TrimSpace(c.Raw))
	if unit == "" {
		return ""
	}
	if std, ok := codes.Unit(unit); ok {
		return std
	}
	return unit
}

// CleanNumeric coerces a cell to a float, nil when the cell is absent or not
// numeric. It never fails.
func CleanNumeric(c source.Cell) *float64 {
	if !c.Present {
		return nil
	}
	v, ok := util.ParseNumeric(c.Raw)
	if !ok {
		return nil
	}
	return &v
}
