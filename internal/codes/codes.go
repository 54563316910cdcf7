// Package codes holds the compiled-in conversion tables for Acuity invoices:
// Spanish 3-letter origin codes to ISO 3166-1 alpha-2, and Spanish unit
// abbreviations to their English customs equivalents. The tables are fixed at
// build time and only reachable through lookup functions, so concurrent
// parses share no mutable state.
package codes

var originTable = map[string]string{
	"MEX": "MX",
	"USA": "US",
	"CAN": "CA",
	"CHN": "CN",
	"JPN": "JP",
	"DEU": "DE",
	"GBR": "GB",
	"FRA": "FR",
	"ITA": "IT",
	"ESP": "ES",
	"BRA": "BR",
	"IND": "IN",
	"KOR": "KR",
	"TWN": "TW",
	"THA": "TH",
	"VNM": "VN",
	"MYS": "MY",
	"SGP": "SG",
	"IDN": "ID",
	"PHL": "PH",
}

var unitTable = map[string]string{
	"PZS": "PCS",
	"PZA": "PCS",
	"KGS": "KG",
	"KGM": "KG",
	"LBS": "LB",
	"MTS": "M",
	"MTR": "M",
	"LTS": "L",
	"LTR": "L",
	"UNI": "EA",
	"CAJ": "CS",
	"PAR": "PR",
}

// Origin maps a 3-letter origin code to its 2-letter ISO form.
func Origin(code string) (string, bool) {
	iso, ok := originTable[code]
	return iso, ok
}

// Unit maps a local unit abbreviation to the standard one.
func Unit(abbr string) (string, bool) {
	std, ok := unitTable[abbr]
	return std, ok
}
