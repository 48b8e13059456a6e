package geo

import "strings"

// stateCodes maps lowercase US state names to their two-letter codes. The
// codes themselves are added as keys at init so "california" and "ca" both
// resolve to "CA".
var stateCodes = map[string]string{
	"alabama":        "AL",
	"alaska":         "AK",
	"arizona":        "AZ",
	"arkansas":       "AR",
	"california":     "CA",
	"colorado":       "CO",
	"connecticut":    "CT",
	"delaware":       "DE",
	"florida":        "FL",
	"georgia":        "GA",
	"hawaii":         "HI",
	"idaho":          "ID",
	"illinois":       "IL",
	"indiana":        "IN",
	"iowa":           "IA",
	"kansas":         "KS",
	"kentucky":       "KY",
	"louisiana":      "LA",
	"maine":          "ME",
	"maryland":       "MD",
	"massachusetts":  "MA",
	"michigan":       "MI",
	"minnesota":      "MN",
	"mississippi":    "MS",
	"missouri":       "MO",
	"montana":        "MT",
	"nebraska":       "NE",
	"nevada":         "NV",
	"new hampshire":  "NH",
	"new jersey":     "NJ",
	"new mexico":     "NM",
	"new york":       "NY",
	"north carolina": "NC",
	"north dakota":   "ND",
	"ohio":           "OH",
	"oklahoma":       "OK",
	"oregon":         "OR",
	"pennsylvania":   "PA",
	"rhode island":   "RI",
	"south carolina": "SC",
	"south dakota":   "SD",
	"tennessee":      "TN",
	"texas":          "TX",
	"utah":           "UT",
	"vermont":        "VT",
	"virginia":       "VA",
	"washington":     "WA",
	"west virginia":  "WV",
	"wisconsin":      "WI",
	"wyoming":        "WY",
}

func init() {
	for _, code := range stateCodes {
		stateCodes[strings.ToLower(code)] = code
	}
}

// CleanLocation strips everything but letters and spaces.
func CleanLocation(input string) string {
	var b strings.Builder
	for _, r := range strings.TrimSpace(input) {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == ' ' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ResolveStateCode normalizes a free-text location to a two-letter state
// code. Exact match only; no fuzzy lookup. Returns "" and false when the
// input is not a recognizable state, in which case callers treat it as a
// city name.
func ResolveStateCode(input string) (string, bool) {
	cleaned := strings.ToLower(CleanLocation(input))
	code, ok := stateCodes[cleaned]
	return code, ok
}
