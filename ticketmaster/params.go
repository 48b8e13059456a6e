package ticketmaster

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"stagepass/geo"
)

// buildParams translates a search intent into upstream query parameters.
// It never fails; anything malformed or absent is simply omitted.
func buildParams(o SearchOptions) url.Values {
	params := url.Values{}

	// Location is always sent, it drives the provider's distance field.
	params.Set("latlong", formatFloat(o.Latitude)+","+formatFloat(o.Longitude))
	params.Set("unit", "km")

	// Selector precedence: explicit event IDs beat attraction IDs beat
	// keyword. Losing selectors are ignored entirely.
	switch {
	case len(o.EventIDs) > 0:
		params.Set("id", strings.Join(o.EventIDs, ","))
	case len(o.AttractionIDs) > 0:
		params.Set("attractionId", strings.Join(o.AttractionIDs, ","))
	case o.Keyword != "":
		params.Set("keyword", o.Keyword)
		params.Set("includeSpellcheck", "yes")
	}

	if o.Radius > 0 {
		params.Set("radius", strconv.Itoa(o.Radius))
	}
	if o.CountryCode != "" {
		params.Set("countryCode", o.CountryCode)
	}

	start, end := dateWindow(o.StartDate, o.EndDate)
	if start != "" {
		params.Set("localStartDateTime", start)
	}
	if end != "" {
		params.Set("localEndDateTime", end)
	}

	if o.Sort != "" {
		params.Set("sort", o.Sort)
	}

	params.Set("size", strconv.Itoa(clampSize(o.Size)))

	// A resolvable state wins over free-text city; never both.
	if o.SearchLocation != "" {
		if code, ok := geo.ResolveStateCode(o.SearchLocation); ok {
			params.Set("stateCode", code)
		} else {
			params.Set("city", geo.CleanLocation(o.SearchLocation))
		}
	}

	return params
}

// clampSize rounds the requested page size and clamps it to the
// provider's accepted range.
func clampSize(size float64) int {
	n := int(math.Round(size))
	if n < 1 {
		return 1
	}
	if n > 9999 {
		return 9999
	}
	return n
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
