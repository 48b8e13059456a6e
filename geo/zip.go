package geo

// Default coordinates (UIUC campus) used when no location can be resolved.
const (
	DefaultLatitude  = 40.1164
	DefaultLongitude = -88.2434
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// zipTable covers the metro areas the product serves; it is not a full US
// zip database, so zips outside these metros resolve to the campus default
// rather than failing the request.
var zipTable = map[string]Coordinates{
	"61820": {40.1164, -88.2434}, // Champaign IL
	"61801": {40.1092, -88.2272}, // Urbana IL
	"60601": {41.8858, -87.6181}, // Chicago IL
	"60614": {41.9227, -87.6533}, // Chicago IL (Lincoln Park)
	"62701": {39.7990, -89.6439}, // Springfield IL
	"46204": {39.7732, -86.1577}, // Indianapolis IN
	"63101": {38.6312, -90.1922}, // St. Louis MO
	"53202": {43.0445, -87.9030}, // Milwaukee WI
	"52240": {41.6549, -91.5186}, // Iowa City IA
	"40202": {38.2506, -85.7521}, // Louisville KY
	"37203": {36.1497, -86.7911}, // Nashville TN
	"55401": {44.9833, -93.2710}, // Minneapolis MN
	"43215": {39.9666, -83.0125}, // Columbus OH
	"48226": {42.3297, -83.0466}, // Detroit MI
	"10001": {40.7506, -73.9971}, // New York NY
	"90012": {34.0614, -118.2385}, // Los Angeles CA
	"94102": {37.7797, -122.4193}, // San Francisco CA
	"73301": {30.2240, -97.7594}, // Austin TX
	"98101": {47.6101, -122.3344}, // Seattle WA
	"80202": {39.7491, -104.9946}, // Denver CO
	"30303": {33.7525, -84.3888}, // Atlanta GA
	"02108": {42.3576, -71.0684}, // Boston MA
	"19102": {39.9525, -75.1657}, // Philadelphia PA
	"33128": {25.7738, -80.2003}, // Miami FL
	"85003": {33.4510, -112.0777}, // Phoenix AZ
	"89101": {36.1716, -115.1391}, // Las Vegas NV
	"97204": {45.5184, -122.6740}, // Portland OR
}

// LookupZip resolves a zip code to coordinates. The second return reports
// whether the zip was known.
func LookupZip(zip string) (Coordinates, bool) {
	c, ok := zipTable[zip]
	return c, ok
}
