package ticketmaster

import "stagepass/geo"

// Mode controls how much of the normalized record a search returns.
type Mode string

const (
	ModeList   Mode = "LIST"   // trimmed field set for list display
	ModeDetail Mode = "DETAIL" // every normalized field
)

// SearchOptions is one search intent. Zero values mean "not provided";
// defaults are applied once in withDefaults, nowhere else:
//
//	Latitude/Longitude  -> UIUC campus (geo.DefaultLatitude/Longitude)
//	Size                -> 20, then rounded and clamped to [1, 9999]
//	Mode                -> ModeList
//
// Selector priority is EventIDs > AttractionIDs > Keyword; whichever wins
// is the only selector sent upstream. Latitude/longitude are always sent
// because the provider computes venue distance from them.
type SearchOptions struct {
	EventIDs      []string
	AttractionIDs []string
	Keyword       string

	Latitude  float64
	Longitude float64
	Radius    int // km, omitted unless positive

	CountryCode string
	Size        float64 // fractional sizes round before clamping
	Sort        string  // passed through verbatim, e.g. "date,asc"

	StartDate string // "2006-01-02" or local date-time, passed through
	EndDate   string

	SearchLocation string // free-text city or state name/code
	Mode           Mode

	FollowedEvents []string // tags output only, never filters
}

func (o SearchOptions) withDefaults() SearchOptions {
	if o.Latitude == 0 && o.Longitude == 0 {
		o.Latitude = geo.DefaultLatitude
		o.Longitude = geo.DefaultLongitude
	}
	if o.Size == 0 {
		o.Size = 20
	}
	if o.Mode == "" {
		o.Mode = ModeList
	}
	return o
}

// SearchResult is the engine's only output shape. Events holds Event
// records in DETAIL mode and EventSummary records in LIST mode; a single
// call is always homogeneous. Error is set instead of ever surfacing a
// transport failure to the route layer.
type SearchResult struct {
	Events          []any  `json:"events"`
	Spellcheck      string `json:"spellcheck"`
	OriginalKeyword string `json:"originalKeyword"`
	Error           string `json:"error,omitempty"`
}
