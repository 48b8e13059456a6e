package ticketmaster

// Raw Discovery API response shapes. Only the fields the normalizer reads
// are declared; everything is optional and defaults to its zero value.

type rawResponse struct {
	Embedded struct {
		Events []rawEvent `json:"events"`
	} `json:"_embedded"`
	Spellcheck struct {
		Original    string `json:"original"`
		Suggestions []struct {
			Suggestion string `json:"suggestion"`
		} `json:"suggestions"`
	} `json:"spellcheck"`
}

type rawEvent struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	URL            string `json:"url"`
	Info           string `json:"info"`
	PleaseNote     string `json:"pleaseNote"`
	AdditionalInfo string `json:"additionalInfo"`
	Accessibility  struct {
		Info string `json:"info"`
	} `json:"accessibility"`
	TicketLimit struct {
		Info string `json:"info"`
	} `json:"ticketLimit"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
		Status struct {
			Code string `json:"code"`
		} `json:"status"`
	} `json:"dates"`
	Classifications []rawClassification `json:"classifications"`
	PriceRanges     []rawPriceRange     `json:"priceRanges"`
	Images          []rawImage          `json:"images"`
	Embedded        struct {
		Attractions []rawAttraction `json:"attractions"`
		Venues      []rawVenue      `json:"venues"`
	} `json:"_embedded"`
}

type rawImage struct {
	Ratio string `json:"ratio"`
	Width int    `json:"width"`
	URL   string `json:"url"`
}

type rawClassification struct {
	Genre struct {
		Name string `json:"name"`
	} `json:"genre"`
}

// Min/max are pointers: the provider sends ranges with null bounds and
// those entries must be distinguishable from a real 0.00.
type rawPriceRange struct {
	Min      *float64 `json:"min"`
	Max      *float64 `json:"max"`
	Currency string   `json:"currency"`
}

type rawExternalLinks map[string][]struct {
	URL string `json:"url"`
}

// first returns the first link of a kind, or "".
func (l rawExternalLinks) first(kind string) string {
	if entries, ok := l[kind]; ok && len(entries) > 0 {
		return entries[0].URL
	}
	return ""
}

type rawAttraction struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	URL             string              `json:"url"`
	Images          []rawImage          `json:"images"`
	Classifications []rawClassification `json:"classifications"`
	ExternalLinks   rawExternalLinks    `json:"externalLinks"`
	UpcomingEvents  struct {
		Total int `json:"_total"`
	} `json:"upcomingEvents"`
}

type rawVenue struct {
	Name   string     `json:"name"`
	URL    string     `json:"url"`
	Images []rawImage `json:"images"`
	City   struct {
		Name string `json:"name"`
	} `json:"city"`
	State struct {
		StateCode string `json:"stateCode"`
	} `json:"state"`
	Country struct {
		Name        string `json:"name"`
		CountryCode string `json:"countryCode"`
	} `json:"country"`
	Address struct {
		Line1 string `json:"line1"`
	} `json:"address"`
	Distance float64 `json:"distance"`
	Location struct {
		// The provider serializes coordinates as strings.
		Latitude  string `json:"latitude"`
		Longitude string `json:"longitude"`
	} `json:"location"`
	GeneralInfo struct {
		GeneralRule string `json:"generalRule"`
	} `json:"generalInfo"`
	AccessibleSeatingDetail string `json:"accessibleSeatingDetail"`
}
