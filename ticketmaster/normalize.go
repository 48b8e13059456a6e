package ticketmaster

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"stagepass/geo"
)

// Virtual venue images for background display
var virtualVenueImages = []string{
	"https://images.unsplash.com/photo-1516450360452-9312f5e86fc7?w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1514525253161-7a46d19cd819?w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1501281668745-f7f57925c3b4?w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1540039155733-5bb30b53aa14?w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1468359601543-843bfaef291a?w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1492684223066-81342ee5ff30?w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1497911270199-1c552ee64aa4?w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1507901747481-84a4f64fda6d?w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1521334726092-b509a19597c6?w=1200&auto=format&fit=crop",
	"https://images.unsplash.com/photo-1481162854517-d9e353af153d?w=1200&auto=format&fit=crop",
}

// Event is the full normalized record (DETAIL mode output).
type Event struct {
	ID       string `json:"id"`
	Followed bool   `json:"followed"`

	ArtistID   string `json:"artistId"`
	ArtistName string `json:"artistName"`

	Name   string `json:"name"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Status string `json:"status"`
	URL    string `json:"url"`

	ImageRatio169Large string `json:"image_ratio16_9_large"`
	ImageRatio169      string `json:"image_ratio16_9"`
	ImageRatio32       string `json:"image_ratio3_2"`
	ImageRatio43       string `json:"image_ratio4_3"`

	Genre       string `json:"genre"`
	PriceRanges string `json:"priceRanges"`

	Venue                string          `json:"venue"`
	VenueURL             string          `json:"venueUrl"`
	VenueImage           string          `json:"venueImage"`
	VenueBackgroundImage string          `json:"venueBackgroundImage"`
	City                 string          `json:"city"`
	State                string          `json:"state"`
	Country              string          `json:"country"`
	CountryCode          string          `json:"countryCode"`
	Address              string          `json:"address"`
	Distance             float64         `json:"distance"`
	Location             geo.Coordinates `json:"location"`

	// Paragraphs of provider free text, each split into non-empty lines.
	Info [][]string `json:"info"`
}

// EventSummary is the LIST-mode field allow-list, nothing more.
type EventSummary struct {
	ID           string  `json:"id"`
	Followed     bool    `json:"followed"`
	ArtistID     string  `json:"artistId"`
	ArtistName   string  `json:"artistName"`
	Name         string  `json:"name"`
	Genre        string  `json:"genre"`
	Date         string  `json:"date"`
	Time         string  `json:"time"`
	Venue        string  `json:"venue"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	CountryCode  string  `json:"countryCode"`
	Distance     float64 `json:"distance"`
	Status       string  `json:"status"`
	ImageRatio32 string  `json:"image_ratio3_2"`
	PriceRanges  string  `json:"priceRanges"`
}

func (e Event) Summary() EventSummary {
	return EventSummary{
		ID:           e.ID,
		Followed:     e.Followed,
		ArtistID:     e.ArtistID,
		ArtistName:   e.ArtistName,
		Name:         e.Name,
		Genre:        e.Genre,
		Date:         e.Date,
		Time:         e.Time,
		Venue:        e.Venue,
		City:         e.City,
		State:        e.State,
		CountryCode:  e.CountryCode,
		Distance:     e.Distance,
		Status:       e.Status,
		ImageRatio32: e.ImageRatio32,
		PriceRanges:  e.PriceRanges,
	}
}

// normalizeEvent maps one raw provider record to the stable output shape.
// Every derivation has a default; partial upstream data never fails.
func normalizeEvent(ev rawEvent, followed map[string]bool) Event {
	var venue rawVenue
	if len(ev.Embedded.Venues) > 0 {
		venue = ev.Embedded.Venues[0]
	}

	var artistID, artistName string
	if len(ev.Embedded.Attractions) > 0 {
		artistID = ev.Embedded.Attractions[0].ID
		artistName = ev.Embedded.Attractions[0].Name
	}
	if artistName == "" {
		artistName = artistFromTitle(ev.Name)
	}

	var genre string
	if len(ev.Classifications) > 0 {
		genre = ev.Classifications[0].Genre.Name
	}

	return Event{
		ID:       ev.ID,
		Followed: followed[ev.ID],

		ArtistID:   artistID,
		ArtistName: artistName,

		Name:   ev.Name,
		Date:   ev.Dates.Start.LocalDate,
		Time:   ev.Dates.Start.LocalTime,
		Status: ev.Dates.Status.Code,
		URL:    ev.URL,

		ImageRatio169Large: findImage(ev.Images, "16_9", 1024),
		ImageRatio169:      findImage(ev.Images, "16_9", 640),
		ImageRatio32:       findImage(ev.Images, "3_2", 305),
		ImageRatio43:       findImage(ev.Images, "4_3", 305),

		Genre:       genre,
		PriceRanges: formatPriceRanges(ev.PriceRanges),

		Venue:                venue.Name,
		VenueURL:             venueURL(venue),
		VenueImage:           firstImageURL(venue.Images),
		VenueBackgroundImage: virtualVenueImage(ev.ID),
		City:                 venue.City.Name,
		State:                venue.State.StateCode,
		Country:              venue.Country.Name,
		CountryCode:          venue.Country.CountryCode,
		Address:              venue.Address.Line1,
		Distance:             venue.Distance,
		Location: geo.Coordinates{
			Latitude:  parseCoordinate(venue.Location.Latitude),
			Longitude: parseCoordinate(venue.Location.Longitude),
		},

		Info: collectInfo(ev, venue),
	}
}

// artistFromTitle derives an artist name from an event title when the
// record carries no attraction. " presents " wins over " - "; neither
// pattern means no artist.
func artistFromTitle(title string) string {
	if i := strings.Index(title, " presents "); i >= 0 {
		return title[:i]
	}
	if i := strings.Index(title, " - "); i >= 0 {
		return title[:i]
	}
	return ""
}

// findImage picks the first exact ratio+width match from the variant list.
func findImage(images []rawImage, ratio string, width int) string {
	for _, img := range images {
		if img.Ratio == ratio && img.Width == width {
			return img.URL
		}
	}
	return ""
}

func firstImageURL(images []rawImage) string {
	if len(images) > 0 {
		return images[0].URL
	}
	return ""
}

// formatPriceRanges aggregates valid price entries into one display
// string: "{currency} {min} - {max}[, {min} - {max}...]" with duplicate
// ranges collapsed, order preserved.
func formatPriceRanges(ranges []rawPriceRange) string {
	var formatted []string
	var currency string
	haveCurrency := false
	seen := make(map[string]bool)

	for _, pr := range ranges {
		if pr.Min == nil || pr.Max == nil {
			continue
		}
		// The first valid entry decides the currency, even a blank one.
		if !haveCurrency {
			currency = pr.Currency
			haveCurrency = true
		}
		s := fmt.Sprintf("%.2f - %.2f", *pr.Min, *pr.Max)
		if seen[s] {
			continue
		}
		seen[s] = true
		formatted = append(formatted, s)
	}

	if len(formatted) == 0 {
		return "Price unavailable"
	}
	return currency + " " + strings.Join(formatted, ", ")
}

// venueURL prefers the provider's venue page; a named venue without one
// gets a deterministic web-search link instead.
func venueURL(venue rawVenue) string {
	if venue.Name == "" {
		return ""
	}
	if venue.URL != "" {
		return venue.URL
	}
	return "https://www.google.com/search?q=" + url.QueryEscape(venue.Name)
}

// virtualVenueImage picks a background from the fixed palette, indexed by
// the last byte of the event ID so the same event always gets the same
// image without stored state.
func virtualVenueImage(eventID string) string {
	if eventID == "" {
		return ""
	}
	last := eventID[len(eventID)-1]
	return virtualVenueImages[int(last)%len(virtualVenueImages)]
}

func parseCoordinate(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// collectInfo gathers the record's free-text blocks, drops blank ones and
// splits each survivor into its non-empty lines.
func collectInfo(ev rawEvent, venue rawVenue) [][]string {
	candidates := []string{
		ev.Info,
		ev.PleaseNote,
		ev.Accessibility.Info,
		ev.TicketLimit.Info,
		ev.AdditionalInfo,
		venue.GeneralInfo.GeneralRule,
		venue.AccessibleSeatingDetail,
	}

	info := make([][]string, 0, len(candidates))
	for _, text := range candidates {
		if strings.TrimSpace(text) == "" {
			continue
		}
		text = strings.ReplaceAll(text, "\r\n", "\n")
		var lines []string
		for _, line := range strings.Split(text, "\n") {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
		info = append(info, lines)
	}
	return info
}
