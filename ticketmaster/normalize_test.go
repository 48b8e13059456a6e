package ticketmaster

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"
)

func fptr(f float64) *float64 { return &f }

func TestFormatPriceRanges(t *testing.T) {
	ranges := []rawPriceRange{
		{Min: fptr(10), Max: fptr(20), Currency: "USD"},
		{Min: fptr(10), Max: fptr(20), Currency: "USD"},
		{Min: fptr(15), Max: fptr(25), Currency: "USD"},
	}
	if got := formatPriceRanges(ranges); got != "USD 10.00 - 20.00, 15.00 - 25.00" {
		t.Errorf("formatPriceRanges = %q", got)
	}
}

func TestFormatPriceRangesInvalidEntries(t *testing.T) {
	if got := formatPriceRanges(nil); got != "Price unavailable" {
		t.Errorf("empty: %q", got)
	}

	ranges := []rawPriceRange{
		{Min: nil, Max: fptr(20), Currency: "USD"},
		{Min: fptr(10), Max: nil, Currency: "USD"},
	}
	if got := formatPriceRanges(ranges); got != "Price unavailable" {
		t.Errorf("all invalid: %q", got)
	}

	// Currency comes from the first valid entry.
	ranges = []rawPriceRange{
		{Min: nil, Max: fptr(5), Currency: "EUR"},
		{Min: fptr(30), Max: fptr(60), Currency: "CAD"},
	}
	if got := formatPriceRanges(ranges); got != "CAD 30.00 - 60.00" {
		t.Errorf("currency pick: %q", got)
	}

	// A valid first entry with a blank currency keeps the blank; later
	// currencies never override it.
	ranges = []rawPriceRange{
		{Min: fptr(10), Max: fptr(20), Currency: ""},
		{Min: fptr(30), Max: fptr(40), Currency: "USD"},
	}
	if got := formatPriceRanges(ranges); got != " 10.00 - 20.00, 30.00 - 40.00" {
		t.Errorf("blank first currency: %q", got)
	}
}

func TestArtistFromTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Artist X presents Tour Y", "Artist X"},
		{"Band - Live", "Band"},
		{"Just A Show", ""},
		// " presents " wins even when both separators appear.
		{"Artist X presents Tour - Night One", "Artist X"},
	}
	for _, tt := range tests {
		if got := artistFromTitle(tt.title); got != tt.want {
			t.Errorf("artistFromTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}

func TestNormalizeArtistPrefersAttraction(t *testing.T) {
	ev := eventOn("x1", "2026-09-15")
	ev.Name = "Band - Live"
	ev.Embedded.Attractions = []rawAttraction{{ID: "K1", Name: "The Real Band"}}

	got := normalizeEvent(ev, nil)
	if got.ArtistID != "K1" || got.ArtistName != "The Real Band" {
		t.Errorf("artist = %q/%q", got.ArtistID, got.ArtistName)
	}
}

func TestNormalizeImageSelection(t *testing.T) {
	ev := eventOn("x1", "2026-09-15")
	ev.Images = []rawImage{
		{Ratio: "16_9", Width: 640, URL: "u-169-640"},
		{Ratio: "16_9", Width: 1024, URL: "u-169-1024"},
		{Ratio: "16_9", Width: 1024, URL: "u-169-1024-dup"},
		{Ratio: "3_2", Width: 305, URL: "u-32-305"},
		{Ratio: "4_3", Width: 640, URL: "u-43-640"},
	}

	got := normalizeEvent(ev, nil)
	if got.ImageRatio169Large != "u-169-1024" {
		t.Errorf("16:9 large = %q", got.ImageRatio169Large)
	}
	if got.ImageRatio169 != "u-169-640" {
		t.Errorf("16:9 = %q", got.ImageRatio169)
	}
	if got.ImageRatio32 != "u-32-305" {
		t.Errorf("3:2 = %q", got.ImageRatio32)
	}
	if got.ImageRatio43 != "" {
		t.Errorf("4:3 must be empty without an exact width match, got %q", got.ImageRatio43)
	}
}

func TestNormalizeVenueURLFallback(t *testing.T) {
	ev := eventOn("x1", "2026-09-15")
	ev.Embedded.Venues = []rawVenue{{Name: "Red Rocks Amphitheatre"}}

	got := normalizeEvent(ev, nil)
	want := "https://www.google.com/search?q=Red+Rocks+Amphitheatre"
	if got.VenueURL != want {
		t.Errorf("venueUrl = %q, want %q", got.VenueURL, want)
	}

	ev.Embedded.Venues[0].URL = "https://venue.example"
	if got := normalizeEvent(ev, nil); got.VenueURL != "https://venue.example" {
		t.Errorf("provider URL must win, got %q", got.VenueURL)
	}

	ev.Embedded.Venues = nil
	if got := normalizeEvent(ev, nil); got.VenueURL != "" {
		t.Errorf("no venue must mean no URL, got %q", got.VenueURL)
	}
}

func TestVirtualVenueImageDeterministic(t *testing.T) {
	a := virtualVenueImage("G5vYZ9_abc7")
	b := virtualVenueImage("G5vYZ9_abc7")
	if a == "" || a != b {
		t.Errorf("background image must be stable per ID: %q vs %q", a, b)
	}
	if got := virtualVenueImage("x0"); got != virtualVenueImages[int('0')%10] {
		t.Errorf("index must derive from the last character, got %q", got)
	}
}

func TestNormalizeInfoParagraphs(t *testing.T) {
	ev := eventOn("x1", "2026-09-15")
	ev.Info = "line one\r\n\r\nline two"
	ev.PleaseNote = "   "
	ev.Embedded.Venues = []rawVenue{{AccessibleSeatingDetail: "ramp at gate B"}}

	got := normalizeEvent(ev, nil)
	want := [][]string{
		{"line one", "line two"},
		{"ramp at gate B"},
	}
	if !reflect.DeepEqual(got.Info, want) {
		t.Errorf("info = %v, want %v", got.Info, want)
	}
}

func TestNormalizeFollowedTag(t *testing.T) {
	ev := eventOn("x1", "2026-09-15")
	if got := normalizeEvent(ev, map[string]bool{"x1": true}); !got.Followed {
		t.Error("followed must be true for a followed ID")
	}
	if got := normalizeEvent(ev, nil); got.Followed {
		t.Error("followed must be false otherwise")
	}
}

func TestNormalizeLocationParsing(t *testing.T) {
	ev := eventOn("x1", "2026-09-15")
	ev.Embedded.Venues = []rawVenue{{}}
	ev.Embedded.Venues[0].Location.Latitude = "39.74"
	ev.Embedded.Venues[0].Location.Longitude = "bogus"

	got := normalizeEvent(ev, nil)
	if got.Location.Latitude != 39.74 || got.Location.Longitude != 0 {
		t.Errorf("location = %+v", got.Location)
	}
}

func jsonKeys(t *testing.T, v any) []string {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatal(err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatal(err)
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func TestSummaryFieldAllowList(t *testing.T) {
	ev := eventOn("x1", "2026-09-15")
	full := normalizeEvent(ev, nil)

	want := []string{
		"artistId", "artistName", "city", "countryCode", "date", "distance",
		"followed", "genre", "id", "image_ratio3_2", "name", "priceRanges",
		"state", "status", "time", "venue",
	}
	got := jsonKeys(t, full.Summary())
	if !reflect.DeepEqual(got, want) {
		t.Errorf("summary fields = %v, want %v", got, want)
	}

	// Every summary field exists on the full record.
	fullKeys := map[string]bool{}
	for _, k := range jsonKeys(t, full) {
		fullKeys[k] = true
	}
	for _, k := range got {
		if !fullKeys[k] {
			t.Errorf("summary field %q missing from the detail record", k)
		}
	}
}
