package ticketmaster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func testClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	ts := httptest.NewServer(handler)
	return NewClient(Config{BaseURL: ts.URL, APIKey: "test-key"}), ts
}

func TestGetEventsNormalizes(t *testing.T) {
	body := `{
		"_embedded": {"events": [{
			"id": "evt1",
			"name": "The Band - World Tour",
			"url": "https://tickets.example/evt1",
			"dates": {"start": {"localDate": "2099-06-15", "localTime": "20:00:00"}, "status": {"code": "onsale"}},
			"classifications": [{"genre": {"name": "Rock"}}],
			"priceRanges": [{"min": 45, "max": 120, "currency": "USD"}],
			"images": [{"ratio": "3_2", "width": 305, "url": "https://img.example/32"}],
			"_embedded": {
				"attractions": [{"id": "K1", "name": "The Band"}],
				"venues": [{
					"name": "Big Arena",
					"city": {"name": "Denver"},
					"state": {"stateCode": "CO"},
					"country": {"name": "United States", "countryCode": "US"},
					"location": {"latitude": "39.74", "longitude": "-104.99"}
				}]
			}
		}]}
	}`
	var gotQuery url.Values
	client, ts := testClient(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Write([]byte(body))
	})
	defer ts.Close()

	res := client.GetEvents(context.Background(), SearchOptions{
		Keyword:        "the band",
		FollowedEvents: []string{"evt1"},
	})

	if res.Error != "" {
		t.Fatalf("unexpected error: %q", res.Error)
	}
	if len(res.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(res.Events))
	}

	summary, ok := res.Events[0].(EventSummary)
	if !ok {
		t.Fatalf("list mode must produce summaries, got %T", res.Events[0])
	}
	if summary.ID != "evt1" || summary.ArtistName != "The Band" || summary.Genre != "Rock" {
		t.Errorf("summary = %+v", summary)
	}
	if summary.PriceRanges != "USD 45.00 - 120.00" {
		t.Errorf("priceRanges = %q", summary.PriceRanges)
	}
	if !summary.Followed {
		t.Error("followed event must be tagged")
	}

	// Client defaults ride along on every request.
	if gotQuery.Get("apikey") != "test-key" {
		t.Errorf("apikey = %q", gotQuery.Get("apikey"))
	}
	if gotQuery.Get("classificationName") != "Music" {
		t.Errorf("classificationName = %q", gotQuery.Get("classificationName"))
	}
	if gotQuery.Get("locale") != "en-us" {
		t.Errorf("locale = %q", gotQuery.Get("locale"))
	}
	if gotQuery.Get("keyword") != "the band" {
		t.Errorf("keyword = %q", gotQuery.Get("keyword"))
	}
}

func TestGetEventsDetailMode(t *testing.T) {
	body := `{"_embedded": {"events": [{
		"id": "evt1", "name": "Show",
		"dates": {"start": {"localDate": "2099-06-15"}}
	}]}}`
	client, ts := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	defer ts.Close()

	res := client.GetEvents(context.Background(), SearchOptions{EventIDs: []string{"evt1"}, Mode: ModeDetail})
	if len(res.Events) != 1 {
		t.Fatalf("events = %d, want 1", len(res.Events))
	}
	if _, ok := res.Events[0].(Event); !ok {
		t.Fatalf("detail mode must produce full records, got %T", res.Events[0])
	}
}

func TestGetEventsSpellcheckShortCircuit(t *testing.T) {
	body := `{
		"_embedded": {"events": []},
		"spellcheck": {"original": "metalica", "suggestions": [{"suggestion": "metallica"}]}
	}`
	client, ts := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	})
	defer ts.Close()

	res := client.GetEvents(context.Background(), SearchOptions{Keyword: "metalica"})
	if res.Spellcheck != "metallica" || res.OriginalKeyword != "metalica" {
		t.Errorf("spellcheck = %q / %q", res.Spellcheck, res.OriginalKeyword)
	}
	if res.Events == nil || len(res.Events) != 0 {
		t.Errorf("events must be empty but non-nil, got %v", res.Events)
	}
	if res.Error != "" {
		t.Errorf("unexpected error: %q", res.Error)
	}
}

func TestGetEventsProviderError(t *testing.T) {
	client, ts := testClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"errors": [{"detail": "Invalid API key"}]}`))
	})
	defer ts.Close()

	res := client.GetEvents(context.Background(), SearchOptions{Keyword: "x"})
	if res.Error != "Invalid API key" {
		t.Errorf("error = %q, want provider detail", res.Error)
	}
	if res.Events == nil || len(res.Events) != 0 {
		t.Errorf("events must be empty but non-nil, got %v", res.Events)
	}
}

func TestGetEventsTransportError(t *testing.T) {
	client, ts := testClient(func(w http.ResponseWriter, r *http.Request) {})
	ts.Close() // connection refused from here on

	res := client.GetEvents(context.Background(), SearchOptions{Keyword: "x"})
	if res.Error != "Ticketmaster: Unknown error" {
		t.Errorf("error = %q, want the generic fallback", res.Error)
	}
	if len(res.Events) != 0 {
		t.Errorf("events = %v, want empty", res.Events)
	}
}

func TestGetAttractionRefs(t *testing.T) {
	client, ts := testClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("keyword") {
		case "The Band":
			w.Write([]byte(`{"_embedded": {"attractions": [
				{"id": "K9", "name": "the band tribute act"},
				{"id": "K1", "name": "the BAND", "url": "https://tm.example/K1",
				 "classifications": [{"genre": {"name": "Rock"}}],
				 "upcomingEvents": {"_total": 4},
				 "externalLinks": {"spotify": [{"url": "https://open.spotify.com/artist/x"}]}}
			]}}`))
		default:
			w.Write([]byte(`{"_embedded": {"attractions": []}}`))
		}
	})
	defer ts.Close()

	refs, err := client.GetAttractionRefs(context.Background(), []string{"The Band", "Nobody"})
	if err != nil {
		t.Fatal(err)
	}
	if len(refs) != 1 {
		t.Fatalf("refs = %d, want 1 (unmatched names skipped)", len(refs))
	}
	ref := refs[0]
	if ref.ID != "K1" {
		t.Errorf("match must be case-insensitive and exact, got ID %q", ref.ID)
	}
	if ref.Genre != "Music | Rock" {
		t.Errorf("genre = %q", ref.Genre)
	}
	if ref.UpcomingEvents != 4 {
		t.Errorf("upcomingEvents = %d", ref.UpcomingEvents)
	}
	if ref.SpotifyLink != "https://open.spotify.com/artist/x" {
		t.Errorf("spotifyLink = %q", ref.SpotifyLink)
	}
}
