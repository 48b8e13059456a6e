package spotifysync

import (
	"testing"

	"stagepass/models"
	"stagepass/ticketmaster"
)

func TestMergeArtistRefs(t *testing.T) {
	followed := []models.FollowedArtist{
		{ID: "sp1", Name: "The Band", Followers: 1000, Image: "img1"},
		{ID: "sp2", Name: "Unknown Act", Followers: 50},
	}
	refs := []ticketmaster.AttractionRef{
		{
			Name:           "The Band",
			ID:             "K1",
			URL:            "https://tm.example/K1",
			Genre:          "Music | Rock",
			UpcomingEvents: 4,
			Image169:       "tm-169",
			SpotifyLink:    "https://open.spotify.com/artist/x",
		},
	}

	merged := mergeArtistRefs(followed, refs)
	if len(merged) != 2 {
		t.Fatalf("merged = %d, want every followed artist kept", len(merged))
	}

	enriched := merged[0]
	if enriched.TicketmasterID != "K1" || enriched.TicketmasterGenre != "Music | Rock" {
		t.Errorf("enriched = %+v", enriched)
	}
	if enriched.UpcomingEvents != 4 || enriched.TicketmasterImage169 != "tm-169" {
		t.Errorf("enriched = %+v", enriched)
	}
	if enriched.SpotifyLink != "https://open.spotify.com/artist/x" {
		t.Errorf("spotify link = %q", enriched.SpotifyLink)
	}
	// Streaming-profile fields survive the merge untouched.
	if enriched.ID != "sp1" || enriched.Followers != 1000 || enriched.Image != "img1" {
		t.Errorf("profile fields changed: %+v", enriched)
	}

	plain := merged[1]
	if plain.TicketmasterID != "" {
		t.Errorf("unmatched artist must stay un-enriched, got %+v", plain)
	}
}

func TestMergeArtistRefsExactNameJoin(t *testing.T) {
	followed := []models.FollowedArtist{{Name: "the band"}}
	refs := []ticketmaster.AttractionRef{{Name: "The Band", ID: "K1"}}

	merged := mergeArtistRefs(followed, refs)
	if merged[0].TicketmasterID != "" {
		t.Error("join is case-sensitive; differing spellings must not match")
	}
}

func TestMergeArtistRefsEmpty(t *testing.T) {
	if got := mergeArtistRefs(nil, nil); len(got) != 0 {
		t.Errorf("nil inputs must produce an empty list, got %v", got)
	}
}
