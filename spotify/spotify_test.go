package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAuthURLCarriesState(t *testing.T) {
	c := NewClient(Config{ClientID: "cid", RedirectURI: "http://localhost/cb"})
	u := c.AuthURL("user@example.com")

	if got, err := DecodeState("dXNlckBleGFtcGxlLmNvbQ=="); err != nil || got != "user@example.com" {
		t.Errorf("DecodeState = %q, %v", got, err)
	}
	if u == "" {
		t.Fatal("empty auth URL")
	}
}

func TestDecodeStateInvalid(t *testing.T) {
	if _, err := DecodeState("not base64!!"); err == nil {
		t.Error("malformed state must fail")
	}
}

func TestFollowedArtists(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok123" {
			t.Errorf("Authorization = %q", got)
		}
		w.Write([]byte(`{"artists": {"items": [
			{"id": "sp1", "name": "The Band", "followers": {"total": 1000},
			 "images": [{"url": "img-large"}, {"url": "img-small"}]},
			{"id": "sp2", "name": "No Picture Act", "followers": {"total": 5}}
		]}}`))
	}))
	defer ts.Close()

	c := NewClient(Config{APIBaseURL: ts.URL})
	artists, err := c.FollowedArtists(context.Background(), "tok123")
	if err != nil {
		t.Fatal(err)
	}
	if len(artists) != 2 {
		t.Fatalf("artists = %d, want 2", len(artists))
	}
	if artists[0].ID != "sp1" || artists[0].Followers != 1000 || artists[0].Image != "img-large" {
		t.Errorf("artist = %+v", artists[0])
	}
	if artists[1].Image != "" {
		t.Errorf("missing images must mean empty image, got %q", artists[1].Image)
	}
}

func TestFollowedArtistsErrorStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := NewClient(Config{APIBaseURL: ts.URL})
	if _, err := c.FollowedArtists(context.Background(), "expired"); err == nil {
		t.Error("non-200 status must surface an error")
	}
}
