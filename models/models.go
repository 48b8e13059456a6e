package models

import "time"

// User is the persisted account document. Password never serializes to JSON.
type User struct {
	UserID   string `json:"userid" bson:"userid"`
	Email    string `json:"email" bson:"email"`
	Name     string `json:"name" bson:"name"`
	Password string `json:"-" bson:"password"`

	ZipCode string `json:"zip_code" bson:"zip_code"`
	Range   int    `json:"range" bson:"range"` // search radius in km

	FollowedArtists []FollowedArtist `json:"followed_artists" bson:"followed_artists"`
	FollowedEvents  []string         `json:"followed_events" bson:"followed_events"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// FollowedArtist is one synced streaming-profile artist, enriched with the
// ticketing provider's cross-reference data.
type FollowedArtist struct {
	ID        string `json:"id" bson:"id"`
	Name      string `json:"name" bson:"name"`
	Followers int    `json:"followers" bson:"followers"`
	Image     string `json:"image" bson:"image"`

	TicketmasterID       string `json:"ticketmaster_id" bson:"ticketmaster_id"`
	TicketmasterURL      string `json:"ticketmaster_url" bson:"ticketmaster_url"`
	TicketmasterImage169 string `json:"ticketmaster_image_16_9" bson:"ticketmaster_image_16_9"`
	TicketmasterImage32  string `json:"ticketmaster_image_3_2" bson:"ticketmaster_image_3_2"`
	TicketmasterGenre    string `json:"ticketmaster_genre" bson:"ticketmaster_genre"`
	UpcomingEvents       int    `json:"upcoming_events" bson:"upcoming_events"`

	YoutubeLink     string `json:"youtube_link" bson:"youtube_link"`
	TwitterLink     string `json:"twitter_link" bson:"twitter_link"`
	ItunesLink      string `json:"itunes_link" bson:"itunes_link"`
	LastfmLink      string `json:"lastfm_link" bson:"lastfm_link"`
	SpotifyLink     string `json:"spotify_link" bson:"spotify_link"`
	WikiLink        string `json:"wiki_link" bson:"wiki_link"`
	FacebookLink    string `json:"facebook_link" bson:"facebook_link"`
	MusicbrainzLink string `json:"musicbrainz_link" bson:"musicbrainz_link"`
	InstagramLink   string `json:"instagram_link" bson:"instagram_link"`
	HomepageLink    string `json:"homepage_link" bson:"homepage_link"`
}
