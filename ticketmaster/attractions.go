package ticketmaster

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
)

// AttractionRef is the cross-reference record for one artist: the
// provider's attraction ID plus the media and social links used during
// the artist-sync flow.
type AttractionRef struct {
	Name           string
	ID             string
	URL            string
	Genre          string
	UpcomingEvents int

	Image169 string
	Image32  string

	YoutubeLink     string
	TwitterLink     string
	ItunesLink      string
	LastfmLink      string
	SpotifyLink     string
	WikiLink        string
	FacebookLink    string
	MusicbrainzLink string
	InstagramLink   string
	HomepageLink    string
}

// GetAttractionRefs looks up the attraction record for each artist name,
// one sequential call per artist. Sequencing is intentional: it keeps the
// sync flow inside the provider's rate limits. Artists without an exact
// (case-insensitive) name match are skipped.
func (c *Client) GetAttractionRefs(ctx context.Context, names []string) ([]AttractionRef, error) {
	var refs []AttractionRef

	for _, name := range names {
		params := url.Values{}
		params.Set("keyword", name)

		body, err := c.get(ctx, "/attractions.json", params)
		if err != nil {
			return nil, err
		}

		var resp struct {
			Embedded struct {
				Attractions []rawAttraction `json:"attractions"`
			} `json:"_embedded"`
		}
		if err := json.Unmarshal(body, &resp); err != nil {
			return nil, err
		}

		for _, a := range resp.Embedded.Attractions {
			if !strings.EqualFold(a.Name, name) {
				continue
			}

			genre := "General"
			if len(a.Classifications) > 0 && a.Classifications[0].Genre.Name != "" {
				genre = a.Classifications[0].Genre.Name
			}

			refs = append(refs, AttractionRef{
				Name:           name,
				ID:             a.ID,
				URL:            a.URL,
				Genre:          "Music | " + genre,
				UpcomingEvents: a.UpcomingEvents.Total,

				Image169: findImage(a.Images, "16_9", 1024),
				Image32:  findImage(a.Images, "3_2", 305),

				YoutubeLink:     a.ExternalLinks.first("youtube"),
				TwitterLink:     a.ExternalLinks.first("twitter"),
				ItunesLink:      a.ExternalLinks.first("itunes"),
				LastfmLink:      a.ExternalLinks.first("lastfm"),
				SpotifyLink:     a.ExternalLinks.first("spotify"),
				WikiLink:        a.ExternalLinks.first("wiki"),
				FacebookLink:    a.ExternalLinks.first("facebook"),
				MusicbrainzLink: a.ExternalLinks.first("musicbrainz"),
				InstagramLink:   a.ExternalLinks.first("instagram"),
				HomepageLink:    a.ExternalLinks.first("homepage"),
			})
			break
		}
	}

	return refs, nil
}
