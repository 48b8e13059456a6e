// Package spotifysync implements the artist-sync flow: authorize with the
// streaming provider, list followed artists, cross-reference each against
// the ticketing provider and persist the merged records.
package spotifysync

import (
	"log"
	"net/http"
	"time"

	"stagepass/models"
	"stagepass/rdx"
	"stagepass/spotify"
	"stagepass/ticketmaster"
	"stagepass/users"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

type Handler struct {
	Spotify     *spotify.Client
	TM          *ticketmaster.Client
	FrontendURI string
}

func NewHandler(sp *spotify.Client, tm *ticketmaster.Client, frontendURI string) *Handler {
	return &Handler{Spotify: sp, TM: tm, FrontendURI: frontendURI}
}

// Login redirects the browser to the provider's authorization page.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	email := r.URL.Query().Get("email")
	log.Printf("Spotify sync requested for %s", email)
	http.Redirect(w, r, h.Spotify.AuthURL(email), http.StatusFound)
}

// Callback finishes the flow. Every failure redirects back to the
// frontend with a failure flag; nothing here renders errors directly.
func (h *Handler) Callback(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	fail := func(reason string, err error) {
		log.Printf("Spotify sync failed (%s): %v", reason, err)
		http.Redirect(w, r, h.FrontendURI+"?sync_spotify=failed", http.StatusFound)
	}

	q := r.URL.Query()
	email, err := spotify.DecodeState(q.Get("state"))
	if err != nil {
		fail("state", err)
		return
	}

	user, err := users.FindByEmail(r.Context(), email)
	if err != nil || user == nil {
		fail("user lookup", err)
		return
	}

	accessToken, err := h.Spotify.Exchange(r.Context(), q.Get("code"))
	if err != nil {
		fail("token exchange", err)
		return
	}

	followed, err := h.Spotify.FollowedArtists(r.Context(), accessToken)
	if err != nil {
		fail("followed artists", err)
		return
	}

	names := make([]string, 0, len(followed))
	for _, artist := range followed {
		names = append(names, artist.Name)
	}

	refs, err := h.TM.GetAttractionRefs(r.Context(), names)
	if err != nil {
		fail("attraction lookup", err)
		return
	}

	merged := mergeArtistRefs(followed, refs)
	if _, err := users.UpdateFields(r.Context(), email, bson.M{"followed_artists": merged}); err != nil {
		fail("save", err)
		return
	}

	if err := rdx.SetWithExpiry("sync:"+user.UserID, time.Now().Format(time.RFC3339), 24*time.Hour); err != nil {
		log.Printf("Failed to cache sync status for %s: %v", user.UserID, err)
	}

	log.Printf("Spotify sync success for %s (%d artists)", email, len(merged))
	http.Redirect(w, r, h.FrontendURI+"?sync_spotify=success", http.StatusFound)
}

// mergeArtistRefs joins the followed list against the cross-reference
// records by exact artist name, producing new merged records. The exact,
// case-sensitive join mirrors how the sync has always worked; artists
// whose provider spelling differs simply stay un-enriched.
func mergeArtistRefs(followed []models.FollowedArtist, refs []ticketmaster.AttractionRef) []models.FollowedArtist {
	byName := make(map[string]ticketmaster.AttractionRef, len(refs))
	for _, ref := range refs {
		byName[ref.Name] = ref
	}

	merged := make([]models.FollowedArtist, 0, len(followed))
	for _, artist := range followed {
		if ref, ok := byName[artist.Name]; ok {
			artist.TicketmasterID = ref.ID
			artist.TicketmasterURL = ref.URL
			artist.TicketmasterGenre = ref.Genre
			artist.TicketmasterImage169 = ref.Image169
			artist.TicketmasterImage32 = ref.Image32
			artist.UpcomingEvents = ref.UpcomingEvents

			artist.YoutubeLink = ref.YoutubeLink
			artist.TwitterLink = ref.TwitterLink
			artist.ItunesLink = ref.ItunesLink
			artist.LastfmLink = ref.LastfmLink
			artist.SpotifyLink = ref.SpotifyLink
			artist.WikiLink = ref.WikiLink
			artist.FacebookLink = ref.FacebookLink
			artist.MusicbrainzLink = ref.MusicbrainzLink
			artist.InstagramLink = ref.InstagramLink
			artist.HomepageLink = ref.HomepageLink
		}
		merged = append(merged, artist)
	}
	return merged
}
