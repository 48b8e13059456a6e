// Package events exposes the concert browse/search routes on top of the
// ticketmaster engine.
package events

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"strconv"

	"stagepass/geo"
	"stagepass/models"
	"stagepass/ticketmaster"
	"stagepass/users"
	"stagepass/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const defaultRadiusKm = 250

// Handler holds the injected provider client; no package-level state.
type Handler struct {
	TM *ticketmaster.Client
}

func NewHandler(tm *ticketmaster.Client) *Handler {
	return &Handler{TM: tm}
}

// currentUser loads the account behind the request, or nil for anonymous.
func currentUser(r *http.Request) *models.User {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		return nil
	}
	user, err := users.FindByID(r.Context(), userID)
	if err != nil {
		return nil
	}
	return user
}

// coordinates resolves the search origin: the user's stored zip code,
// else explicit query coordinates, else the campus default.
func coordinates(r *http.Request, user *models.User) (float64, float64) {
	if user != nil && user.ZipCode != "" {
		if c, ok := geo.LookupZip(user.ZipCode); ok {
			return c.Latitude, c.Longitude
		}
	}
	latStr, lngStr := r.URL.Query().Get("latitude"), r.URL.Query().Get("longitude")
	if latStr != "" && lngStr != "" {
		lat, errLat := strconv.ParseFloat(latStr, 64)
		lng, errLng := strconv.ParseFloat(lngStr, 64)
		if errLat == nil && errLng == nil {
			return lat, lng
		}
	}
	return geo.DefaultLatitude, geo.DefaultLongitude
}

func sizeParam(r *http.Request) float64 {
	size, err := strconv.ParseFloat(r.URL.Query().Get("size"), 64)
	if err != nil {
		return 0 // engine default applies
	}
	return size
}

func followedEvents(user *models.User) []string {
	if user == nil {
		return nil
	}
	return user.FollowedEvents
}

func attractionIDs(user *models.User) []string {
	if user == nil {
		return nil
	}
	var ids []string
	for _, artist := range user.FollowedArtists {
		if artist.TicketmasterID != "" {
			ids = append(ids, artist.TicketmasterID)
		}
	}
	return ids
}

// Feeds lists upcoming concerts: followed artists' events for logged-in
// users with a synced profile, a US/CA browse otherwise.
func (h *Handler) Feeds(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	user := currentUser(r)
	lat, lng := coordinates(r, user)

	opts := ticketmaster.SearchOptions{
		Latitude:       lat,
		Longitude:      lng,
		Size:           sizeParam(r),
		Sort:           "date,asc",
		StartDate:      q.Get("startDateStr"),
		EndDate:        q.Get("endDateStr"),
		SearchLocation: q.Get("searchlocation"),
		FollowedEvents: followedEvents(user),
	}

	if ids := attractionIDs(user); len(ids) > 0 {
		opts.AttractionIDs = ids
	} else {
		opts.CountryCode = "CA,US"
	}

	utils.RespondWithJSON(w, http.StatusOK, h.TM.GetEvents(r.Context(), opts))
}

// Followed lists the user's favorited events.
func (h *Handler) Followed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := currentUser(r)
	if user == nil || len(user.FollowedEvents) == 0 {
		utils.RespondWithJSON(w, http.StatusOK, ticketmaster.SearchResult{Events: []any{}})
		return
	}

	lat, lng := coordinates(r, user)
	result := h.TM.GetEvents(r.Context(), ticketmaster.SearchOptions{
		Latitude:       lat,
		Longitude:      lng,
		EventIDs:       user.FollowedEvents,
		Size:           sizeParam(r),
		Sort:           "date,asc",
		FollowedEvents: user.FollowedEvents,
	})
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Recommended browses nearby events, drops the ones the feeds and
// followed lists already show, then serves a random sample of 8. Order is
// intentionally unspecified.
func (h *Handler) Recommended(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := currentUser(r)
	lat, lng := coordinates(r, user)

	radius := defaultRadiusKm
	if user != nil && user.Range > 0 {
		radius = user.Range
	}

	result := h.TM.GetEvents(r.Context(), ticketmaster.SearchOptions{
		Latitude:       lat,
		Longitude:      lng,
		Radius:         radius,
		Size:           40, // over-fetch to leave room for the filters below
		Sort:           "distance,asc",
		FollowedEvents: followedEvents(user),
	})

	if user != nil {
		artistSet := make(map[string]bool)
		for _, id := range attractionIDs(user) {
			artistSet[id] = true
		}
		eventSet := make(map[string]bool)
		for _, id := range user.FollowedEvents {
			eventSet[id] = true
		}

		kept := result.Events[:0]
		for _, ev := range result.Events {
			summary, ok := ev.(ticketmaster.EventSummary)
			if ok && (artistSet[summary.ArtistID] || eventSet[summary.ID]) {
				continue
			}
			kept = append(kept, ev)
		}
		result.Events = kept
	}

	rand.Shuffle(len(result.Events), func(i, j int) {
		result.Events[i], result.Events[j] = result.Events[j], result.Events[i]
	})
	if len(result.Events) > 8 {
		result.Events = result.Events[:8]
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// ArtistEvents lists events for one attraction ID.
func (h *Handler) ArtistEvents(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	user := currentUser(r)
	lat, lng := coordinates(r, user)

	result := h.TM.GetEvents(r.Context(), ticketmaster.SearchOptions{
		Latitude:       lat,
		Longitude:      lng,
		AttractionIDs:  []string{q.Get("id")},
		Size:           sizeParam(r),
		Sort:           "date,asc",
		SearchLocation: q.Get("searchlocation"),
		FollowedEvents: followedEvents(user),
	})
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Search runs a keyword search with optional date range and location.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	user := currentUser(r)
	lat, lng := coordinates(r, user)

	result := h.TM.GetEvents(r.Context(), ticketmaster.SearchOptions{
		Latitude:       lat,
		Longitude:      lng,
		Keyword:        q.Get("keyword"),
		Size:           sizeParam(r),
		Sort:           "date,asc",
		StartDate:      q.Get("startDateStr"),
		EndDate:        q.Get("endDateStr"),
		SearchLocation: q.Get("searchlocation"),
		FollowedEvents: followedEvents(user),
	})
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Detail fetches one event with the full field set.
func (h *Handler) Detail(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := currentUser(r)
	lat, lng := coordinates(r, user)

	result := h.TM.GetEvents(r.Context(), ticketmaster.SearchOptions{
		Latitude:       lat,
		Longitude:      lng,
		EventIDs:       []string{r.URL.Query().Get("eventId")},
		Size:           1,
		Sort:           "distance,asc",
		Mode:           ticketmaster.ModeDetail,
		FollowedEvents: followedEvents(user),
	})
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// Favorite toggles an event in the user's followed list.
func (h *Handler) Favorite(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	user := currentUser(r)
	if user == nil {
		utils.RespondWithJSON(w, http.StatusUnauthorized, utils.M{
			"success": false,
			"message": "User not authenticated",
		})
		return
	}

	var input struct {
		EventID string `json:"eventId"`
		State   bool   `json:"state"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.EventID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	followed := user.FollowedEvents
	if input.State {
		if !contains(followed, input.EventID) {
			followed = append(followed, input.EventID)
		}
	} else {
		kept := followed[:0]
		for _, id := range followed {
			if id != input.EventID {
				kept = append(kept, id)
			}
		}
		followed = kept
	}

	if _, err := users.UpdateFields(r.Context(), user.Email, bson.M{"followed_events": followed}); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update favorites")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"enabled": input.State,
	})
}

func contains(slice []string, value string) bool {
	for _, s := range slice {
		if s == value {
			return true
		}
	}
	return false
}
