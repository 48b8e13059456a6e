// Package artists serves the synced followed-artists list.
package artists

import (
	"net/http"

	"stagepass/models"
	"stagepass/users"
	"stagepass/utils"

	"github.com/julienschmidt/httprouter"
)

// GetFollowedArtists returns the stored synced list; anonymous requests
// get an empty array, never an error.
func GetFollowedArtists(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithJSON(w, http.StatusOK, []models.FollowedArtist{})
		return
	}

	user, err := users.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user.FollowedArtists)
}
