package utils

import (
	"net/http"

	"stagepass/globals"
)

// GetUserIDFromRequest reads the user ID the auth middleware attached to
// the request context; "" for anonymous requests.
func GetUserIDFromRequest(r *http.Request) string {
	requestingUserID, ok := r.Context().Value(globals.UserIDKey).(string)
	if !ok || requestingUserID == "" {
		return ""
	}
	return requestingUserID
}
