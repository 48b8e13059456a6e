package auth

import (
	"testing"

	"stagepass/models"
)

func TestProfileResponse(t *testing.T) {
	user := &models.User{UserID: "u1", Email: "a@example.com"}

	resp := profileResponse(user, "2026-08-30T12:00:00Z")
	if resp["user"] != user {
		t.Error("profile must carry the account document")
	}
	if resp["spotify_synced_at"] != "2026-08-30T12:00:00Z" {
		t.Errorf("spotify_synced_at = %v", resp["spotify_synced_at"])
	}

	if got := profileResponse(user, "")["spotify_synced_at"]; got != "" {
		t.Errorf("never-synced account must report an empty sync time, got %v", got)
	}
}
