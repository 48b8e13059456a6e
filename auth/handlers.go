package auth

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"stagepass/middleware"
	"stagepass/models"
	"stagepass/rdx"
	"stagepass/users"
	"stagepass/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"golang.org/x/crypto/bcrypt"

	"stagepass/globals"
)

const tokenTTL = 72 * time.Hour

func createToken(email, userID string) (string, error) {
	claims := &middleware.Claims{
		Email:  email,
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

func registerHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Name     string `json:"name"`
		Password string `json:"password"`
		ZipCode  string `json:"zip_code"`
		Range    int    `json:"range"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" || input.Name == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Missing required fields")
		return
	}

	existing, err := users.FindByEmail(r.Context(), input.Email)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}
	if existing != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "User already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Failed to hash password for %s: %v", input.Email, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	user := &models.User{
		UserID:   "u" + uuid.NewString(),
		Email:    input.Email,
		Name:     input.Name,
		Password: string(hashed),
		ZipCode:  input.ZipCode,
		Range:    input.Range,
	}
	if err := users.Insert(r.Context(), user); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to register user")
		return
	}

	token, err := createToken(user.Email, user.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	log.Printf("User registered: %s", user.Email)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token": token,
		"user":  user,
	})
}

func loginHandler(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, err := users.FindByEmail(r.Context(), input.Email)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusBadRequest, "User not found")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid password")
		return
	}

	token, err := createToken(user.Email, user.UserID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	if err := rdx.RdxHset("tokki", user.UserID, token); err != nil {
		log.Printf("Redis token storage failed: %v", err)
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"token": token,
		"user":  user,
	})
}

func logoutHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserIDFromRequest(r)
	if userID != "" {
		if _, err := rdx.RdxHdel("tokki", userID); err != nil {
			log.Printf("Error removing token from Redis: %v", err)
		}
	}
	// Client clears its stored token either way.
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Logged out successfully"})
}

// profileResponse pairs the account with its last Spotify sync time,
// empty when the account never synced or the flag expired.
func profileResponse(user *models.User, syncedAt string) utils.M {
	return utils.M{
		"user":              user,
		"spotify_synced_at": syncedAt,
	}
}

func getProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserIDFromRequest(r)
	user, err := users.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	syncedAt, err := rdx.RdxGet("sync:" + user.UserID)
	if err != nil {
		syncedAt = ""
	}
	utils.RespondWithJSON(w, http.StatusOK, profileResponse(user, syncedAt))
}

func updateProfileHandler(w http.ResponseWriter, r *http.Request) {
	userID := utils.GetUserIDFromRequest(r)
	user, err := users.FindByID(r.Context(), userID)
	if err != nil || user == nil {
		utils.RespondWithError(w, http.StatusUnauthorized, "User not authenticated")
		return
	}

	// Only name, password, zip_code, range and followed_events may change.
	var input struct {
		Name           string   `json:"name"`
		Password       string   `json:"password"`
		ZipCode        string   `json:"zip_code"`
		Range          int      `json:"range"`
		FollowedEvents []string `json:"followed_events"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	fields := bson.M{}
	if input.Name != "" {
		fields["name"] = input.Name
	}
	if input.ZipCode != "" {
		fields["zip_code"] = input.ZipCode
	}
	if input.Range != 0 {
		fields["range"] = input.Range
	}
	if input.FollowedEvents != nil {
		fields["followed_events"] = input.FollowedEvents
	}
	if input.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to hash password")
			return
		}
		fields["password"] = string(hashed)
	}

	updated, err := users.UpdateFields(r.Context(), user.Email, fields)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, updated)
}
