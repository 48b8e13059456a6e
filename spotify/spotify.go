// Package spotify handles the streaming-provider side: the
// authorization-code flow and the followed-artists listing.
package spotify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"stagepass/models"

	"golang.org/x/oauth2"
)

const defaultAPIBaseURL = "https://api.spotify.com/v1"

var endpoint = oauth2.Endpoint{
	AuthURL:  "https://accounts.spotify.com/authorize",
	TokenURL: "https://accounts.spotify.com/api/token",
}

// Config is set once in main; no module-level client state.
type Config struct {
	ClientID     string
	ClientSecret string
	RedirectURI  string
	Scopes       []string      // defaults to user-follow-read
	APIBaseURL   string        // overridable for tests
	Timeout      time.Duration // defaults to 15s
}

type Client struct {
	oauth      *oauth2.Config
	apiBaseURL string
	http       *http.Client
}

func NewClient(cfg Config) *Client {
	if len(cfg.Scopes) == 0 {
		cfg.Scopes = []string{"user-follow-read"}
	}
	if cfg.APIBaseURL == "" {
		cfg.APIBaseURL = defaultAPIBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       cfg.Scopes,
			Endpoint:     endpoint,
		},
		apiBaseURL: strings.TrimRight(cfg.APIBaseURL, "/"),
		http:       &http.Client{Timeout: cfg.Timeout},
	}
}

// AuthURL builds the authorization redirect. The user's email rides along
// base64-encoded in the state parameter so the callback can find the
// account again.
func (c *Client) AuthURL(email string) string {
	state := base64.StdEncoding.EncodeToString([]byte(email))
	return c.oauth.AuthCodeURL(state,
		oauth2.SetAuthURLParam("show_dialog", "true"))
}

// DecodeState recovers the email carried through the OAuth state.
func DecodeState(state string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(state)
	if err != nil {
		return "", fmt.Errorf("invalid state parameter: %w", err)
	}
	return string(b), nil
}

// Exchange trades the one-time authorization code for an access token.
func (c *Client) Exchange(ctx context.Context, code string) (string, error) {
	tok, err := c.oauth.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("token exchange failed: %w", err)
	}
	return tok.AccessToken, nil
}

// FollowedArtists lists the artists the user follows, normalized to the
// stored shape.
func (c *Client) FollowedArtists(ctx context.Context, accessToken string) ([]models.FollowedArtist, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/me/following?type=artist", nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spotify: unexpected status %s", resp.Status)
	}

	var parsed struct {
		Artists struct {
			Items []struct {
				ID        string `json:"id"`
				Name      string `json:"name"`
				Followers struct {
					Total int `json:"total"`
				} `json:"followers"`
				Images []struct {
					URL string `json:"url"`
				} `json:"images"`
			} `json:"items"`
		} `json:"artists"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, err
	}

	artists := make([]models.FollowedArtist, 0, len(parsed.Artists.Items))
	for _, item := range parsed.Artists.Items {
		var image string
		if len(item.Images) > 0 {
			image = item.Images[0].URL
		}
		artists = append(artists, models.FollowedArtist{
			ID:        item.ID,
			Name:      item.Name,
			Followers: item.Followers.Total,
			Image:     image,
		})
	}
	return artists, nil
}
