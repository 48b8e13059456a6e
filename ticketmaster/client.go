// Package ticketmaster implements the Discovery API client and the event
// normalization engine: query composition, date-window filtering, record
// normalization and the attraction cross-reference lookup.
package ticketmaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultBaseURL = "https://app.ticketmaster.com/discovery/v2"

// Config holds everything a Client needs; construct once in main and
// inject. No package-level client state.
type Config struct {
	BaseURL string        // defaults to the Discovery v2 endpoint
	APIKey  string
	Timeout time.Duration // defaults to 15s
}

type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 15 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

// providerError carries the upstream error detail extracted from a non-2xx
// response body.
type providerError struct {
	detail string
}

func (e *providerError) Error() string { return e.detail }

// errorMessage maps any fetch failure to the user-facing message: the
// provider's own detail when one was returned, a generic fallback for
// transport errors and timeouts.
func errorMessage(err error) string {
	var pe *providerError
	if errors.As(err, &pe) {
		return pe.detail
	}
	return "Ticketmaster: Unknown error"
}

// get performs one API call with the client's default parameters applied.
func (c *Client) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	params.Set("apikey", c.apiKey)
	if params.Get("classificationName") == "" {
		params.Set("classificationName", "Music") // music events only
	}
	if params.Get("locale") == "" {
		params.Set("locale", "en-us")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var er struct {
			Errors []struct {
				Detail string `json:"detail"`
			} `json:"errors"`
		}
		if json.Unmarshal(body, &er) == nil && len(er.Errors) > 0 && er.Errors[0].Detail != "" {
			return nil, &providerError{detail: er.Errors[0].Detail}
		}
		return nil, fmt.Errorf("ticketmaster: unexpected status %s", resp.Status)
	}

	return body, nil
}
