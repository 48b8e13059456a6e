package ticketmaster

import (
	"context"
	"encoding/json"
	"log"
)

// GetEvents runs one search: build params, call the provider, re-filter by
// date window, normalize, trim. It never returns a Go error; transport and
// HTTP failures come back as a well-formed result with Error set and an
// empty event list.
func (c *Client) GetEvents(ctx context.Context, opts SearchOptions) SearchResult {
	opts = opts.withDefaults()

	body, err := c.get(ctx, "/events.json", buildParams(opts))
	if err != nil {
		log.Printf("Error fetching events: %v", err)
		return SearchResult{Events: []any{}, Error: errorMessage(err)}
	}

	var resp rawResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		log.Printf("Error decoding events response: %v", err)
		return SearchResult{Events: []any{}, Error: errorMessage(err)}
	}

	// The provider may return events outside the requested range.
	filtered := filterByDateWindow(resp.Embedded.Events, opts.StartDate, opts.EndDate)

	var spellcheck string
	if len(resp.Spellcheck.Suggestions) > 0 {
		spellcheck = resp.Spellcheck.Suggestions[0].Suggestion
	}
	originalKeyword := resp.Spellcheck.Original

	// Nothing survived but the provider suggested a spelling: return the
	// suggestion without normalizing anything.
	if len(filtered) == 0 && spellcheck != "" {
		return SearchResult{
			Events:          []any{},
			Spellcheck:      spellcheck,
			OriginalKeyword: originalKeyword,
		}
	}

	followed := make(map[string]bool, len(opts.FollowedEvents))
	for _, id := range opts.FollowedEvents {
		followed[id] = true
	}

	events := make([]any, 0, len(filtered))
	for _, raw := range filtered {
		ev := normalizeEvent(raw, followed)
		if opts.Mode == ModeList {
			events = append(events, ev.Summary())
		} else {
			events = append(events, ev)
		}
	}

	return SearchResult{
		Events:          events,
		Spellcheck:      spellcheck,
		OriginalKeyword: originalKeyword,
	}
}
