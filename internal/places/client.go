package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"restaurant-backend/internal/shared/telemetry"
)

const (
	defaultBaseURL = "https://places-api.foursquare.com"
	apiVersion     = "2025-06-17"

	defaultRadius = 3000 // meters
	defaultLimit  = 20
)

// Client wraps the Foursquare places search API.
type Client struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient constructs a places client. The API key is injected here and
// never read from the environment inside the client.
func NewClient(apiKey, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		APIKey:  apiKey,
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// SearchNearby searches restaurants around a coordinate pair. The optional
// cuisine words narrow the search via the category-ID map.
func (c *Client) SearchNearby(ctx context.Context, latitude, longitude float64, cuisines []string) ([]Venue, error) {
	params := url.Values{}
	params.Set("ll", fmt.Sprintf("%s,%s",
		strconv.FormatFloat(latitude, 'f', -1, 64),
		strconv.FormatFloat(longitude, 'f', -1, 64)))
	return c.search(ctx, params, cuisines)
}

// SearchNear searches restaurants around a free-text location name, e.g.
// "Hong Kong". Mutually exclusive with coordinate search.
func (c *Client) SearchNear(ctx context.Context, locationName string, cuisines []string) ([]Venue, error) {
	params := url.Values{}
	params.Set("near", locationName)
	return c.search(ctx, params, cuisines)
}

func (c *Client) search(ctx context.Context, params url.Values, cuisines []string) ([]Venue, error) {
	params.Set("radius", strconv.Itoa(defaultRadius))
	params.Set("limit", strconv.Itoa(defaultLimit))
	if filter := categoriesParam(cuisines); filter != "" {
		params.Set("categories", filter)
	}

	endpoint := c.BaseURL + "/places/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Authorization", "Bearer "+c.APIKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Places-Api-Version", apiVersion)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		body, _ := io.ReadAll(resp.Body)
		telemetry.Error("places.auth_failed", map[string]any{"status": resp.StatusCode, "body": string(body)})
		return nil, fmt.Errorf("%w: HTTP %d", ErrUnauthorized, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		telemetry.Error("places.search_failed", map[string]any{"status": resp.StatusCode, "body": string(body)})
		return nil, fmt.Errorf("%w: HTTP %d", ErrUnavailable, resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	return filterClosed(payload.Results), nil
}

// filterClosed drops venues flagged as permanently closed. The filter is
// conservative: it would rather over-exclude a marginal venue than recommend
// a defunct restaurant.
func filterClosed(venues []Venue) []Venue {
	open := make([]Venue, 0, len(venues))
	for _, v := range venues {
		if v.ClosedBucket == "VeryLikelyClosedPermanently" || v.ClosedBucket == "LikelyClosedPermanently" {
			continue
		}
		open = append(open, v)
	}
	return open
}
