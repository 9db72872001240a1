// Package client implements HTTP clients for the venue and table
// directories. Both directories sit behind the same API gateway and expect
// a service bearer token on every call. Directory data is read fresh on
// every request; nothing here caches across requests.
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/tablebook/reservation-api/internal/model"
)

// VenueClient fetches venue documents from the venue directory.
type VenueClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewVenueClient constructs a client with a base URL and service token.
func NewVenueClient(baseURL, token string) *VenueClient {
	return &VenueClient{
		baseURL:    baseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// GetVenue fetches a venue document, including its weekly opening hours.
func (c *VenueClient) GetVenue(ctx context.Context, venueID string) (*model.Venue, error) {
	endpoint := fmt.Sprintf("%s/v1/venues/%s", c.baseURL, url.PathEscape(venueID))
	var venue model.Venue
	if err := doGet(ctx, c.httpClient, c.token, endpoint, &venue); err != nil {
		return nil, fmt.Errorf("venue directory: %w", err)
	}
	return &venue, nil
}

// doGet performs an authenticated GET and decodes the JSON body into out.
// Non-2xx responses are surfaced as errors carrying the status code.
func doGet(ctx context.Context, hc *http.Client, token, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
