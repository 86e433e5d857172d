// Package feed fetches vehicle reference records from the external
// Parse-style feed the sync job consumes.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// VehicleRecord is one entry from the feed
type VehicleRecord struct {
	Year  int    `json:"Year"`
	Make  string `json:"Make"`
	Model string `json:"Model"`
}

type feedResponse struct {
	Results []VehicleRecord `json:"results"`
}

// Client fetches vehicle records from the configured feed URL
type Client struct {
	url       string
	appID     string
	masterKey string
	client    *http.Client
}

// NewClient creates a new feed client
func NewClient(url, appID, masterKey string) *Client {
	return &Client{
		url:       url,
		appID:     appID,
		masterKey: masterKey,
		client:    &http.Client{Timeout: 60 * time.Second},
	}
}

// FetchVehicles retrieves all vehicle records from the feed
func (c *Client) FetchVehicles(ctx context.Context) ([]VehicleRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Parse-Application-Id", c.appID)
	req.Header.Set("X-Parse-Master-Key", c.masterKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed returned status %d", resp.StatusCode)
	}

	var feedResp feedResponse
	if err := json.NewDecoder(resp.Body).Decode(&feedResp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return feedResp.Results, nil
}
