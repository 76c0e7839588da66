package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"
)

// geocodeResponse represents the structure of the response from the Google
// Geocoding API, reduced to the fields this service reads.
type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode resolves a free-text address to the first result's coordinates.
// A non-200 status or an empty result set yields ErrLocationNotFound.
func (c *Client) Geocode(ctx context.Context, address string) (float64, float64, error) {
	reqURL := fmt.Sprintf("%s?address=%s&key=%s", c.geocodeEndpoint(), url.QueryEscape(address), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to build geocoding request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Geocoding API returned non-OK status", zap.Int("status", resp.StatusCode))
		return 0, 0, ErrLocationNotFound
	}

	var data geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return 0, 0, fmt.Errorf("failed to decode geocoding response: %w", err)
	}

	if len(data.Results) == 0 {
		c.logger.Warn("Geocoding API returned no results", zap.String("address", address), zap.String("apiStatus", data.Status))
		return 0, 0, ErrLocationNotFound
	}

	loc := data.Results[0].Geometry.Location
	return loc.Lat, loc.Lng, nil
}
