package maps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"parkwise/models"

	"go.uber.org/zap"
)

// noRating is the sentinel used when a place carries no rating.
const noRating = "No rating"

// nearbyResponse represents the structure of the response from the Places
// Nearby Search API, reduced to the fields this service reads.
type nearbyResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Name     string   `json:"name"`
		Vicinity string   `json:"vicinity"`
		Rating   *float64 `json:"rating"`
		Geometry struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// FindNearbyParking queries the Places API for parking within the fixed
// radius and normalizes each result into a ParkingLot. Upstream order is
// preserved and no deduplication is applied. A non-200 status or an empty
// result list yields ErrNoParkingFound.
func (c *Client) FindNearbyParking(ctx context.Context, lat, lng float64) ([]models.ParkingLot, error) {
	if lots, ok := c.cachedNearby(ctx, lat, lng); ok {
		return lots, nil
	}

	reqURL := fmt.Sprintf("%s?location=%f,%f&radius=%d&type=%s&key=%s",
		c.nearbyEndpoint(), lat, lng, searchRadius, placeType, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Places API returned non-OK status", zap.Int("status", resp.StatusCode))
		return nil, ErrNoParkingFound
	}

	var data nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	if len(data.Results) == 0 {
		c.logger.Warn("Places API returned no parking spots",
			zap.Float64("lat", lat), zap.Float64("lng", lng), zap.String("apiStatus", data.Status))
		return nil, ErrNoParkingFound
	}

	lots := make([]models.ParkingLot, 0, len(data.Results))
	for _, place := range data.Results {
		rating := noRating
		if place.Rating != nil {
			rating = fmt.Sprintf("%.1f", *place.Rating)
		}
		lots = append(lots, models.ParkingLot{
			Name:    place.Name,
			Address: place.Vicinity,
			Rating:  rating,
			Lat:     place.Geometry.Location.Lat,
			Lng:     place.Geometry.Location.Lng,
		})
	}

	c.storeNearby(ctx, lat, lng, lots)
	return lots, nil
}
