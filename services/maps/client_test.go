package maps

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newStubServer(t *testing.T, geocodeBody, nearbyBody string, status int) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/maps/api/geocode/json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(geocodeBody))
	})
	mux.HandleFunc("/maps/api/place/nearbysearch/json", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
		w.Write([]byte(nearbyBody))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *Client {
	return NewClient("test-key", 2*time.Second, zap.NewNop(), WithBaseURL(baseURL))
}

func TestGeocodeTakesFirstResult(t *testing.T) {
	srv := newStubServer(t, `{
		"status": "OK",
		"results": [
			{"geometry": {"location": {"lat": 51.523, "lng": -0.1586}}},
			{"geometry": {"location": {"lat": 0, "lng": 0}}}
		]
	}`, `{}`, http.StatusOK)

	lat, lng, err := newTestClient(srv.URL).Geocode(context.Background(), "221B Baker St, NW16XE")
	require.NoError(t, err)
	assert.Equal(t, 51.523, lat)
	assert.Equal(t, -0.1586, lng)
}

func TestGeocodeZeroResults(t *testing.T) {
	srv := newStubServer(t, `{"status": "ZERO_RESULTS", "results": []}`, `{}`, http.StatusOK)

	_, _, err := newTestClient(srv.URL).Geocode(context.Background(), "nowhere")
	require.ErrorIs(t, err, ErrLocationNotFound)
}

func TestGeocodeUpstreamFailure(t *testing.T) {
	srv := newStubServer(t, `{"error": "boom"}`, `{}`, http.StatusInternalServerError)

	_, _, err := newTestClient(srv.URL).Geocode(context.Background(), "anywhere")
	require.ErrorIs(t, err, ErrLocationNotFound)
}

func TestFindNearbyParkingNormalizesResults(t *testing.T) {
	srv := newStubServer(t, `{}`, `{
		"status": "OK",
		"results": [
			{
				"name": "Baker St Car Park",
				"vicinity": "221 Baker Street",
				"rating": 4.2,
				"geometry": {"location": {"lat": 51.523, "lng": -0.1586}}
			},
			{
				"name": "Unrated Lot",
				"vicinity": "Somewhere Else",
				"geometry": {"location": {"lat": 51.52, "lng": -0.16}}
			}
		]
	}`, http.StatusOK)

	lots, err := newTestClient(srv.URL).FindNearbyParking(context.Background(), 51.523, -0.1586)
	require.NoError(t, err)
	require.Len(t, lots, 2)

	assert.Equal(t, "Baker St Car Park", lots[0].Name)
	assert.Equal(t, "221 Baker Street", lots[0].Address)
	assert.Equal(t, "4.2", lots[0].Rating)
	assert.Equal(t, 51.523, lots[0].Lat)
	assert.Equal(t, -0.1586, lots[0].Lng)

	// Places without a rating get the sentinel.
	assert.Equal(t, "No rating", lots[1].Rating)

	// Upstream order is preserved, no dedup or re-sort.
	assert.Equal(t, "Unrated Lot", lots[1].Name)
}

func TestFindNearbyParkingEmptyResults(t *testing.T) {
	srv := newStubServer(t, `{}`, `{"status": "ZERO_RESULTS", "results": []}`, http.StatusOK)

	_, err := newTestClient(srv.URL).FindNearbyParking(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrNoParkingFound)
}

func TestFindNearbyParkingUpstreamFailure(t *testing.T) {
	srv := newStubServer(t, `{}`, `{"error": "quota"}`, http.StatusForbidden)

	_, err := newTestClient(srv.URL).FindNearbyParking(context.Background(), 1, 2)
	require.ErrorIs(t, err, ErrNoParkingFound)
}
