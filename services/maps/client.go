package maps

import (
	"net/http"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	geocodeURL = "https://maps.googleapis.com/maps/api/geocode/json"
	nearbyURL  = "https://maps.googleapis.com/maps/api/place/nearbysearch/json"

	// Fixed search parameters for the Places Nearby Search call.
	searchRadius = 1500
	placeType    = "parking"

	// How long a cached Places response stays fresh.
	nearbyCacheTTL = 10 * time.Minute
)

// Client talks to the Google Geocoding and Places APIs. It implements both
// Geocoder and LotFinder.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	cache   *redis.Client
	logger  *zap.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithCache enables Redis caching of nearby-lots responses.
func WithCache(cache *redis.Client) Option {
	return func(c *Client) { c.cache = cache }
}

// WithBaseURL overrides the Google API host, used by tests to point the
// client at a stub server.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// NewClient builds a maps client with an explicit timeout on upstream calls.
func NewClient(apiKey string, timeout time.Duration, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		apiKey: apiKey,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) geocodeEndpoint() string {
	if c.baseURL != "" {
		return c.baseURL + "/maps/api/geocode/json"
	}
	return geocodeURL
}

func (c *Client) nearbyEndpoint() string {
	if c.baseURL != "" {
		return c.baseURL + "/maps/api/place/nearbysearch/json"
	}
	return nearbyURL
}
