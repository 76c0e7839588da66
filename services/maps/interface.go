package maps

import (
	"context"
	"errors"

	"parkwise/models"
)

var (
	// ErrLocationNotFound is returned when geocoding yields no usable result.
	ErrLocationNotFound = errors.New("failed to resolve location")
	// ErrNoParkingFound is returned when the Places search yields no lots.
	ErrNoParkingFound = errors.New("no nearby parking found")
)

// Geocoder resolves a free-text address to coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, address string) (lat, lng float64, err error)
}

// LotFinder searches for parking lots near a coordinate pair.
type LotFinder interface {
	FindNearbyParking(ctx context.Context, lat, lng float64) ([]models.ParkingLot, error)
}
