package parking

import (
	"context"

	"parkwise/models"
)

// Service orchestrates the parking flows: listing, prediction, booking and
// cancellation. Implementations validate input before touching any
// collaborator and return typed domain errors; translating those to HTTP
// statuses is the handlers' job.
type Service interface {
	// ListNearbySlots geocodes "<location>, <postcode>" and returns the
	// parking lots around the resolved point.
	ListNearbySlots(ctx context.Context, query models.SlotQuery) ([]models.ParkingLot, error)
	// PredictAvailability finds lots near the supplied coordinates and
	// scores each with the availability classifier.
	PredictAvailability(ctx context.Context, req models.PredictionRequest) ([]models.PredictedLot, error)
	// Book reserves one slot at a location for a user.
	Book(ctx context.Context, req models.BookingRequest) error
	// Cancel releases a user's slot at a location.
	Cancel(ctx context.Context, req models.BookingRequest) error
}
