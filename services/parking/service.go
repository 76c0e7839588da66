package parking

import (
	"context"
	"fmt"

	slotsRepo "parkwise/database/repository/slots"
	"parkwise/models"
	"parkwise/services/maps"
	"parkwise/services/prediction"

	"go.uber.org/zap"
)

// DefaultParkingService is the production Service implementation. All
// collaborators are injected; the service holds no mutable state of its own.
type DefaultParkingService struct {
	Geocoder  maps.Geocoder
	Finder    maps.LotFinder
	Predictor prediction.Predictor
	Slots     slotsRepo.SlotRepository
	Logger    *zap.Logger
}

// ListNearbySlots resolves the query's free-text location and returns the
// parking lots around it.
func (s *DefaultParkingService) ListNearbySlots(ctx context.Context, query models.SlotQuery) ([]models.ParkingLot, error) {
	if query.Location == "" || query.Postcode == "" {
		return nil, newValidationError("Location and postcode are required")
	}

	lat, lng, err := s.Geocoder.Geocode(ctx, fmt.Sprintf("%s, %s", query.Location, query.Postcode))
	if err != nil {
		return nil, err
	}

	return s.Finder.FindNearbyParking(ctx, lat, lng)
}

// PredictAvailability fetches the lots around the supplied coordinates and
// attaches the classifier's label to each. Validation happens up front: a
// request missing any of the five fields never reaches the maps client or
// the model.
func (s *DefaultParkingService) PredictAvailability(ctx context.Context, req models.PredictionRequest) ([]models.PredictedLot, error) {
	if req.Latitude == nil || req.Longitude == nil || req.DayOfWeek == nil || req.HourOfDay == nil || req.Weather == nil {
		return nil, newValidationError("All fields are required")
	}

	weatherCode, err := prediction.EncodeWeather(*req.Weather)
	if err != nil {
		return nil, newValidationError(err.Error())
	}

	lots, err := s.Finder.FindNearbyParking(ctx, *req.Latitude, *req.Longitude)
	if err != nil {
		return nil, err
	}

	predicted := make([]models.PredictedLot, 0, len(lots))
	for _, lot := range lots {
		label := prediction.Label(s.Predictor.Predict(prediction.FeatureVector{
			Latitude:  lot.Lat,
			Longitude: lot.Lng,
			DayOfWeek: float64(*req.DayOfWeek),
			HourOfDay: float64(*req.HourOfDay),
			Weather:   weatherCode,
		}))
		predicted = append(predicted, models.PredictedLot{
			Name:         lot.Name,
			Address:      lot.Address,
			Lat:          lot.Lat,
			Lng:          lot.Lng,
			Availability: label,
		})
	}

	return predicted, nil
}

// Book reserves one slot. The ledger applies the change atomically, so this
// is a straight pass-through after validation.
func (s *DefaultParkingService) Book(ctx context.Context, req models.BookingRequest) error {
	if req.LocationID == "" || req.UserID == "" {
		return newValidationError("Location ID and User ID are required")
	}

	if err := s.Slots.Book(ctx, req.LocationID, req.UserID); err != nil {
		return err
	}

	s.Logger.Info("Slot booked",
		zap.String("locationID", req.LocationID), zap.String("userID", req.UserID))
	return nil
}

// Cancel releases a previously booked slot.
func (s *DefaultParkingService) Cancel(ctx context.Context, req models.BookingRequest) error {
	if req.LocationID == "" || req.UserID == "" {
		return newValidationError("Location ID and User ID are required")
	}

	if err := s.Slots.Cancel(ctx, req.LocationID, req.UserID); err != nil {
		return err
	}

	s.Logger.Info("Booking canceled",
		zap.String("locationID", req.LocationID), zap.String("userID", req.UserID))
	return nil
}
