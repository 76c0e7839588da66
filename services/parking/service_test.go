package parking

import (
	"context"
	"testing"

	"parkwise/models"
	"parkwise/services/maps"
	"parkwise/services/prediction"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ────────────────────────────────────────────────
// Mock collaborators for testing
// ────────────────────────────────────────────────

type mockGeocoder struct {
	calls       int
	geocodeFunc func(ctx context.Context, address string) (float64, float64, error)
}

func (m *mockGeocoder) Geocode(ctx context.Context, address string) (float64, float64, error) {
	m.calls++
	if m.geocodeFunc != nil {
		return m.geocodeFunc(ctx, address)
	}
	return 0, 0, maps.ErrLocationNotFound
}

type mockFinder struct {
	calls    int
	findFunc func(ctx context.Context, lat, lng float64) ([]models.ParkingLot, error)
}

func (m *mockFinder) FindNearbyParking(ctx context.Context, lat, lng float64) ([]models.ParkingLot, error) {
	m.calls++
	if m.findFunc != nil {
		return m.findFunc(ctx, lat, lng)
	}
	return nil, maps.ErrNoParkingFound
}

type mockPredictor struct {
	calls  int
	inputs []prediction.FeatureVector
	result int
}

func (m *mockPredictor) Predict(fv prediction.FeatureVector) int {
	m.calls++
	m.inputs = append(m.inputs, fv)
	return m.result
}

func newTestService(geo *mockGeocoder, finder *mockFinder, pred *mockPredictor) *DefaultParkingService {
	return &DefaultParkingService{
		Geocoder:  geo,
		Finder:    finder,
		Predictor: pred,
		Logger:    zap.NewNop(),
	}
}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }

func validPredictionRequest() models.PredictionRequest {
	return models.PredictionRequest{
		Latitude:  floatPtr(51.523),
		Longitude: floatPtr(-0.1586),
		DayOfWeek: intPtr(2),
		HourOfDay: intPtr(14),
		Weather:   strPtr("rainy"),
	}
}

// ────────────────────────────────────────────────
// Prediction flow
// ────────────────────────────────────────────────

func TestPredictAvailabilityRejectsMissingFields(t *testing.T) {
	mutations := map[string]func(*models.PredictionRequest){
		"latitude":    func(r *models.PredictionRequest) { r.Latitude = nil },
		"longitude":   func(r *models.PredictionRequest) { r.Longitude = nil },
		"day_of_week": func(r *models.PredictionRequest) { r.DayOfWeek = nil },
		"hour_of_day": func(r *models.PredictionRequest) { r.HourOfDay = nil },
		"weather":     func(r *models.PredictionRequest) { r.Weather = nil },
	}

	for field, drop := range mutations {
		t.Run(field, func(t *testing.T) {
			geo := &mockGeocoder{}
			finder := &mockFinder{}
			pred := &mockPredictor{}
			svc := newTestService(geo, finder, pred)

			req := validPredictionRequest()
			drop(&req)

			_, err := svc.PredictAvailability(context.Background(), req)
			require.Error(t, err)
			assert.IsType(t, ValidationError{}, err)

			// A rejected request must never reach a collaborator.
			assert.Zero(t, geo.calls)
			assert.Zero(t, finder.calls)
			assert.Zero(t, pred.calls)
		})
	}
}

func TestPredictAvailabilityRejectsUnknownWeather(t *testing.T) {
	finder := &mockFinder{}
	pred := &mockPredictor{}
	svc := newTestService(&mockGeocoder{}, finder, pred)

	req := validPredictionRequest()
	req.Weather = strPtr("Sunny")

	_, err := svc.PredictAvailability(context.Background(), req)
	require.Error(t, err)
	assert.IsType(t, ValidationError{}, err)
	assert.Contains(t, err.Error(), "Sunny")
	assert.Zero(t, finder.calls)
	assert.Zero(t, pred.calls)
}

func TestPredictAvailabilityEnrichesEachLot(t *testing.T) {
	finder := &mockFinder{
		findFunc: func(ctx context.Context, lat, lng float64) ([]models.ParkingLot, error) {
			assert.Equal(t, 51.523, lat)
			assert.Equal(t, -0.1586, lng)
			return []models.ParkingLot{
				{Name: "Baker St Car Park", Address: "Baker St", Lat: 51.5235, Lng: -0.159},
				{Name: "Marylebone Parking", Address: "Marylebone Rd", Lat: 51.522, Lng: -0.163},
			}, nil
		},
	}
	pred := &mockPredictor{result: 1}
	svc := newTestService(&mockGeocoder{}, finder, pred)

	got, err := svc.PredictAvailability(context.Background(), validPredictionRequest())
	require.NoError(t, err)
	require.Len(t, got, 2)

	// One inference per lot, fed the lot's own coordinates plus the
	// request context; "rainy" encodes to 3.
	require.Len(t, pred.inputs, 2)
	assert.Equal(t, prediction.FeatureVector{
		Latitude:  51.5235,
		Longitude: -0.159,
		DayOfWeek: 2,
		HourOfDay: 14,
		Weather:   3,
	}, pred.inputs[0])

	assert.Equal(t, "Baker St Car Park", got[0].Name)
	assert.Equal(t, "Available", got[0].Availability)
	assert.Equal(t, "Available", got[1].Availability)
}

func TestPredictAvailabilityNotAvailableLabel(t *testing.T) {
	finder := &mockFinder{
		findFunc: func(ctx context.Context, lat, lng float64) ([]models.ParkingLot, error) {
			return []models.ParkingLot{{Name: "Full Lot", Lat: 1, Lng: 2}}, nil
		},
	}
	pred := &mockPredictor{result: 0}
	svc := newTestService(&mockGeocoder{}, finder, pred)

	got, err := svc.PredictAvailability(context.Background(), validPredictionRequest())
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Not Available", got[0].Availability)
}

func TestPredictAvailabilityNoLotsSkipsPredictor(t *testing.T) {
	finder := &mockFinder{} // defaults to ErrNoParkingFound
	pred := &mockPredictor{}
	svc := newTestService(&mockGeocoder{}, finder, pred)

	_, err := svc.PredictAvailability(context.Background(), validPredictionRequest())
	require.ErrorIs(t, err, maps.ErrNoParkingFound)
	assert.Zero(t, pred.calls)
}

// ────────────────────────────────────────────────
// Listing flow
// ────────────────────────────────────────────────

func TestListNearbySlotsRequiresLocationAndPostcode(t *testing.T) {
	for name, query := range map[string]models.SlotQuery{
		"missing location": {Postcode: "NW16XE"},
		"missing postcode": {Location: "221B Baker St"},
		"empty":            {},
	} {
		t.Run(name, func(t *testing.T) {
			geo := &mockGeocoder{}
			svc := newTestService(geo, &mockFinder{}, &mockPredictor{})

			_, err := svc.ListNearbySlots(context.Background(), query)
			require.Error(t, err)
			assert.IsType(t, ValidationError{}, err)
			assert.Zero(t, geo.calls)
		})
	}
}

func TestListNearbySlotsGeocodesThenSearches(t *testing.T) {
	geo := &mockGeocoder{
		geocodeFunc: func(ctx context.Context, address string) (float64, float64, error) {
			assert.Equal(t, "221B Baker St, NW16XE", address)
			return 51.523, -0.1586, nil
		},
	}
	finder := &mockFinder{
		findFunc: func(ctx context.Context, lat, lng float64) ([]models.ParkingLot, error) {
			assert.Equal(t, 51.523, lat)
			assert.Equal(t, -0.1586, lng)
			return []models.ParkingLot{{Name: "Baker St Car Park", Address: "Baker St", Lat: lat, Lng: lng}}, nil
		},
	}
	svc := newTestService(geo, finder, &mockPredictor{})

	lots, err := svc.ListNearbySlots(context.Background(), models.SlotQuery{Location: "221B Baker St", Postcode: "NW16XE"})
	require.NoError(t, err)
	require.Len(t, lots, 1)
	assert.Equal(t, "Baker St Car Park", lots[0].Name)
}

func TestListNearbySlotsPropagatesGeocodeFailure(t *testing.T) {
	finder := &mockFinder{}
	svc := newTestService(&mockGeocoder{}, finder, &mockPredictor{})

	_, err := svc.ListNearbySlots(context.Background(), models.SlotQuery{Location: "Nowhere", Postcode: "XX00XX"})
	require.ErrorIs(t, err, maps.ErrLocationNotFound)
	assert.Zero(t, finder.calls)
}
