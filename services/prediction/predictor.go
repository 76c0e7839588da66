package prediction

import (
	"fmt"

	"github.com/dmitryikh/leaves"
)

// Availability labels for user-facing responses.
const (
	LabelAvailable    = "Available"
	LabelNotAvailable = "Not Available"
)

// FeatureVector is the classifier's input schema. The field order below is
// the one canonical order, matching the column order of the training
// dataset; values() is the only place a vector is flattened, so call sites
// cannot disagree on ordering.
type FeatureVector struct {
	Latitude  float64
	Longitude float64
	DayOfWeek float64
	HourOfDay float64
	Weather   float64
}

func (fv FeatureVector) values() []float64 {
	return []float64{fv.Latitude, fv.Longitude, fv.DayOfWeek, fv.HourOfDay, fv.Weather}
}

// Predictor scores a feature vector with a binary availability label.
type Predictor interface {
	Predict(fv FeatureVector) int
}

// XGBPredictor wraps the XGBoost ensemble produced by the offline training
// pipeline. The artifact is loaded once at startup and is read-only from
// then on, so a single instance is safe to share across requests.
type XGBPredictor struct {
	model *leaves.Ensemble
}

// Load reads the serialized model artifact. Callers treat a failure here as
// fatal: the server must not serve predictions without a model.
func Load(path string) (*XGBPredictor, error) {
	model, err := leaves.XGEnsembleFromFile(path, true)
	if err != nil {
		return nil, fmt.Errorf("failed to load availability model from %s: %w", path, err)
	}
	return &XGBPredictor{model: model}, nil
}

// Predict returns 1 (available) or 0 (not available) for the given features.
func (p *XGBPredictor) Predict(fv FeatureVector) int {
	// With the transformation loaded the ensemble outputs a probability.
	score := p.model.PredictSingle(fv.values(), 0)
	if score >= 0.5 {
		return 1
	}
	return 0
}

// Label maps a binary prediction to its user-facing availability label.
func Label(prediction int) string {
	if prediction == 1 {
		return LabelAvailable
	}
	return LabelNotAvailable
}
