package prediction

import (
	"strconv"
	"strings"
)

// weatherCodes is the fixed enumeration the model was trained against.
var weatherCodes = map[string]float64{
	"Clear":  0,
	"Windy":  1,
	"Snowy":  2,
	"Rainy":  3,
	"Cloudy": 4,
	"Foggy":  5,
	"Stormy": 6,
}

// UnknownWeatherError reports a label outside the trained enumeration.
type UnknownWeatherError struct {
	Label string
}

func (e UnknownWeatherError) Error() string {
	return "unknown weather condition: " + e.Label
}

// NormalizeWeather title-cases a free-text weather label.
func NormalizeWeather(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return label
	}
	return strings.ToUpper(label[:1]) + strings.ToLower(label[1:])
}

// EncodeWeather maps a weather label to its numeric code. Labels already in
// numeric form pass through unmapped, matching datasets that carry
// pre-encoded weather columns. Anything else is rejected rather than fed to
// the model as garbage.
func EncodeWeather(label string) (float64, error) {
	normalized := NormalizeWeather(label)
	if code, ok := weatherCodes[normalized]; ok {
		return code, nil
	}
	if v, err := strconv.ParseFloat(normalized, 64); err == nil {
		return v, nil
	}
	return 0, UnknownWeatherError{Label: label}
}
