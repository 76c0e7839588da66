package models

// ParkingLot is a parking facility as returned by the Places API. Lots are
// built per-request from the upstream response and never persisted, so no
// stable identity exists across calls.
type ParkingLot struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Rating  string  `json:"rating,omitempty"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// PredictedLot is a ParkingLot enriched with the classifier's availability
// label ("Available" / "Not Available").
type PredictedLot struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Lat          float64 `json:"lat"`
	Lng          float64 `json:"lng"`
	Availability string  `json:"availability"`
}

// ParkingSlotRecord is the persisted ledger entry for a location: how many
// slots remain and which users currently hold one.
type ParkingSlotRecord struct {
	LocationID     string   `bson:"location_id" json:"location_id"`
	Location       string   `bson:"location,omitempty" json:"location,omitempty"`
	AvailableSlots int      `bson:"available_slots" json:"available_slots"`
	BookedSlots    []string `bson:"booked_slots" json:"booked_slots"`
}

// SlotQuery is the request body for the geocode-and-list flow.
type SlotQuery struct {
	Location string `json:"location"`
	Postcode string `json:"postcode"`
}

// PredictionRequest carries the five fields the availability classifier
// needs. All five must be present; Weather accepts a free-text label that is
// normalized and encoded before inference.
type PredictionRequest struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	DayOfWeek *int     `json:"day_of_week"`
	HourOfDay *int     `json:"hour_of_day"`
	Weather   *string  `json:"weather"`
}

// BookingRequest identifies a slot mutation: which location, which user.
type BookingRequest struct {
	LocationID string `json:"location_id"`
	UserID     string `json:"user_id"`
}

// LoginRequest is the credentials body for /auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
