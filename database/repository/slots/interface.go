package slotsRepo

import (
	"context"
	"errors"

	"parkwise/models"
)

// Sentinel errors returned by ledger operations. Handlers translate these to
// response statuses; the repository never writes HTTP concerns.
var (
	ErrLotNotFound = errors.New("parking lot not found")
	ErrNoSlotsLeft = errors.New("no available slots left")
	ErrNotBooked   = errors.New("user has not booked this slot")
)

// SlotRepository defines ledger access for parking slot records.
type SlotRepository interface {
	// GetByLocationID retrieves a record by its natural key. Returns
	// (nil, nil) when no record exists.
	GetByLocationID(ctx context.Context, locationID string) (*models.ParkingSlotRecord, error)
	// Book decrements available_slots and records the user, as one
	// conditional update. Returns ErrLotNotFound or ErrNoSlotsLeft.
	Book(ctx context.Context, locationID, userID string) error
	// Cancel increments available_slots and removes the user, as one
	// conditional update. Returns ErrLotNotFound or ErrNotBooked.
	Cancel(ctx context.Context, locationID, userID string) error
}
