package slotsRepo

import (
	"context"
	"fmt"
	"time"

	"parkwise/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoSlotRepo implements SlotRepository using MongoDB.
type MongoSlotRepo struct {
	coll *mongo.Collection
}

// NewMongoSlotRepo creates a new instance of SlotRepository backed by the
// parking_slots collection of the given database.
func NewMongoSlotRepo(db *mongo.Database) SlotRepository {
	repo := &MongoSlotRepo{coll: db.Collection("parking_slots")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// GetByLocationID retrieves a ledger record by its natural key.
func (r *MongoSlotRepo) GetByLocationID(ctx context.Context, locationID string) (*models.ParkingSlotRecord, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var rec models.ParkingSlotRecord
	if err := r.coll.FindOne(ctx, bson.M{"location_id": locationID}).Decode(&rec); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch parking slot record %s: %w", locationID, err)
	}
	return &rec, nil
}

// Book applies the count change and the membership change as a single
// conditional update. The available_slots guard lives in the filter, so two
// users racing for the last slot can never both match.
func (r *MongoSlotRepo) Book(ctx context.Context, locationID, userID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"location_id":     locationID,
		"available_slots": bson.M{"$gt": 0},
	}
	update := bson.M{
		"$inc":  bson.M{"available_slots": -1},
		"$push": bson.M{"booked_slots": userID},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to book slot at %s: %w", locationID, err)
	}
	if res.MatchedCount == 0 {
		return r.classifyBookMiss(ctx, locationID)
	}
	return nil
}

// classifyBookMiss distinguishes "no such lot" from "lot full" after a booking
// update matched nothing.
func (r *MongoSlotRepo) classifyBookMiss(ctx context.Context, locationID string) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{"location_id": locationID})
	if err != nil {
		return fmt.Errorf("failed to classify booking failure for %s: %w", locationID, err)
	}
	if count == 0 {
		return ErrLotNotFound
	}
	return ErrNoSlotsLeft
}

// Cancel reverses a booking as a single conditional update. The membership
// guard lives in the filter: a user without a booking matches nothing and the
// record is left untouched.
func (r *MongoSlotRepo) Cancel(ctx context.Context, locationID, userID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"location_id":  locationID,
		"booked_slots": userID,
	}
	update := bson.M{
		"$inc":  bson.M{"available_slots": 1},
		"$pull": bson.M{"booked_slots": userID},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to cancel booking at %s: %w", locationID, err)
	}
	if res.MatchedCount == 0 {
		return r.classifyCancelMiss(ctx, locationID)
	}
	return nil
}

func (r *MongoSlotRepo) classifyCancelMiss(ctx context.Context, locationID string) error {
	count, err := r.coll.CountDocuments(ctx, bson.M{"location_id": locationID})
	if err != nil {
		return fmt.Errorf("failed to classify cancellation failure for %s: %w", locationID, err)
	}
	if count == 0 {
		return ErrLotNotFound
	}
	return ErrNotBooked
}
