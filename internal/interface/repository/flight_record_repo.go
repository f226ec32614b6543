package repository

import (
	"context"
	"time"

	"flightwatch-service/internal/domain/entity"
	"flightwatch-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// flightRecordTTL is the rolling expiry on stored flight records. A
// price seen longer ago than this may be announced again.
const flightRecordTTL = 30 * 24 * time.Hour

// MongoFlightRecordRepository implements FlightRecordRepository
type MongoFlightRecordRepository struct {
	collection *mongo.Collection
}

// NewMongoFlightRecordRepository creates a new flight record repository
func NewMongoFlightRecordRepository(db *mongo.Database) repository.FlightRecordRepository {
	collection := db.Collection("flight_records")

	ctx := context.Background()

	// Unique compound index prevents duplicate flight announcements
	dedupeIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "destinationCode", Value: 1},
			{Key: "price", Value: 1},
			{Key: "departureDate", Value: 1},
			{Key: "arrivalDate", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, dedupeIndex)

	// Records roll off after the TTL window
	ttlIndex := mongo.IndexModel{
		Keys:    bson.M{"createdAt": 1},
		Options: options.Index().SetExpireAfterSeconds(int32(flightRecordTTL / time.Second)),
	}
	collection.Indexes().CreateOne(ctx, ttlIndex)

	return &MongoFlightRecordRepository{
		collection: collection,
	}
}

// FilterNew inserts the given flights and returns those that were not
// already present. A duplicate-key error means the flight was seen in
// a previous cycle and is silently dropped from the result.
func (r *MongoFlightRecordRepository) FilterNew(ctx context.Context, flights []entity.FormattedFlight) ([]entity.FormattedFlight, error) {
	fresh := make([]entity.FormattedFlight, 0, len(flights))

	for _, flight := range flights {
		flight.ID = primitive.NewObjectID().Hex()
		flight.CreatedAt = time.Now()

		_, err := r.collection.InsertOne(ctx, flight)
		if err != nil {
			if mongo.IsDuplicateKeyError(err) {
				continue
			}
			return nil, err
		}

		fresh = append(fresh, flight)
	}

	return fresh, nil
}
