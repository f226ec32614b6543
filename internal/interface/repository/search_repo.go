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

// MongoSearchRepository implements the SearchRepository interface
type MongoSearchRepository struct {
	collection *mongo.Collection
}

// NewMongoSearchRepository creates a new MongoDB search repository
func NewMongoSearchRepository(db *mongo.Database) repository.SearchRepository {
	collection := db.Collection("searches")

	// Searches are keyed uniquely by name
	ctx := context.Background()
	nameIndex := mongo.IndexModel{
		Keys:    bson.M{"name": 1},
		Options: options.Index().SetUnique(true),
	}
	collection.Indexes().CreateOne(ctx, nameIndex)

	return &MongoSearchRepository{
		collection: collection,
	}
}

// FindActive returns every search the poll cycle should evaluate
func (r *MongoSearchRepository) FindActive(ctx context.Context) ([]*entity.Search, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"isActive": true})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var searches []*entity.Search
	if err := cursor.All(ctx, &searches); err != nil {
		return nil, err
	}

	return searches, nil
}

// FindByName finds a search by its unique name
func (r *MongoSearchRepository) FindByName(ctx context.Context, name string) (*entity.Search, error) {
	var search entity.Search
	err := r.collection.FindOne(ctx, bson.M{"name": name}).Decode(&search)
	if err != nil {
		return nil, err
	}
	return &search, nil
}

// Insert validates and stores a new search
func (r *MongoSearchRepository) Insert(ctx context.Context, search *entity.Search) error {
	if err := search.Validate(); err != nil {
		return err
	}

	if search.ID == "" {
		search.ID = primitive.NewObjectID().Hex()
	}
	search.CreatedAt = time.Now()
	search.UpdatedAt = search.CreatedAt

	_, err := r.collection.InsertOne(ctx, search)
	return err
}

// Delete removes a search by name
func (r *MongoSearchRepository) Delete(ctx context.Context, name string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"name": name})
	return err
}
