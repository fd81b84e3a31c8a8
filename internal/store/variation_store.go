package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/deblinanandy/stockmanagement/internal/catalog"
	"github.com/deblinanandy/stockmanagement/internal/models"
)

const variationCollectionName = "variations"

type MongoVariationStore struct {
	collection *mongo.Collection
}

func NewMongoVariationStore(db *mongo.Database) *MongoVariationStore {
	return &MongoVariationStore{collection: db.Collection(variationCollectionName)}
}

func (s *MongoVariationStore) Insert(ctx context.Context, variation *models.Variation) error {
	variation.CreatedAt = time.Now()
	variation.UpdatedAt = time.Now()

	result, err := s.collection.InsertOne(ctx, variation)
	if err != nil {
		return fmt.Errorf("failed to insert variation: %v: %w", err, catalog.ErrStore)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		variation.ID = oid
	}
	logrus.WithField("id", variation.ID.Hex()).Debug("Inserted variation")
	return nil
}

func (s *MongoVariationStore) FindByID(ctx context.Context, id string) (*models.Variation, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("variation '%s' %w", id, catalog.ErrNotFound)
	}

	var variation models.Variation
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&variation)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("variation '%s' %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find variation: %v: %w", err, catalog.ErrStore)
	}
	return &variation, nil
}

// FindByIDs fetches the variations whose id is in ids. Malformed ids are
// skipped rather than failing the query, so they behave like ids with no
// matching document; $in matches each stored document at most once.
func (s *MongoVariationStore) FindByIDs(ctx context.Context, ids []string) ([]*models.Variation, error) {
	objIDs := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			continue
		}
		objIDs = append(objIDs, objID)
	}

	cursor, err := s.collection.Find(ctx, bson.M{"_id": bson.M{"$in": objIDs}})
	if err != nil {
		return nil, fmt.Errorf("failed to find variations: %v: %w", err, catalog.ErrStore)
	}
	defer cursor.Close(ctx)

	var variations []*models.Variation
	if err = cursor.All(ctx, &variations); err != nil {
		return nil, fmt.Errorf("failed to decode variations: %v: %w", err, catalog.ErrStore)
	}

	if variations == nil {
		return []*models.Variation{}, nil
	}
	return variations, nil
}

func (s *MongoVariationStore) FindAll(ctx context.Context) ([]*models.Variation, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list variations: %v: %w", err, catalog.ErrStore)
	}
	defer cursor.Close(ctx)

	var variations []*models.Variation
	if err = cursor.All(ctx, &variations); err != nil {
		return nil, fmt.Errorf("failed to decode variations: %v: %w", err, catalog.ErrStore)
	}

	if variations == nil {
		return []*models.Variation{}, nil
	}
	return variations, nil
}

func (s *MongoVariationStore) UpdateByID(ctx context.Context, id string, variation *models.Variation) (*models.Variation, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("variation '%s' %w", id, catalog.ErrNotFound)
	}

	update := bson.M{
		"$set": bson.M{
			"attributes": variation.Attributes,
			"price":      variation.Price,
			"stock":      variation.Stock,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Variation
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("variation '%s' %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update variation: %v: %w", err, catalog.ErrStore)
	}
	logrus.WithField("id", id).Debug("Updated variation")
	return &updated, nil
}

func (s *MongoVariationStore) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("variation '%s' %w", id, catalog.ErrNotFound)
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete variation: %v: %w", err, catalog.ErrStore)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("variation '%s' %w", id, catalog.ErrNotFound)
	}
	logrus.WithField("id", id).Debug("Deleted variation")
	return nil
}
