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

const stockCollectionName = "stocks"

type MongoStockStore struct {
	collection *mongo.Collection
}

func NewMongoStockStore(db *mongo.Database) *MongoStockStore {
	return &MongoStockStore{collection: db.Collection(stockCollectionName)}
}

func (s *MongoStockStore) Insert(ctx context.Context, stock *models.Stock) error {
	stock.CreatedAt = time.Now()
	stock.UpdatedAt = time.Now()

	result, err := s.collection.InsertOne(ctx, stock)
	if err != nil {
		return fmt.Errorf("failed to insert stock: %v: %w", err, catalog.ErrStore)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		stock.ID = oid
	}
	logrus.WithField("id", stock.ID.Hex()).Debug("Inserted stock record")
	return nil
}

// FindByPair returns the first stock record matching the product/variation
// pair. Duplicate records per pair are possible; no ordering is imposed.
func (s *MongoStockStore) FindByPair(ctx context.Context, productID, variationID string) (*models.Stock, error) {
	productObjID, err := primitive.ObjectIDFromHex(productID)
	if err != nil {
		return nil, fmt.Errorf("stock for product '%s' %w", productID, catalog.ErrNotFound)
	}
	variationObjID, err := primitive.ObjectIDFromHex(variationID)
	if err != nil {
		return nil, fmt.Errorf("stock for variation '%s' %w", variationID, catalog.ErrNotFound)
	}

	var stock models.Stock
	err = s.collection.FindOne(ctx, bson.M{"product": productObjID, "variation": variationObjID}).Decode(&stock)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("stock for product '%s' and variation '%s' %w", productID, variationID, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find stock: %v: %w", err, catalog.ErrStore)
	}
	return &stock, nil
}

func (s *MongoStockStore) UpdateQuantity(ctx context.Context, id string, quantity int) (*models.Stock, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("stock '%s' %w", id, catalog.ErrNotFound)
	}

	update := bson.M{
		"$set": bson.M{
			"quantity":   quantity,
			"updated_at": time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Stock
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("stock '%s' %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update stock: %v: %w", err, catalog.ErrStore)
	}
	logrus.WithField("id", id).Debug("Updated stock record")
	return &updated, nil
}

func (s *MongoStockStore) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("stock '%s' %w", id, catalog.ErrNotFound)
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete stock: %v: %w", err, catalog.ErrStore)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("stock '%s' %w", id, catalog.ErrNotFound)
	}
	logrus.WithField("id", id).Debug("Deleted stock record")
	return nil
}
