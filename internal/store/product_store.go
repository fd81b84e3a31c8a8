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

const productCollectionName = "products"

type MongoProductStore struct {
	collection *mongo.Collection
}

func NewMongoProductStore(db *mongo.Database) *MongoProductStore {
	return &MongoProductStore{collection: db.Collection(productCollectionName)}
}

func (s *MongoProductStore) Insert(ctx context.Context, product *models.Product) error {
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()

	result, err := s.collection.InsertOne(ctx, product)
	if err != nil {
		return fmt.Errorf("failed to insert product: %v: %w", err, catalog.ErrStore)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		product.ID = oid
	}
	logrus.WithField("id", product.ID.Hex()).Debug("Inserted product")
	return nil
}

func (s *MongoProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("product '%s' %w", id, catalog.ErrNotFound)
	}

	var product models.Product
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product '%s' %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find product: %v: %w", err, catalog.ErrStore)
	}
	return &product, nil
}

func (s *MongoProductStore) FindAll(ctx context.Context) ([]*models.Product, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %v: %w", err, catalog.ErrStore)
	}
	defer cursor.Close(ctx)

	var products []*models.Product
	if err = cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("failed to decode products: %v: %w", err, catalog.ErrStore)
	}

	if products == nil {
		return []*models.Product{}, nil
	}
	return products, nil
}

func (s *MongoProductStore) UpdateByID(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("product '%s' %w", id, catalog.ErrNotFound)
	}

	update := bson.M{
		"$set": bson.M{
			"name":        product.Name,
			"description": product.Description,
			"category":    product.Category,
			"images":      product.Images,
			"variations":  product.Variations,
			"updated_at":  time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Product
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("product '%s' %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to update product: %v: %w", err, catalog.ErrStore)
	}
	logrus.WithField("id", id).Debug("Updated product")
	return &updated, nil
}

func (s *MongoProductStore) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("product '%s' %w", id, catalog.ErrNotFound)
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete product: %v: %w", err, catalog.ErrStore)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("product '%s' %w", id, catalog.ErrNotFound)
	}
	logrus.WithField("id", id).Debug("Deleted product")
	return nil
}
