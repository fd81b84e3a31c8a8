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

const categoryCollectionName = "categories"

type MongoCategoryStore struct {
	collection *mongo.Collection
}

func NewMongoCategoryStore(db *mongo.Database) *MongoCategoryStore {
	collection := db.Collection(categoryCollectionName)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "name", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logrus.WithError(err).Warn("Could not ensure unique index on category name")
	}

	return &MongoCategoryStore{collection: collection}
}

func (s *MongoCategoryStore) Insert(ctx context.Context, category *models.Category) error {
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()

	result, err := s.collection.InsertOne(ctx, category)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return fmt.Errorf("category '%s' %w", category.Name, catalog.ErrDuplicate)
		}
		return fmt.Errorf("failed to insert category: %v: %w", err, catalog.ErrStore)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		category.ID = oid
	}
	logrus.WithField("id", category.ID.Hex()).Debug("Inserted category")
	return nil
}

func (s *MongoCategoryStore) FindByID(ctx context.Context, id string) (*models.Category, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("category '%s' %w", id, catalog.ErrNotFound)
	}

	var category models.Category
	err = s.collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category '%s' %w", id, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find category: %v: %w", err, catalog.ErrStore)
	}
	return &category, nil
}

func (s *MongoCategoryStore) FindByName(ctx context.Context, name string) (*models.Category, error) {
	var category models.Category
	err := s.collection.FindOne(ctx, bson.M{"name": name}).Decode(&category)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category named '%s' %w", name, catalog.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to find category by name: %v: %w", err, catalog.ErrStore)
	}
	return &category, nil
}

func (s *MongoCategoryStore) FindAll(ctx context.Context) ([]*models.Category, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %v: %w", err, catalog.ErrStore)
	}
	defer cursor.Close(ctx)

	var categories []*models.Category
	if err = cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %v: %w", err, catalog.ErrStore)
	}

	if categories == nil {
		return []*models.Category{}, nil
	}
	return categories, nil
}

func (s *MongoCategoryStore) UpdateByID(ctx context.Context, id string, category *models.Category) (*models.Category, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("category '%s' %w", id, catalog.ErrNotFound)
	}

	update := bson.M{
		"$set": bson.M{
			"name":        category.Name,
			"description": category.Description,
			"updated_at":  time.Now(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Category
	err = s.collection.FindOneAndUpdate(ctx, bson.M{"_id": objID}, update, opts).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("category '%s' %w", id, catalog.ErrNotFound)
		}
		if mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("category '%s' %w", category.Name, catalog.ErrDuplicate)
		}
		return nil, fmt.Errorf("failed to update category: %v: %w", err, catalog.ErrStore)
	}
	logrus.WithField("id", id).Debug("Updated category")
	return &updated, nil
}

func (s *MongoCategoryStore) DeleteByID(ctx context.Context, id string) error {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("category '%s' %w", id, catalog.ErrNotFound)
	}

	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": objID})
	if err != nil {
		return fmt.Errorf("failed to delete category: %v: %w", err, catalog.ErrStore)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("category '%s' %w", id, catalog.ErrNotFound)
	}
	logrus.WithField("id", id).Debug("Deleted category")
	return nil
}
