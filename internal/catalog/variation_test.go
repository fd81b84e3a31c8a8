package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deblinanandy/stockmanagement/internal/catalog"
	"github.com/deblinanandy/stockmanagement/internal/catalog/catalogtest"
)

func TestCreateVariationNestsAttributes(t *testing.T) {
	store := catalogtest.NewVariationStore()
	service := catalog.NewVariationService(store)

	variation, err := service.Create(context.Background(), catalog.VariationRequest{
		Color:   "black",
		Size:    "L",
		RAM:     "8GB",
		Storage: "256GB",
		Price:   699.99,
		Stock:   10,
	})

	require.NoError(t, err)
	assert.False(t, variation.ID.IsZero())
	assert.Equal(t, "black", variation.Attributes.Color)
	assert.Equal(t, "L", variation.Attributes.Size)
	assert.Equal(t, "8GB", variation.Attributes.RAM)
	assert.Equal(t, 699.99, variation.Price)
	assert.Equal(t, 10, variation.Stock)
}

func TestCreateVariationOptionalAttributesEmpty(t *testing.T) {
	service := catalog.NewVariationService(catalogtest.NewVariationStore())

	variation, err := service.Create(context.Background(), catalog.VariationRequest{
		Color: "red",
		Size:  "S",
		Price: 19.99,
	})

	require.NoError(t, err)
	assert.Empty(t, variation.Attributes.RAM)
	assert.Empty(t, variation.Attributes.Storage)
}

func TestListVariationsEmptyIsNotFound(t *testing.T) {
	service := catalog.NewVariationService(catalogtest.NewVariationStore())

	_, err := service.List(context.Background())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestUpdateVariationReplacesAllFields(t *testing.T) {
	store := catalogtest.NewVariationStore()
	service := catalog.NewVariationService(store)

	created, err := service.Create(context.Background(), catalog.VariationRequest{
		Color: "black",
		Size:  "L",
		RAM:   "8GB",
		Price: 699.99,
		Stock: 10,
	})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID.Hex(), catalog.VariationRequest{
		Color: "white",
		Size:  "M",
		Price: 649.99,
		Stock: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, "white", updated.Attributes.Color)
	assert.Empty(t, updated.Attributes.RAM, "attributes are fully replaced")
	assert.Equal(t, 649.99, updated.Price)
	assert.Equal(t, 4, updated.Stock)
}

func TestUpdateVariationMissingIsNotFound(t *testing.T) {
	service := catalog.NewVariationService(catalogtest.NewVariationStore())

	_, err := service.Update(context.Background(), primitive.NewObjectID().Hex(), catalog.VariationRequest{
		Color: "white",
		Size:  "M",
	})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDeleteVariationMissingIsNotFound(t *testing.T) {
	service := catalog.NewVariationService(catalogtest.NewVariationStore())

	err := service.Delete(context.Background(), "not-an-id")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}
