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

func TestCreateCategory(t *testing.T) {
	store := catalogtest.NewCategoryStore()
	service := catalog.NewCategoryService(store)

	category, err := service.Create(context.Background(), catalog.CategoryRequest{
		Name:        "Phones",
		Description: "Mobile phones",
	})

	require.NoError(t, err)
	assert.False(t, category.ID.IsZero())
	assert.Equal(t, "Phones", category.Name)
	assert.False(t, category.CreatedAt.IsZero())
}

func TestCreateCategoryDuplicateName(t *testing.T) {
	store := catalogtest.NewCategoryStore()
	service := catalog.NewCategoryService(store)

	_, err := service.Create(context.Background(), catalog.CategoryRequest{Name: "Phones"})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), catalog.CategoryRequest{Name: "Phones"})
	assert.ErrorIs(t, err, catalog.ErrDuplicate)
	assert.Equal(t, 1, store.Len())
}

func TestGetCategoryMissingIsNotFound(t *testing.T) {
	service := catalog.NewCategoryService(catalogtest.NewCategoryStore())

	_, err := service.Get(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestGetCategoryMalformedIDIsNotFound(t *testing.T) {
	service := catalog.NewCategoryService(catalogtest.NewCategoryStore())

	_, err := service.Get(context.Background(), "garbage")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestListCategoriesEmptyIsNotFound(t *testing.T) {
	service := catalog.NewCategoryService(catalogtest.NewCategoryStore())

	_, err := service.List(context.Background())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestListCategories(t *testing.T) {
	store := catalogtest.NewCategoryStore()
	service := catalog.NewCategoryService(store)

	_, err := service.Create(context.Background(), catalog.CategoryRequest{Name: "Phones"})
	require.NoError(t, err)
	_, err = service.Create(context.Background(), catalog.CategoryRequest{Name: "Tablets"})
	require.NoError(t, err)

	categories, err := service.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, categories, 2)
}

func TestUpdateCategory(t *testing.T) {
	store := catalogtest.NewCategoryStore()
	service := catalog.NewCategoryService(store)

	created, err := service.Create(context.Background(), catalog.CategoryRequest{Name: "Phones"})
	require.NoError(t, err)

	updated, err := service.Update(context.Background(), created.ID.Hex(), catalog.CategoryRequest{
		Name:        "Smartphones",
		Description: "Updated",
	})
	require.NoError(t, err)
	assert.Equal(t, "Smartphones", updated.Name)
	assert.Equal(t, "Updated", updated.Description)
}

func TestUpdateCategoryMissingLeavesCollectionUnchanged(t *testing.T) {
	store := catalogtest.NewCategoryStore()
	service := catalog.NewCategoryService(store)

	created, err := service.Create(context.Background(), catalog.CategoryRequest{Name: "Phones"})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), primitive.NewObjectID().Hex(), catalog.CategoryRequest{Name: "Tablets"})
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	got, err := service.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, "Phones", got.Name)
	assert.Equal(t, 1, store.Len())
}

func TestDeleteCategory(t *testing.T) {
	store := catalogtest.NewCategoryStore()
	service := catalog.NewCategoryService(store)

	created, err := service.Create(context.Background(), catalog.CategoryRequest{Name: "Phones"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID.Hex()))

	_, err = service.Get(context.Background(), created.ID.Hex())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestDeleteCategoryMissingIsNotFound(t *testing.T) {
	service := catalog.NewCategoryService(catalogtest.NewCategoryStore())

	err := service.Delete(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestCategoryStoreFailureSurfaces(t *testing.T) {
	store := catalogtest.NewCategoryStore()
	store.Err = catalog.ErrStore
	service := catalog.NewCategoryService(store)

	_, err := service.Create(context.Background(), catalog.CategoryRequest{Name: "Phones"})
	assert.ErrorIs(t, err, catalog.ErrStore)
}
