package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deblinanandy/stockmanagement/internal/catalog"
	"github.com/deblinanandy/stockmanagement/internal/catalog/catalogtest"
	"github.com/deblinanandy/stockmanagement/internal/models"
)

type productFixture struct {
	categories *catalogtest.CategoryStore
	variations *catalogtest.VariationStore
	products   *catalogtest.ProductStore
	service    *catalog.ProductService
}

func newProductFixture() *productFixture {
	categories := catalogtest.NewCategoryStore()
	variations := catalogtest.NewVariationStore()
	products := catalogtest.NewProductStore()
	return &productFixture{
		categories: categories,
		variations: variations,
		products:   products,
		service:    catalog.NewProductService(products, categories, variations),
	}
}

func (f *productFixture) seedCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Description: name + " products"}
	require.NoError(t, f.categories.Insert(context.Background(), category))
	return category
}

func (f *productFixture) seedVariation(t *testing.T, color string) *models.Variation {
	t.Helper()
	variation := &models.Variation{
		Attributes: models.VariationAttributes{Color: color, Size: "M"},
		Price:      99.99,
		Stock:      5,
	}
	require.NoError(t, f.variations.Insert(context.Background(), variation))
	return variation
}

func TestCreateProductRejectsMissingCategory(t *testing.T) {
	f := newProductFixture()

	_, err := f.service.Create(context.Background(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    primitive.NewObjectID().Hex(),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrInvalidReference)
	assert.Equal(t, 0, f.products.Len(), "no product should be persisted")
}

func TestCreateProductRejectsMalformedCategoryID(t *testing.T) {
	f := newProductFixture()

	_, err := f.service.Create(context.Background(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    "not-a-valid-id",
	})

	assert.ErrorIs(t, err, catalog.ErrInvalidReference)
	assert.Equal(t, 0, f.products.Len())
}

func TestCreateProductRejectsUnknownVariation(t *testing.T) {
	f := newProductFixture()
	category := f.seedCategory(t, "Phones")
	v1 := f.seedVariation(t, "black")
	v2 := f.seedVariation(t, "white")

	_, err := f.service.Create(context.Background(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    category.ID.Hex(),
		Variations:  []string{v1.ID.Hex(), v2.ID.Hex(), primitive.NewObjectID().Hex()},
	})

	assert.ErrorIs(t, err, catalog.ErrInvalidReference)
	assert.Equal(t, 0, f.products.Len())
}

func TestCreateProductRejectsDuplicateVariationID(t *testing.T) {
	f := newProductFixture()
	category := f.seedCategory(t, "Phones")
	v1 := f.seedVariation(t, "black")

	// Two requested ids resolve to a single document, so the counts differ.
	_, err := f.service.Create(context.Background(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    category.ID.Hex(),
		Variations:  []string{v1.ID.Hex(), v1.ID.Hex()},
	})

	assert.ErrorIs(t, err, catalog.ErrInvalidReference)
	assert.Equal(t, 0, f.products.Len())
}

func TestCreateProductWithEmptyVariationsSucceeds(t *testing.T) {
	f := newProductFixture()
	category := f.seedCategory(t, "Phones")

	product, err := f.service.Create(context.Background(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    category.ID.Hex(),
		Images:      []string{"https://example.com/phone.jpg"},
	})

	require.NoError(t, err)
	assert.False(t, product.ID.IsZero())
	assert.Equal(t, 1, f.products.Len())
}

func TestGetProductResolvesReferences(t *testing.T) {
	f := newProductFixture()
	category := f.seedCategory(t, "Phones")
	v1 := f.seedVariation(t, "black")
	v2 := f.seedVariation(t, "white")

	created, err := f.service.Create(context.Background(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    category.ID.Hex(),
		Variations:  []string{v1.ID.Hex(), v2.ID.Hex()},
	})
	require.NoError(t, err)

	got, err := f.service.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)

	require.NotNil(t, got.Category)
	assert.Equal(t, category.ID, got.Category.ID)
	assert.Equal(t, "Phones", got.Category.Name)
	require.Len(t, got.Variations, 2)
	assert.Equal(t, v1.ID, got.Variations[0].ID)
	assert.Equal(t, v2.ID, got.Variations[1].ID)
}

func TestGetProductToleratesDanglingReferences(t *testing.T) {
	f := newProductFixture()
	category := f.seedCategory(t, "Phones")
	v1 := f.seedVariation(t, "black")

	created, err := f.service.Create(context.Background(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    category.ID.Hex(),
		Variations:  []string{v1.ID.Hex()},
	})
	require.NoError(t, err)

	// Deleting referenced entities leaves the product's references dangling.
	require.NoError(t, f.categories.DeleteByID(context.Background(), category.ID.Hex()))
	require.NoError(t, f.variations.DeleteByID(context.Background(), v1.ID.Hex()))

	got, err := f.service.Get(context.Background(), created.ID.Hex())
	require.NoError(t, err)
	assert.Nil(t, got.Category)
	assert.Empty(t, got.Variations)
}

func TestListProductsEmptyIsNotFound(t *testing.T) {
	f := newProductFixture()

	_, err := f.service.List(context.Background())
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestUpdateProductChecksReferencesBeforeTarget(t *testing.T) {
	f := newProductFixture()

	// Reference checks run first even though the target does not exist.
	_, err := f.service.Update(context.Background(), primitive.NewObjectID().Hex(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    primitive.NewObjectID().Hex(),
	})
	assert.ErrorIs(t, err, catalog.ErrInvalidReference)
}

func TestUpdateProductMissingTargetIsNotFound(t *testing.T) {
	f := newProductFixture()
	category := f.seedCategory(t, "Phones")

	_, err := f.service.Update(context.Background(), primitive.NewObjectID().Hex(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    category.ID.Hex(),
	})
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestUpdateProductReplacesAllFields(t *testing.T) {
	f := newProductFixture()
	category := f.seedCategory(t, "Phones")
	other := f.seedCategory(t, "Tablets")
	v1 := f.seedVariation(t, "black")

	created, err := f.service.Create(context.Background(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    category.ID.Hex(),
		Variations:  []string{v1.ID.Hex()},
	})
	require.NoError(t, err)

	updated, err := f.service.Update(context.Background(), created.ID.Hex(), catalog.ProductRequest{
		Name:        "Tablet",
		Description: "A tablet",
		Category:    other.ID.Hex(),
		Images:      []string{"https://example.com/tablet.jpg"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Tablet", updated.Name)
	require.NotNil(t, updated.Category)
	assert.Equal(t, other.ID, updated.Category.ID)
	assert.Empty(t, updated.Variations, "variations are fully replaced, not merged")
}

func TestProductStoreFailureSurfaces(t *testing.T) {
	f := newProductFixture()
	category := f.seedCategory(t, "Phones")
	f.products.Err = catalog.ErrStore

	_, err := f.service.Create(context.Background(), catalog.ProductRequest{
		Name:        "Phone",
		Description: "A phone",
		Category:    category.ID.Hex(),
	})
	assert.ErrorIs(t, err, catalog.ErrStore)
}
