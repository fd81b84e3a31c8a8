package catalog

import (
	"context"

	"github.com/deblinanandy/stockmanagement/internal/models"
)

// Store contracts consumed by the services. Identifiers cross these
// boundaries as hex strings exactly as received from the transport; the
// implementations decide what a malformed identifier means (ErrNotFound).
//
// Update methods apply a full-field replacement and return the document as
// stored after the update.

type CategoryStore interface {
	Insert(ctx context.Context, category *models.Category) error
	FindByID(ctx context.Context, id string) (*models.Category, error)
	FindByName(ctx context.Context, name string) (*models.Category, error)
	FindAll(ctx context.Context) ([]*models.Category, error)
	UpdateByID(ctx context.Context, id string, category *models.Category) (*models.Category, error)
	DeleteByID(ctx context.Context, id string) error
}

type VariationStore interface {
	Insert(ctx context.Context, variation *models.Variation) error
	FindByID(ctx context.Context, id string) (*models.Variation, error)
	// FindByIDs returns the distinct stored variations whose id is a member
	// of ids. Malformed and unknown ids simply do not match; duplicates in
	// ids match a single document once.
	FindByIDs(ctx context.Context, ids []string) ([]*models.Variation, error)
	FindAll(ctx context.Context) ([]*models.Variation, error)
	UpdateByID(ctx context.Context, id string, variation *models.Variation) (*models.Variation, error)
	DeleteByID(ctx context.Context, id string) error
}

type ProductStore interface {
	Insert(ctx context.Context, product *models.Product) error
	FindByID(ctx context.Context, id string) (*models.Product, error)
	FindAll(ctx context.Context) ([]*models.Product, error)
	UpdateByID(ctx context.Context, id string, product *models.Product) (*models.Product, error)
	DeleteByID(ctx context.Context, id string) error
}

type StockStore interface {
	Insert(ctx context.Context, stock *models.Stock) error
	// FindByPair returns the first stock record for the product/variation
	// pair; duplicates per pair are possible and which one wins is whatever
	// the store returns first.
	FindByPair(ctx context.Context, productID, variationID string) (*models.Stock, error)
	UpdateQuantity(ctx context.Context, id string, quantity int) (*models.Stock, error)
	DeleteByID(ctx context.Context, id string) error
}
