package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/deblinanandy/stockmanagement/internal/models"
)

// StockRequest carries the fields for creating a stock record. Quantity
// defaults to zero when absent.
type StockRequest struct {
	ProductID   string `json:"productId" validate:"required"`
	VariationID string `json:"variationId" validate:"required"`
	Quantity    int    `json:"quantity"`
}

// UpdateStockRequest carries the only mutable field of an existing record.
type UpdateStockRequest struct {
	Quantity int `json:"quantity"`
}

type StockService struct {
	stocks     StockStore
	products   ProductStore
	variations VariationStore
}

func NewStockService(stocks StockStore, products ProductStore, variations VariationStore) *StockService {
	return &StockService{
		stocks:     stocks,
		products:   products,
		variations: variations,
	}
}

// Create inserts a stock record after checking both referenced documents
// exist. The product check runs first, so when both references are invalid
// the product failure is the one reported. Nothing enforces uniqueness per
// (product, variation) pair.
func (s *StockService) Create(ctx context.Context, req StockRequest) (*models.Stock, error) {
	product, err := s.products.FindByID(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("product '%s' does not exist: %w", req.ProductID, ErrInvalidReference)
		}
		return nil, err
	}

	variation, err := s.variations.FindByID(ctx, req.VariationID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, fmt.Errorf("variation '%s' does not exist: %w", req.VariationID, ErrInvalidReference)
		}
		return nil, err
	}

	stock := &models.Stock{
		Product:   product.ID,
		Variation: variation.ID,
		Quantity:  req.Quantity,
	}
	if err := s.stocks.Insert(ctx, stock); err != nil {
		return nil, err
	}
	return stock, nil
}

// Get looks up stock by the product/variation pair and returns the first
// match.
func (s *StockService) Get(ctx context.Context, productID, variationID string) (*models.Stock, error) {
	return s.stocks.FindByPair(ctx, productID, variationID)
}

func (s *StockService) Update(ctx context.Context, id string, req UpdateStockRequest) (*models.Stock, error) {
	return s.stocks.UpdateQuantity(ctx, id, req.Quantity)
}

func (s *StockService) Delete(ctx context.Context, id string) error {
	return s.stocks.DeleteByID(ctx, id)
}
