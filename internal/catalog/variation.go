package catalog

import (
	"context"
	"fmt"

	"github.com/deblinanandy/stockmanagement/internal/models"
)

// VariationRequest carries the writable variation fields, flat the way the
// API accepts them; the attribute fields are nested on the stored document.
type VariationRequest struct {
	Color   string  `json:"color" validate:"required"`
	Size    string  `json:"size" validate:"required"`
	RAM     string  `json:"ram"`
	Storage string  `json:"storage"`
	Price   float64 `json:"price"`
	Stock   int     `json:"stock"`
}

func (r VariationRequest) model() *models.Variation {
	return &models.Variation{
		Attributes: models.VariationAttributes{
			Color:   r.Color,
			Size:    r.Size,
			RAM:     r.RAM,
			Storage: r.Storage,
		},
		Price: r.Price,
		Stock: r.Stock,
	}
}

type VariationService struct {
	variations VariationStore
}

func NewVariationService(variations VariationStore) *VariationService {
	return &VariationService{variations: variations}
}

func (s *VariationService) Create(ctx context.Context, req VariationRequest) (*models.Variation, error) {
	variation := req.model()
	if err := s.variations.Insert(ctx, variation); err != nil {
		return nil, err
	}
	return variation, nil
}

func (s *VariationService) Get(ctx context.Context, id string) (*models.Variation, error) {
	return s.variations.FindByID(ctx, id)
}

// List returns all variations, reporting an empty collection as ErrNotFound.
func (s *VariationService) List(ctx context.Context) ([]*models.Variation, error) {
	variations, err := s.variations.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(variations) == 0 {
		return nil, fmt.Errorf("no variations %w", ErrNotFound)
	}
	return variations, nil
}

func (s *VariationService) Update(ctx context.Context, id string, req VariationRequest) (*models.Variation, error) {
	return s.variations.UpdateByID(ctx, id, req.model())
}

func (s *VariationService) Delete(ctx context.Context, id string) error {
	return s.variations.DeleteByID(ctx, id)
}
