package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deblinanandy/stockmanagement/internal/models"
)

// ProductRequest carries the writable product fields. Category and
// Variations are identifiers of existing documents; both create and update
// reject the write when any of them does not resolve.
type ProductRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Images      []string `json:"images"`
	Variations  []string `json:"variations"`
}

type ProductService struct {
	products   ProductStore
	categories CategoryStore
	variations VariationStore
}

func NewProductService(products ProductStore, categories CategoryStore, variations VariationStore) *ProductService {
	return &ProductService{
		products:   products,
		categories: categories,
		variations: variations,
	}
}

// categoryExists reports whether id resolves to a stored category. A
// malformed id counts as nonexistent, not as a failure.
func (s *ProductService) categoryExists(ctx context.Context, id string) (bool, error) {
	_, err := s.categories.FindByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// variationsExist reports whether every id in ids resolves to a stored
// variation, by exact cardinality: the count of distinct matches must equal
// the count of requested ids. A duplicate id or an unknown id both make the
// counts differ. An empty set trivially passes.
func (s *ProductService) variationsExist(ctx context.Context, ids []string) (bool, error) {
	if len(ids) == 0 {
		return true, nil
	}
	found, err := s.variations.FindByIDs(ctx, ids)
	if err != nil {
		return false, err
	}
	return len(found) == len(ids), nil
}

// checkReferences runs the category check then the variation set check,
// reporting the first failure. Both run before any write is attempted.
func (s *ProductService) checkReferences(ctx context.Context, req ProductRequest) error {
	ok, err := s.categoryExists(ctx, req.Category)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("category '%s' does not exist: %w", req.Category, ErrInvalidReference)
	}

	ok, err = s.variationsExist(ctx, req.Variations)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("one or more variations do not exist: %w", ErrInvalidReference)
	}
	return nil
}

// model builds the document from a request whose references already passed
// validation, so every id is well-formed hex.
func (req ProductRequest) model() (*models.Product, error) {
	categoryID, err := primitive.ObjectIDFromHex(req.Category)
	if err != nil {
		return nil, fmt.Errorf("category '%s' does not exist: %w", req.Category, ErrInvalidReference)
	}
	variationIDs := make([]primitive.ObjectID, 0, len(req.Variations))
	for _, id := range req.Variations {
		objID, err := primitive.ObjectIDFromHex(id)
		if err != nil {
			return nil, fmt.Errorf("one or more variations do not exist: %w", ErrInvalidReference)
		}
		variationIDs = append(variationIDs, objID)
	}
	return &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    categoryID,
		Images:      req.Images,
		Variations:  variationIDs,
	}, nil
}

// Create validates the category and variation references, then inserts the
// product. The returned product carries bare references; resolution happens
// on reads.
func (s *ProductService) Create(ctx context.Context, req ProductRequest) (*models.Product, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	product, err := req.model()
	if err != nil {
		return nil, err
	}
	if err := s.products.Insert(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Get returns the product with its category and variations resolved into
// full documents.
func (s *ProductService) Get(ctx context.Context, id string) (*models.ResolvedProduct, error) {
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, product)
}

// List returns all products with resolved references, reporting an empty
// collection as ErrNotFound.
func (s *ProductService) List(ctx context.Context) ([]*models.ResolvedProduct, error) {
	products, err := s.products.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, fmt.Errorf("no products %w", ErrNotFound)
	}

	resolved := make([]*models.ResolvedProduct, 0, len(products))
	for _, product := range products {
		rp, err := s.resolve(ctx, product)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, rp)
	}
	return resolved, nil
}

// Update validates references, then applies a full-field replacement. The
// reference checks run even when the target id does not exist; a missing
// target surfaces as ErrNotFound only after the checks pass. Returns the
// updated product in resolved form.
func (s *ProductService) Update(ctx context.Context, id string, req ProductRequest) (*models.ResolvedProduct, error) {
	if err := s.checkReferences(ctx, req); err != nil {
		return nil, err
	}
	product, err := req.model()
	if err != nil {
		return nil, err
	}
	updated, err := s.products.UpdateByID(ctx, id, product)
	if err != nil {
		return nil, err
	}
	return s.resolve(ctx, updated)
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.products.DeleteByID(ctx, id)
}

// resolve dereferences the category and variation ids into embedded
// documents. Dangling references are tolerated: a missing category comes
// back nil and missing variations are dropped, so reads survive deletes of
// referenced entities.
func (s *ProductService) resolve(ctx context.Context, product *models.Product) (*models.ResolvedProduct, error) {
	resolved := &models.ResolvedProduct{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Images:      product.Images,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	category, err := s.categories.FindByID(ctx, product.Category.Hex())
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	resolved.Category = category

	if len(product.Variations) == 0 {
		resolved.Variations = []*models.Variation{}
		return resolved, nil
	}

	ids := make([]string, 0, len(product.Variations))
	for _, vid := range product.Variations {
		ids = append(ids, vid.Hex())
	}
	found, err := s.variations.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*models.Variation, len(found))
	for _, v := range found {
		byID[v.ID.Hex()] = v
	}

	resolved.Variations = make([]*models.Variation, 0, len(product.Variations))
	for _, vid := range product.Variations {
		if v, ok := byID[vid.Hex()]; ok {
			resolved.Variations = append(resolved.Variations, v)
		}
	}
	return resolved, nil
}
