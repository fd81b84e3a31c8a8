// Package catalogtest provides in-memory implementations of the catalog
// store contracts for tests. They mirror the Mongo stores' semantics:
// malformed ids behave like missing documents, inserts assign ids and
// timestamps, and updates are full-field replacements. Setting Err on a
// store makes every operation fail with it.
package catalogtest

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/deblinanandy/stockmanagement/internal/catalog"
	"github.com/deblinanandy/stockmanagement/internal/models"
)

func parseID(id string, entity string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%s '%s' %w", entity, id, catalog.ErrNotFound)
	}
	return objID, nil
}

type CategoryStore struct {
	mu   sync.Mutex
	docs []*models.Category
	Err  error
}

func NewCategoryStore() *CategoryStore { return &CategoryStore{} }

func (s *CategoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func (s *CategoryStore) Insert(ctx context.Context, category *models.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, doc := range s.docs {
		if doc.Name == category.Name {
			return fmt.Errorf("category '%s' %w", category.Name, catalog.ErrDuplicate)
		}
	}
	category.ID = primitive.NewObjectID()
	category.CreatedAt = time.Now()
	category.UpdatedAt = time.Now()
	s.docs = append(s.docs, category)
	return nil
}

func (s *CategoryStore) FindByID(ctx context.Context, id string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	objID, err := parseID(id, "category")
	if err != nil {
		return nil, err
	}
	for _, doc := range s.docs {
		if doc.ID == objID {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("category '%s' %w", id, catalog.ErrNotFound)
}

func (s *CategoryStore) FindByName(ctx context.Context, name string) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, doc := range s.docs {
		if doc.Name == name {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("category named '%s' %w", name, catalog.ErrNotFound)
}

func (s *CategoryStore) FindAll(ctx context.Context) ([]*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]*models.Category, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

func (s *CategoryStore) UpdateByID(ctx context.Context, id string, category *models.Category) (*models.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	objID, err := parseID(id, "category")
	if err != nil {
		return nil, err
	}
	for _, doc := range s.docs {
		if doc.ID == objID {
			doc.Name = category.Name
			doc.Description = category.Description
			doc.UpdatedAt = time.Now()
			return doc, nil
		}
	}
	return nil, fmt.Errorf("category '%s' %w", id, catalog.ErrNotFound)
}

func (s *CategoryStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	objID, err := parseID(id, "category")
	if err != nil {
		return err
	}
	for i, doc := range s.docs {
		if doc.ID == objID {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("category '%s' %w", id, catalog.ErrNotFound)
}

type VariationStore struct {
	mu   sync.Mutex
	docs []*models.Variation
	Err  error
}

func NewVariationStore() *VariationStore { return &VariationStore{} }

func (s *VariationStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func (s *VariationStore) Insert(ctx context.Context, variation *models.Variation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	variation.ID = primitive.NewObjectID()
	variation.CreatedAt = time.Now()
	variation.UpdatedAt = time.Now()
	s.docs = append(s.docs, variation)
	return nil
}

func (s *VariationStore) FindByID(ctx context.Context, id string) (*models.Variation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	objID, err := parseID(id, "variation")
	if err != nil {
		return nil, err
	}
	for _, doc := range s.docs {
		if doc.ID == objID {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("variation '%s' %w", id, catalog.ErrNotFound)
}

// FindByIDs matches each stored document at most once, like a Mongo $in
// query; malformed and unknown ids simply never match.
func (s *VariationStore) FindByIDs(ctx context.Context, ids []string) ([]*models.Variation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	var out []*models.Variation
	for _, doc := range s.docs {
		if wanted[doc.ID.Hex()] {
			out = append(out, doc)
		}
	}
	if out == nil {
		out = []*models.Variation{}
	}
	return out, nil
}

func (s *VariationStore) FindAll(ctx context.Context) ([]*models.Variation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]*models.Variation, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

func (s *VariationStore) UpdateByID(ctx context.Context, id string, variation *models.Variation) (*models.Variation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	objID, err := parseID(id, "variation")
	if err != nil {
		return nil, err
	}
	for _, doc := range s.docs {
		if doc.ID == objID {
			doc.Attributes = variation.Attributes
			doc.Price = variation.Price
			doc.Stock = variation.Stock
			doc.UpdatedAt = time.Now()
			return doc, nil
		}
	}
	return nil, fmt.Errorf("variation '%s' %w", id, catalog.ErrNotFound)
}

func (s *VariationStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	objID, err := parseID(id, "variation")
	if err != nil {
		return err
	}
	for i, doc := range s.docs {
		if doc.ID == objID {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("variation '%s' %w", id, catalog.ErrNotFound)
}

type ProductStore struct {
	mu   sync.Mutex
	docs []*models.Product
	Err  error
}

func NewProductStore() *ProductStore { return &ProductStore{} }

func (s *ProductStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func (s *ProductStore) Insert(ctx context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	product.ID = primitive.NewObjectID()
	product.CreatedAt = time.Now()
	product.UpdatedAt = time.Now()
	s.docs = append(s.docs, product)
	return nil
}

func (s *ProductStore) FindByID(ctx context.Context, id string) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	objID, err := parseID(id, "product")
	if err != nil {
		return nil, err
	}
	for _, doc := range s.docs {
		if doc.ID == objID {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("product '%s' %w", id, catalog.ErrNotFound)
}

func (s *ProductStore) FindAll(ctx context.Context) ([]*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	out := make([]*models.Product, len(s.docs))
	copy(out, s.docs)
	return out, nil
}

func (s *ProductStore) UpdateByID(ctx context.Context, id string, product *models.Product) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	objID, err := parseID(id, "product")
	if err != nil {
		return nil, err
	}
	for _, doc := range s.docs {
		if doc.ID == objID {
			doc.Name = product.Name
			doc.Description = product.Description
			doc.Category = product.Category
			doc.Images = product.Images
			doc.Variations = product.Variations
			doc.UpdatedAt = time.Now()
			return doc, nil
		}
	}
	return nil, fmt.Errorf("product '%s' %w", id, catalog.ErrNotFound)
}

func (s *ProductStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	objID, err := parseID(id, "product")
	if err != nil {
		return err
	}
	for i, doc := range s.docs {
		if doc.ID == objID {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("product '%s' %w", id, catalog.ErrNotFound)
}

type StockStore struct {
	mu   sync.Mutex
	docs []*models.Stock
	Err  error
}

func NewStockStore() *StockStore { return &StockStore{} }

func (s *StockStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

func (s *StockStore) Insert(ctx context.Context, stock *models.Stock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	stock.ID = primitive.NewObjectID()
	stock.CreatedAt = time.Now()
	stock.UpdatedAt = time.Now()
	s.docs = append(s.docs, stock)
	return nil
}

// FindByPair returns the first record in insertion order, matching the
// first-match behavior of the Mongo store when duplicates exist.
func (s *StockStore) FindByPair(ctx context.Context, productID, variationID string) (*models.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	productObjID, err := parseID(productID, "stock for product")
	if err != nil {
		return nil, err
	}
	variationObjID, err := parseID(variationID, "stock for variation")
	if err != nil {
		return nil, err
	}
	for _, doc := range s.docs {
		if doc.Product == productObjID && doc.Variation == variationObjID {
			return doc, nil
		}
	}
	return nil, fmt.Errorf("stock for product '%s' and variation '%s' %w", productID, variationID, catalog.ErrNotFound)
}

func (s *StockStore) UpdateQuantity(ctx context.Context, id string, quantity int) (*models.Stock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	objID, err := parseID(id, "stock")
	if err != nil {
		return nil, err
	}
	for _, doc := range s.docs {
		if doc.ID == objID {
			doc.Quantity = quantity
			doc.UpdatedAt = time.Now()
			return doc, nil
		}
	}
	return nil, fmt.Errorf("stock '%s' %w", id, catalog.ErrNotFound)
}

func (s *StockStore) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	objID, err := parseID(id, "stock")
	if err != nil {
		return err
	}
	for i, doc := range s.docs {
		if doc.ID == objID {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("stock '%s' %w", id, catalog.ErrNotFound)
}
