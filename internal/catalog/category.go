package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/deblinanandy/stockmanagement/internal/models"
)

// CategoryRequest carries the writable category fields for create and
// update. Updates are full replacements; there is no sparse update.
type CategoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type CategoryService struct {
	categories CategoryStore
}

func NewCategoryService(categories CategoryStore) *CategoryService {
	return &CategoryService{categories: categories}
}

// Create inserts a new category after checking the name is not taken. The
// unique index on name is the backstop for the race between check and
// insert; both paths report ErrDuplicate.
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (*models.Category, error) {
	existing, err := s.categories.FindByName(ctx, req.Name)
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("category '%s' %w", req.Name, ErrDuplicate)
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categories.Insert(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Get(ctx context.Context, id string) (*models.Category, error) {
	return s.categories.FindByID(ctx, id)
}

// List returns all categories. An empty collection is reported as
// ErrNotFound, not as an empty success.
func (s *CategoryService) List(ctx context.Context) ([]*models.Category, error) {
	categories, err := s.categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(categories) == 0 {
		return nil, fmt.Errorf("no categories %w", ErrNotFound)
	}
	return categories, nil
}

func (s *CategoryService) Update(ctx context.Context, id string, req CategoryRequest) (*models.Category, error) {
	return s.categories.UpdateByID(ctx, id, &models.Category{
		Name:        req.Name,
		Description: req.Description,
	})
}

func (s *CategoryService) Delete(ctx context.Context, id string) error {
	return s.categories.DeleteByID(ctx, id)
}
