package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/pkg/apperror"
	"github.com/mainakibe/printdesk-api/pkg/utils"
)

// CategoryService handles category-related operations
type CategoryService struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categoryRepo repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategory creates a new category with a slug derived from its name
func (s *CategoryService) CreateCategory(ctx context.Context, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	slug := utils.Slugify(name)
	if existing, err := s.categoryRepo.GetBySlug(ctx, slug); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, apperror.NewConflictError("Category already exists")
	}

	category := &entity.Category{Name: name, Slug: slug}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}
	return category, nil
}

// UpdateCategory renames a category. The slug is regenerated, except for the
// built-in unpaid category whose slug the credit book depends on.
func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, name string) (*entity.Category, error) {
	if name == "" {
		return nil, apperror.NewBadRequestError("Category name is required")
	}

	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperror.NewNotFoundError("Category")
	}

	category.Name = name
	if category.Slug != entity.UnpaidCategorySlug {
		category.Slug = utils.Slugify(name)
	}

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// DeleteCategory removes a category. The built-in unpaid category cannot be
// deleted because order categorization uses it to trigger credit-book entries.
func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if category == nil {
		return apperror.NewNotFoundError("Category")
	}
	if category.Slug == entity.UnpaidCategorySlug {
		return apperror.NewBadRequestError("The unpaid category cannot be deleted")
	}
	return s.categoryRepo.Delete(ctx, id)
}

// ListCategories returns all categories
func (s *CategoryService) ListCategories(ctx context.Context) ([]entity.Category, error) {
	return s.categoryRepo.List(ctx)
}
