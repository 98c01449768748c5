// Package memory provides in-memory implementations of the domain
// repositories. They back the service tests and the DB_DRIVER=memory demo
// mode; data lives for the lifetime of the process.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	domainRepo "github.com/mainakibe/printdesk-api/internal/domain/repository"
)

type ProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]entity.Product
}

// NewProductRepository creates an empty in-memory product repository
func NewProductRepository() *ProductRepository {
	return &ProductRepository{products: make(map[uuid.UUID]entity.Product)}
}

var _ domainRepo.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepository) CreateBatch(ctx context.Context, products []entity.Product) error {
	for i := range products {
		if err := r.Create(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	product, ok := r.products[id]
	if !ok {
		return nil, nil
	}
	return &product, nil
}

func (r *ProductRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]entity.Product, 0, len(ids))
	for _, id := range ids {
		if product, ok := r.products[id]; ok {
			result = append(result, product)
		}
	}
	return result, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.UpdatedAt = time.Now()
	r.products[product.ID] = *product
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *ProductRepository) List(ctx context.Context, params *domainRepo.ProductFilterParams) ([]entity.Product, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]entity.Product, 0, len(r.products))
	for _, p := range r.products {
		if params.Search != "" && !strings.Contains(strings.ToLower(p.Name), strings.ToLower(params.Search)) {
			continue
		}
		if params.CategoryID != nil && (p.CategoryID == nil || *p.CategoryID != *params.CategoryID) {
			continue
		}
		if params.LowStock && p.Quantity > p.MinStock {
			continue
		}
		matched = append(matched, p)
	}

	sort.Slice(matched, func(i, j int) bool {
		if params.SortBy == "name" {
			return matched[i].Name < matched[j].Name
		}
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	params.Pagination.Validate()
	start := params.Pagination.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + params.Pagination.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *ProductRepository) GetLowStock(ctx context.Context) ([]entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []entity.Product
	for _, p := range r.products {
		if p.Quantity <= p.MinStock {
			result = append(result, p)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (r *ProductRepository) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product, ok := r.products[id]
	if !ok {
		return nil
	}
	product.Quantity = quantity
	product.UpdatedAt = time.Now()
	r.products[id] = product
	return nil
}

type CategoryRepository struct {
	mu         sync.RWMutex
	categories map[uuid.UUID]entity.Category
}

// NewCategoryRepository creates an empty in-memory category repository
func NewCategoryRepository() *CategoryRepository {
	return &CategoryRepository{categories: make(map[uuid.UUID]entity.Category)}
}

var _ domainRepo.CategoryRepository = (*CategoryRepository)(nil)

func (r *CategoryRepository) Create(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	category.CreatedAt = time.Now()
	r.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	category, ok := r.categories[id]
	if !ok {
		return nil, nil
	}
	return &category, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, c := range r.categories {
		if c.Slug == slug {
			return &c, nil
		}
	}
	return nil, nil
}

func (r *CategoryRepository) Update(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	category.UpdatedAt = time.Now()
	r.categories[category.ID] = *category
	return nil
}

func (r *CategoryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

func (r *CategoryRepository) List(ctx context.Context) ([]entity.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]entity.Category, 0, len(r.categories))
	for _, c := range r.categories {
		result = append(result, c)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}
