package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/domain/entity"
	"github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/pkg/apperror"
	"github.com/mainakibe/printdesk-api/pkg/pagination"
)

// ProductService handles product-related operations
type ProductService struct {
	productRepo repository.ProductRepository
	stock       *StockService
}

// NewProductService creates a new product service
func NewProductService(productRepo repository.ProductRepository, stock *StockService) *ProductService {
	return &ProductService{productRepo: productRepo, stock: stock}
}

// CreateProductInput represents the create product input
type CreateProductInput struct {
	Name         string
	CategoryID   *uuid.UUID
	Quantity     int
	MinStock     int
	CostPrice    int64
	SellingPrice int64
}

// CreateProduct creates a new catalog product. The initial quantity lands in
// depot A until an explicit split says otherwise.
func (s *ProductService) CreateProduct(ctx context.Context, input *CreateProductInput) (*entity.Product, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Product name is required")
	}
	if input.Quantity < 0 {
		input.Quantity = 0
	}
	if input.MinStock < 0 {
		input.MinStock = 0
	}

	product := &entity.Product{
		Name:         input.Name,
		CategoryID:   input.CategoryID,
		Quantity:     input.Quantity,
		MinStock:     input.MinStock,
		CostPrice:    input.CostPrice,
		SellingPrice: input.SellingPrice,
	}

	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// BulkCreateProducts imports a batch of products in one shot
func (s *ProductService) BulkCreateProducts(ctx context.Context, inputs []CreateProductInput) ([]entity.Product, error) {
	if len(inputs) == 0 {
		return nil, apperror.NewBadRequestError("No products to import")
	}

	products := make([]entity.Product, 0, len(inputs))
	for _, in := range inputs {
		if in.Name == "" {
			return nil, apperror.NewBadRequestError("Every product needs a name")
		}
		if in.Quantity < 0 {
			in.Quantity = 0
		}
		if in.MinStock < 0 {
			in.MinStock = 0
		}
		products = append(products, entity.Product{
			Name:         in.Name,
			CategoryID:   in.CategoryID,
			Quantity:     in.Quantity,
			MinStock:     in.MinStock,
			CostPrice:    in.CostPrice,
			SellingPrice: in.SellingPrice,
		})
	}

	if err := s.productRepo.CreateBatch(ctx, products); err != nil {
		return nil, err
	}
	return products, nil
}

// GetProduct retrieves a product by ID
func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}
	return product, nil
}

// UpdateProductInput represents the update product input
type UpdateProductInput struct {
	Name         *string
	CategoryID   *uuid.UUID
	Quantity     *int
	MinStock     *int
	CostPrice    *int64
	SellingPrice *int64
}

// UpdateProduct updates a product's fields. Quantity edits go through the
// canonical path so the depot split stays within bounds.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, input *UpdateProductInput) (*entity.Product, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	if input.Name != nil {
		product.Name = *input.Name
	}
	if input.CategoryID != nil {
		product.CategoryID = input.CategoryID
	}
	if input.Quantity != nil {
		q := *input.Quantity
		if q < 0 {
			q = 0
		}
		product.Quantity = q
	}
	if input.MinStock != nil {
		m := *input.MinStock
		if m < 0 {
			m = 0
		}
		product.MinStock = m
	}
	if input.CostPrice != nil {
		product.CostPrice = *input.CostPrice
	}
	if input.SellingPrice != nil {
		product.SellingPrice = *input.SellingPrice
	}

	if err := s.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// DeleteProduct removes a product from the catalog. Orders that reference it
// keep their name and price snapshots.
func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product == nil {
		return apperror.NewNotFoundError("Product")
	}
	return s.productRepo.Delete(ctx, id)
}

// ListProducts lists products with pagination and filtering
func (s *ProductService) ListProducts(ctx context.Context, params *repository.ProductFilterParams) (*pagination.PaginatedResult[entity.Product], error) {
	if params.Pagination == nil {
		params.Pagination = pagination.DefaultPagination()
	}
	params.Pagination.Validate()

	products, total, err := s.productRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(products, pag), nil
}

// GetLowStockProducts returns every product at or below its minimum stock
func (s *ProductService) GetLowStockProducts(ctx context.Context) ([]entity.Product, error) {
	return s.productRepo.GetLowStock(ctx)
}

// AdjustQuantity shifts a product's canonical quantity by delta
func (s *ProductService) AdjustQuantity(ctx context.Context, id uuid.UUID, delta int) (*entity.Product, error) {
	if err := s.stock.AdjustQuantity(ctx, id, delta); err != nil {
		return nil, err
	}
	return s.GetProduct(ctx, id)
}
