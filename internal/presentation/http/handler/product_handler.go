package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mainakibe/printdesk-api/internal/application/service"
	"github.com/mainakibe/printdesk-api/internal/domain/repository"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/dto/request"
	"github.com/mainakibe/printdesk-api/internal/presentation/http/dto/response"
	"github.com/mainakibe/printdesk-api/pkg/pagination"
	"github.com/mainakibe/printdesk-api/pkg/utils"
)

// ProductHandler handles product-related HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List handles listing products
func (h *ProductHandler) List(c *gin.Context) {
	var filter request.ProductFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.ProductFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search:    filter.Search,
		LowStock:  filter.LowStock,
		SortBy:    filter.SortBy,
		SortOrder: filter.SortOrder,
	}

	if filter.CategoryID != "" {
		if catID, err := uuid.Parse(filter.CategoryID); err == nil {
			params.CategoryID = &catID
		}
	}

	result, err := h.productService.ListProducts(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Products retrieved successfully", result)
}

// Get handles retrieving a single product
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Create handles product creation
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.CreateProductInput{
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		Quantity:     req.Quantity,
		MinStock:     req.MinStock,
		CostPrice:    utils.ToCents(req.CostPrice),
		SellingPrice: utils.ToCents(req.SellingPrice),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// BulkCreate handles a batch import of products
func (h *ProductHandler) BulkCreate(c *gin.Context) {
	var req request.BulkCreateProductsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	inputs := make([]service.CreateProductInput, 0, len(req.Products))
	for _, p := range req.Products {
		inputs = append(inputs, service.CreateProductInput{
			Name:         p.Name,
			CategoryID:   p.CategoryID,
			Quantity:     p.Quantity,
			MinStock:     p.MinStock,
			CostPrice:    utils.ToCents(p.CostPrice),
			SellingPrice: utils.ToCents(p.SellingPrice),
		})
	}

	products, err := h.productService.BulkCreateProducts(c.Request.Context(), inputs)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Products imported successfully", products)
}

// Update handles product updates
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := &service.UpdateProductInput{
		Name:       req.Name,
		CategoryID: req.CategoryID,
		Quantity:   req.Quantity,
		MinStock:   req.MinStock,
	}
	if req.CostPrice != nil {
		cents := utils.ToCents(*req.CostPrice)
		input.CostPrice = &cents
	}
	if req.SellingPrice != nil {
		cents := utils.ToCents(*req.SellingPrice)
		input.SellingPrice = &cents
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// AdjustQuantity handles a signed stock adjustment
func (h *ProductHandler) AdjustQuantity(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	var req request.AdjustQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.AdjustQuantity(c.Request.Context(), id, req.Delta)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quantity adjusted successfully", product)
}

// Delete handles product deletion
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := ParseUUIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// LowStock handles the low-stock report
func (h *ProductHandler) LowStock(c *gin.Context) {
	products, err := h.productService.GetLowStockProducts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Low stock products retrieved successfully", products)
}
