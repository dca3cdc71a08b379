package handler

import (
	"net/http"
	"strings"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/service"
	"go.uber.org/zap"
)

// ProductHandler serves the admin catalogue and the public storefront listing
type ProductHandler struct {
	productService *service.ProductService
	logger         *zap.Logger
}

func NewProductHandler(productService *service.ProductService, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		logger:         logger,
	}
}

// ListStorefront godoc
// @Summary Browse products
// @Description Active products only
// @Tags Storefront
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search name or SKU"
// @Param category query string false "Category"
// @Param sortBy query string false "Sort field" Enums(createdAt, name, price)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ProductDTO}
// @Failure 500 {object} domain.ErrorResponse
// @Router /products [get]
func (h *ProductHandler) ListStorefront(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	q := r.URL.Query()

	result, err := h.productService.ListStorefront(r.Context(), page, pageSize, q.Get("search"), q.Get("category"), parseSort(r))
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to list storefront products")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetStorefront godoc
// @Summary Product detail
// @Tags Storefront
// @Produce json
// @Param id path string true "Product ID" format(uuid)
// @Success 200 {object} domain.ProductDTO
// @Failure 404 {object} domain.ErrorResponse
// @Router /products/{id} [get]
func (h *ProductHandler) GetStorefront(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetStorefront(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to get storefront product", zap.String("product_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// List godoc
// @Summary List products
// @Tags Admin Products
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search name or SKU"
// @Param category query string false "Category"
// @Param status query string false "Comma separated statuses" example(active,inactive)
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, name, sku, price, category)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ProductDTO}
// @Failure 400 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products [get]
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	q := r.URL.Query()

	filters := &repository.ProductFilters{
		Search:   q.Get("search"),
		Category: q.Get("category"),
	}
	if raw := q.Get("status"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			status := domain.ProductStatus(strings.TrimSpace(part))
			if !status.IsValid() {
				respondWithError(w, http.StatusBadRequest, "สถานะสินค้าไม่ถูกต้อง")
				return
			}
			filters.Statuses = append(filters.Statuses, status)
		}
	}

	result, err := h.productService.ListAdmin(r.Context(), page, pageSize, filters, parseSort(r))
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to list products")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get product
// @Tags Admin Products
// @Produce json
// @Param id path string true "Product ID" format(uuid)
// @Success 200 {object} domain.ProductDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products/{id} [get]
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	product, err := h.productService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to get product", zap.String("product_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// Create godoc
// @Summary Create product
// @Tags Admin Products
// @Accept json
// @Produce json
// @Param request body domain.CreateProductRequest true "Product data"
// @Success 201 {object} domain.ProductDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products [post]
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.productService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to create product", zap.String("sku", req.SKU))
		return
	}

	w.Header().Set("Location", "/api/admin/products/"+product.ID.String())
	respondJSON(w, http.StatusCreated, product)
}

// Update godoc
// @Summary Update product
// @Description Partial update. Sending units or options replaces the whole list.
// @Tags Admin Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID" format(uuid)
// @Param request body domain.UpdateProductRequest true "Fields to change"
// @Success 200 {object} domain.ProductDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products/{id} [patch]
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.productService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to update product", zap.String("product_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// Delete godoc
// @Summary Delete product
// @Description Soft delete; the product disappears from the storefront
// @Tags Admin Products
// @Param id path string true "Product ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products/{id} [delete]
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.productService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "failed to delete product", zap.String("product_id", id.String()))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// SetOptionAvailability godoc
// @Summary Toggle option value availability
// @Tags Admin Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID" format(uuid)
// @Param optionId path string true "Option ID" format(uuid)
// @Param valueId path string true "Option value ID" format(uuid)
// @Param request body domain.SetOptionAvailabilityRequest true "Availability"
// @Success 200 {object} domain.ProductDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products/{id}/options/{optionId}/values/{valueId} [patch]
func (h *ProductHandler) SetOptionAvailability(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}
	optionID, ok := urlUUID(w, r, "optionId")
	if !ok {
		return
	}
	valueID, ok := urlUUID(w, r, "valueId")
	if !ok {
		return
	}

	var req domain.SetOptionAvailabilityRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	product, err := h.productService.SetOptionAvailability(r.Context(), id, optionID, valueID, *req.Available)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to set option availability",
			zap.String("product_id", id.String()),
			zap.String("value_id", valueID.String()))
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// CheckStock godoc
// @Summary Check warehouse stock
// @Description Live lookup against the warehouse system
// @Tags Admin Products
// @Produce json
// @Param id path string true "Product ID" format(uuid)
// @Success 200 {object} domain.StockLevelDTO
// @Failure 404 {object} domain.ErrorResponse
// @Failure 502 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/products/{id}/stock [get]
func (h *ProductHandler) CheckStock(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	level, err := h.productService.CheckStock(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to check stock", zap.String("product_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, level)
}
