package handler

import (
	"net/http"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/export"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/service"
	"go.uber.org/zap"
)

type CustomerHandler struct {
	customerService *service.CustomerService
	exportService   *service.ExportService
	logger          *zap.Logger
}

func NewCustomerHandler(customerService *service.CustomerService, exportService *service.ExportService, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerService: customerService,
		exportService:   exportService,
		logger:          logger,
	}
}

// parseCustomerType reads the optional ?type= filter
func parseCustomerType(w http.ResponseWriter, r *http.Request) (*domain.CustomerType, bool) {
	raw := r.URL.Query().Get("type")
	if raw == "" {
		return nil, true
	}
	t := domain.CustomerType(raw)
	if !t.IsValid() {
		respondWithError(w, http.StatusBadRequest, "ประเภทลูกค้าไม่ถูกต้อง")
		return nil, false
	}
	return &t, true
}

// parseCustomerStatus reads the optional ?status= filter
func parseCustomerStatus(w http.ResponseWriter, r *http.Request) (*domain.CustomerStatus, bool) {
	raw := r.URL.Query().Get("status")
	if raw == "" {
		return nil, true
	}
	s := domain.CustomerStatus(raw)
	if !s.IsValid() {
		respondWithError(w, http.StatusBadRequest, "สถานะลูกค้าไม่ถูกต้อง")
		return nil, false
	}
	return &s, true
}

// List godoc
// @Summary List customers
// @Description Paginated customer list with search and segment filter
// @Tags Admin Customers
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search name, company, phone or email"
// @Param type query string false "Customer type" Enums(new, regular, target, inactive)
// @Param status query string false "Status (default active)" Enums(active, deleted)
// @Param sortBy query string false "Sort field" Enums(createdAt, updatedAt, name, totalSpent, orderCount, lastOrderAt)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.CustomerDTO}
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/customers [get]
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	customerType, ok := parseCustomerType(w, r)
	if !ok {
		return
	}
	status, ok := parseCustomerStatus(w, r)
	if !ok {
		return
	}
	filters := &repository.CustomerFilters{
		Search: r.URL.Query().Get("search"),
		Type:   customerType,
		Status: status,
	}

	result, err := h.customerService.List(r.Context(), page, pageSize, filters, parseSort(r))
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to list customers")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Summary godoc
// @Summary Customer segment summary
// @Description Number of active customers per customer type
// @Tags Admin Customers
// @Produce json
// @Success 200 {object} domain.CustomerSummaryDTO
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/customers/summary [get]
func (h *CustomerHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.customerService.Summary(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to summarize customers")
		return
	}
	respondJSON(w, http.StatusOK, summary)
}

// GetByID godoc
// @Summary Get customer
// @Tags Admin Customers
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Success 200 {object} domain.CustomerDTO
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/customers/{id} [get]
func (h *CustomerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to get customer", zap.String("customer_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Create godoc
// @Summary Create customer
// @Tags Admin Customers
// @Accept json
// @Produce json
// @Param request body domain.CreateCustomerRequest true "Customer data"
// @Success 201 {object} domain.CustomerDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/customers [post]
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customer, err := h.customerService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to create customer")
		return
	}

	w.Header().Set("Location", "/api/admin/customers/"+customer.ID.String())
	respondJSON(w, http.StatusCreated, customer)
}

// Update godoc
// @Summary Update customer
// @Description Partial update; omitted fields are left unchanged
// @Tags Admin Customers
// @Accept json
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Param request body domain.UpdateCustomerRequest true "Fields to change"
// @Success 200 {object} domain.CustomerDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/customers/{id} [patch]
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateCustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customer, err := h.customerService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to update customer", zap.String("customer_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Delete godoc
// @Summary Delete customer
// @Description Soft delete; order history is kept
// @Tags Admin Customers
// @Param id path string true "Customer ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/customers/{id} [delete]
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.customerService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "failed to delete customer", zap.String("customer_id", id.String()))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Reclassify godoc
// @Summary Recompute customer type
// @Description Applies the segmentation rules to one customer immediately
// @Tags Admin Customers
// @Produce json
// @Param id path string true "Customer ID" format(uuid)
// @Success 200 {object} domain.CustomerDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/customers/{id}/reclassify [post]
func (h *CustomerHandler) Reclassify(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	customer, err := h.customerService.Reclassify(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to reclassify customer", zap.String("customer_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Export godoc
// @Summary Export customers
// @Description Download active customers as CSV (UTF-8 with BOM) or XLSX
// @Tags Admin Customers
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param format query string false "File format" Enums(csv, xlsx) default(csv)
// @Param type query string false "Customer type" Enums(new, regular, target, inactive)
// @Success 200 {file} file
// @Failure 400 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/customers/export [get]
func (h *CustomerHandler) Export(w http.ResponseWriter, r *http.Request) {
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}
	customerType, ok := parseCustomerType(w, r)
	if !ok {
		return
	}

	file, err := h.exportService.Customers(r.Context(), format, customerType)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to export customers")
		return
	}

	respondFile(w, file, false)
}
