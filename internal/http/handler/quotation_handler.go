package handler

import (
	"net/http"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/export"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/service"
	"go.uber.org/zap"
)

// quotationPagePolicy lets the printable page use its embedded styles and fonts
const quotationPagePolicy = "default-src 'none'; style-src 'unsafe-inline'; img-src data: https:; font-src data: https:"

type QuotationHandler struct {
	quotationService *service.QuotationService
	logger           *zap.Logger
}

func NewQuotationHandler(quotationService *service.QuotationService, logger *zap.Logger) *QuotationHandler {
	return &QuotationHandler{
		quotationService: quotationService,
		logger:           logger,
	}
}

// List godoc
// @Summary List quotations
// @Tags Quotations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search number or customer name"
// @Param status query string false "Status" Enums(draft, sent, accepted, rejected, expired, cancelled)
// @Param customerId query string false "Customer ID" format(uuid)
// @Param sortBy query string false "Sort field" Enums(createdAt, issueDate, validUntil, number, grandTotal, customer)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.QuotationDTO}
// @Failure 400 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations [get]
func (h *QuotationHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	filters := &repository.QuotationFilters{Search: r.URL.Query().Get("search")}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.QuotationStatus(raw)
		if !status.IsValid() {
			respondWithError(w, http.StatusBadRequest, "สถานะใบเสนอราคาไม่ถูกต้อง")
			return
		}
		filters.Status = &status
	}
	customerID, ok := queryUUID(r, "customerId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	filters.CustomerID = customerID

	result, err := h.quotationService.List(r.Context(), page, pageSize, filters, parseSort(r))
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to list quotations")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get quotation
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID" format(uuid)
// @Success 200 {object} domain.QuotationDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id} [get]
func (h *QuotationHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	quotation, err := h.quotationService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to get quotation", zap.String("quotation_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, quotation)
}

// Create godoc
// @Summary Create quotation
// @Description Snapshots the customer, numbers the document and computes totals
// @Tags Quotations
// @Accept json
// @Produce json
// @Param request body domain.CreateQuotationRequest true "Quotation"
// @Success 201 {object} domain.QuotationDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations [post]
func (h *QuotationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req domain.CreateQuotationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quotation, err := h.quotationService.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to create quotation", zap.String("customer_id", req.CustomerID.String()))
		return
	}

	w.Header().Set("Location", "/api/quotations/"+quotation.ID.String())
	respondJSON(w, http.StatusCreated, quotation)
}

// Update godoc
// @Summary Update draft quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID" format(uuid)
// @Param request body domain.UpdateQuotationRequest true "Fields to change"
// @Success 200 {object} domain.QuotationDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id} [patch]
func (h *QuotationHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateQuotationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quotation, err := h.quotationService.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to update quotation", zap.String("quotation_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, quotation)
}

// ReplaceItems godoc
// @Summary Replace quotation line items
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID" format(uuid)
// @Param request body domain.ReplaceQuotationItemsRequest true "Items"
// @Success 200 {object} domain.QuotationDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id}/items [put]
func (h *QuotationHandler) ReplaceItems(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req domain.ReplaceQuotationItemsRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quotation, err := h.quotationService.ReplaceItems(r.Context(), id, req.Items)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to replace quotation items", zap.String("quotation_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, quotation)
}

// Delete godoc
// @Summary Cancel quotation
// @Description Soft delete: the quotation moves to cancelled
// @Tags Quotations
// @Param id path string true "Quotation ID" format(uuid)
// @Success 204
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id} [delete]
func (h *QuotationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.quotationService.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.logger, err, "failed to cancel quotation", zap.String("quotation_id", id.String()))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Send godoc
// @Summary Send quotation
// @Description Marks the draft as sent and archives its PDF
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID" format(uuid)
// @Success 200 {object} domain.QuotationDTO
// @Failure 409 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id}/send [post]
func (h *QuotationHandler) Send(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	quotation, err := h.quotationService.Send(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to send quotation", zap.String("quotation_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, quotation)
}

// Accept godoc
// @Summary Accept quotation
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID" format(uuid)
// @Success 200 {object} domain.QuotationDTO
// @Failure 409 {object} domain.ErrorResponse "Not sent, or validity has ended"
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id}/accept [post]
func (h *QuotationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	quotation, err := h.quotationService.Accept(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to accept quotation", zap.String("quotation_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, quotation)
}

// Reject godoc
// @Summary Reject quotation
// @Tags Quotations
// @Accept json
// @Produce json
// @Param id path string true "Quotation ID" format(uuid)
// @Param request body domain.RejectQuotationRequest true "Reason"
// @Success 200 {object} domain.QuotationDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id}/reject [post]
func (h *QuotationHandler) Reject(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req domain.RejectQuotationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quotation, err := h.quotationService.Reject(r.Context(), id, req.Reason)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to reject quotation", zap.String("quotation_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, quotation)
}

// Convert godoc
// @Summary Convert quotation to order
// @Description Creates a sales order from an accepted quotation
// @Tags Quotations
// @Produce json
// @Param id path string true "Quotation ID" format(uuid)
// @Success 201 {object} domain.SalesOrderDTO
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id}/convert [post]
func (h *QuotationHandler) Convert(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.quotationService.ConvertToOrder(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to convert quotation", zap.String("quotation_id", id.String()))
		return
	}

	w.Header().Set("Location", "/api/admin/orders/"+order.ID.String())
	respondJSON(w, http.StatusCreated, order)
}

// PDF godoc
// @Summary Quotation PDF
// @Description Archived copy for sent quotations, otherwise rendered on demand
// @Tags Quotations
// @Produce application/pdf
// @Param id path string true "Quotation ID" format(uuid)
// @Param download query bool false "Send as attachment"
// @Success 200 {file} file
// @Failure 404 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id}/pdf [get]
func (h *QuotationHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	file, err := h.quotationService.RenderPDF(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to render quotation pdf", zap.String("quotation_id", id.String()))
		return
	}

	respondFile(w, file, r.URL.Query().Get("download") != "true")
}

// HTML godoc
// @Summary Printable quotation page
// @Tags Quotations
// @Produce text/html
// @Param id path string true "Quotation ID" format(uuid)
// @Success 200 {string} string
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id}/html [get]
func (h *QuotationHandler) HTML(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	file, err := h.quotationService.RenderHTML(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to render quotation html", zap.String("quotation_id", id.String()))
		return
	}

	w.Header().Set("Content-Security-Policy", quotationPagePolicy)
	respondFile(w, file, true)
}

// Export godoc
// @Summary Export quotation line items
// @Tags Quotations
// @Produce text/csv
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Quotation ID" format(uuid)
// @Param format query string false "File format" Enums(csv, xlsx) default(csv)
// @Success 200 {file} file
// @Failure 400 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /quotations/{id}/export [get]
func (h *QuotationHandler) Export(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}
	format, err := export.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, msgInvalidFormat)
		return
	}

	file, err := h.quotationService.Export(r.Context(), id, format)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to export quotation", zap.String("quotation_id", id.String()))
		return
	}

	respondFile(w, file, false)
}
