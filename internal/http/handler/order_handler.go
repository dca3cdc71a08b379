package handler

import (
	"net/http"
	"time"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/repository"
	"github.com/siamsupply/shop-api/internal/service"
	"go.uber.org/zap"
)

// ictZone is Thailand time; date-only filters are whole business days
var ictZone = time.FixedZone("ICT", 7*60*60)

type OrderHandler struct {
	orderService *service.OrderService
	logger       *zap.Logger
}

func NewOrderHandler(orderService *service.OrderService, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		logger:       logger,
	}
}

// parseDay reads a YYYY-MM-DD query value. end selects the last instant of the day.
func parseDay(r *http.Request, name string, end bool) (*time.Time, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, true
	}
	day, err := time.ParseInLocation("2006-01-02", raw, ictZone)
	if err != nil {
		return nil, false
	}
	if end {
		day = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &day, true
}

// List godoc
// @Summary List orders
// @Tags Admin Orders
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param search query string false "Search order number, recipient or phone"
// @Param customerId query string false "Customer ID" format(uuid)
// @Param deliveryStatus query string false "Delivery status" Enums(pending, preparing, shipped, delivered, cancelled, returned)
// @Param paymentStatus query string false "Payment status" Enums(pending, paid, refunded)
// @Param from query string false "Placed on or after (YYYY-MM-DD)"
// @Param to query string false "Placed on or before (YYYY-MM-DD)"
// @Param sortBy query string false "Sort field" Enums(placedAt, createdAt, number, total)
// @Param sortOrder query string false "Sort order" Enums(asc, desc)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.SalesOrderDTO}
// @Failure 400 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/orders [get]
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)
	q := r.URL.Query()

	filters := &repository.SalesOrderFilters{Search: q.Get("search")}

	customerID, ok := queryUUID(r, "customerId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}
	filters.CustomerID = customerID

	if raw := q.Get("deliveryStatus"); raw != "" {
		s := domain.DeliveryStatus(raw)
		filters.DeliveryStatus = &s
	}
	if raw := q.Get("paymentStatus"); raw != "" {
		s := domain.PaymentStatus(raw)
		filters.PaymentStatus = &s
	}

	from, okFrom := parseDay(r, "from", false)
	to, okTo := parseDay(r, "to", true)
	if !okFrom || !okTo {
		respondWithError(w, http.StatusBadRequest, "รูปแบบวันที่ต้องเป็น YYYY-MM-DD")
		return
	}
	filters.PlacedFrom = from
	filters.PlacedTo = to

	sort := parseSort(r)
	if q.Get("sortBy") == "" {
		sort.Field = "placedAt"
	}

	result, err := h.orderService.ListAdmin(r.Context(), page, pageSize, filters, sort)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to list orders")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetByID godoc
// @Summary Get order
// @Tags Admin Orders
// @Produce json
// @Param id path string true "Order ID" format(uuid)
// @Success 200 {object} domain.SalesOrderDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/orders/{id} [get]
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetByID(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to get order", zap.String("order_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// UpdateDelivery godoc
// @Summary Update delivery status
// @Description Moves the order along the delivery flow; carrier and tracking may be updated on their own
// @Tags Admin Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID" format(uuid)
// @Param request body domain.UpdateDeliveryRequest true "Delivery"
// @Success 200 {object} domain.SalesOrderDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/orders/{id}/delivery [patch]
func (h *OrderHandler) UpdateDelivery(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdateDeliveryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.orderService.UpdateDelivery(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to update delivery",
			zap.String("order_id", id.String()),
			zap.String("status", string(req.Status)))
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// UpdatePayment godoc
// @Summary Update payment status
// @Tags Admin Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID" format(uuid)
// @Param request body domain.UpdatePaymentRequest true "Payment"
// @Success 200 {object} domain.SalesOrderDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/orders/{id}/payment [patch]
func (h *OrderHandler) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req domain.UpdatePaymentRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.orderService.UpdatePayment(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to update payment",
			zap.String("order_id", id.String()),
			zap.String("status", string(req.Status)))
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// ResolveClaim godoc
// @Summary Resolve a claim
// @Tags Admin Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID" format(uuid)
// @Param claimId path string true "Claim ID" format(uuid)
// @Param request body domain.ResolveClaimRequest true "Decision"
// @Success 200 {object} domain.SalesOrderDTO
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/orders/{id}/claims/{claimId} [patch]
func (h *OrderHandler) ResolveClaim(w http.ResponseWriter, r *http.Request) {
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}
	claimID, ok := urlUUID(w, r, "claimId")
	if !ok {
		return
	}

	var req domain.ResolveClaimRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.orderService.ResolveClaim(r.Context(), id, claimID, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to resolve claim",
			zap.String("order_id", id.String()),
			zap.String("claim_id", claimID.String()))
		return
	}

	respondJSON(w, http.StatusOK, order)
}
