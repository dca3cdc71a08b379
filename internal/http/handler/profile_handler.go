package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/service"
	"go.uber.org/zap"
)

// ProfileHandler serves the signed-in customer's own data
type ProfileHandler struct {
	customerService *service.CustomerService
	orderService    *service.OrderService
	logger          *zap.Logger
}

func NewProfileHandler(customerService *service.CustomerService, orderService *service.OrderService, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		customerService: customerService,
		orderService:    orderService,
		logger:          logger,
	}
}

func (h *ProfileHandler) customerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, ok := auth.CustomerIDFromContext(r.Context())
	if !ok {
		respondWithError(w, http.StatusForbidden, "คุณไม่มีสิทธิ์เข้าถึงข้อมูลนี้")
		return uuid.Nil, false
	}
	return id, true
}

// Get godoc
// @Summary My profile
// @Tags Profile
// @Produce json
// @Success 200 {object} domain.CustomerDTO
// @Failure 403 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	customer, err := h.customerService.GetByID(r.Context(), customerID)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to get profile", zap.String("customer_id", customerID.String()))
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Update godoc
// @Summary Update my profile
// @Description Contact and address fields only; segmentation and notes stay with the back office
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body domain.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} domain.CustomerDTO
// @Failure 400 {object} domain.APIError
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /profile [patch]
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}

	var req domain.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	customer, err := h.customerService.Update(r.Context(), customerID, req.ToCustomerUpdate())
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to update profile", zap.String("customer_id", customerID.String()))
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// ListOrders godoc
// @Summary My orders
// @Tags Profile
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.SalesOrderDTO}
// @Security BearerAuth
// @Router /profile/orders [get]
func (h *ProfileHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}
	page, pageSize := parsePagination(r)

	result, err := h.orderService.ListForCustomer(r.Context(), customerID, page, pageSize)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to list profile orders", zap.String("customer_id", customerID.String()))
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// GetOrder godoc
// @Summary One of my orders
// @Tags Profile
// @Produce json
// @Param id path string true "Order ID" format(uuid)
// @Success 200 {object} domain.SalesOrderDTO
// @Failure 404 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /profile/orders/{id} [get]
func (h *ProfileHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	order, err := h.orderService.GetForCustomer(r.Context(), customerID, id)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to get profile order", zap.String("order_id", id.String()))
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// OpenClaim godoc
// @Summary Report a problem with an order
// @Description Delivered orders only, one open claim at a time
// @Tags Profile
// @Accept json
// @Produce json
// @Param id path string true "Order ID" format(uuid)
// @Param request body domain.OpenClaimRequest true "Claim"
// @Success 201 {object} domain.SalesOrderDTO
// @Failure 400 {object} domain.APIError
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Security BearerAuth
// @Router /profile/orders/{id}/claims [post]
func (h *ProfileHandler) OpenClaim(w http.ResponseWriter, r *http.Request) {
	customerID, ok := h.customerID(w, r)
	if !ok {
		return
	}
	id, ok := urlUUID(w, r, "id")
	if !ok {
		return
	}

	var req domain.OpenClaimRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.orderService.OpenClaim(r.Context(), customerID, id, &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to open claim", zap.String("order_id", id.String()))
		return
	}

	respondJSON(w, http.StatusCreated, order)
}
