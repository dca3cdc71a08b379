package handler

import (
	"net/http"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/service"
	"go.uber.org/zap"
)

// ShopHandler serves the public cart and checkout endpoints
type ShopHandler struct {
	orderService   *service.OrderService
	settingService *service.SettingService
	logger         *zap.Logger
}

func NewShopHandler(orderService *service.OrderService, settingService *service.SettingService, logger *zap.Logger) *ShopHandler {
	return &ShopHandler{
		orderService:   orderService,
		settingService: settingService,
		logger:         logger,
	}
}

// Settings godoc
// @Summary Storefront shipping settings
// @Description Base shipping fee and the free shipping threshold shown in the cart
// @Tags Storefront
// @Produce json
// @Success 200 {object} domain.ShippingSettingDTO
// @Failure 500 {object} domain.ErrorResponse
// @Router /shop/settings [get]
func (h *ShopHandler) Settings(w http.ResponseWriter, r *http.Request) {
	setting, err := h.settingService.GetShipping(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to get shipping settings")
		return
	}
	// the audit fields are for the back office only
	respondJSON(w, http.StatusOK, domain.ShippingSettingDTO{
		BaseShippingFee:       setting.BaseShippingFee,
		FreeShippingThreshold: setting.FreeShippingThreshold,
	})
}

// QuoteCart godoc
// @Summary Price a cart
// @Description Computes line totals, shipping and VAT without placing an order
// @Tags Storefront
// @Accept json
// @Produce json
// @Param request body domain.CartQuoteRequest true "Cart"
// @Success 200 {object} domain.CartQuoteDTO
// @Failure 400 {object} domain.APIError
// @Failure 422 {object} domain.ErrorResponse
// @Router /shop/cart/quote [post]
func (h *ShopHandler) QuoteCart(w http.ResponseWriter, r *http.Request) {
	var req domain.CartQuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	quote, err := h.orderService.QuoteCart(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to quote cart")
		return
	}

	respondJSON(w, http.StatusOK, quote)
}

// Checkout godoc
// @Summary Place an order
// @Description Validates the address, options and warehouse stock, then creates the order.
// @Description A customer token links the order to that customer; guests are matched by phone.
// @Tags Storefront
// @Accept json
// @Produce json
// @Param request body domain.CheckoutRequest true "Checkout"
// @Success 201 {object} domain.SalesOrderDTO
// @Failure 400 {object} domain.APIError
// @Failure 422 {object} domain.ErrorResponse
// @Failure 502 {object} domain.ErrorResponse
// @Router /shop/checkout [post]
func (h *ShopHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req domain.CheckoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	order, err := h.orderService.Checkout(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "checkout failed", zap.Int("lines", len(req.Items)))
		return
	}

	respondJSON(w, http.StatusCreated, order)
}
