package handler

import (
	"net/http"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/service"
	"go.uber.org/zap"
)

type SettingHandler struct {
	settingService *service.SettingService
	logger         *zap.Logger
}

func NewSettingHandler(settingService *service.SettingService, logger *zap.Logger) *SettingHandler {
	return &SettingHandler{
		settingService: settingService,
		logger:         logger,
	}
}

// GetShipping godoc
// @Summary Shipping settings
// @Tags Admin Settings
// @Produce json
// @Success 200 {object} domain.ShippingSettingDTO
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/settings/shipping [get]
func (h *SettingHandler) GetShipping(w http.ResponseWriter, r *http.Request) {
	setting, err := h.settingService.GetShipping(r.Context())
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to get shipping settings")
		return
	}
	respondJSON(w, http.StatusOK, setting)
}

// UpdateShipping godoc
// @Summary Update shipping settings
// @Tags Admin Settings
// @Accept json
// @Produce json
// @Param request body domain.UpdateShippingSettingRequest true "Settings"
// @Success 200 {object} domain.ShippingSettingDTO
// @Failure 400 {object} domain.APIError
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/settings/shipping [put]
func (h *SettingHandler) UpdateShipping(w http.ResponseWriter, r *http.Request) {
	var req domain.UpdateShippingSettingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	setting, err := h.settingService.UpdateShipping(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to update shipping settings")
		return
	}
	respondJSON(w, http.StatusOK, setting)
}
