package handler

import (
	"net/http"

	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/service"
	"go.uber.org/zap"
)

// ActivityHandler exposes the back office audit trail
type ActivityHandler struct {
	activityService *service.ActivityService
	logger          *zap.Logger
}

// NewActivityHandler creates a new ActivityHandler instance
func NewActivityHandler(activityService *service.ActivityService, logger *zap.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		logger:          logger,
	}
}

// List godoc
// @Summary List activities
// @Description Newest first, optionally for one record
// @Tags Admin Activities
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Items per page (max 200)" default(20)
// @Param targetType query string false "Record type" Enums(customer, product, quotation, order, setting)
// @Param targetId query string false "Record ID" format(uuid)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.ActivityDTO}
// @Failure 400 {object} domain.ErrorResponse
// @Security BearerAuth
// @Security ApiKeyAuth
// @Router /admin/activities [get]
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	page, pageSize := parsePagination(r)

	var targetType *domain.ActivityTargetType
	if raw := r.URL.Query().Get("targetType"); raw != "" {
		t := domain.ActivityTargetType(raw)
		if !t.IsValid() {
			respondWithError(w, http.StatusBadRequest, "ประเภทข้อมูลไม่ถูกต้อง")
			return
		}
		targetType = &t
	}
	targetID, ok := queryUUID(r, "targetId")
	if !ok {
		respondWithError(w, http.StatusBadRequest, msgInvalidID)
		return
	}

	result, err := h.activityService.List(r.Context(), page, pageSize, targetType, targetID)
	if err != nil {
		handleServiceError(w, h.logger, err, "failed to list activities")
		return
	}

	respondJSON(w, http.StatusOK, result)
}
