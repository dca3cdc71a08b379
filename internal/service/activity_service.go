package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/siamsupply/shop-api/internal/auth"
	"github.com/siamsupply/shop-api/internal/domain"
	"github.com/siamsupply/shop-api/internal/mapper"
	"github.com/siamsupply/shop-api/internal/repository"
	"go.uber.org/zap"
)

// ActivityService exposes the audit trail written by the other services
type ActivityService struct {
	activityRepo *repository.ActivityRepository
	logger       *zap.Logger
}

// NewActivityService creates a new ActivityService instance
func NewActivityService(activityRepo *repository.ActivityRepository, logger *zap.Logger) *ActivityService {
	return &ActivityService{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// List returns activities newest first, optionally for a single target
func (s *ActivityService) List(ctx context.Context, page, pageSize int, targetType *domain.ActivityTargetType, targetID *uuid.UUID) (*domain.PaginatedResponse, error) {
	page, pageSize = repository.NormalizePagination(page, pageSize)

	activities, total, err := s.activityRepo.List(ctx, page, pageSize, targetType, targetID)
	if err != nil {
		return nil, err
	}

	dtos := make([]domain.ActivityDTO, len(activities))
	for i := range activities {
		dtos[i] = mapper.ToActivityDTO(&activities[i])
	}
	return paginated(dtos, total, page, pageSize), nil
}

// activityRecorder writes audit entries. Failures are logged and never fail the caller.
type activityRecorder struct {
	repo   *repository.ActivityRepository
	logger *zap.Logger
}

func (r activityRecorder) record(ctx context.Context, targetType domain.ActivityTargetType, targetID uuid.UUID, action, title, body string) {
	if r.repo == nil {
		return
	}
	activity := &domain.Activity{
		TargetType: targetType,
		TargetID:   targetID,
		Action:     action,
		Title:      title,
		Body:       body,
		ActorID:    auth.ActorFromContext(ctx),
		OccurredAt: time.Now().UTC(),
	}
	if err := r.repo.Create(ctx, activity); err != nil {
		r.logger.Warn("failed to log activity",
			zap.String("target_type", string(targetType)),
			zap.String("target_id", targetID.String()),
			zap.String("action", action),
			zap.Error(err))
	}
}

func paginated(data interface{}, total int64, page, pageSize int) *domain.PaginatedResponse {
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedResponse{
		Data:       data,
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
