package usecase

import (
	"context"

	"github.com/activity-finder/internal/domain"
	"github.com/activity-finder/internal/domain/repository"
	"github.com/activity-finder/internal/pkg/errors"
	"github.com/activity-finder/internal/pkg/utils"
	"github.com/activity-finder/internal/usecase/dto"
	"go.uber.org/zap"
)

// ActivitiesUseCase - use case для поиска активностей в радиусе от точки
type ActivitiesUseCase struct {
	activityRepo repository.ActivityRepository
	logger       *zap.Logger
}

// NewActivitiesUseCase - создание нового ActivitiesUseCase
func NewActivitiesUseCase(
	activityRepo repository.ActivityRepository,
	logger *zap.Logger,
) *ActivitiesUseCase {
	return &ActivitiesUseCase{
		activityRepo: activityRepo,
		logger:       logger,
	}
}

// Search - поиск активностей выбранных категорий
func (uc *ActivitiesUseCase) Search(ctx context.Context, req dto.ActivitiesRequest) (*dto.ActivitiesResponse, error) {
	// Validate coordinates
	if !utils.ValidateCoordinates(req.Lat, req.Lon) {
		return nil, errors.ErrInvalidParameters
	}

	// Validate radius
	if !utils.ValidateRadius(req.Radius) {
		return nil, errors.ErrInvalidParameters
	}

	// Unknown category names are rejected here rather than silently dropped
	if len(req.Categories) == 0 {
		return nil, errors.ErrInvalidParameters
	}
	for _, category := range req.Categories {
		if !domain.IsKnownCategory(category) {
			return nil, errors.ErrInvalidParameters
		}
	}

	activities, err := uc.activityRepo.SearchByRadius(ctx, domain.ActivityQuery{
		Lat:        req.Lat,
		Lon:        req.Lon,
		Radius:     req.Radius,
		Categories: req.Categories,
	})
	if err != nil {
		uc.logger.Error("Failed to search activities by radius",
			zap.Float64("lat", req.Lat),
			zap.Float64("lon", req.Lon),
			zap.Float64("radius", req.Radius),
			zap.Error(err))
		return nil, errors.Upstream(err)
	}

	// Build response
	results := make([]dto.ActivityResult, 0, len(activities))
	for _, activity := range activities {
		results = append(results, dto.ConvertActivity(activity))
	}

	return &dto.ActivitiesResponse{
		Results: results,
	}, nil
}
