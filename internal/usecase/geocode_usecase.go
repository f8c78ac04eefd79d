package usecase

import (
	"context"
	"strings"

	"github.com/activity-finder/internal/domain/repository"
	"github.com/activity-finder/internal/pkg/errors"
	"github.com/activity-finder/internal/usecase/dto"
	"go.uber.org/zap"
)

// GeocodeUseCase - use case для геокодирования названий мест
type GeocodeUseCase struct {
	geocoderRepo repository.GeocoderRepository
	logger       *zap.Logger
}

// NewGeocodeUseCase - создание нового GeocodeUseCase
func NewGeocodeUseCase(
	geocoderRepo repository.GeocoderRepository,
	logger *zap.Logger,
) *GeocodeUseCase {
	return &GeocodeUseCase{
		geocoderRepo: geocoderRepo,
		logger:       logger,
	}
}

// Geocode - координаты города по его названию
func (uc *GeocodeUseCase) Geocode(ctx context.Context, req dto.GeocodeRequest) (*dto.GeocodeResponse, error) {
	city := strings.TrimSpace(req.City)
	if city == "" {
		return nil, errors.ErrMissingCity
	}

	coord, err := uc.geocoderRepo.Geocode(ctx, city)
	if err != nil {
		if _, ok := err.(*errors.AppError); ok {
			return nil, err
		}
		uc.logger.Error("Failed to geocode place",
			zap.String("city", city),
			zap.Error(err))
		return nil, errors.Upstream(err)
	}

	return &dto.GeocodeResponse{
		Lat: coord.Lat,
		Lon: coord.Lon,
	}, nil
}
