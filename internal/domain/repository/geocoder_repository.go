package repository

import (
	"context"

	"github.com/activity-finder/internal/domain"
)

// GeocoderRepository определяет методы для работы с сервисом геокодирования
type GeocoderRepository interface {
	// Geocode возвращает координаты первого совпадения по названию места
	Geocode(ctx context.Context, place string) (*domain.Coordinate, error)
}
