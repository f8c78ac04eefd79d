package repository

import (
	"context"

	"github.com/activity-finder/internal/domain"
)

// ActivityRepository определяет методы для работы с картографическим сервисом
type ActivityRepository interface {
	// SearchByRadius возвращает активности выбранных категорий в радиусе от точки
	SearchByRadius(ctx context.Context, query domain.ActivityQuery) ([]domain.Activity, error)
}
