package handler

import (
	"strconv"
	"strings"

	"github.com/activity-finder/internal/pkg/errors"
	"github.com/activity-finder/internal/pkg/utils"
	"github.com/activity-finder/internal/pkg/validator"
	"github.com/activity-finder/internal/usecase"
	"github.com/activity-finder/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ActivitiesHandler - обработчик запросов поиска активностей
type ActivitiesHandler struct {
	activitiesUC *usecase.ActivitiesUseCase
	logger       *zap.Logger
}

// NewActivitiesHandler - создание нового ActivitiesHandler
func NewActivitiesHandler(activitiesUC *usecase.ActivitiesUseCase, logger *zap.Logger) *ActivitiesHandler {
	return &ActivitiesHandler{
		activitiesUC: activitiesUC,
		logger:       logger,
	}
}

// Search godoc
// @Summary Поиск активностей в радиусе
// @Description Возвращает активности выбранных категорий в радиусе от точки
// @Tags Activities
// @Produce json
// @Param lat query number true "Широта"
// @Param lon query number true "Долгота"
// @Param radius query number true "Радиус в метрах"
// @Param categories query string true "Категории через запятую (playground,park,theme_park,zoo,museum,water_park)"
// @Success 200 {object} dto.ActivitiesResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/activities [get]
func (h *ActivitiesHandler) Search(c *fiber.Ctx) error {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
	radius, radiusErr := strconv.ParseFloat(c.Query("radius"), 64)
	if latErr != nil || lonErr != nil || radiusErr != nil {
		return utils.SendError(c, errors.ErrInvalidParameters)
	}

	req := dto.ActivitiesRequest{
		Lat:        lat,
		Lon:        lon,
		Radius:     radius,
		Categories: parseCategories(c.Query("categories")),
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidParameters)
	}

	result, err := h.activitiesUC.Search(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}

// parseCategories разбирает список категорий из query-параметра
func parseCategories(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
