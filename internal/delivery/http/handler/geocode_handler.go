package handler

import (
	"github.com/activity-finder/internal/pkg/errors"
	"github.com/activity-finder/internal/pkg/utils"
	"github.com/activity-finder/internal/usecase"
	"github.com/activity-finder/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GeocodeHandler - обработчик запросов геокодирования
type GeocodeHandler struct {
	geocodeUC *usecase.GeocodeUseCase
	logger    *zap.Logger
}

// NewGeocodeHandler - создание нового GeocodeHandler
func NewGeocodeHandler(geocodeUC *usecase.GeocodeUseCase, logger *zap.Logger) *GeocodeHandler {
	return &GeocodeHandler{
		geocodeUC: geocodeUC,
		logger:    logger,
	}
}

// Geocode godoc
// @Summary Геокодирование города
// @Description Возвращает координаты первого совпадения по названию города
// @Tags Geocode
// @Produce json
// @Param city query string true "Название города"
// @Success 200 {object} dto.GeocodeResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/geocode [get]
func (h *GeocodeHandler) Geocode(c *fiber.Ctx) error {
	req := dto.GeocodeRequest{
		City: c.Query("city"),
	}

	if req.City == "" {
		return utils.SendError(c, errors.ErrMissingCity)
	}

	result, err := h.geocodeUC.Geocode(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result)
}
