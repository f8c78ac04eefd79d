package utils

import (
	"github.com/activity-finder/internal/pkg/errors"
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse - тело ошибки в формате, который ожидает фронтенд
type ErrorResponse struct {
	Error string `json:"error"`
}

func SendSuccess(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Error: appErr.Message,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Error: errors.ErrInternalServer.Message,
	})
}
