package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
)

// RequestID - middleware для присвоения запросу уникального идентификатора
func RequestID() fiber.Handler {
	return requestid.New(requestid.Config{
		Generator: func() string {
			return uuid.NewString()
		},
	})
}
