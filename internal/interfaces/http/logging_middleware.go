package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stacksketch/stacksketch-api/pkg/logger"
)

// RequestLogger registra cada petición con método, ruta, status y latencia.
// Las 5xx se registran como error; el resto como info.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		ev := log.Info()
		if c.Response().StatusCode() >= fiber.StatusInternalServerError {
			ev = log.Error()
		}
		ev.
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}
